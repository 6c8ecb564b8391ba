// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"github.com/flatfacts/admin/internal/app/platform"
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds back-end dependencies for the app. The Mongo fields are nil
// when no audit database is configured.
type DBDeps struct {
	Platform *platform.Client

	AuditMongoClient   *mongo.Client
	AuditMongoDatabase *mongo.Database
}
