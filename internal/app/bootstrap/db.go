// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/dalemusser/waffle/config"
	"github.com/flatfacts/admin/internal/app/platform"
	"github.com/flatfacts/admin/internal/app/store/audit"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// mongoConnectBudget bounds how long startup keeps retrying MongoDB.
const mongoConnectBudget = 30 * time.Second

// ConnectDB builds the platform API client and, when mongo_uri is set,
// connects to the audit database. The first Mongo ping is retried with
// exponential backoff so the dashboard can start alongside its database.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	var deps DBDeps

	pc, err := platform.New(platform.Config{BaseURL: appCfg.PlatformBaseURL, Timeout: appCfg.PlatformTimeout}, logger)
	if err != nil {
		return deps, err
	}
	deps.Platform = pc

	if !appCfg.HasMongo() {
		logger.Info("mongo_uri not set; audit events go to the application log only")
		return deps, nil
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(appCfg.MongoURI))
	if err != nil {
		return deps, fmt.Errorf("mongo connect: %w", err)
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = mongoConnectBudget
	ping := func() error {
		pctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return client.Ping(pctx, readpref.Primary())
	}
	notify := func(err error, wait time.Duration) {
		logger.Warn("mongo not ready; retrying", zap.Error(err), zap.Duration("wait", wait))
	}
	if err := backoff.RetryNotify(ping, backoff.WithContext(bo, ctx), notify); err != nil {
		_ = client.Disconnect(context.Background())
		return deps, fmt.Errorf("mongo ping: %w", err)
	}

	deps.AuditMongoClient = client
	deps.AuditMongoDatabase = client.Database(appCfg.MongoDatabase)
	logger.Info("connected to audit database", zap.String("database", appCfg.MongoDatabase))
	return deps, nil
}

// EnsureSchema creates the audit collection's indexes.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if deps.AuditMongoDatabase == nil {
		return nil
	}
	if err := audit.New(deps.AuditMongoDatabase).EnsureIndexes(ctx); err != nil {
		logger.Error("audit index creation failed", zap.Error(err))
		return fmt.Errorf("ensure audit indexes: %w", err)
	}
	return nil
}
