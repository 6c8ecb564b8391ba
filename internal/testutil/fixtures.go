package testutil

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// AuditEvent is the stored shape of one audit record, kept independent of
// the audit package so store tests can seed raw documents.
type AuditEvent struct {
	ID         primitive.ObjectID `bson:"_id"`
	Timestamp  time.Time          `bson:"timestamp"`
	Category   string             `bson:"category"`
	EventType  string             `bson:"event_type"`
	ActorEmail string             `bson:"actor_email,omitempty"`
	TargetType string             `bson:"target_type,omitempty"`
	TargetID   string             `bson:"target_id,omitempty"`
	IP         string             `bson:"ip"`
	Success    bool               `bson:"success"`
}

// CreateAuditEvents inserts n events of eventType, one second apart and
// ending at now, alternating success and failure starting with success.
func (f *Fixtures) CreateAuditEvents(ctx context.Context, eventType string, n int) []AuditEvent {
	f.t.Helper()

	now := time.Now().UTC().Truncate(time.Millisecond)
	out := make([]AuditEvent, 0, n)
	docs := make([]interface{}, 0, n)
	for i := 0; i < n; i++ {
		ev := AuditEvent{
			ID:         primitive.NewObjectID(),
			Timestamp:  now.Add(-time.Duration(n-1-i) * time.Second),
			Category:   "admin",
			EventType:  eventType,
			ActorEmail: "admin@test.com",
			TargetType: "user",
			TargetID:   primitive.NewObjectID().Hex(),
			IP:         "127.0.0.1",
			Success:    i%2 == 0,
		}
		out = append(out, ev)
		docs = append(docs, ev)
	}
	if n == 0 {
		return out
	}
	if _, err := f.db.Collection("audit_events").InsertMany(ctx, docs); err != nil {
		f.t.Fatalf("failed to create audit events: %v", err)
	}
	return out
}
