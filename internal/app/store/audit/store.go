// internal/app/store/audit/store.go
package audit

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Event categories
const (
	CategoryAdmin   = "admin"
	CategoryAccount = "account"
)

// Admin event types
const (
	EventUserUpdated      = "user_updated"
	EventUserDeleted      = "user_deleted"
	EventUserBanned       = "user_banned"
	EventUserUnbanned     = "user_unbanned"
	EventReviewDeleted    = "review_deleted"
	EventCommentDeleted   = "comment_deleted"
	EventReportDismissed  = "report_dismissed"
	EventSupportReplied   = "support_replied"
	EventNotificationSent = "notification_sent"
)

// Account event types
const (
	EventProfileUpdated  = "profile_updated"
	EventPasswordChanged = "password_changed"
)

// EventTypes lists every event type, in the order the activity filter shows them.
var EventTypes = []string{
	EventUserUpdated,
	EventUserDeleted,
	EventUserBanned,
	EventUserUnbanned,
	EventReviewDeleted,
	EventCommentDeleted,
	EventReportDismissed,
	EventSupportReplied,
	EventNotificationSent,
	EventProfileUpdated,
	EventPasswordChanged,
}

// Target types
const (
	TargetUser         = "user"
	TargetReview       = "review"
	TargetComment      = "comment"
	TargetReport       = "report"
	TargetSupport      = "support_message"
	TargetNotification = "notification"
)

// Event is one action taken through the dashboard.
type Event struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Timestamp time.Time          `bson:"timestamp"`

	// Event classification
	Category  string `bson:"category"`
	EventType string `bson:"event_type"`

	// Who (platform user id and email of the admin)
	ActorID    string `bson:"actor_id,omitempty"`
	ActorEmail string `bson:"actor_email,omitempty"`

	// What
	TargetType string `bson:"target_type,omitempty"`
	TargetID   string `bson:"target_id,omitempty"`

	// Context
	IP        string `bson:"ip"`
	UserAgent string `bson:"user_agent,omitempty"`

	// Outcome
	Success       bool   `bson:"success"`
	FailureReason string `bson:"failure_reason,omitempty"`

	// Additional details (varies by event type)
	Details map[string]string `bson:"details,omitempty"`
}

// Outcome filter values.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// QueryFilter defines filters for querying audit events.
type QueryFilter struct {
	Category   string
	EventType  string
	Outcome    string // "", OutcomeSuccess or OutcomeFailure
	ActorEmail string
	TargetType string
	TargetID   string
	StartTime  *time.Time
	EndTime    *time.Time
	Limit      int64
	Offset     int64
}

func (f QueryFilter) toQuery() bson.M {
	query := bson.M{}
	if f.Category != "" {
		query["category"] = f.Category
	}
	if f.EventType != "" {
		query["event_type"] = f.EventType
	}
	switch f.Outcome {
	case OutcomeSuccess:
		query["success"] = true
	case OutcomeFailure:
		query["success"] = false
	}
	if f.ActorEmail != "" {
		query["actor_email"] = f.ActorEmail
	}
	if f.TargetType != "" {
		query["target_type"] = f.TargetType
	}
	if f.TargetID != "" {
		query["target_id"] = f.TargetID
	}

	// Time range
	if f.StartTime != nil || f.EndTime != nil {
		timeQuery := bson.M{}
		if f.StartTime != nil {
			timeQuery["$gte"] = *f.StartTime
		}
		if f.EndTime != nil {
			timeQuery["$lte"] = *f.EndTime
		}
		query["timestamp"] = timeQuery
	}
	return query
}

// Store manages audit event records.
type Store struct {
	c *mongo.Collection
}

// New creates a new audit Store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("audit_events")}
}

// EnsureIndexes creates necessary indexes for efficient querying.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		// Most recent first
		{
			Keys: bson.D{{Key: "timestamp", Value: -1}},
		},
		// Activity page filters
		{
			Keys: bson.D{
				{Key: "event_type", Value: 1},
				{Key: "success", Value: 1},
				{Key: "timestamp", Value: -1},
			},
		},
		// History of one platform entity
		{
			Keys: bson.D{
				{Key: "target_type", Value: 1},
				{Key: "target_id", Value: 1},
				{Key: "timestamp", Value: -1},
			},
		},
		{
			Keys: bson.D{
				{Key: "actor_email", Value: 1},
				{Key: "timestamp", Value: -1},
			},
		},
	}
	_, err := s.c.Indexes().CreateMany(ctx, indexes)
	return err
}

// Log records an audit event.
func (s *Store) Log(ctx context.Context, event Event) error {
	if event.ID.IsZero() {
		event.ID = primitive.NewObjectID()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_, err := s.c.InsertOne(ctx, event)
	return err
}

// Query retrieves audit events matching the given filter, newest first.
func (s *Store) Query(ctx context.Context, filter QueryFilter) ([]Event, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(limit).
		SetSkip(filter.Offset)

	cursor, err := s.c.Find(ctx, filter.toQuery(), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// CountByFilter returns the count of events matching the filter.
func (s *Store) CountByFilter(ctx context.Context, filter QueryFilter) (int64, error) {
	return s.c.CountDocuments(ctx, filter.toQuery())
}

// GetRecent retrieves the most recent audit events.
func (s *Store) GetRecent(ctx context.Context, limit int64) ([]Event, error) {
	return s.Query(ctx, QueryFilter{Limit: limit})
}

// GetByTarget retrieves recent events about one platform entity.
func (s *Store) GetByTarget(ctx context.Context, targetType, targetID string, limit int64) ([]Event, error) {
	return s.Query(ctx, QueryFilter{
		TargetType: targetType,
		TargetID:   targetID,
		Limit:      limit,
	})
}
