package audit_test

import (
	"testing"
	"time"

	"github.com/flatfacts/admin/internal/app/store/audit"
	"github.com/flatfacts/admin/internal/testutil"
)

func TestStore_Log(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := audit.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	event := audit.Event{
		Category:   audit.CategoryAdmin,
		EventType:  audit.EventUserBanned,
		ActorEmail: "admin@test.com",
		TargetType: audit.TargetUser,
		TargetID:   "u1",
		IP:         "192.168.1.1",
		UserAgent:  "TestBrowser/1.0",
		Success:    true,
		Details:    map[string]string{"reason": "spam"},
	}
	if err := store.Log(ctx, event); err != nil {
		t.Fatalf("Log failed: %v", err)
	}

	events, err := store.GetByTarget(ctx, audit.TargetUser, "u1", 10)
	if err != nil {
		t.Fatalf("GetByTarget failed: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Details["reason"] != "spam" {
		t.Errorf("details = %v, want reason=spam", events[0].Details)
	}
}

func TestStore_Log_AutoGeneratesIDAndTimestamp(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := audit.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	before := time.Now().Add(-time.Second)
	if err := store.Log(ctx, audit.Event{Category: audit.CategoryAdmin, EventType: audit.EventReviewDeleted, Success: true}); err != nil {
		t.Fatalf("Log failed: %v", err)
	}

	events, err := store.GetRecent(ctx, 10)
	if err != nil {
		t.Fatalf("GetRecent failed: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].ID.IsZero() {
		t.Error("expected ID to be auto-generated")
	}
	if events[0].Timestamp.Before(before) {
		t.Errorf("timestamp %v not set to now", events[0].Timestamp)
	}
}

func TestStore_Query_NewestFirstWithPaging(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := audit.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	seeded := testutil.NewFixtures(t, db).CreateAuditEvents(ctx, audit.EventUserDeleted, 7)

	page2, err := store.Query(ctx, audit.QueryFilter{Limit: 5, Offset: 5})
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(page2) != 2 {
		t.Fatalf("page 2 has %d events, want 2", len(page2))
	}
	// Oldest two, newest first.
	if page2[0].ID != seeded[1].ID || page2[1].ID != seeded[0].ID {
		t.Errorf("page 2 order wrong: got %v, %v", page2[0].ID, page2[1].ID)
	}
}

func TestStore_CountByFilter(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := audit.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	fx.CreateAuditEvents(ctx, audit.EventUserBanned, 3)    // 2 success, 1 failure
	fx.CreateAuditEvents(ctx, audit.EventReviewDeleted, 4) // 2 success, 2 failure

	tests := []struct {
		name   string
		filter audit.QueryFilter
		want   int64
	}{
		{"all", audit.QueryFilter{}, 7},
		{"by type", audit.QueryFilter{EventType: audit.EventUserBanned}, 3},
		{"successes", audit.QueryFilter{Outcome: audit.OutcomeSuccess}, 4},
		{"failures of type", audit.QueryFilter{EventType: audit.EventReviewDeleted, Outcome: audit.OutcomeFailure}, 2},
		{"unknown outcome ignored", audit.QueryFilter{Outcome: "maybe"}, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := store.CountByFilter(ctx, tt.filter)
			if err != nil {
				t.Fatalf("CountByFilter failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("CountByFilter = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestStore_EnsureIndexes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := audit.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := store.EnsureIndexes(ctx); err != nil {
		t.Fatalf("EnsureIndexes failed: %v", err)
	}
	// Idempotent.
	if err := store.EnsureIndexes(ctx); err != nil {
		t.Fatalf("second EnsureIndexes failed: %v", err)
	}
}
