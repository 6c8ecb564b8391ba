package platform_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/flatfacts/admin/internal/app/platform"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *platform.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := platform.New(platform.Config{BaseURL: srv.URL}, zap.NewNop())
	if err != nil {
		t.Fatalf("platform.New: %v", err)
	}
	return c
}

func TestNew_RejectsBadBaseURL(t *testing.T) {
	for _, raw := range []string{"", "ftp://example.com", "::bad"} {
		if _, err := platform.New(platform.Config{BaseURL: raw}, zap.NewNop()); err == nil {
			t.Errorf("New(%q): expected error", raw)
		}
	}
}

func TestListUsers_SendsQueryAndCookies(t *testing.T) {
	var gotQuery url.Values
	var gotCookie string
	var gotReqID string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/admin/users" {
			t.Errorf("path = %q", r.URL.Path)
		}
		gotQuery = r.URL.Query()
		if ck, err := r.Cookie("next-auth.session-token"); err == nil {
			gotCookie = ck.Value
		}
		gotReqID = r.Header.Get("X-Request-Id")
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"users":[{"id":"u1","name":"Ann","email":"ann@example.com","isBanned":true,"createdAt":"2024-05-01T10:00:00Z"}],
			"pagination":{"total":21,"page":3,"limit":10,"totalPages":3}}`)
	})

	ctx := platform.WithSessionCookies(context.Background(), []*http.Cookie{
		{Name: "next-auth.session-token", Value: "tok"},
	})
	page, err := c.ListUsers(ctx, url.Values{"q": {"ann"}, "page": {"3"}, "limit": {"10"}})
	if err != nil {
		t.Fatalf("ListUsers: %v", err)
	}

	if gotQuery.Get("q") != "ann" || gotQuery.Get("page") != "3" || gotQuery.Get("limit") != "10" {
		t.Errorf("query = %v", gotQuery)
	}
	if gotCookie != "tok" {
		t.Errorf("session cookie = %q, want tok", gotCookie)
	}
	if gotReqID == "" {
		t.Error("expected X-Request-Id header")
	}
	if len(page.Users) != 1 || !page.Users[0].IsBanned || page.Users[0].CreatedAt.Year() != 2024 {
		t.Errorf("users = %+v", page.Users)
	}
	if page.Pagination.Total != 21 || page.Pagination.TotalPages != 3 {
		t.Errorf("pagination = %+v", page.Pagination)
	}
}

func TestBanUser_SendsReason(t *testing.T) {
	var method string
	var body map[string]string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		if r.URL.Path != "/api/admin/users/u1/ban" {
			t.Errorf("path = %q", r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		io.WriteString(w, `{"message":"User banned"}`)
	})

	msg, err := c.BanUser(context.Background(), "u1", "spam")
	if err != nil {
		t.Fatalf("BanUser: %v", err)
	}
	if method != http.MethodPost {
		t.Errorf("method = %s", method)
	}
	if body["reason"] != "spam" {
		t.Errorf("reason = %q", body["reason"])
	}
	if msg != "User banned" {
		t.Errorf("message = %q", msg)
	}
}

func TestMutations_UseDocumentedRoutes(t *testing.T) {
	type call struct{ method, path string }
	var got call
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = call{r.Method, r.URL.Path}
		w.WriteHeader(http.StatusOK)
	})
	ctx := context.Background()

	tests := []struct {
		name string
		do   func() error
		want call
	}{
		{"unban", func() error { _, err := c.UnbanUser(ctx, "u1"); return err }, call{http.MethodDelete, "/api/admin/users/u1/ban"}},
		{"delete user", func() error { _, err := c.DeleteUser(ctx, "u1"); return err }, call{http.MethodDelete, "/api/admin/users/u1"}},
		{"delete review", func() error { _, err := c.DeleteReview(ctx, "r1"); return err }, call{http.MethodDelete, "/api/reviews/r1"}},
		{"delete comment", func() error { _, err := c.DeleteComment(ctx, "c1"); return err }, call{http.MethodDelete, "/api/comments/c1"}},
		{"dismiss report", func() error { _, err := c.DismissReport(ctx, "p1"); return err }, call{http.MethodPatch, "/api/admin/reports/p1/dismiss"}},
		{"reply", func() error { _, err := c.ReplySupportMessage(ctx, "s1", "hi"); return err }, call{http.MethodPost, "/api/admin/support/s1/reply"}},
		{"notify", func() error {
			_, err := c.SendNotification(ctx, platform.Notification{Subject: "s", Message: "m", Audience: "all"})
			return err
		}, call{http.MethodPost, "/api/admin/notifications/send"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.do(); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestIDs_AreEncodedOnce(t *testing.T) {
	var gotPath, gotRaw string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath, gotRaw = r.URL.Path, r.URL.EscapedPath()
		w.WriteHeader(http.StatusOK)
	})
	ctx := context.Background()

	tests := []struct {
		id       string
		wantPath string
		wantRaw  string
	}{
		{"u1", "/api/admin/users/u1", "/api/admin/users/u1"},
		{"a b", "/api/admin/users/a b", "/api/admin/users/a%20b"},
		{"a/b", "/api/admin/users/a/b", "/api/admin/users/a%2Fb"},
		{"50%", "/api/admin/users/50%", "/api/admin/users/50%25"},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			if _, err := c.DeleteUser(ctx, tt.id); err != nil {
				t.Fatalf("DeleteUser: %v", err)
			}
			if gotPath != tt.wantPath || gotRaw != tt.wantRaw {
				t.Errorf("path = %q (raw %q), want %q (raw %q)", gotPath, gotRaw, tt.wantPath, tt.wantRaw)
			}
		})
	}
}

func TestIDs_DotAndEmptyRejectedBeforeCall(t *testing.T) {
	calls := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusOK)
	})
	ctx := context.Background()

	for _, id := range []string{"", ".", ".."} {
		if _, err := c.DeleteUser(ctx, id); !errors.Is(err, platform.ErrInvalidID) {
			t.Errorf("DeleteUser(%q) err = %v, want ErrInvalidID", id, err)
		}
		if _, err := c.BanUser(ctx, id, "spam"); !errors.Is(err, platform.ErrInvalidID) {
			t.Errorf("BanUser(%q) err = %v, want ErrInvalidID", id, err)
		}
	}
	if calls != 0 {
		t.Errorf("platform called %d times, want 0", calls)
	}
}

func TestErrorBody_BecomesMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"error":"Ban reason is required"}`)
	})

	_, err := c.BanUser(context.Background(), "u1", "")
	if err == nil {
		t.Fatal("expected error")
	}
	var pe *platform.Error
	if !errors.As(err, &pe) || pe.Status != http.StatusBadRequest {
		t.Fatalf("expected *platform.Error with 400, got %v", err)
	}
	if got := platform.Message(err, "fallback"); got != "Ban reason is required" {
		t.Errorf("Message = %q", got)
	}
}

func TestUnauthorized(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := c.Dashboard(context.Background())
	if !platform.IsUnauthorized(err) {
		t.Fatalf("IsUnauthorized = false for %v", err)
	}
	if got := platform.Message(err, "Failed to load dashboard."); got != "Failed to load dashboard." {
		t.Errorf("Message = %q", got)
	}
}

func TestUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	c, err := platform.New(platform.Config{BaseURL: base}, zap.NewNop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	_, err = c.ListReviews(context.Background(), nil)
	if !errors.Is(err, platform.ErrUnreachable) {
		t.Fatalf("expected ErrUnreachable, got %v", err)
	}
	if got := platform.Message(err, "x"); got != "Unable to reach the platform API." {
		t.Errorf("Message = %q", got)
	}
}

func TestAnalytics_SendsPeriodAndLimit(t *testing.T) {
	var q url.Values
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q = r.URL.Query()
		io.WriteString(w, `{"period":"30d","summary":{"uniqueTags":4},"topTags":[{"tag":"quiet","usageCount":9}]}`)
	})

	data, err := c.Tags(context.Background(), "30d", 15)
	if err != nil {
		t.Fatalf("Tags: %v", err)
	}
	if q.Get("period") != "30d" || q.Get("limit") != "15" {
		t.Errorf("query = %v", q)
	}
	if data.Summary.UniqueTags != 4 || len(data.TopTags) != 1 || data.TopTags[0].Tag != "quiet" {
		t.Errorf("data = %+v", data)
	}
}

func TestPing(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	if err := c.Ping(context.Background()); err != nil {
		t.Errorf("Ping with 401 should succeed, got %v", err)
	}

	down := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	if err := down.Ping(context.Background()); err == nil {
		t.Error("Ping with 502 should fail")
	}
}
