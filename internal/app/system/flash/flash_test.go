package flash_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/flatfacts/admin/internal/app/system/flash"
	"go.uber.org/zap"
)

func initStore(t *testing.T) {
	t.Helper()
	if err := flash.Init("test-session-key-must-be-32-chars-long", "test", false, zap.NewNop()); err != nil {
		t.Fatalf("Init: %v", err)
	}
}

// popThrough sends a request carrying cookies through Middleware and
// returns what the handler saw plus any cookies set on the way out.
func popThrough(t *testing.T, cookies []*http.Cookie) (flash.Messages, []*http.Cookie) {
	t.Helper()
	var seen flash.Messages
	h := flash.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = flash.FromRequest(r)
	}))
	req := httptest.NewRequest("GET", "/admin/users", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return seen, rec.Result().Cookies()
}

func TestFlash_RoundTrip(t *testing.T) {
	initStore(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/admin/users/u1/ban", nil)
	flash.Success(rec, req, "User banned successfully!")

	set := rec.Result().Cookies()
	if len(set) == 0 {
		t.Fatal("expected a flash cookie")
	}

	got, cleared := popThrough(t, set)
	if got.Success != "User banned successfully!" {
		t.Errorf("Success = %q", got.Success)
	}
	if got.Error != "" {
		t.Errorf("Error = %q, want empty", got.Error)
	}

	again, _ := popThrough(t, cleared)
	if !again.Empty() {
		t.Errorf("flash shown twice: %+v", again)
	}
}

func TestFlash_Error(t *testing.T) {
	initStore(t)

	rec := httptest.NewRecorder()
	flash.Error(rec, httptest.NewRequest("POST", "/", nil), "Ban reason is required")

	got, _ := popThrough(t, rec.Result().Cookies())
	if got.Error != "Ban reason is required" {
		t.Errorf("Error = %q", got.Error)
	}
}

func TestMiddleware_NoCookie(t *testing.T) {
	initStore(t)

	got, set := popThrough(t, nil)
	if !got.Empty() {
		t.Errorf("expected no messages, got %+v", got)
	}
	if len(set) != 0 {
		t.Errorf("expected no cookies to be set, got %d", len(set))
	}
}

func TestMiddleware_TamperedCookie(t *testing.T) {
	initStore(t)

	got, _ := popThrough(t, []*http.Cookie{{Name: "test-flash", Value: "not-a-valid-cookie"}})
	if !got.Empty() {
		t.Errorf("expected tampered cookie to be ignored, got %+v", got)
	}
}

func TestInit_EmptyKey(t *testing.T) {
	if err := flash.Init("", "x", false, nil); err == nil {
		t.Error("expected error for empty key")
	}
}
