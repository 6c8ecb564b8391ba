package testutil

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"github.com/flatfacts/admin/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx, _ := r.Context().Value(chi.RouteCtxKey).(*chi.Context)
	if rctx == nil {
		rctx = chi.NewRouteContext()
	}
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// TestAdmin returns the admin used by handler tests.
func TestAdmin() *auth.Admin {
	return &auth.Admin{
		ID:    "admin-1",
		Name:  "Test Admin",
		Email: "admin@test.com",
	}
}

// WithAdmin adds an admin to the request context for testing guarded handlers.
// This bypasses the session middleware and injects the admin directly.
func WithAdmin(r *http.Request, a *auth.Admin) *http.Request {
	return auth.WithTestAdmin(r, a)
}

// NewRequest creates a GET request with the test admin in context.
func NewRequest(method, target string) *http.Request {
	return WithAdmin(httptest.NewRequest(method, target, nil), TestAdmin())
}

// NewFormRequest creates a form POST with the test admin in context.
func NewFormRequest(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return WithAdmin(req, TestAdmin())
}

// ResponseRecorder wraps httptest.ResponseRecorder with helper methods.
type ResponseRecorder struct {
	*httptest.ResponseRecorder
}

// NewRecorder creates a new ResponseRecorder.
func NewRecorder() *ResponseRecorder {
	return &ResponseRecorder{httptest.NewRecorder()}
}

// AssertStatus checks the response status code.
func (r *ResponseRecorder) AssertStatus(t interface{ Errorf(string, ...any) }, expected int) {
	if r.Code != expected {
		t.Errorf("status code: got %d, want %d", r.Code, expected)
	}
}

// AssertRedirect checks for a redirect to the expected location.
func (r *ResponseRecorder) AssertRedirect(t interface{ Errorf(string, ...any) }, expectedLocation string) {
	if r.Code != http.StatusSeeOther && r.Code != http.StatusFound && r.Code != http.StatusMovedPermanently {
		t.Errorf("expected redirect status, got %d", r.Code)
	}
	location := r.Header().Get("Location")
	if location != expectedLocation {
		t.Errorf("redirect location: got %q, want %q", location, expectedLocation)
	}
}

// AssertSignInRedirect checks for a redirect to the sign-in page.
func (r *ResponseRecorder) AssertSignInRedirect(t interface{ Errorf(string, ...any) }) {
	if r.Code != http.StatusSeeOther {
		t.Errorf("expected 303 to sign-in, got %d", r.Code)
	}
	if loc := r.Header().Get("Location"); !strings.Contains(loc, "callbackUrl=") {
		t.Errorf("redirect location %q is not a sign-in URL", loc)
	}
}

// AssertContains checks if the response body contains the expected string.
func (r *ResponseRecorder) AssertContains(t interface{ Errorf(string, ...any) }, expected string) {
	if !strings.Contains(r.Body.String(), expected) {
		t.Errorf("response body does not contain %q", expected)
	}
}

// Serve runs h, swallowing a panic from template rendering; handler tests
// run without a booted template engine.
func Serve(h http.HandlerFunc, w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			// Template rendering may panic in tests
		}
	}()
	h(w, r)
}
