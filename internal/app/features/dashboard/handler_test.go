package dashboard

import (
	"context"
	"errors"
	"net/http"
	"testing"

	uierrors "github.com/flatfacts/admin/internal/app/features/errors"
	"github.com/flatfacts/admin/internal/app/platform"
	"github.com/flatfacts/admin/internal/testutil"
	"go.uber.org/zap"
)

type fakeAPI struct {
	metrics *platform.DashboardMetrics
	err     error
	calls   int
}

func (f *fakeAPI) Dashboard(context.Context) (*platform.DashboardMetrics, error) {
	f.calls++
	return f.metrics, f.err
}

func newTestHandler(api *fakeAPI) *Handler {
	logger := zap.NewNop()
	return NewHandler(api, uierrors.NewErrorLogger(logger), logger)
}

func TestNewHandler(t *testing.T) {
	if h := newTestHandler(&fakeAPI{}); h == nil {
		t.Fatal("NewHandler() returned nil")
	}
}

func TestServeDashboard_UnauthorizedRedirectsToSignIn(t *testing.T) {
	api := &fakeAPI{err: &platform.Error{Status: http.StatusUnauthorized}}
	h := newTestHandler(api)

	rec := testutil.NewRecorder()
	testutil.Serve(h.ServeDashboard, rec, testutil.NewRequest("GET", "/admin"))

	rec.AssertRedirect(t, "/auth/signin?callbackUrl=%2Fadmin")
}

func TestServeDashboard_FetchesOnce(t *testing.T) {
	tests := []struct {
		name string
		api  *fakeAPI
	}{
		{"success", &fakeAPI{metrics: &platform.DashboardMetrics{TotalUsers: 3}}},
		{"upstream failure", &fakeAPI{err: &platform.Error{Status: 500, Message: "boom"}}},
		{"transport failure", &fakeAPI{err: errors.New("dial tcp: refused")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(tt.api)

			rec := testutil.NewRecorder()
			testutil.Serve(h.ServeDashboard, rec, testutil.NewRequest("GET", "/admin"))

			if tt.api.calls != 1 {
				t.Errorf("Dashboard called %d times, want 1", tt.api.calls)
			}
			if loc := rec.Header().Get("Location"); loc != "" {
				t.Errorf("unexpected redirect to %q", loc)
			}
		})
	}
}

func TestSignupBars(t *testing.T) {
	got := signupBars([]platform.MonthlyCount{
		{Month: "2026-05", Count: 10},
		{Month: "2026-06", Count: 40},
		{Month: "2026-07", Count: 0},
	})
	want := []int{25, 100, 0}
	if len(got) != len(want) {
		t.Fatalf("got %d bars, want %d", len(got), len(want))
	}
	for i, b := range got {
		if b.Percent != want[i] {
			t.Errorf("bar %d (%s) percent = %d, want %d", i, b.Month, b.Percent, want[i])
		}
	}
	if len(signupBars(nil)) != 0 {
		t.Error("signupBars(nil) should be empty")
	}
}
