package moderation_test

import (
	"context"
	"net/url"
	"testing"

	uierrors "github.com/flatfacts/admin/internal/app/features/errors"
	"github.com/flatfacts/admin/internal/app/features/moderation"
	"github.com/flatfacts/admin/internal/app/platform"
	"github.com/flatfacts/admin/internal/testutil"
	"go.uber.org/zap"
)

type fakeAPI struct {
	total  int64
	actErr error

	listCalls    int
	dismissCalls int
	dismissedID  string
	deleteCalls  int
	deletedID    string
}

func (f *fakeAPI) ListReports(context.Context, url.Values) (*platform.ReportPage, error) {
	f.listCalls++
	return &platform.ReportPage{Pagination: platform.Pagination{Total: f.total}}, nil
}

func (f *fakeAPI) DismissReport(_ context.Context, id string) (string, error) {
	f.dismissCalls++
	f.dismissedID = id
	return "Report dismissed.", f.actErr
}

func (f *fakeAPI) DeleteReview(_ context.Context, id string) (string, error) {
	f.deleteCalls++
	f.deletedID = id
	return "", f.actErr
}

func newHandler(api *fakeAPI) *moderation.Handler {
	logger := zap.NewNop()
	return moderation.NewHandler(api, uierrors.NewErrorLogger(logger), nil, logger)
}

func TestServeFlagged_OutOfRangeRedirects(t *testing.T) {
	api := &fakeAPI{total: 4}
	h := newHandler(api)

	rec := testutil.NewRecorder()
	testutil.Serve(h.ServeFlagged, rec, testutil.NewRequest("GET", "/admin/moderation/flagged-reviews?page=3&limit=5"))

	if api.listCalls != 1 {
		t.Errorf("ListReports called %d times, want 1", api.listCalls)
	}
	rec.AssertRedirect(t, "/admin/moderation/flagged-reviews?limit=5&page=1")
}

func TestHandleDismiss(t *testing.T) {
	const ret = "/admin/moderation/flagged-reviews?limit=5&page=2"
	api := &fakeAPI{}
	h := newHandler(api)

	req := testutil.WithChiURLParam(
		testutil.NewFormRequest("/admin/moderation/flagged-reviews/rep1/dismiss", url.Values{"return": {ret}}), "id", "rep1")
	rec := testutil.NewRecorder()
	testutil.Serve(h.HandleDismiss, rec, req)

	if api.dismissCalls != 1 || api.dismissedID != "rep1" {
		t.Errorf("DismissReport calls=%d id=%q", api.dismissCalls, api.dismissedID)
	}
	if api.deleteCalls != 0 {
		t.Errorf("dismiss must not delete the review")
	}
	rec.AssertRedirect(t, ret)
}

func TestHandleDeleteReview_UsesReviewID(t *testing.T) {
	api := &fakeAPI{actErr: &platform.Error{Status: 500, Message: "Failed"}}
	h := newHandler(api)

	req := testutil.WithChiURLParam(
		testutil.NewFormRequest("/admin/moderation/flagged-reviews/reviews/r7/delete", url.Values{"return": {"/admin/users"}}), "reviewID", "r7")
	rec := testutil.NewRecorder()
	testutil.Serve(h.HandleDeleteReview, rec, req)

	if api.deleteCalls != 1 || api.deletedID != "r7" {
		t.Errorf("DeleteReview calls=%d id=%q", api.deleteCalls, api.deletedID)
	}
	// a return outside the queue falls back to the queue itself
	rec.AssertRedirect(t, "/admin/moderation/flagged-reviews")
}
