package comments_test

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/flatfacts/admin/internal/app/features/comments"
	uierrors "github.com/flatfacts/admin/internal/app/features/errors"
	"github.com/flatfacts/admin/internal/app/platform"
	"github.com/flatfacts/admin/internal/testutil"
	"go.uber.org/zap"
)

type fakeAPI struct {
	total   int64
	listErr error
	delErr  error

	listCalls   int
	lastQuery   url.Values
	deleteCalls int
}

func (f *fakeAPI) ListComments(_ context.Context, q url.Values) (*platform.CommentPage, error) {
	f.listCalls++
	f.lastQuery = q
	if f.listErr != nil {
		return nil, f.listErr
	}
	return &platform.CommentPage{Pagination: platform.Pagination{Total: f.total}}, nil
}

func (f *fakeAPI) DeleteComment(context.Context, string) (string, error) {
	f.deleteCalls++
	return "", f.delErr
}

func newHandler(api *fakeAPI) *comments.Handler {
	logger := zap.NewNop()
	return comments.NewHandler(api, uierrors.NewErrorLogger(logger), nil, logger)
}

func TestServeList_ForwardsUserAndReviewFilters(t *testing.T) {
	api := &fakeAPI{total: 30}
	h := newHandler(api)

	rec := testutil.NewRecorder()
	testutil.Serve(h.ServeList, rec, testutil.NewRequest("GET", "/admin/comments?q=loud&userId=u1&reviewId=r2&page=2"))

	want := url.Values{"q": {"loud"}, "userId": {"u1"}, "reviewId": {"r2"}, "page": {"2"}, "limit": {"10"}}
	if api.listCalls != 1 {
		t.Fatalf("ListComments called %d times, want 1", api.listCalls)
	}
	if api.lastQuery.Encode() != want.Encode() {
		t.Errorf("query = %q, want %q", api.lastQuery.Encode(), want.Encode())
	}
}

func TestServeList_EmptyListIsNotOutOfRange(t *testing.T) {
	api := &fakeAPI{}
	h := newHandler(api)

	rec := testutil.NewRecorder()
	testutil.Serve(h.ServeList, rec, testutil.NewRequest("GET", "/admin/comments"))

	if rec.Code == http.StatusSeeOther {
		t.Errorf("empty first page should render, got redirect to %q", rec.Header().Get("Location"))
	}
}

func TestHandleDelete(t *testing.T) {
	const ret = "/admin/comments?page=2&limit=10&userId=u1"

	tests := []struct {
		name    string
		delErr  error
		wantLoc string
	}{
		{"success", nil, ret},
		{"failure keeps state", &platform.Error{Status: 500, Message: "Failed to delete comment"}, ret},
		{"unauthorized", &platform.Error{Status: 401}, "/auth/signin?callbackUrl=" + url.QueryEscape(ret)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeAPI{delErr: tt.delErr}
			h := newHandler(api)

			req := testutil.WithChiURLParam(
				testutil.NewFormRequest("/admin/comments/c1/delete", url.Values{"return": {ret}}), "id", "c1")
			rec := testutil.NewRecorder()
			testutil.Serve(h.HandleDelete, rec, req)

			if api.deleteCalls != 1 {
				t.Errorf("DeleteComment called %d times, want 1", api.deleteCalls)
			}
			rec.AssertRedirect(t, tt.wantLoc)
		})
	}
}
