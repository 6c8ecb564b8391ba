package support_test

import (
	"context"
	"net/url"
	"strings"
	"testing"

	uierrors "github.com/flatfacts/admin/internal/app/features/errors"
	"github.com/flatfacts/admin/internal/app/features/support"
	"github.com/flatfacts/admin/internal/app/platform"
	"github.com/flatfacts/admin/internal/testutil"
	"go.uber.org/zap"
)

type fakeAPI struct {
	replyErr error

	listCalls  int
	replyCalls int
	lastReply  string
}

func (f *fakeAPI) ListSupportMessages(context.Context, url.Values) (*platform.SupportPage, error) {
	f.listCalls++
	return &platform.SupportPage{}, nil
}

func (f *fakeAPI) ReplySupportMessage(_ context.Context, _, reply string) (string, error) {
	f.replyCalls++
	f.lastReply = reply
	return "", f.replyErr
}

func newHandler(api *fakeAPI) *support.Handler {
	logger := zap.NewNop()
	return support.NewHandler(api, uierrors.NewErrorLogger(logger), nil, logger)
}

func TestHandleReply(t *testing.T) {
	const ret = "/admin/support?limit=10&page=2"

	tests := []struct {
		name       string
		reply      string
		wantCalls  int
		wantSent   string
		wantLoc    string
		replyError error
	}{
		{"empty reply refused", "   ", 0, "", ret, nil},
		{"markup only refused", "<script>alert(1)</script>", 0, "", ret, nil},
		{"plain reply sent", "  We fixed it.  ", 1, "We fixed it.", ret, nil},
		{"sent as typed", `We'll fix it & say "thanks"`, 1, `We'll fix it & say "thanks"`, ret, nil},
		{"limit counts typed characters", strings.Repeat("&", 5000), 1, strings.Repeat("&", 5000), ret, nil},
		{"over limit refused", strings.Repeat("a", 5001), 0, "", ret, nil},
		{"platform failure", "Thanks", 1, "Thanks", ret, &platform.Error{Status: 502, Message: "Mailer down"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeAPI{replyErr: tt.replyError}
			h := newHandler(api)

			form := url.Values{"reply": {tt.reply}, "return": {ret}, "email": {"ann@example.com"}}
			req := testutil.WithChiURLParam(testutil.NewFormRequest("/admin/support/s1/reply", form), "id", "s1")
			rec := testutil.NewRecorder()
			testutil.Serve(h.HandleReply, rec, req)

			if api.replyCalls != tt.wantCalls {
				t.Errorf("ReplySupportMessage called %d times, want %d", api.replyCalls, tt.wantCalls)
			}
			if api.lastReply != tt.wantSent {
				t.Errorf("sent %q, want %q", api.lastReply, tt.wantSent)
			}
			rec.AssertRedirect(t, tt.wantLoc)
		})
	}
}

func TestServeList_SingleFetch(t *testing.T) {
	api := &fakeAPI{}
	h := newHandler(api)

	rec := testutil.NewRecorder()
	testutil.Serve(h.ServeList, rec, testutil.NewRequest("GET", "/admin/support?reply=s1"))

	if api.listCalls != 1 {
		t.Errorf("ListSupportMessages called %d times, want 1", api.listCalls)
	}
}
