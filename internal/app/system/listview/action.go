package listview

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/flatfacts/admin/internal/app/platform"
	"github.com/flatfacts/admin/internal/app/system/auth"
	"github.com/flatfacts/admin/internal/app/system/flash"
	"github.com/flatfacts/admin/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// Action is one row action: a single mutating platform call followed by a
// redirect back to the list.
type Action struct {
	// Name identifies the action in logs ("ban user").
	Name string
	// Return is the list URL, with its state, to come back to.
	Return string
	// Success is shown when the platform answers without a message.
	Success string
	// Failure is shown when the platform fails without a message.
	Failure string
	// Do performs the mutation and returns the platform's message.
	Do func(ctx context.Context) (string, error)
	// Audit, when set, is told the outcome.
	Audit func(ctx context.Context, err error)
	// Removes marks actions that take the row off the list. When the form
	// says it was the only row on its page, success returns to the page
	// before so the one re-fetch lands on a page that still exists.
	Removes bool
}

// Act runs a. Success flashes a message and answers 303 to a.Return, which
// is the one re-fetch that shows the change. Failure flashes the error and
// answers 303 to the same unchanged URL. A 401 goes to sign-in instead.
func Act(w http.ResponseWriter, r *http.Request, log *zap.Logger, a Action) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Write(), log, a.Name)
	defer cancel()

	msg, err := a.Do(ctx)
	if a.Audit != nil {
		a.Audit(r.Context(), err)
	}

	if platform.IsUnauthorized(err) {
		auth.RedirectToSignIn(w, r)
		return
	}
	if err != nil {
		log.Warn("row action failed",
			zap.String("action", a.Name),
			zap.Error(err))
		flash.Error(w, r, platform.Message(err, a.Failure))
		http.Redirect(w, r, a.Return, http.StatusSeeOther)
		return
	}

	if msg == "" {
		msg = a.Success
	}
	ret := a.Return
	if a.Removes && r.FormValue("page_rows") == "1" {
		ret = previousPage(ret)
	}
	flash.Success(w, r, msg)
	http.Redirect(w, r, ret, http.StatusSeeOther)
}

// previousPage steps ret's page back by one. Page 1 and URLs without a
// page are returned unchanged.
func previousPage(ret string) string {
	u, err := url.Parse(ret)
	if err != nil {
		return ret
	}
	q := u.Query()
	p, err := strconv.Atoi(q.Get("page"))
	if err != nil || p <= 1 {
		return ret
	}
	q.Set("page", strconv.Itoa(p-1))
	u.RawQuery = q.Encode()
	return u.String()
}

// Reject refuses an action before any platform call, e.g. a ban without a
// reason. The list comes back unchanged with msg in its alert region.
func Reject(w http.ResponseWriter, r *http.Request, ret, msg string) {
	flash.Error(w, r, msg)
	http.Redirect(w, r, ret, http.StatusSeeOther)
}

// HandleLoadError settles the outcome of Load for a page handler.
//
//   - out of range: 303 to the clamped URL; handled
//   - 401: redirect to sign-in; handled
//   - other errors: the alert text to render with the page; not handled
func HandleLoadError[T any](w http.ResponseWriter, r *http.Request, st State[T], err error, basePath, fallback string) (alert string, handled bool) {
	switch {
	case err == nil:
		return "", false
	case errors.Is(err, ErrOutOfRange):
		http.Redirect(w, r, st.Request.URL(basePath), http.StatusSeeOther)
		return "", true
	case platform.IsUnauthorized(err):
		auth.RedirectToSignIn(w, r)
		return "", true
	default:
		return platform.Message(err, fallback), false
	}
}
