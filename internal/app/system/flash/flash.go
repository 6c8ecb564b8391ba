// Package flash carries one-shot success and error messages across the
// redirect that follows every row action.
//
// An action handler calls Success or Error and redirects with 303; the
// Middleware pops the messages on the next request and exposes them to
// the view model through FromRequest.
package flash

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

const (
	successKey = "flash_success"
	errorKey   = "flash_error"
)

// Messages are the flashes popped for the current request.
type Messages struct {
	Success string
	Error   string
}

// Empty reports whether there is nothing to show.
func (m Messages) Empty() bool {
	return m.Success == "" && m.Error == ""
}

var (
	store      *sessions.CookieStore
	cookieName = "flatfacts-admin-flash"
	log        = zap.NewNop()
)

type ctxKey struct{}

// Init configures the cookie store. Until it is called, Success and Error
// are no-ops and Middleware passes requests through untouched.
func Init(key, name string, secure bool, logger *zap.Logger) error {
	if key == "" {
		return fmt.Errorf("flash: session key is empty")
	}
	s := sessions.NewCookieStore([]byte(key))
	s.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   300,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	store = s
	if name != "" {
		cookieName = name + "-flash"
	}
	if logger != nil {
		log = logger
	}
	return nil
}

// Success queues a success message for the next page.
func Success(w http.ResponseWriter, r *http.Request, msg string) {
	add(w, r, successKey, msg)
}

// Error queues an error message for the next page.
func Error(w http.ResponseWriter, r *http.Request, msg string) {
	add(w, r, errorKey, msg)
}

func add(w http.ResponseWriter, r *http.Request, key, msg string) {
	if store == nil || msg == "" {
		return
	}
	sess := session(r)
	sess.AddFlash(msg, key)
	if err := sess.Save(r, w); err != nil {
		log.Warn("flash save failed", zap.Error(err))
	}
}

// session returns the flash session, starting a fresh one when the cookie
// was signed with an old key or is otherwise unreadable.
func session(r *http.Request) *sessions.Session {
	sess, err := store.Get(r, cookieName)
	if err != nil {
		var se securecookie.Error
		if errors.As(err, &se) && se.IsDecode() {
			log.Debug("discarding unreadable flash cookie", zap.Error(err))
		} else {
			log.Warn("flash cookie read failed", zap.Error(err))
		}
		sess, _ = store.New(r, cookieName)
	}
	return sess
}

// Middleware pops pending flashes into the request context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			next.ServeHTTP(w, r)
			return
		}
		if _, err := r.Cookie(cookieName); err != nil {
			next.ServeHTTP(w, r)
			return
		}

		sess := session(r)
		m := Messages{
			Success: last(sess.Flashes(successKey)),
			Error:   last(sess.Flashes(errorKey)),
		}
		if err := sess.Save(r, w); err != nil {
			log.Warn("flash clear failed", zap.Error(err))
		}
		next.ServeHTTP(w, r.WithContext(WithMessages(r.Context(), m)))
	})
}

// WithMessages stores m in ctx. Handler tests use it to fake a redirect.
func WithMessages(ctx context.Context, m Messages) context.Context {
	return context.WithValue(ctx, ctxKey{}, m)
}

// FromRequest returns the flashes popped by Middleware.
func FromRequest(r *http.Request) Messages {
	m, _ := r.Context().Value(ctxKey{}).(Messages)
	return m
}

func last(vals []interface{}) string {
	for i := len(vals) - 1; i >= 0; i-- {
		if s, ok := vals[i].(string); ok && s != "" {
			return s
		}
	}
	return ""
}
