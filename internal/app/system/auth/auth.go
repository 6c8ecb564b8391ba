// Package auth guards the dashboard with the admin's platform session.
//
// Sign-in belongs to the platform's identity provider. The dashboard only
// checks that the browser carries a platform session cookie, asks the
// platform who that session belongs to, and remembers the answer in its own
// signed cookie until the platform cookie changes.
package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/flatfacts/admin/internal/app/platform"
	"github.com/flatfacts/admin/internal/app/system/timeouts"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

const (
	fingerprintKey = "platform_fp"
	adminIDKey     = "admin_id"
	adminNameKey   = "admin_name"
	adminEmailKey  = "admin_email"
)

// Admin is the signed-in platform administrator.
type Admin struct {
	ID    string
	Name  string
	Email string
}

// DisplayName is the name shown in the header.
func (a *Admin) DisplayName() string {
	switch {
	case a == nil:
		return ""
	case a.Name != "":
		return a.Name
	case a.Email != "":
		return a.Email
	default:
		return "Admin User"
	}
}

// SessionFetcher resolves the forwarded cookies to a platform identity.
type SessionFetcher interface {
	Session(ctx context.Context) (*platform.Session, error)
}

// Config configures a SessionManager.
type Config struct {
	SessionKey  string
	SessionName string
	Domain      string
	Secure      bool

	// PlatformCookies are the platform cookie names forwarded upstream.
	PlatformCookies []string
	SignInURL       string
	SignOutURL      string
}

// SessionManager implements the admin guard.
type SessionManager struct {
	store           *sessions.CookieStore
	name            string
	platformCookies []string
	signInURL       string
	signOutURL      string
	fetcher         SessionFetcher
	log             *zap.Logger
}

// NewSessionManager builds a SessionManager.
func NewSessionManager(cfg Config, fetcher SessionFetcher, logger *zap.Logger) (*SessionManager, error) {
	if cfg.SessionKey == "" {
		return nil, fmt.Errorf("session key is empty; provide ≥32 random chars")
	}
	if len(cfg.SessionKey) < 32 {
		logger.Warn("session key is short; 32+ chars recommended",
			zap.Int("length", len(cfg.SessionKey)))
	}
	if len(cfg.PlatformCookies) == 0 {
		return nil, fmt.Errorf("no platform session cookie names configured")
	}

	store := sessions.NewCookieStore([]byte(cfg.SessionKey))
	store.Options = &sessions.Options{
		Domain:   cfg.Domain,
		Path:     "/",
		Secure:   cfg.Secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	name := cfg.SessionName
	if name == "" {
		name = "flatfacts-admin"
	}
	signIn := cfg.SignInURL
	if signIn == "" {
		signIn = "/auth/signin"
	}

	return &SessionManager{
		store:           store,
		name:            name,
		platformCookies: cfg.PlatformCookies,
		signInURL:       signIn,
		signOutURL:      cfg.SignOutURL,
		fetcher:         fetcher,
		log:             logger,
	}, nil
}

type ctxKey string

const (
	adminKey     ctxKey = "admin"
	signInURLKey ctxKey = "signin_url"
)

// CurrentAdmin returns the admin placed in context by RequireAdmin.
func CurrentAdmin(r *http.Request) (*Admin, bool) {
	a, ok := r.Context().Value(adminKey).(*Admin)
	return a, ok && a != nil
}

// WithTestAdmin injects an admin for handler tests.
func WithTestAdmin(r *http.Request, a *Admin) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), adminKey, a))
}

// RequireAdmin lets a request through only when the platform confirms an
// admin session. Everyone else goes to sign-in.
func (sm *SessionManager) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r = r.WithContext(context.WithValue(r.Context(), signInURLKey, sm.signInURL))

		cookies := sm.collectPlatformCookies(r)
		if len(cookies) == 0 {
			RedirectToSignIn(w, r)
			return
		}

		ctx := platform.WithSessionCookies(r.Context(), cookies)
		r = r.WithContext(ctx)

		fp := fingerprint(cookies)
		sess, err := sm.store.Get(r, sm.name)
		if err != nil {
			sm.log.Debug("starting new admin session", zap.Error(err))
		}

		if cached, _ := sess.Values[fingerprintKey].(string); cached == fp {
			a := &Admin{
				ID:    getString(sess, adminIDKey),
				Name:  getString(sess, adminNameKey),
				Email: getString(sess, adminEmailKey),
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, adminKey, a)))
			return
		}

		a, err := sm.resolve(ctx)
		if err != nil {
			if platform.IsUnauthorized(err) || errors.Is(err, errNotAdmin) {
				sm.clear(w, r, sess)
				RedirectToSignIn(w, r)
				return
			}
			sm.log.Error("session lookup failed", zap.Error(err))
			http.Error(w, platform.Message(err, "Unable to verify your session."), http.StatusBadGateway)
			return
		}

		sess.Values[fingerprintKey] = fp
		sess.Values[adminIDKey] = a.ID
		sess.Values[adminNameKey] = a.Name
		sess.Values[adminEmailKey] = a.Email
		if err := sess.Save(r, w); err != nil {
			sm.log.Warn("admin session save failed", zap.Error(err))
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, adminKey, a)))
	})
}

var errNotAdmin = errors.New("session is not an admin")

func (sm *SessionManager) resolve(ctx context.Context) (*Admin, error) {
	ctx, cancel := timeouts.WithTimeout(ctx, timeouts.Read(), sm.log, "session lookup")
	defer cancel()

	s, err := sm.fetcher.Session(ctx)
	if err != nil {
		return nil, err
	}
	if s.User == nil || !s.User.IsAdmin {
		return nil, errNotAdmin
	}
	return &Admin{ID: s.User.ID, Name: s.User.Name, Email: s.User.Email}, nil
}

func (sm *SessionManager) clear(w http.ResponseWriter, r *http.Request, sess *sessions.Session) {
	if sess.IsNew {
		return
	}
	sess.Options.MaxAge = -1
	if err := sess.Save(r, w); err != nil {
		sm.log.Warn("admin session clear failed", zap.Error(err))
	}
}

// HandleSignOut drops the dashboard's cookie and hands off to the platform's
// sign-out endpoint.
func (sm *SessionManager) HandleSignOut(w http.ResponseWriter, r *http.Request) {
	sess, _ := sm.store.Get(r, sm.name)
	sm.clear(w, r, sess)

	dest := sm.signOutURL
	if dest == "" {
		dest = sm.signInURL
	}
	http.Redirect(w, r, dest, http.StatusSeeOther)
}

func (sm *SessionManager) collectPlatformCookies(r *http.Request) []*http.Cookie {
	var out []*http.Cookie
	for _, name := range sm.platformCookies {
		if c, err := r.Cookie(name); err == nil && c.Value != "" {
			out = append(out, c)
		}
	}
	// Chunked session tokens arrive as name.0, name.1, ...
	for _, c := range r.Cookies() {
		for _, name := range sm.platformCookies {
			if strings.HasPrefix(c.Name, name+".") && c.Value != "" {
				out = append(out, c)
			}
		}
	}
	return out
}

// SignInURL returns the sign-in address with the current page as callback.
func SignInURL(r *http.Request) string {
	base, _ := r.Context().Value(signInURLKey).(string)
	if base == "" {
		base = "/auth/signin"
	}
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return base + sep + "callbackUrl=" + url.QueryEscape(callbackPath(r))
}

// RedirectToSignIn sends the browser to sign-in.
//   - HTMX: HX-Redirect so the whole page navigates
//   - HTML: 303 redirect
func RedirectToSignIn(w http.ResponseWriter, r *http.Request) {
	dest := SignInURL(r)
	if r.Header.Get("HX-Request") == "true" {
		w.Header().Set("HX-Redirect", dest)
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	http.Redirect(w, r, dest, http.StatusSeeOther)
}

// callbackPath is the page to come back to. After a failed POST that is the
// list the form was submitted from, not the action URL.
func callbackPath(r *http.Request) string {
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		return r.URL.RequestURI()
	}
	if ret := strings.TrimSpace(r.FormValue("return")); strings.HasPrefix(ret, "/") && !strings.HasPrefix(ret, "//") {
		return ret
	}
	return "/admin"
}

// fingerprint identifies a set of platform cookies without storing them.
func fingerprint(cookies []*http.Cookie) string {
	h := sha256.New()
	for _, c := range cookies {
		h.Write([]byte(c.Name))
		h.Write([]byte{0})
		h.Write([]byte(c.Value))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil)[:16])
}

func getString(s *sessions.Session, key string) string {
	if v, ok := s.Values[key].(string); ok {
		return v
	}
	return ""
}
