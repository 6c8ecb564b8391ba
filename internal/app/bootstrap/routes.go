// internal/app/bootstrap/routes.go
package bootstrap

import (
	"crypto/sha256"
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	activityfeature "github.com/flatfacts/admin/internal/app/features/activity"
	analyticsfeature "github.com/flatfacts/admin/internal/app/features/analytics"
	commentsfeature "github.com/flatfacts/admin/internal/app/features/comments"
	dashboardfeature "github.com/flatfacts/admin/internal/app/features/dashboard"
	errorsfeature "github.com/flatfacts/admin/internal/app/features/errors"
	healthfeature "github.com/flatfacts/admin/internal/app/features/health"
	moderationfeature "github.com/flatfacts/admin/internal/app/features/moderation"
	notificationsfeature "github.com/flatfacts/admin/internal/app/features/notifications"
	profilefeature "github.com/flatfacts/admin/internal/app/features/profile"
	reviewsfeature "github.com/flatfacts/admin/internal/app/features/reviews"
	supportfeature "github.com/flatfacts/admin/internal/app/features/support"
	usersfeature "github.com/flatfacts/admin/internal/app/features/users"
	"github.com/flatfacts/admin/internal/app/store/audit"
	"github.com/flatfacts/admin/internal/app/system/auditlog"
	"github.com/flatfacts/admin/internal/app/system/auth"
	"github.com/flatfacts/admin/internal/app/system/flash"
	"github.com/flatfacts/admin/internal/app/system/ratelimit"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/csrf"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. Every admin page lives under /admin and
// is guarded by the platform session; /health and the error pages are
// public.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(auth.Config{
		SessionKey:      appCfg.SessionKey,
		SessionName:     appCfg.SessionName,
		Domain:          appCfg.SessionDomain,
		Secure:          secure,
		PlatformCookies: appCfg.SessionCookieNames,
		SignInURL:       appCfg.SignInURL,
		SignOutURL:      appCfg.SignOutURL,
	}, deps.Platform, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	errLog := errorsfeature.NewErrorLogger(logger)

	// Audit trail: MongoDB when configured, zap always.
	var auditStore *audit.Store
	var activityStore activityfeature.Store
	if deps.AuditMongoDatabase != nil {
		auditStore = audit.New(deps.AuditMongoDatabase)
		activityStore = auditStore
	}
	auditLog := auditlog.New(auditStore, logger, auditlog.Config{Admin: appCfg.AuditLogAdmin})

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(csrfProtect(appCfg.SessionKey, secure))
	r.Use(flash.Middleware)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.Platform, deps.AuditMongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Error pages
	errorsHandler := errorsfeature.NewHandler()
	r.Get("/forbidden", errorsHandler.Forbidden)
	r.Get("/unauthorized", errorsHandler.Unauthorized)

	r.Post("/signout", sessionMgr.HandleSignOut)
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
	})

	pc := deps.Platform
	r.Route("/admin", func(ar chi.Router) {
		ar.Mount("/", dashboardfeature.Routes(dashboardfeature.NewHandler(pc, errLog, logger), sessionMgr))

		// Moderation
		ar.Mount("/moderation", moderationfeature.Routes(moderationfeature.NewHandler(pc, errLog, auditLog, logger), sessionMgr))

		// Users and content
		ar.Mount("/users", usersfeature.Routes(usersfeature.NewHandler(pc, errLog, auditLog, logger), sessionMgr))
		ar.Mount("/reviews", reviewsfeature.Routes(reviewsfeature.NewHandler(pc, errLog, auditLog, logger), sessionMgr))
		ar.Mount("/comments", commentsfeature.Routes(commentsfeature.NewHandler(pc, errLog, auditLog, logger), sessionMgr))

		// Communication
		ar.Mount("/support", supportfeature.Routes(supportfeature.NewHandler(pc, errLog, auditLog, logger), sessionMgr))
		notifyHandler := notificationsfeature.NewHandler(pc, errLog, auditLog, logger)
		notifyHandler.Limiter = ratelimit.New(appCfg.NotifyInterval, appCfg.NotifyBurst)
		ar.Mount("/notifications", notificationsfeature.Routes(notifyHandler, sessionMgr))

		// Analytics
		ar.Mount("/analytics", analyticsfeature.Routes(analyticsfeature.NewHandler(pc, errLog, logger), sessionMgr))

		// The admin's own account and the dashboard's activity log
		ar.Mount("/profile", profilefeature.Routes(profilefeature.NewHandler(pc, errLog, auditLog, logger), sessionMgr))
		ar.Mount("/activity", activityfeature.Routes(activityfeature.NewHandler(activityStore, errLog, logger), sessionMgr))
	})

	return r, nil
}

// csrfProtect guards every POST form. The key is derived from the session
// key so one secret configures both. Plain-HTTP requests are marked as such
// outside production so the Referer check does not demand https.
func csrfProtect(sessionKey string, secure bool) func(http.Handler) http.Handler {
	key := sha256.Sum256([]byte("csrf:" + sessionKey))
	protect := csrf.Protect(key[:],
		csrf.Secure(secure),
		csrf.Path("/"),
		csrf.CookieName("flatfacts_csrf"),
		csrf.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			errorsfeature.RenderForbidden(w, r, "Your form expired. Go back, reload the page and try again.", "/admin")
		})),
	)
	return func(next http.Handler) http.Handler {
		guarded := protect(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !secure && r.TLS == nil {
				r = csrf.PlaintextHTTPRequest(r)
			}
			guarded.ServeHTTP(w, r)
		})
	}
}
