// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/flatfacts/admin/internal/app/system/auditlog"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for the admin dashboard.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: platform_base_url, session_name, etc.
//   - Environment variables: FLATFACTS_PLATFORM_BASE_URL, FLATFACTS_SESSION_NAME, etc.
//   - Command-line flags: --platform_base_url, --session_name, etc.
var appConfigKeys = []config.AppKey{
	{Name: "platform_base_url", Default: "http://localhost:3000", Desc: "Base URL of the FlatFacts platform API"},
	{Name: "platform_timeout", Default: "10s", Desc: "Timeout for one platform API call (e.g., 10s, 1m)"},
	{Name: "signin_url", Default: "", Desc: "Sign-in page (default: <platform_base_url>/auth/signin)"},
	{Name: "signout_url", Default: "", Desc: "Sign-out endpoint (default: <platform_base_url>/api/auth/signout)"},
	{Name: "session_cookie_names", Default: "next-auth.session-token,__Secure-next-auth.session-token", Desc: "Comma-separated platform session cookies forwarded upstream"},

	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Cookie and CSRF signing key (must be strong in production)"},
	{Name: "session_name", Default: "flatfacts-admin", Desc: "Dashboard cookie name"},
	{Name: "session_domain", Default: "", Desc: "Dashboard cookie domain (blank means current host)"},

	// Audit trail
	{Name: "mongo_uri", Default: "", Desc: "MongoDB connection URI for the audit trail (blank: log only)"},
	{Name: "mongo_database", Default: "flatfacts_admin", Desc: "MongoDB database name"},
	{Name: "audit_log_admin", Default: "all", Desc: "Admin action logging: 'all' (db+log), 'db', 'log', or 'off'"},

	// Notification broadcasts
	{Name: "notify_interval", Default: "1m", Desc: "Refill interval of the per-admin broadcast throttle"},
	{Name: "notify_burst", Default: "5", Desc: "Broadcasts an admin may send back to back (0 disables the throttle)"},

	{Name: "site_name", Default: "FlatFacts Admin", Desc: "Brand shown in the layout"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, FLATFACTS_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "FLATFACTS", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		PlatformBaseURL:    strings.TrimRight(appValues.String("platform_base_url"), "/"),
		PlatformTimeout:    appValues.Duration("platform_timeout", 10*time.Second),
		SignInURL:          appValues.String("signin_url"),
		SignOutURL:         appValues.String("signout_url"),
		SessionCookieNames: splitList(appValues.String("session_cookie_names")),

		SessionKey:    appValues.String("session_key"),
		SessionName:   appValues.String("session_name"),
		SessionDomain: appValues.String("session_domain"),

		MongoURI:      appValues.String("mongo_uri"),
		MongoDatabase: appValues.String("mongo_database"),
		AuditLogAdmin: strings.ToLower(strings.TrimSpace(appValues.String("audit_log_admin"))),

		NotifyInterval: appValues.Duration("notify_interval", time.Minute),
		NotifyBurst:    appValues.Int("notify_burst"),

		SiteName: appValues.String("site_name"),
	}
	applyDefaults(&appCfg)

	return coreCfg, appCfg, nil
}

// applyDefaults fills the sign-in and sign-out URLs from the platform base.
func applyDefaults(c *AppConfig) {
	if c.SignInURL == "" {
		c.SignInURL = c.PlatformBaseURL + "/auth/signin"
	}
	if c.SignOutURL == "" {
		c.SignOutURL = c.PlatformBaseURL + "/api/auth/signout"
	}
	if c.AuditLogAdmin == "" {
		c.AuditLogAdmin = auditlog.ModeAll
	}
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	u, err := url.Parse(appCfg.PlatformBaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("platform_base_url %q must be an absolute http(s) URL", appCfg.PlatformBaseURL)
	}

	if len(appCfg.SessionCookieNames) == 0 {
		return fmt.Errorf("session_cookie_names must name at least one platform cookie")
	}

	if appCfg.HasMongo() {
		if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
			logger.Error("invalid MongoDB URI", zap.Error(err))
			return fmt.Errorf("invalid MongoDB URI: %w", err)
		}
	}

	if !auditlog.ValidMode(appCfg.AuditLogAdmin) {
		return fmt.Errorf("audit_log_admin %q must be one of all, db, log, off", appCfg.AuditLogAdmin)
	}

	if appCfg.NotifyBurst > 0 && appCfg.NotifyInterval <= 0 {
		return fmt.Errorf("notify_interval must be positive when notify_burst is set")
	}

	if coreCfg != nil && coreCfg.Env == "prod" && strings.HasPrefix(appCfg.SessionKey, "dev-only") {
		return fmt.Errorf("session_key must be changed from the development default in production")
	}

	return nil
}
