// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig covers the
// framework side: ports, TLS, logging level and format, CORS and body
// limits.
type AppConfig struct {
	// Platform API the dashboard fronts
	PlatformBaseURL string        // e.g. https://flatfacts.example
	PlatformTimeout time.Duration // per-call HTTP timeout

	// Sign-in is owned by the platform; these are where the admin is sent
	SignInURL  string
	SignOutURL string

	// Platform cookies forwarded on every upstream call
	SessionCookieNames []string

	// Dashboard cookie (flash messages, cached admin identity) and CSRF key
	SessionKey    string
	SessionName   string
	SessionDomain string

	// Optional MongoDB for the audit trail. Empty MongoURI means zap only.
	MongoURI      string
	MongoDatabase string

	// Audit routing: all, db, log, off
	AuditLogAdmin string

	// Broadcast throttle per admin: NotifyBurst sends, one more every
	// NotifyInterval. A zero burst disables it.
	NotifyInterval time.Duration
	NotifyBurst    int

	SiteName string
}

// HasMongo reports whether an audit database is configured.
func (c AppConfig) HasMongo() bool {
	return c.MongoURI != ""
}
