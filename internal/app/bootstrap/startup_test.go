package bootstrap

import (
	"strings"
	"testing"
	"time"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func validConfig() AppConfig {
	c := AppConfig{
		PlatformBaseURL:    "https://flatfacts.example",
		PlatformTimeout:    10 * time.Second,
		SessionCookieNames: []string{"next-auth.session-token"},
		SessionKey:         "a-very-long-production-session-key-0123456789",
		AuditLogAdmin:      "all",
	}
	applyDefaults(&c)
	return c
}

func TestApplyDefaults_DerivesAuthURLs(t *testing.T) {
	c := AppConfig{PlatformBaseURL: "https://flatfacts.example"}
	applyDefaults(&c)

	if c.SignInURL != "https://flatfacts.example/auth/signin" {
		t.Errorf("SignInURL = %q", c.SignInURL)
	}
	if c.SignOutURL != "https://flatfacts.example/api/auth/signout" {
		t.Errorf("SignOutURL = %q", c.SignOutURL)
	}
	if c.AuditLogAdmin != "all" {
		t.Errorf("AuditLogAdmin = %q, want all", c.AuditLogAdmin)
	}
}

func TestApplyDefaults_KeepsExplicitURLs(t *testing.T) {
	c := AppConfig{PlatformBaseURL: "https://flatfacts.example", SignInURL: "/login", SignOutURL: "/bye"}
	applyDefaults(&c)

	if c.SignInURL != "/login" || c.SignOutURL != "/bye" {
		t.Errorf("explicit URLs overwritten: %q %q", c.SignInURL, c.SignOutURL)
	}
}

func TestSplitList(t *testing.T) {
	got := splitList(" a , ,b,")
	if strings.Join(got, "|") != "a|b" {
		t.Errorf("splitList = %q", got)
	}
	if len(splitList("")) != 0 {
		t.Error("splitList(\"\") should be empty")
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		env     string
		mutate  func(*AppConfig)
		wantErr string
	}{
		{"valid", "dev", func(*AppConfig) {}, ""},
		{"relative base url", "dev", func(c *AppConfig) { c.PlatformBaseURL = "/api" }, "platform_base_url"},
		{"ftp base url", "dev", func(c *AppConfig) { c.PlatformBaseURL = "ftp://flatfacts.example" }, "platform_base_url"},
		{"no cookie names", "dev", func(c *AppConfig) { c.SessionCookieNames = nil }, "session_cookie_names"},
		{"bad mongo uri", "dev", func(c *AppConfig) { c.MongoURI = "postgres://nope" }, "MongoDB URI"},
		{"unknown audit mode", "dev", func(c *AppConfig) { c.AuditLogAdmin = "sometimes" }, "audit_log_admin"},
		{"throttle without interval", "dev", func(c *AppConfig) { c.NotifyBurst, c.NotifyInterval = 5, 0 }, "notify_interval"},
		{"throttle disabled", "dev", func(c *AppConfig) { c.NotifyBurst, c.NotifyInterval = 0, 0 }, ""},
		{"dev key in prod", "prod", func(c *AppConfig) { c.SessionKey = "dev-only-change-me-please-0123456789ABCDEF" }, "session_key"},
		{"dev key in dev", "dev", func(c *AppConfig) { c.SessionKey = "dev-only-change-me-please-0123456789ABCDEF" }, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(&c)
			err := ValidateConfig(&config.CoreConfig{Env: tt.env}, c, testLogger())

			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("ValidateConfig: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestTimeoutsFor(t *testing.T) {
	got := timeoutsFor(AppConfig{PlatformTimeout: 5 * time.Second})
	if got.Read != 5*time.Second || got.Write != 5*time.Second || got.Long != 15*time.Second {
		t.Errorf("timeoutsFor = %+v", got)
	}
	if got.Ping != 0 {
		t.Errorf("Ping = %v, want 0 (keep default)", got.Ping)
	}
}

func TestHasMongo(t *testing.T) {
	if (AppConfig{}).HasMongo() {
		t.Error("empty MongoURI should not count as configured")
	}
	if !(AppConfig{MongoURI: "mongodb://localhost:27017"}).HasMongo() {
		t.Error("MongoURI should count as configured")
	}
}
