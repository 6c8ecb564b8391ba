// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"github.com/flatfacts/admin/internal/app/resources"
	"github.com/flatfacts/admin/internal/app/system/flash"
	"github.com/flatfacts/admin/internal/app/system/timeouts"
	"github.com/flatfacts/admin/internal/app/system/viewdata"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	timeouts.Configure(timeoutsFor(appCfg))
	resources.LoadSharedTemplates()
	viewdata.Init(appCfg.SiteName)
	return flash.Init(appCfg.SessionKey, appCfg.SessionName, coreCfg.Env == "prod", logger)
}

// timeoutsFor derives per-call deadlines from the platform timeout. Pages
// that chain calls get three of them.
func timeoutsFor(appCfg AppConfig) timeouts.Config {
	return timeouts.Config{
		Read:  appCfg.PlatformTimeout,
		Write: appCfg.PlatformTimeout,
		Long:  3 * appCfg.PlatformTimeout,
	}
}
