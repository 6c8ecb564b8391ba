// internal/app/features/analytics/handler.go
package analytics

import (
	"context"

	uierrors "github.com/flatfacts/admin/internal/app/features/errors"
	"github.com/flatfacts/admin/internal/app/platform"
	"go.uber.org/zap"
)

type API interface {
	Engagement(ctx context.Context, period string) (*platform.EngagementData, error)
	Tags(ctx context.Context, period string, limit int) (*platform.TagData, error)
	Locations(ctx context.Context, period string, limit int) (*platform.LocationData, error)
	UserActivity(ctx context.Context, period string) (*platform.UserActivityData, error)
}

type Handler struct {
	API    API
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger
}

func NewHandler(api API, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		API:    api,
		Log:    logger,
		ErrLog: errLog,
	}
}
