// internal/app/features/dashboard/handler.go
package dashboard

import (
	"context"

	uierrors "github.com/flatfacts/admin/internal/app/features/errors"
	"github.com/flatfacts/admin/internal/app/platform"
	"go.uber.org/zap"
)

type API interface {
	Dashboard(ctx context.Context) (*platform.DashboardMetrics, error)
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
