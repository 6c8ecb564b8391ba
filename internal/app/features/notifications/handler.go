// internal/app/features/notifications/handler.go
package notifications

import (
	"context"

	uierrors "github.com/flatfacts/admin/internal/app/features/errors"
	"github.com/flatfacts/admin/internal/app/platform"
	"github.com/flatfacts/admin/internal/app/system/auditlog"
	"github.com/flatfacts/admin/internal/app/system/ratelimit"
	"go.uber.org/zap"
)

type API interface {
	SendNotification(ctx context.Context, n platform.Notification) (string, error)
}

type Handler struct {
	API      API
	Log      *zap.Logger
	ErrLog   *uierrors.ErrorLogger
	AuditLog *auditlog.Logger

	// Limiter throttles broadcasts per admin. Nil allows every send.
	Limiter *ratelimit.Limiter
}

func NewHandler(api API, errLog *uierrors.ErrorLogger, audit *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{
		API:      api,
		Log:      logger,
		ErrLog:   errLog,
		AuditLog: audit,
	}
}
