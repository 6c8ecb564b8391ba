// internal/app/features/profile/handler.go
package profile

import (
	"context"

	uierrors "github.com/flatfacts/admin/internal/app/features/errors"
	"github.com/flatfacts/admin/internal/app/platform"
	"github.com/flatfacts/admin/internal/app/system/auditlog"
	"go.uber.org/zap"
)

// API is what the profile page needs from the platform.
type API interface {
	Session(ctx context.Context) (*platform.Session, error)
	GetUser(ctx context.Context, id string) (*platform.UserDetail, error)
	UpdateUser(ctx context.Context, id string, upd platform.UserUpdate) (string, error)
	ChangePassword(ctx context.Context, current, next string) (string, error)
}

// Handler owns the signed-in admin's profile page.
type Handler struct {
	API      API
	Log      *zap.Logger
	ErrLog   *uierrors.ErrorLogger
	AuditLog *auditlog.Logger
}

// NewHandler constructs a Handler bound to the platform API and logger.
func NewHandler(api API, errLog *uierrors.ErrorLogger, audit *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{
		API:      api,
		Log:      logger,
		ErrLog:   errLog,
		AuditLog: audit,
	}
}
