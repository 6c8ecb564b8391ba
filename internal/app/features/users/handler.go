// internal/app/features/users/handler.go
package users

import (
	"context"
	"net/url"

	uierrors "github.com/flatfacts/admin/internal/app/features/errors"
	"github.com/flatfacts/admin/internal/app/platform"
	"github.com/flatfacts/admin/internal/app/system/auditlog"
	"go.uber.org/zap"
)

// API is the slice of the platform client the user directory needs.
type API interface {
	ListUsers(ctx context.Context, q url.Values) (*platform.UserPage, error)
	GetUser(ctx context.Context, id string) (*platform.UserDetail, error)
	UpdateUser(ctx context.Context, id string, upd platform.UserUpdate) (string, error)
	DeleteUser(ctx context.Context, id string) (string, error)
	BanUser(ctx context.Context, id, reason string) (string, error)
	UnbanUser(ctx context.Context, id string) (string, error)
}

type Handler struct {
	API      API
	Log      *zap.Logger
	ErrLog   *uierrors.ErrorLogger
	AuditLog *auditlog.Logger
}

// NewHandler constructs a Users feature handler bound to the platform API.
func NewHandler(api API, errLog *uierrors.ErrorLogger, audit *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{
		API:      api,
		Log:      logger,
		ErrLog:   errLog,
		AuditLog: audit,
	}
}
