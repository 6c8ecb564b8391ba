// internal/app/features/comments/handler.go
package comments

import (
	"context"
	"net/url"

	uierrors "github.com/flatfacts/admin/internal/app/features/errors"
	"github.com/flatfacts/admin/internal/app/platform"
	"github.com/flatfacts/admin/internal/app/system/auditlog"
	"go.uber.org/zap"
)

type API interface {
	ListComments(ctx context.Context, q url.Values) (*platform.CommentPage, error)
	DeleteComment(ctx context.Context, id string) (string, error)
}

type Handler struct {
	API      API
	Log      *zap.Logger
	ErrLog   *uierrors.ErrorLogger
	AuditLog *auditlog.Logger
}

func NewHandler(api API, errLog *uierrors.ErrorLogger, audit *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{
		API:      api,
		Log:      logger,
		ErrLog:   errLog,
		AuditLog: audit,
	}
}
