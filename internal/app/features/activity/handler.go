// internal/app/features/activity/handler.go
package activity

import (
	"context"

	uierrors "github.com/flatfacts/admin/internal/app/features/errors"
	"github.com/flatfacts/admin/internal/app/store/audit"
	"go.uber.org/zap"
)

// Store is the part of the audit store the activity pages read.
type Store interface {
	Query(ctx context.Context, filter audit.QueryFilter) ([]audit.Event, error)
	CountByFilter(ctx context.Context, filter audit.QueryFilter) (int64, error)
}

// Handler owns the activity log pages. Store is nil when no MongoDB is
// configured; the pages then explain that nothing is being recorded.
type Handler struct {
	Store  Store
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger
}

// NewHandler creates a new activity Handler. Pass a nil store when audit
// events are not kept in MongoDB.
func NewHandler(store Store, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Store:  store,
		Log:    logger,
		ErrLog: errLog,
	}
}
