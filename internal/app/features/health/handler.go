// internal/app/features/health/handler.go
package health

import (
	"context"
	"net/http"

	"github.com/flatfacts/admin/internal/app/system/timeouts"
	"github.com/go-chi/render"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// PlatformPinger is satisfied by the platform API client.
type PlatformPinger interface {
	Ping(ctx context.Context) error
}

// DBPinger is satisfied by *mongo.Client.
type DBPinger interface {
	Ping(ctx context.Context, rp *readpref.ReadPref) error
}

// Handler holds dependencies needed for health checks. DB is nil when
// audit events are not stored in MongoDB.
type Handler struct {
	Platform PlatformPinger
	DB       DBPinger
	Log      *zap.Logger
}

// NewHandler constructs a health Handler. client may be nil.
func NewHandler(platform PlatformPinger, client *mongo.Client, logger *zap.Logger) *Handler {
	h := &Handler{Platform: platform, Log: logger}
	if client != nil {
		h.DB = client
	}
	return h
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status   string `json:"status"`
	Platform string `json:"platform"`
	Database string `json:"database"`
	Message  string `json:"message,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Serve handles GET /health.
//
// On success: 200 and
//
//	{ "status":"ok", "platform":"reachable", "database":"connected" }
//
// database is "disabled" when no MongoDB is configured. When either check
// fails: 503 with status "error" and the first failure's message.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
	defer cancel()

	resp := healthResponse{
		Status:   "ok",
		Platform: "reachable",
		Database: "disabled",
	}

	if err := h.Platform.Ping(ctx); err != nil {
		h.Log.Error("health-check: platform ping failed", zap.Error(err))
		resp.Status = "error"
		resp.Platform = "unreachable"
		resp.Message = "Platform API unavailable"
		resp.Error = err.Error()
	}

	if h.DB != nil {
		resp.Database = "connected"
		if err := h.DB.Ping(ctx, readpref.Primary()); err != nil {
			h.Log.Error("health-check: mongo ping failed", zap.Error(err))
			resp.Database = "disconnected"
			if resp.Status == "ok" {
				resp.Status = "error"
				resp.Message = "Database unavailable"
				resp.Error = err.Error()
			}
		}
	}

	if resp.Status != "ok" {
		render.Status(r, http.StatusServiceUnavailable)
	}
	render.JSON(w, r, resp)
}
