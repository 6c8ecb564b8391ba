// internal/app/features/notifications/routes.go
package notifications

import (
	"github.com/flatfacts/admin/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the notification form (typically at "/admin/notifications").
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireAdmin)

		pr.Get("/", h.ServeForm)
		pr.Post("/", h.HandleSend)
	})

	return r
}
