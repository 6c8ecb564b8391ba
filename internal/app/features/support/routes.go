// internal/app/features/support/routes.go
package support

import (
	"github.com/flatfacts/admin/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the support inbox (typically at "/admin/support").
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireAdmin)

		pr.Get("/", h.ServeList)
		pr.Post("/{id}/reply", h.HandleReply)
	})

	return r
}
