// internal/app/features/comments/routes.go
package comments

import (
	"github.com/flatfacts/admin/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts comment management (typically at "/admin/comments").
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireAdmin)

		pr.Get("/", h.ServeList)
		pr.Post("/{id}/delete", h.HandleDelete)
	})

	return r
}
