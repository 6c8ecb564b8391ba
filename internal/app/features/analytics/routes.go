// internal/app/features/analytics/routes.go
package analytics

import (
	"github.com/flatfacts/admin/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the analytics pages (typically at "/admin/analytics").
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireAdmin)

		pr.Get("/", h.ServeDeepDive)
		pr.Get("/user-activity", h.ServeUserActivity)
	})

	return r
}
