// internal/app/features/moderation/routes.go
package moderation

import (
	"github.com/flatfacts/admin/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the moderation queue (typically at "/admin/moderation").
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireAdmin)

		pr.Get("/flagged-reviews", h.ServeFlagged)
		pr.Post("/flagged-reviews/{id}/dismiss", h.HandleDismiss)
		pr.Post("/flagged-reviews/reviews/{reviewID}/delete", h.HandleDeleteReview)
	})

	return r
}
