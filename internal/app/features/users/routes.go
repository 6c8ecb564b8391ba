// internal/app/features/users/routes.go
package users

import (
	"github.com/flatfacts/admin/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the user directory under the path where this router is
// mounted (typically "/admin/users" from bootstrap).
//
//	h := users.NewHandler(api, errLog, auditLog, logger)
//	r.Mount("/admin/users", users.Routes(h, sessionMgr))
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireAdmin)

		// Directory
		pr.Get("/", h.ServeList)

		// Detail and edit
		pr.Get("/{id}", h.ServeView)
		pr.Post("/{id}", h.HandleEdit)

		// Row actions
		pr.Post("/{id}/ban", h.HandleBan)
		pr.Post("/{id}/unban", h.HandleUnban)
		pr.Post("/{id}/delete", h.HandleDelete)
	})

	return r
}
