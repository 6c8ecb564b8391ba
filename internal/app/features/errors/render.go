// internal/app/features/errors/render.go
package errors

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/flatfacts/admin/internal/app/system/auth"
	"github.com/flatfacts/admin/internal/app/system/viewdata"
)

func render(w http.ResponseWriter, r *http.Request, status int, title, heading, msg, backURL string) {
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, title, backURL),
		Heading: heading,
		Message: msg,
	}
	if backURL != "" {
		data.BackURL = backURL
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	templates.Render(w, r, "error_page", data)
}

// RenderUnauthorized shows a friendly "sign in required" page linking to
// the platform's sign-in. If backURL is empty, the sign-in URL is used.
func RenderUnauthorized(w http.ResponseWriter, r *http.Request, backURL string) {
	if backURL == "" {
		backURL = auth.SignInURL(r)
	}
	render(w, r, http.StatusUnauthorized, "Sign in required", "Sign in required",
		"Please sign in with an administrator account to continue.", backURL)
}

// RenderForbidden shows a friendly access error page with a message.
func RenderForbidden(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	render(w, r, http.StatusForbidden, "Access denied", "Access denied", msg, backURL)
}

// RenderNotFound shows a "not found" page for a missing platform entity.
func RenderNotFound(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	render(w, r, http.StatusNotFound, "Not found", "Not found", msg, backURL)
}
