// internal/app/features/users/view.go
package users

import (
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/flatfacts/admin/internal/app/platform"
	"github.com/flatfacts/admin/internal/app/system/auth"
	"github.com/flatfacts/admin/internal/app/system/flash"
	"github.com/flatfacts/admin/internal/app/system/formutil"
	"github.com/flatfacts/admin/internal/app/system/htmlsanitize"
	"github.com/flatfacts/admin/internal/app/system/inputval"
	"github.com/flatfacts/admin/internal/app/system/navigation"
	"github.com/flatfacts/admin/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ServeView renders one user with their reviews and comments. With
// ?edit=1 the profile card is an edit form.
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Read(), h.Log, "get user")
	defer cancel()

	u, err := h.API.GetUser(ctx, id)
	if err != nil {
		if platform.IsUnauthorized(err) {
			auth.RedirectToSignIn(w, r)
			return
		}
		h.ErrLog.LogUpstreamError(w, r, "get user failed", err, "Failed to fetch user details", basePath)
		return
	}

	data := h.newViewData(r, u)
	data.Editing = r.URL.Query().Get("edit") == "1"
	data.Form = editForm{Name: u.Name, Email: u.Email, IsAdmin: u.IsAdmin, Verified: u.Verified}
	templates.Render(w, r, "user_view", data)
}

// HandleEdit saves the edit form. Invalid input and platform failures
// re-render the form with the admin's values.
func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", basePath)
		return
	}

	form := editForm{
		Name:     strings.TrimSpace(r.PostFormValue("name")),
		Email:    strings.TrimSpace(r.PostFormValue("email")),
		IsAdmin:  r.PostFormValue("isAdmin") != "",
		Verified: r.PostFormValue("verified") != "",
	}

	if res := inputval.Validate(form); res.HasErrors() {
		h.reRenderEdit(w, r, id, form, res, "")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Write(), h.Log, "update user")
	defer cancel()

	upd := platform.UserUpdate{
		Name:     form.Name,
		Email:    form.Email,
		IsAdmin:  &form.IsAdmin,
		Verified: &form.Verified,
	}
	msg, err := h.API.UpdateUser(ctx, id, upd)
	h.AuditLog.UserUpdated(r.Context(), r, id, "name,email,isAdmin,verified", err)
	if err != nil {
		if platform.IsUnauthorized(err) {
			auth.RedirectToSignIn(w, r)
			return
		}
		h.Log.Warn("update user failed", zap.String("user_id", id), zap.Error(err))
		h.reRenderEdit(w, r, id, form, nil, platform.Message(err, "Failed to update user"))
		return
	}

	if msg == "" {
		msg = "User updated."
	}
	flash.Success(w, r, msg)
	http.Redirect(w, r, basePath+"/"+id, http.StatusSeeOther)
}

func (h *Handler) reRenderEdit(w http.ResponseWriter, r *http.Request, id string, form editForm, res *inputval.Result, errMsg string) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Read(), h.Log, "get user")
	defer cancel()

	u, err := h.API.GetUser(ctx, id)
	if err != nil {
		if platform.IsUnauthorized(err) {
			auth.RedirectToSignIn(w, r)
			return
		}
		h.ErrLog.LogUpstreamError(w, r, "get user failed", err, "Failed to fetch user details", basePath)
		return
	}

	data := h.newViewData(r, u)
	data.Editing = true
	data.Form = form
	data.SetErrors(res)
	if errMsg != "" {
		data.SetError(errMsg)
	}
	w.WriteHeader(http.StatusUnprocessableEntity)
	templates.Render(w, r, "user_view", data)
}

func (h *Handler) newViewData(r *http.Request, u *platform.UserDetail) viewData {
	data := viewData{
		User:    *u,
		Joined:  u.CreatedAt.Format(dateLayout),
		ListURL: navigation.SafeBackURL(r, navigation.UsersBackURL),
	}
	formutil.SetBase(&data.Base, r, "User Details", basePath)
	data.Return = basePath + "/" + u.ID
	for _, rv := range u.Reviews {
		data.Reviews = append(data.Reviews, reviewRow{
			UserReview: rv,
			Excerpt:    htmlsanitize.Excerpt(htmlsanitize.PlainText(rv.Content), 120),
		})
	}
	return data
}
