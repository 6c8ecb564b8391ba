// internal/app/features/profile/profile.go
package profile

import (
	"context"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	uierrors "github.com/flatfacts/admin/internal/app/features/errors"
	"github.com/flatfacts/admin/internal/app/platform"
	"github.com/flatfacts/admin/internal/app/system/auth"
	"github.com/flatfacts/admin/internal/app/system/flash"
	"github.com/flatfacts/admin/internal/app/system/formutil"
	"github.com/flatfacts/admin/internal/app/system/inputval"
	"github.com/flatfacts/admin/internal/app/system/timeouts"
	"go.uber.org/zap"
)

const (
	basePath          = "/admin/profile"
	minPasswordLength = 8
)

// profileForm is the edit form. The password fields are optional but
// travel together.
type profileForm struct {
	Name            string `validate:"notblank,max=100" label:"Name"`
	Email           string `validate:"required,email" label:"Email"`
	CurrentPassword string
	NewPassword     string
}

func (f profileForm) changesPassword() bool {
	return f.CurrentPassword != "" && f.NewPassword != ""
}

// profileData is the view model for the profile page.
type profileData struct {
	formutil.Base

	User    platform.UserDetail
	Joined  string
	Editing bool
	Form    profileForm
}

// ServeProfile renders the signed-in admin's own account.
func (h *Handler) ServeProfile(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Read(), h.Log, "load profile")
	defer cancel()

	user, ok := h.loadUser(ctx, w, r)
	if !ok {
		return
	}

	data := newProfileData(r, user)
	data.Editing = r.URL.Query().Get("edit") == "1"
	data.Form = profileForm{Name: user.Name, Email: user.Email}
	templates.Render(w, r, "profile", data)
}

// HandleUpdate saves name and email, then the password when both password
// fields were filled. The password is only sent once the profile update
// has succeeded.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", basePath)
		return
	}

	f := profileForm{
		Name:            strings.TrimSpace(r.PostFormValue("name")),
		Email:           strings.TrimSpace(r.PostFormValue("email")),
		CurrentPassword: r.PostFormValue("currentPassword"),
		NewPassword:     r.PostFormValue("newPassword"),
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Write(), h.Log, "update profile")
	defer cancel()

	user, ok := h.loadUser(ctx, w, r)
	if !ok {
		return
	}

	if res := validate(f); res.HasErrors() {
		h.reRender(w, r, user, f, res, "")
		return
	}

	_, err := h.API.UpdateUser(ctx, user.ID, platform.UserUpdate{Name: f.Name, Email: f.Email})
	h.AuditLog.ProfileUpdated(r.Context(), r, user.ID, err)
	if err != nil {
		if platform.IsUnauthorized(err) {
			auth.RedirectToSignIn(w, r)
			return
		}
		h.Log.Warn("profile update failed", zap.String("user_id", user.ID), zap.Error(err))
		h.reRender(w, r, user, f, nil, platform.Message(err, "Failed to update profile"))
		return
	}

	if !f.changesPassword() {
		flash.Success(w, r, "Profile updated successfully!")
		http.Redirect(w, r, basePath, http.StatusSeeOther)
		return
	}

	_, err = h.API.ChangePassword(ctx, f.CurrentPassword, f.NewPassword)
	h.AuditLog.PasswordChanged(r.Context(), r, user.ID, err)
	if err != nil {
		if platform.IsUnauthorized(err) {
			auth.RedirectToSignIn(w, r)
			return
		}
		h.Log.Warn("password change failed", zap.String("user_id", user.ID), zap.Error(err))
		flash.Success(w, r, "Profile updated successfully!")
		flash.Error(w, r, platform.Message(err, "Failed to update password"))
		http.Redirect(w, r, basePath, http.StatusSeeOther)
		return
	}

	flash.Success(w, r, "Profile and password updated successfully!")
	http.Redirect(w, r, basePath, http.StatusSeeOther)
}

// loadUser resolves the admin's platform id and fetches the account. It
// writes the response itself when it returns false.
func (h *Handler) loadUser(ctx context.Context, w http.ResponseWriter, r *http.Request) (*platform.UserDetail, bool) {
	id := ""
	if a, ok := auth.CurrentAdmin(r); ok {
		id = a.ID
	}
	if id == "" {
		sess, err := h.API.Session(ctx)
		if platform.IsUnauthorized(err) {
			auth.RedirectToSignIn(w, r)
			return nil, false
		}
		if err != nil {
			h.ErrLog.LogUpstreamError(w, r, "session lookup failed", err, "Could not load user profile.", "/admin")
			return nil, false
		}
		if sess == nil || sess.User == nil || sess.User.ID == "" {
			uierrors.RenderUnauthorized(w, r, "")
			return nil, false
		}
		id = sess.User.ID
	}

	user, err := h.API.GetUser(ctx, id)
	if err != nil {
		if platform.IsUnauthorized(err) {
			auth.RedirectToSignIn(w, r)
			return nil, false
		}
		h.ErrLog.LogUpstreamError(w, r, "get profile failed", err, "Failed to fetch user details", "/admin")
		return nil, false
	}
	return user, true
}

func (h *Handler) reRender(w http.ResponseWriter, r *http.Request, user *platform.UserDetail, f profileForm, res *inputval.Result, errMsg string) {
	data := newProfileData(r, user)
	data.Editing = true
	// Passwords are never echoed back.
	f.CurrentPassword, f.NewPassword = "", ""
	data.Form = f
	data.SetErrors(res)
	if errMsg != "" {
		data.SetError(errMsg)
	}
	w.WriteHeader(http.StatusUnprocessableEntity)
	templates.Render(w, r, "profile", data)
}

func newProfileData(r *http.Request, user *platform.UserDetail) profileData {
	data := profileData{
		User:   *user,
		Joined: user.CreatedAt.Format("Jan 2, 2006"),
	}
	formutil.SetBase(&data.Base, r, "My Profile", "/admin")
	return data
}

// validate checks the tag rules plus the password pair.
func validate(f profileForm) *inputval.Result {
	res := inputval.Validate(f)
	switch {
	case f.CurrentPassword == "" && f.NewPassword == "":
	case f.CurrentPassword == "" || f.NewPassword == "":
		res.Add("NewPassword", "Enter both your current and new password to change it.")
	case len([]rune(f.NewPassword)) < minPasswordLength:
		res.Add("NewPassword", "New password must be at least 8 characters.")
	}
	return res
}
