// internal/app/features/notifications/notifications.go
package notifications

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
	"github.com/flatfacts/admin/internal/app/system/timeouts"
	"go.uber.org/zap"
)

const basePath = "/admin/notifications"

type notifyForm struct {
	Subject  string `validate:"notblank,max=200" label:"Subject"`
	Message  string `validate:"notblank,max=10000" label:"Message"`
	Audience string `validate:"audience" label:"Audience"`
	Email    string
	Tag      string
}

type audienceOption struct {
	Value    string
	Label    string
	Selected bool
}

type formData struct {
	formutil.Base

	Form      notifyForm
	Audiences []audienceOption
}

var audienceLabels = map[string]string{
	platform.AudienceAll:         "All Users",
	platform.AudienceVerified:    "Verified Users",
	platform.AudienceAdmins:      "Admins",
	platform.AudienceSingleEmail: "Single Email",
	platform.AudienceByTag:       "Users by Tag",
}

func newFormData(r *http.Request, f notifyForm) formData {
	data := formData{Form: f}
	formutil.SetBase(&data.Base, r, "Send Notifications", "/admin")
	for _, a := range inputval.Audiences {
		data.Audiences = append(data.Audiences, audienceOption{
			Value:    a,
			Label:    audienceLabels[a],
			Selected: a == f.Audience,
		})
	}
	return data
}

// ServeForm renders an empty form addressed to all users.
func (h *Handler) ServeForm(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, r, "notifications_form", newFormData(r, notifyForm{Audience: platform.AudienceAll}))
}

// HandleSend validates the form and asks the platform to deliver it. On
// success the form comes back empty with the platform's message.
func (h *Handler) HandleSend(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", basePath)
		return
	}

	f := notifyForm{
		Subject:  strings.TrimSpace(r.PostFormValue("subject")),
		Message:  strings.TrimSpace(r.PostFormValue("message")),
		Audience: strings.TrimSpace(r.PostFormValue("audience")),
		Email:    strings.TrimSpace(r.PostFormValue("email")),
		Tag:      strings.TrimSpace(r.PostFormValue("tag")),
	}

	if res := validate(f); res.HasErrors() {
		data := newFormData(r, f)
		data.SetErrors(res)
		w.WriteHeader(http.StatusUnprocessableEntity)
		templates.Render(w, r, "notifications_form", data)
		return
	}

	if !h.Limiter.Allow(senderKey(r)) {
		h.Log.Warn("notification throttled", zap.String("audience", f.Audience))
		data := newFormData(r, f)
		data.SetError("You are sending notifications too quickly. Please wait a minute and try again.")
		w.WriteHeader(http.StatusTooManyRequests)
		templates.Render(w, r, "notifications_form", data)
		return
	}

	n := toNotification(f)

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Long(), h.Log, "send notification")
	defer cancel()

	msg, err := h.API.SendNotification(ctx, n)
	h.AuditLog.NotificationSent(r.Context(), r, n, err)
	if err != nil {
		if platform.IsUnauthorized(err) {
			auth.RedirectToSignIn(w, r)
			return
		}
		h.Log.Warn("send notification failed", zap.String("audience", n.Audience), zap.Error(err))
		data := newFormData(r, f)
		data.SetError(platform.Message(err, "Failed to send notifications"))
		w.WriteHeader(http.StatusBadGateway)
		templates.Render(w, r, "notifications_form", data)
		return
	}

	if msg == "" {
		msg = "Notifications sent successfully!"
	}
	flash.Success(w, r, msg)
	http.Redirect(w, r, basePath, http.StatusSeeOther)
}

// validate applies the tag rules plus the audience-specific ones.
func validate(f notifyForm) *inputval.Result {
	res := inputval.Validate(f)
	switch f.Audience {
	case platform.AudienceSingleEmail:
		if f.Email == "" {
			res.Add("Email", "Recipient email is required.")
		} else if !inputval.IsValidEmail(f.Email) {
			res.Add("Email", "A valid email address is required.")
		}
	case platform.AudienceByTag:
		if f.Tag == "" {
			res.Add("Tag", "User tag is required.")
		}
	}
	return res
}

// toNotification builds the request body. Only the field the audience
// needs is sent; the message is sanitized because the platform mails it
// as HTML.
func toNotification(f notifyForm) platform.Notification {
	n := platform.Notification{
		Subject:  f.Subject,
		Message:  htmlsanitize.Sanitize(f.Message),
		Audience: f.Audience,
	}
	switch f.Audience {
	case platform.AudienceSingleEmail:
		n.Email = f.Email
	case platform.AudienceByTag:
		n.Tag = f.Tag
	}
	return n
}

// senderKey identifies the admin for throttling, falling back to the client
// address when the session carries no identity.
func senderKey(r *http.Request) string {
	if a, ok := auth.CurrentAdmin(r); ok && a.Email != "" {
		return a.Email
	}
	return r.RemoteAddr
}
