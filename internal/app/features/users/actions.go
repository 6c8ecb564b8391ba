// internal/app/features/users/actions.go
package users

import (
	"context"
	"net/http"
	"strings"

	"github.com/flatfacts/admin/internal/app/system/listview"
	"github.com/flatfacts/admin/internal/app/system/navigation"
	"github.com/go-chi/chi/v5"
)

const maxBanReason = 500

// HandleBan bans a user. A blank reason is refused without calling the
// platform.
func (h *Handler) HandleBan(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	ret := navigation.SafeBackURL(r, navigation.UsersBackURL)

	reason := strings.TrimSpace(r.FormValue("reason"))
	if reason == "" {
		listview.Reject(w, r, ret, "Ban reason is required.")
		return
	}
	if len([]rune(reason)) > maxBanReason {
		listview.Reject(w, r, ret, "Ban reason must be at most 500 characters.")
		return
	}

	listview.Act(w, r, h.Log, listview.Action{
		Name:    "ban user",
		Return:  ret,
		Success: "User banned successfully!",
		Failure: "Failed to ban user",
		Do: func(ctx context.Context) (string, error) {
			return h.API.BanUser(ctx, id, reason)
		},
		Audit: func(ctx context.Context, err error) {
			h.AuditLog.UserBanned(ctx, r, id, reason, err)
		},
	})
}

// HandleUnban lifts a ban.
func (h *Handler) HandleUnban(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	listview.Act(w, r, h.Log, listview.Action{
		Name:    "unban user",
		Return:  navigation.SafeBackURL(r, navigation.UsersBackURL),
		Success: "User unbanned successfully!",
		Failure: "Failed to unban user",
		Do: func(ctx context.Context) (string, error) {
			return h.API.UnbanUser(ctx, id)
		},
		Audit: func(ctx context.Context, err error) {
			h.AuditLog.UserUnbanned(ctx, r, id, err)
		},
	})
}

// HandleDelete deletes a user permanently.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	listview.Act(w, r, h.Log, listview.Action{
		Name:    "delete user",
		Return:  navigation.SafeBackURL(r, navigation.UsersBackURL),
		Success: "User deleted successfully!",
		Failure: "Failed to delete user",
		Removes: true,
		Do: func(ctx context.Context) (string, error) {
			return h.API.DeleteUser(ctx, id)
		},
		Audit: func(ctx context.Context, err error) {
			h.AuditLog.UserDeleted(ctx, r, id, err)
		},
	})
}
