// internal/app/features/comments/actions.go
package comments

import (
	"context"
	"net/http"

	"github.com/flatfacts/admin/internal/app/system/listview"
	"github.com/flatfacts/admin/internal/app/system/navigation"
	"github.com/go-chi/chi/v5"
)

// HandleDelete removes a comment. This cannot be undone.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	listview.Act(w, r, h.Log, listview.Action{
		Name:    "delete comment",
		Return:  navigation.SafeBackURL(r, navigation.CommentsBackURL),
		Success: "Comment deleted successfully!",
		Failure: "Failed to delete comment",
		Removes: true,
		Do: func(ctx context.Context) (string, error) {
			return h.API.DeleteComment(ctx, id)
		},
		Audit: func(ctx context.Context, err error) {
			h.AuditLog.CommentDeleted(ctx, r, id, err)
		},
	})
}
