// internal/app/features/reviews/actions.go
package reviews

import (
	"context"
	"net/http"

	"github.com/flatfacts/admin/internal/app/system/listview"
	"github.com/flatfacts/admin/internal/app/system/navigation"
	"github.com/go-chi/chi/v5"
)

// HandleDelete soft-deletes a review on the platform.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	listview.Act(w, r, h.Log, listview.Action{
		Name:    "delete review",
		Return:  navigation.SafeBackURL(r, navigation.ReviewsBackURL),
		Success: "Review soft-deleted successfully!",
		Failure: "Failed to delete review",
		Removes: true,
		Do: func(ctx context.Context) (string, error) {
			return h.API.DeleteReview(ctx, id)
		},
		Audit: func(ctx context.Context, err error) {
			h.AuditLog.ReviewDeleted(ctx, r, id, err)
		},
	})
}
