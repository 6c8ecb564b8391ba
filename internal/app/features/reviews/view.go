// internal/app/features/reviews/view.go
package reviews

import (
	"html/template"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/flatfacts/admin/internal/app/platform"
	"github.com/flatfacts/admin/internal/app/system/auth"
	"github.com/flatfacts/admin/internal/app/system/htmlsanitize"
	"github.com/flatfacts/admin/internal/app/system/navigation"
	"github.com/flatfacts/admin/internal/app/system/timeouts"
	"github.com/flatfacts/admin/internal/app/system/viewdata"
	"github.com/go-chi/chi/v5"
)

type commentRow struct {
	platform.ReviewComment
	Body    template.HTML
	Created string
}

type viewData struct {
	viewdata.BaseVM

	Review   platform.ReviewDetail
	Author   string
	Body     template.HTML
	Created  string
	Comments []commentRow
	ListURL  string
}

// ServeView renders one review with its comments. Bodies are user content
// and go through the sanitizer before display.
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Read(), h.Log, "get review")
	defer cancel()

	rv, err := h.API.GetReview(ctx, id)
	if err != nil {
		if platform.IsUnauthorized(err) {
			auth.RedirectToSignIn(w, r)
			return
		}
		h.ErrLog.LogUpstreamError(w, r, "get review failed", err, "Failed to fetch review details", basePath)
		return
	}

	data := viewData{
		BaseVM:  viewdata.NewBaseVM(r, "Review Details", basePath),
		Review:  *rv,
		Author:  author(rv.Review),
		Body:    htmlsanitize.PrepareForDisplay(rv.Content),
		Created: rv.CreatedAt.Format(dateLayout),
		ListURL: navigation.SafeBackURL(r, navigation.ReviewsBackURL),
	}
	for _, c := range rv.Comments {
		data.Comments = append(data.Comments, commentRow{
			ReviewComment: c,
			Body:          htmlsanitize.PrepareForDisplay(c.Content),
			Created:       c.CreatedAt.Format(dateLayout),
		})
	}
	templates.Render(w, r, "review_view", data)
}
