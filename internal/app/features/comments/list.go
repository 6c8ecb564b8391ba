// internal/app/features/comments/list.go
package comments

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/flatfacts/admin/internal/app/platform"
	"github.com/flatfacts/admin/internal/app/system/htmlsanitize"
	"github.com/flatfacts/admin/internal/app/system/listview"
	"github.com/flatfacts/admin/internal/app/system/timeouts"
	"github.com/flatfacts/admin/internal/app/system/viewdata"
)

const (
	basePath = "/admin/comments"
	tableID  = "comments-table-wrap"
)

type commentRow struct {
	platform.Comment
	Excerpt string
	Created string
}

type listData struct {
	viewdata.BaseVM

	Q        string
	UserID   string
	ReviewID string
	Rows     []commentRow
	Pager    listview.Pager
}

// ServeList renders the comment table. Comments can be narrowed to one
// user or one review by ID.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Read(), h.Log, "list comments")
	defer cancel()

	req := listview.Parse(r, "userId", "reviewId")
	st, err := listview.Load(ctx, req, h.fetch)
	alert, done := listview.HandleLoadError(w, r, st, err, basePath, "Failed to fetch comments")
	if done {
		return
	}

	data := listData{
		BaseVM:   viewdata.NewBaseVM(r, "Comment Management", "/admin"),
		Q:        st.Request.Query,
		UserID:   st.Request.Filter("userId"),
		ReviewID: st.Request.Filter("reviewId"),
		Pager:    st.Pager(basePath),
	}
	data.Alert = alert
	for _, c := range st.Items {
		data.Rows = append(data.Rows, commentRow{
			Comment: c,
			Excerpt: htmlsanitize.Excerpt(htmlsanitize.PlainText(c.Content), 100),
			Created: c.CreatedAt.Format("Jan 2, 2006"),
		})
	}

	if r.Header.Get("HX-Request") == "true" && r.Header.Get("HX-Target") == tableID {
		templates.RenderSnippet(w, "comments_table", data)
		return
	}
	templates.Render(w, r, "comments_list", data)
}

func (h *Handler) fetch(ctx context.Context, req listview.Request) ([]platform.Comment, int64, error) {
	page, err := h.API.ListComments(ctx, req.Values())
	if err != nil {
		return nil, 0, err
	}
	return page.Comments, page.Pagination.Total, nil
}
