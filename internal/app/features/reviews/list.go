// internal/app/features/reviews/list.go
package reviews

import (
	"context"
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/flatfacts/admin/internal/app/platform"
	"github.com/flatfacts/admin/internal/app/system/htmlsanitize"
	"github.com/flatfacts/admin/internal/app/system/listview"
	"github.com/flatfacts/admin/internal/app/system/timeouts"
	"github.com/flatfacts/admin/internal/app/system/viewdata"
)

const (
	basePath   = "/admin/reviews"
	tableID    = "reviews-table-wrap"
	dateLayout = "Jan 2, 2006"
)

// Filters accepted by the review list, in the order they are sent.
var filterKeys = []string{"tag", "location", "rating"}

type reviewRow struct {
	platform.Review
	Author  string
	Excerpt string
	Created string
}

type ratingOption struct {
	Value    string
	Label    string
	Selected bool
}

type listData struct {
	viewdata.BaseVM

	Q        string
	Tag      string
	Location string
	Ratings  []ratingOption
	Rows     []reviewRow
	Pager    listview.Pager
}

// ServeList renders the review table for the search and filters in the URL.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Read(), h.Log, "list reviews")
	defer cancel()

	req := listview.Parse(r, filterKeys...)
	if !validRating(req.Filter("rating")) {
		req.Filters["rating"] = ""
	}

	st, err := listview.Load(ctx, req, h.fetch)
	alert, done := listview.HandleLoadError(w, r, st, err, basePath, "Failed to fetch reviews")
	if done {
		return
	}

	data := listData{
		BaseVM:   viewdata.NewBaseVM(r, "Review Management", "/admin"),
		Q:        st.Request.Query,
		Tag:      st.Request.Filter("tag"),
		Location: st.Request.Filter("location"),
		Ratings:  ratingOptions(st.Request.Filter("rating")),
		Pager:    st.Pager(basePath),
	}
	data.Alert = alert
	for _, rv := range st.Items {
		data.Rows = append(data.Rows, reviewRow{
			Review:  rv,
			Author:  author(rv),
			Excerpt: htmlsanitize.Excerpt(htmlsanitize.PlainText(rv.Content), 80),
			Created: rv.CreatedAt.Format(dateLayout),
		})
	}

	if r.Header.Get("HX-Request") == "true" && r.Header.Get("HX-Target") == tableID {
		templates.RenderSnippet(w, "reviews_table", data)
		return
	}
	templates.Render(w, r, "reviews_list", data)
}

func (h *Handler) fetch(ctx context.Context, req listview.Request) ([]platform.Review, int64, error) {
	page, err := h.API.ListReviews(ctx, req.Values())
	if err != nil {
		return nil, 0, err
	}
	return page.Reviews, page.Pagination.Total, nil
}

// validRating accepts "" (all ratings) or a star count from 1 to 5.
func validRating(s string) bool {
	if s == "" {
		return true
	}
	n, err := strconv.Atoi(s)
	return err == nil && n >= 1 && n <= 5
}

func ratingOptions(selected string) []ratingOption {
	opts := []ratingOption{{Value: "", Label: "All Ratings", Selected: selected == ""}}
	for n := 1; n <= 5; n++ {
		v := strconv.Itoa(n)
		label := v + " Stars"
		if n == 1 {
			label = "1 Star"
		}
		opts = append(opts, ratingOption{Value: v, Label: label, Selected: v == selected})
	}
	return opts
}

// author is the name shown for a review's writer.
func author(rv platform.Review) string {
	switch {
	case rv.IsAnonymous:
		return "Anonymous"
	case rv.User != nil && rv.User.Name != "":
		return rv.User.Name
	case rv.User != nil:
		return rv.User.Email
	case rv.UserName != "":
		return rv.UserName
	}
	return "Unknown"
}
