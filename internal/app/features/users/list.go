// internal/app/features/users/list.go
package users

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/flatfacts/admin/internal/app/platform"
	"github.com/flatfacts/admin/internal/app/system/listview"
	"github.com/flatfacts/admin/internal/app/system/timeouts"
	"github.com/flatfacts/admin/internal/app/system/viewdata"
)

const dateLayout = "Jan 2, 2006"

// ServeList renders the user directory for the search and page in the URL.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Read(), h.Log, "list users")
	defer cancel()

	req := listview.Parse(r)
	st, err := listview.Load(ctx, req, h.fetch)
	alert, done := listview.HandleLoadError(w, r, st, err, basePath, "Failed to fetch users")
	if done {
		return
	}

	data := listData{
		BaseVM: viewdata.NewBaseVM(r, "User Directory", "/admin"),
		Q:      st.Request.Query,
		Pager:  st.Pager(basePath),
	}
	data.Alert = alert
	for _, u := range st.Items {
		data.Rows = append(data.Rows, userRow{User: u, Joined: u.CreatedAt.Format(dateLayout)})
	}

	if r.Header.Get("HX-Request") == "true" && r.Header.Get("HX-Target") == tableID {
		templates.RenderSnippet(w, "users_table", data)
		return
	}
	templates.Render(w, r, "users_list", data)
}

func (h *Handler) fetch(ctx context.Context, req listview.Request) ([]platform.User, int64, error) {
	page, err := h.API.ListUsers(ctx, req.Values())
	if err != nil {
		return nil, 0, err
	}
	return page.Users, page.Pagination.Total, nil
}
