// internal/app/features/support/support.go
package support

import (
	"context"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/flatfacts/admin/internal/app/platform"
	"github.com/flatfacts/admin/internal/app/system/htmlsanitize"
	"github.com/flatfacts/admin/internal/app/system/listview"
	"github.com/flatfacts/admin/internal/app/system/navigation"
	"github.com/flatfacts/admin/internal/app/system/timeouts"
	"github.com/flatfacts/admin/internal/app/system/viewdata"
	"github.com/go-chi/chi/v5"
)

const (
	basePath = "/admin/support"
	tableID  = "support-table-wrap"
	maxReply = 5000
)

type messageRow struct {
	platform.SupportMessage
	Excerpt   string
	Submitted string
	Replying  bool
}

type listData struct {
	viewdata.BaseVM

	Rows  []messageRow
	Pager listview.Pager
}

// ServeList renders the support inbox. ?reply=<id> opens the reply box
// under that message.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Read(), h.Log, "list support messages")
	defer cancel()

	req := listview.Parse(r)
	st, err := listview.Load(ctx, req, h.fetch)
	alert, done := listview.HandleLoadError(w, r, st, err, basePath, "Failed to fetch support messages")
	if done {
		return
	}

	replyTo := query.Get(r, "reply")
	data := listData{
		BaseVM: viewdata.NewBaseVM(r, "Support Inbox", "/admin"),
		Pager:  st.Pager(basePath),
	}
	data.Alert = alert
	for _, m := range st.Items {
		data.Rows = append(data.Rows, messageRow{
			SupportMessage: m,
			Excerpt:        htmlsanitize.Excerpt(m.Message, 140),
			Submitted:      m.CreatedAt.Format("Jan 2, 2006"),
			Replying:       m.ID == replyTo,
		})
	}

	if r.Header.Get("HX-Request") == "true" && r.Header.Get("HX-Target") == tableID {
		templates.RenderSnippet(w, "support_table", data)
		return
	}
	templates.Render(w, r, "support_list", data)
}

func (h *Handler) fetch(ctx context.Context, req listview.Request) ([]platform.SupportMessage, int64, error) {
	page, err := h.API.ListSupportMessages(ctx, req.Values())
	if err != nil {
		return nil, 0, err
	}
	return page.SupportMessages, page.Pagination.Total, nil
}

// HandleReply emails a reply to the sender through the platform. The reply
// is sent as typed; one with no text once markup is stripped is refused
// without calling the platform.
func (h *Handler) HandleReply(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	ret := navigation.SafeBackURL(r, navigation.SupportBackURL)

	reply := strings.TrimSpace(r.FormValue("reply"))
	if htmlsanitize.StripTags(reply) == "" {
		listview.Reject(w, r, ret, "Reply message cannot be empty.")
		return
	}
	if utf8.RuneCountInString(reply) > maxReply {
		listview.Reject(w, r, ret, "Reply must be at most 5000 characters.")
		return
	}

	success := "Reply sent successfully!"
	if email := strings.TrimSpace(r.FormValue("email")); email != "" {
		success = "Reply sent successfully to " + email + "!"
	}

	listview.Act(w, r, h.Log, listview.Action{
		Name:    "reply to support message",
		Return:  ret,
		Success: success,
		Failure: "Failed to send reply",
		Do: func(ctx context.Context) (string, error) {
			return h.API.ReplySupportMessage(ctx, id, reply)
		},
		Audit: func(ctx context.Context, err error) {
			h.AuditLog.SupportReplied(ctx, r, id, err)
		},
	})
}
