// internal/app/features/activity/list.go
package activity

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/flatfacts/admin/internal/app/store/audit"
	"github.com/flatfacts/admin/internal/app/system/listview"
	"github.com/flatfacts/admin/internal/app/system/timeouts"
	"github.com/flatfacts/admin/internal/app/system/viewdata"
	"go.uber.org/zap"
)

// ServeList handles GET /admin/activity, newest events first. The search
// box matches the acting admin's email.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	req := parseRequest(r)

	data := listData{
		BaseVM:     viewdata.NewBaseVM(r, "Activity Log", "/admin"),
		Enabled:    h.Store != nil,
		Q:          req.Query,
		EventTypes: eventTypeOptions(req.Filter(filterEventType)),
		Outcomes:   outcomeOptions(req.Filter(filterOutcome)),
	}

	var st listview.State[audit.Event]
	if h.Store == nil {
		st = listview.State[audit.Event]{
			Request:    req,
			Pagination: listview.Pagination{Page: 1, Limit: req.Limit, TotalPages: 1},
		}
	} else {
		ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Read(), h.Log, "activity log list")
		defer cancel()

		var err error
		st, err = listview.Load(ctx, req, h.fetch)
		alert, done := listview.HandleLoadError(w, r, st, err, basePath, "Failed to load the activity log")
		if done {
			return
		}
		if err != nil {
			h.Log.Error("failed to query audit events", zap.Error(err))
			data.Alert = alert
		}
	}

	data.Pager = st.Pager(basePath)
	data.ExportURL = "/admin/activity/export.csv?" + exportQuery(st.Request)
	for _, e := range st.Items {
		data.Rows = append(data.Rows, newEventRow(e))
	}

	if r.Header.Get("HX-Request") == "true" && r.Header.Get("HX-Target") == tableID {
		templates.RenderSnippet(w, "activity_table", data)
		return
	}
	templates.Render(w, r, "activity_list", data)
}

// parseRequest reads the list state and drops filter values the audit
// store does not know.
func parseRequest(r *http.Request) listview.Request {
	req := listview.Parse(r, filterEventType, filterOutcome)
	if t := req.Filter(filterEventType); t != "" && !knownEventType(t) {
		req = req.WithFilter(filterEventType, "")
	}
	switch req.Filter(filterOutcome) {
	case "", audit.OutcomeSuccess, audit.OutcomeFailure:
	default:
		req = req.WithFilter(filterOutcome, "")
	}
	return req
}

func knownEventType(t string) bool {
	for _, k := range audit.EventTypes {
		if k == t {
			return true
		}
	}
	return false
}

func queryFilter(req listview.Request) audit.QueryFilter {
	return audit.QueryFilter{
		EventType:  req.Filter(filterEventType),
		Outcome:    req.Filter(filterOutcome),
		ActorEmail: req.Query,
	}
}

func (h *Handler) fetch(ctx context.Context, req listview.Request) ([]audit.Event, int64, error) {
	f := queryFilter(req)
	total, err := h.Store.CountByFilter(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	f.Limit = int64(req.Limit)
	f.Offset = int64((req.Page - 1) * req.Limit)
	events, err := h.Store.Query(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

// exportQuery keeps search and filters but not the page.
func exportQuery(req listview.Request) string {
	v := req.Values()
	v.Del("page")
	v.Del("limit")
	return v.Encode()
}
