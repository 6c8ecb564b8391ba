// internal/app/features/moderation/flagged.go
package moderation

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/flatfacts/admin/internal/app/platform"
	"github.com/flatfacts/admin/internal/app/system/listview"
	"github.com/flatfacts/admin/internal/app/system/navigation"
	"github.com/flatfacts/admin/internal/app/system/timeouts"
	"github.com/flatfacts/admin/internal/app/system/viewdata"
	"github.com/go-chi/chi/v5"
)

const (
	basePath = "/admin/moderation/flagged-reviews"
	tableID  = "reports-table-wrap"
)

type reportRow struct {
	platform.Report
	ReviewTitle  string
	ReporterName string
	Reported     string
}

type flaggedData struct {
	viewdata.BaseVM

	Rows  []reportRow
	Pager listview.Pager
}

// ServeFlagged renders the open reports, newest first as the platform
// orders them.
func (h *Handler) ServeFlagged(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Read(), h.Log, "list reports")
	defer cancel()

	req := listview.Parse(r)
	st, err := listview.Load(ctx, req, h.fetch)
	alert, done := listview.HandleLoadError(w, r, st, err, basePath, "Failed to fetch reports")
	if done {
		return
	}

	data := flaggedData{
		BaseVM: viewdata.NewBaseVM(r, "Flagged Reviews", "/admin"),
		Pager:  st.Pager(basePath),
	}
	data.Alert = alert
	for _, rp := range st.Items {
		data.Rows = append(data.Rows, newReportRow(rp))
	}

	if r.Header.Get("HX-Request") == "true" && r.Header.Get("HX-Target") == tableID {
		templates.RenderSnippet(w, "flagged_table", data)
		return
	}
	templates.Render(w, r, "flagged_reviews", data)
}

func (h *Handler) fetch(ctx context.Context, req listview.Request) ([]platform.Report, int64, error) {
	page, err := h.API.ListReports(ctx, req.Values())
	if err != nil {
		return nil, 0, err
	}
	return page.Reports, page.Pagination.Total, nil
}

func newReportRow(rp platform.Report) reportRow {
	row := reportRow{Report: rp, Reported: rp.CreatedAt.Format("Jan 2, 2006")}
	if rp.Review != nil {
		row.ReviewTitle = rp.Review.Title
	}
	if row.ReviewTitle == "" {
		row.ReviewTitle = "(untitled review)"
	}
	if rp.Reporter != nil {
		row.ReporterName = rp.Reporter.Name
		if row.ReporterName == "" {
			row.ReporterName = rp.Reporter.Email
		}
	}
	return row
}

// HandleDismiss closes a report and leaves the review in place.
func (h *Handler) HandleDismiss(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	listview.Act(w, r, h.Log, listview.Action{
		Name:    "dismiss report",
		Return:  navigation.SafeBackURL(r, navigation.FlaggedReviewsBackURL),
		Success: "Report dismissed successfully!",
		Failure: "Failed to dismiss report",
		Removes: true,
		Do: func(ctx context.Context) (string, error) {
			return h.API.DismissReport(ctx, id)
		},
		Audit: func(ctx context.Context, err error) {
			h.AuditLog.ReportDismissed(ctx, r, id, err)
		},
	})
}

// HandleDeleteReview soft-deletes the reported review.
func (h *Handler) HandleDeleteReview(w http.ResponseWriter, r *http.Request) {
	reviewID := chi.URLParam(r, "reviewID")

	listview.Act(w, r, h.Log, listview.Action{
		Name:    "delete reported review",
		Return:  navigation.SafeBackURL(r, navigation.FlaggedReviewsBackURL),
		Success: "Reported review soft-deleted successfully!",
		Failure: "Failed to delete review",
		Removes: true,
		Do: func(ctx context.Context) (string, error) {
			return h.API.DeleteReview(ctx, reviewID)
		},
		Audit: func(ctx context.Context, err error) {
			h.AuditLog.ReviewDeleted(ctx, r, reviewID, err)
		},
	})
}
