// internal/app/features/dashboard/dashboard.go
package dashboard

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/flatfacts/admin/internal/app/platform"
	"github.com/flatfacts/admin/internal/app/system/auth"
	"github.com/flatfacts/admin/internal/app/system/timeouts"
	"github.com/flatfacts/admin/internal/app/system/viewdata"
	"go.uber.org/zap"
)

type signupBar struct {
	Month   string
	Count   int64
	Percent int
}

type dashboardData struct {
	viewdata.BaseVM

	Metrics *platform.DashboardMetrics
	Signups []signupBar
}

// ServeDashboard renders the overview counters. A failed fetch keeps the
// page and shows the platform's message in place of the numbers.
func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	data := dashboardData{BaseVM: viewdata.NewBaseVM(r, "Dashboard Overview", "/admin")}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Read(), h.Log, "dashboard metrics")
	defer cancel()

	m, err := h.API.Dashboard(ctx)
	if err != nil {
		if platform.IsUnauthorized(err) {
			auth.RedirectToSignIn(w, r)
			return
		}
		h.Log.Warn("dashboard metrics failed", zap.Error(err))
		data.Alert = platform.Message(err, "Failed to fetch dashboard metrics")
		templates.Render(w, r, "dashboard", data)
		return
	}

	data.Metrics = m
	data.Signups = signupBars(m.MonthlySignups)
	templates.Render(w, r, "dashboard", data)
}

// signupBars scales each month against the busiest one.
func signupBars(months []platform.MonthlyCount) []signupBar {
	var peak int64
	for _, m := range months {
		if m.Count > peak {
			peak = m.Count
		}
	}
	out := make([]signupBar, 0, len(months))
	for _, m := range months {
		pct := 0
		if peak > 0 && m.Count > 0 {
			pct = int(m.Count * 100 / peak)
		}
		out = append(out, signupBar{Month: m.Month, Count: m.Count, Percent: pct})
	}
	return out
}
