// internal/app/features/analytics/useractivity.go
package analytics

import (
	"math"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/flatfacts/admin/internal/app/platform"
	"github.com/flatfacts/admin/internal/app/system/auth"
	"github.com/flatfacts/admin/internal/app/system/timeouts"
	"github.com/flatfacts/admin/internal/app/system/viewdata"
	"go.uber.org/zap"
)

// trendRows is how many of the most recent days the breakdown shows.
const trendRows = 30

type trendRow struct {
	platform.ActivityTrend
	Day string
}

type userActivityData struct {
	viewdata.BaseVM

	Period         string
	Periods        []periodOption
	Activity       *platform.UserActivityData
	EngagementRate int
	Rows           []trendRow
	MAUBars        []bar
}

// ServeUserActivity renders active-user counts and the recent daily trend.
func (h *Handler) ServeUserActivity(w http.ResponseWriter, r *http.Request) {
	period := parsePeriod(r, userActivityDefault)
	data := userActivityData{
		BaseVM:  viewdata.NewBaseVM(r, "User Activity Analytics", "/admin/analytics"),
		Period:  period,
		Periods: periodOptions(period),
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Long(), h.Log, "user activity analytics")
	defer cancel()

	act, err := h.API.UserActivity(ctx, period)
	if err != nil {
		if platform.IsUnauthorized(err) {
			auth.RedirectToSignIn(w, r)
			return
		}
		h.Log.Warn("user activity analytics failed", zap.String("period", period), zap.Error(err))
		data.Alert = platform.Message(err, "Failed to fetch user activity data")
		templates.Render(w, r, "analytics_user_activity", data)
		return
	}

	data.Activity = act
	data.EngagementRate = engagementRate(act.Current)

	recent := act.Trends
	if len(recent) > trendRows {
		recent = recent[len(recent)-trendRows:]
	}
	var peak int64
	for _, t := range recent {
		data.Rows = append(data.Rows, trendRow{ActivityTrend: t, Day: formatDate(t.Date)})
		if t.MAU > peak {
			peak = t.MAU
		}
	}
	for _, t := range recent {
		data.MAUBars = append(data.MAUBars, bar{Label: formatDate(t.Date), Value: t.MAU, Percent: percentOf(t.MAU, peak)})
	}

	templates.Render(w, r, "analytics_user_activity", data)
}

// engagementRate is MAU as a whole percentage of all users.
func engagementRate(c platform.ActivityCounts) int {
	if c.TotalUsers <= 0 {
		return 0
	}
	return int(math.Round(float64(c.MAU) / float64(c.TotalUsers) * 100))
}
