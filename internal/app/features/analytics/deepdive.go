// internal/app/features/analytics/deepdive.go
package analytics

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/flatfacts/admin/internal/app/platform"
	"github.com/flatfacts/admin/internal/app/system/auth"
	"github.com/flatfacts/admin/internal/app/system/timeouts"
	"github.com/flatfacts/admin/internal/app/system/viewdata"
	"go.uber.org/zap"
)

// topLimit is how many tags and locations the deep dive asks for.
const topLimit = 15

type deepDiveData struct {
	viewdata.BaseVM

	Period     string
	Periods    []periodOption
	Engagement *platform.EngagementData
	Tags       *platform.TagData
	Locations  *platform.LocationData
	Trend      []bar
}

// ServeDeepDive renders engagement, tag and location analytics for one
// period. The three calls run one after another and the first failure
// stops the rest.
func (h *Handler) ServeDeepDive(w http.ResponseWriter, r *http.Request) {
	period := parsePeriod(r, deepDiveDefault)
	data := deepDiveData{
		BaseVM:  viewdata.NewBaseVM(r, "Deep Dive Analytics", "/admin"),
		Period:  period,
		Periods: periodOptions(period),
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Long(), h.Log, "deep dive analytics")
	defer cancel()

	err := func() error {
		var err error
		if data.Engagement, err = h.API.Engagement(ctx, period); err != nil {
			data.Alert = platform.Message(err, "Failed to fetch engagement analytics")
			return err
		}
		if data.Tags, err = h.API.Tags(ctx, period, topLimit); err != nil {
			data.Alert = platform.Message(err, "Failed to fetch tag analytics")
			return err
		}
		if data.Locations, err = h.API.Locations(ctx, period, topLimit); err != nil {
			data.Alert = platform.Message(err, "Failed to fetch location analytics")
			return err
		}
		return nil
	}()
	if err != nil {
		if platform.IsUnauthorized(err) {
			auth.RedirectToSignIn(w, r)
			return
		}
		h.Log.Warn("deep dive analytics failed", zap.String("period", period), zap.Error(err))
		// Partial results are not shown.
		data.Engagement, data.Tags, data.Locations = nil, nil, nil
	}

	if data.Engagement != nil {
		data.Trend = engagementBars(data.Engagement.EngagementTrends)
	}
	templates.Render(w, r, "analytics_deep_dive", data)
}
