// internal/app/features/analytics/period.go
package analytics

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/flatfacts/admin/internal/app/system/inputval"
)

const (
	deepDiveDefault     = "30d"
	userActivityDefault = "90d"
)

var periodLabels = map[string]string{
	"7d":  "Last 7 Days",
	"30d": "Last 30 Days",
	"90d": "Last 90 Days",
	"1y":  "Last Year",
}

type periodOption struct {
	Value    string
	Label    string
	Selected bool
}

// parsePeriod reads ?period=, falling back to def for anything unknown.
func parsePeriod(r *http.Request, def string) string {
	p := query.Get(r, "period")
	if !inputval.IsValidPeriod(p) {
		return def
	}
	return p
}

func periodOptions(selected string) []periodOption {
	opts := make([]periodOption, 0, len(inputval.Periods))
	for _, p := range inputval.Periods {
		opts = append(opts, periodOption{Value: p, Label: periodLabels[p], Selected: p == selected})
	}
	return opts
}
