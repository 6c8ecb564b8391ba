// internal/app/features/analytics/bars.go
package analytics

import (
	"time"

	"github.com/flatfacts/admin/internal/app/platform"
)

// bar is one row of a CSS bar chart. Percent is relative to the largest
// value in the series.
type bar struct {
	Label   string
	Value   int64
	Percent int
}

func percentOf(v, peak int64) int {
	if peak <= 0 || v <= 0 {
		return 0
	}
	return int(v * 100 / peak)
}

func engagementBars(trends []platform.EngagementTrend) []bar {
	var peak int64
	for _, t := range trends {
		if t.TotalEngagement > peak {
			peak = t.TotalEngagement
		}
	}
	out := make([]bar, 0, len(trends))
	for _, t := range trends {
		out = append(out, bar{Label: formatDate(t.Date), Value: t.TotalEngagement, Percent: percentOf(t.TotalEngagement, peak)})
	}
	return out
}

// formatDate turns the platform's YYYY-MM-DD into "Jan 2, 2006" and leaves
// anything else as sent.
func formatDate(s string) string {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("Jan 2, 2006")
		}
	}
	return s
}
