// internal/app/features/activity/types.go
package activity

import (
	"sort"
	"strings"

	"github.com/flatfacts/admin/internal/app/store/audit"
	"github.com/flatfacts/admin/internal/app/system/listview"
	"github.com/flatfacts/admin/internal/app/system/viewdata"
)

const (
	basePath = "/admin/activity"
	tableID  = "activity-table-wrap"

	filterEventType = "event_type"
	filterOutcome   = "outcome"

	timeLayout = "Jan 2, 2006 15:04:05 MST"
)

var eventLabels = map[string]string{
	audit.EventUserUpdated:      "User updated",
	audit.EventUserDeleted:      "User deleted",
	audit.EventUserBanned:       "User banned",
	audit.EventUserUnbanned:     "User unbanned",
	audit.EventReviewDeleted:    "Review deleted",
	audit.EventCommentDeleted:   "Comment deleted",
	audit.EventReportDismissed:  "Report dismissed",
	audit.EventSupportReplied:   "Support reply sent",
	audit.EventNotificationSent: "Notification sent",
	audit.EventProfileUpdated:   "Profile updated",
	audit.EventPasswordChanged:  "Password changed",
}

func eventLabel(t string) string {
	if l, ok := eventLabels[t]; ok {
		return l
	}
	return t
}

// eventRow is a single audit event row for display.
type eventRow struct {
	When       string
	EventType  string
	Label      string
	Actor      string
	TargetType string
	TargetID   string
	TargetURL  string
	Success    bool
	Failure    string
	IP         string
	Details    string
}

func newEventRow(e audit.Event) eventRow {
	row := eventRow{
		When:       e.Timestamp.UTC().Format(timeLayout),
		EventType:  e.EventType,
		Label:      eventLabel(e.EventType),
		Actor:      e.ActorEmail,
		TargetType: e.TargetType,
		TargetID:   e.TargetID,
		TargetURL:  targetURL(e.TargetType, e.TargetID),
		Success:    e.Success,
		Failure:    e.FailureReason,
		IP:         e.IP,
		Details:    formatDetails(e.Details),
	}
	if row.Actor == "" {
		row.Actor = e.ActorID
	}
	return row
}

// targetURL links the row to the dashboard page for its target, when one
// exists.
func targetURL(targetType, id string) string {
	if id == "" {
		return ""
	}
	switch targetType {
	case audit.TargetUser:
		return "/admin/users/" + id
	case audit.TargetReview:
		return "/admin/reviews/" + id
	}
	return ""
}

// formatDetails renders details as "k=v, k=v" in key order.
func formatDetails(d map[string]string) string {
	if len(d) == 0 {
		return ""
	}
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+d[k])
	}
	return strings.Join(parts, ", ")
}

type option struct {
	Value    string
	Label    string
	Selected bool
}

func eventTypeOptions(selected string) []option {
	out := []option{{Value: "", Label: "All Actions", Selected: selected == ""}}
	for _, t := range audit.EventTypes {
		out = append(out, option{Value: t, Label: eventLabel(t), Selected: t == selected})
	}
	return out
}

func outcomeOptions(selected string) []option {
	return []option{
		{Value: "", Label: "Any Outcome", Selected: selected == ""},
		{Value: audit.OutcomeSuccess, Label: "Succeeded", Selected: selected == audit.OutcomeSuccess},
		{Value: audit.OutcomeFailure, Label: "Failed", Selected: selected == audit.OutcomeFailure},
	}
}

// listData is the view model for the activity log page.
type listData struct {
	viewdata.BaseVM

	Enabled    bool
	Q          string
	EventTypes []option
	Outcomes   []option
	Rows       []eventRow
	Pager      listview.Pager
	ExportURL  string
}
