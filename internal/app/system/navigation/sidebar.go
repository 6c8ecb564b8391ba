package navigation

import "strings"

// Link is one sidebar entry.
type Link struct {
	Label  string
	Href   string
	Active bool
}

// Section groups sidebar links under a heading.
type Section struct {
	Title string
	Links []Link
}

var sidebar = []Section{
	{Title: "Overview", Links: []Link{{Label: "Dashboard", Href: "/admin"}}},
	{Title: "Moderation", Links: []Link{{Label: "Flagged Reviews", Href: "/admin/moderation/flagged-reviews"}}},
	{Title: "Users", Links: []Link{{Label: "User Directory", Href: "/admin/users"}}},
	{Title: "Content", Links: []Link{
		{Label: "All Reviews", Href: "/admin/reviews"},
		{Label: "All Comments", Href: "/admin/comments"},
	}},
	{Title: "Communication", Links: []Link{
		{Label: "Support Messages", Href: "/admin/support"},
		{Label: "Notifications", Href: "/admin/notifications"},
	}},
	{Title: "Analytics", Links: []Link{
		{Label: "Deep Dive", Href: "/admin/analytics"},
		{Label: "User Activity", Href: "/admin/analytics/user-activity"},
	}},
	{Title: "Records", Links: []Link{{Label: "Admin Activity", Href: "/admin/activity"}}},
}

// Sidebar returns the sidebar with the entry for currentPath marked active.
// The longest matching href wins, so /admin/analytics/user-activity does not
// also light up Deep Dive.
func Sidebar(currentPath string) []Section {
	p := pathOf(currentPath)
	best := ""
	for _, s := range sidebar {
		for _, l := range s.Links {
			if matches(p, l.Href) && len(l.Href) > len(best) {
				best = l.Href
			}
		}
	}

	out := make([]Section, len(sidebar))
	for i, s := range sidebar {
		links := make([]Link, len(s.Links))
		for j, l := range s.Links {
			l.Active = l.Href == best
			links[j] = l
		}
		out[i] = Section{Title: s.Title, Links: links}
	}
	return out
}

func matches(path, href string) bool {
	if href == "/admin" {
		return path == "/admin" || path == "/admin/"
	}
	return path == href || strings.HasPrefix(path, href+"/")
}
