// Package navigation provides safe return URLs for row actions and the
// sidebar used by every admin page.
package navigation

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/dalemusser/waffle/pantry/query"
)

// BackURLOptions configures SafeBackURL.
type BackURLOptions struct {
	// AllowedPrefix is the required path prefix (e.g. "/admin/users").
	AllowedPrefix string

	// ExcludedSubpaths reject action URLs so a redirect never re-posts.
	ExcludedSubpaths []string

	// Fallback is used when no acceptable return URL was sent.
	Fallback string
}

// SafeBackURL reads the "return" query or form value and accepts it only
// when it is a local path under AllowedPrefix. The query string is kept,
// so a list comes back with the same search, filters, page and limit.
func SafeBackURL(r *http.Request, opts BackURLOptions) string {
	ret := query.Get(r, "return")
	if ret == "" {
		ret = strings.TrimSpace(r.FormValue("return"))
	}

	if ret != "" && isLocal(ret) {
		valid := true
		if opts.AllowedPrefix != "" && !hasPathPrefix(ret, opts.AllowedPrefix) {
			valid = false
		}
		for _, excluded := range opts.ExcludedSubpaths {
			if strings.Contains(pathOf(ret), excluded) {
				valid = false
				break
			}
		}
		if valid {
			return ret
		}
	}
	return opts.Fallback
}

// isLocal accepts "/path?query" and rejects anything that could leave the
// site: absolute URLs, scheme-relative "//host" and backslash tricks.
func isLocal(raw string) bool {
	if !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") || strings.Contains(raw, "\\") {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Scheme == "" && u.Host == ""
}

func pathOf(raw string) string {
	if i := strings.IndexAny(raw, "?#"); i >= 0 {
		return raw[:i]
	}
	return raw
}

func hasPathPrefix(raw, prefix string) bool {
	p := pathOf(raw)
	return p == prefix || strings.HasPrefix(p, strings.TrimSuffix(prefix, "/")+"/")
}

var actionSubpaths = []string{"/delete", "/ban", "/unban", "/dismiss", "/reply", "/edit"}

// Return-URL presets for each list page.
var (
	UsersBackURL = BackURLOptions{
		AllowedPrefix:    "/admin/users",
		ExcludedSubpaths: actionSubpaths,
		Fallback:         "/admin/users",
	}

	ReviewsBackURL = BackURLOptions{
		AllowedPrefix:    "/admin/reviews",
		ExcludedSubpaths: actionSubpaths,
		Fallback:         "/admin/reviews",
	}

	CommentsBackURL = BackURLOptions{
		AllowedPrefix:    "/admin/comments",
		ExcludedSubpaths: actionSubpaths,
		Fallback:         "/admin/comments",
	}

	FlaggedReviewsBackURL = BackURLOptions{
		AllowedPrefix:    "/admin/moderation/flagged-reviews",
		ExcludedSubpaths: actionSubpaths,
		Fallback:         "/admin/moderation/flagged-reviews",
	}

	SupportBackURL = BackURLOptions{
		AllowedPrefix:    "/admin/support",
		ExcludedSubpaths: actionSubpaths,
		Fallback:         "/admin/support",
	}
)
