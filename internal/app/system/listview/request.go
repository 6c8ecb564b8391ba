// Package listview is the list controller shared by every admin table:
// users, reviews, comments, flagged reviews, support messages and the
// dashboard's own activity log.
//
// The list state (search text, filters, page, page size) lives in the page
// URL. Each GET fetches exactly one page from the backing source; each row
// action performs one mutation and redirects back to the same URL, which is
// the single re-fetch that shows its effect.
package listview

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/flatfacts/admin/internal/app/system/paging"
)

// Request is the list state: {query, filters, page >= 1, limit in {5,10,20}}.
type Request struct {
	Query   string
	Filters map[string]string
	Page    int
	Limit   int

	// keys keeps filter order stable when encoding.
	keys []string
}

// NewRequest returns page 1 at the default limit with the named filters
// present but empty.
func NewRequest(filterKeys ...string) Request {
	f := make(map[string]string, len(filterKeys))
	for _, k := range filterKeys {
		f[k] = ""
	}
	return Request{
		Filters: f,
		Page:    1,
		Limit:   paging.DefaultLimit,
		keys:    append([]string(nil), filterKeys...),
	}
}

// Parse reads list state from r's query string. Unknown filters are
// ignored, a missing or bad page becomes 1, and an unsupported limit
// becomes the default.
func Parse(r *http.Request, filterKeys ...string) Request {
	req := NewRequest(filterKeys...)
	req.Query = query.Search(r, "q")
	for _, k := range filterKeys {
		req.Filters[k] = query.Get(r, k)
	}
	if p, err := strconv.Atoi(query.Get(r, "page")); err == nil && p > 0 {
		req.Page = p
	}
	if l, err := strconv.Atoi(query.Get(r, "limit")); err == nil {
		req.Limit = paging.NormalizeLimit(l)
	}
	return req
}

// Filter returns one filter value.
func (q Request) Filter(key string) string {
	return q.Filters[key]
}

// Active reports whether any search or filter is applied.
func (q Request) Active() bool {
	if q.Query != "" {
		return true
	}
	for _, v := range q.Filters {
		if v != "" {
			return true
		}
	}
	return false
}

func (q Request) clone() Request {
	f := make(map[string]string, len(q.Filters))
	for k, v := range q.Filters {
		f[k] = v
	}
	q.Filters = f
	q.keys = append([]string(nil), q.keys...)
	return q
}

// WithQuery changes the search text and goes back to page 1.
func (q Request) WithQuery(s string) Request {
	n := q.clone()
	n.Query = s
	n.Page = 1
	return n
}

// WithFilter changes one filter and goes back to page 1.
func (q Request) WithFilter(key, value string) Request {
	n := q.clone()
	if _, known := n.Filters[key]; !known {
		n.keys = append(n.keys, key)
	}
	n.Filters[key] = value
	n.Page = 1
	return n
}

// WithLimit changes the page size and goes back to page 1.
func (q Request) WithLimit(limit int) Request {
	n := q.clone()
	n.Limit = paging.NormalizeLimit(limit)
	n.Page = 1
	return n
}

// WithPage moves to page p, kept inside [1, totalPages].
func (q Request) WithPage(p, totalPages int) Request {
	n := q.clone()
	n.Page = paging.Clamp(p, totalPages)
	return n
}

// Values serialises the state for the upstream list call. Empty search and
// empty filters are left out; page and limit are always sent.
func (q Request) Values() url.Values {
	v := url.Values{}
	if q.Query != "" {
		v.Set("q", q.Query)
	}
	for _, k := range q.keys {
		if val := q.Filters[k]; val != "" {
			v.Set(k, val)
		}
	}
	v.Set("page", strconv.Itoa(q.Page))
	v.Set("limit", strconv.Itoa(q.Limit))
	return v
}

// URL is the dashboard link that reproduces this state under basePath.
func (q Request) URL(basePath string) string {
	return basePath + "?" + q.Encode()
}

// Encode is the query string for dashboard links.
func (q Request) Encode() string {
	return q.Values().Encode()
}
