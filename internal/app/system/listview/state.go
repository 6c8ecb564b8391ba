package listview

import (
	"context"
	"errors"

	"github.com/flatfacts/admin/internal/app/system/paging"
)

// ErrOutOfRange is returned by Load when the requested page lies past the
// last page. The returned State carries the clamped request; handlers
// redirect to it.
var ErrOutOfRange = errors.New("listview: page out of range")

// Pagination is the summary shown under a table.
type Pagination struct {
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// FetchFunc loads one page for req and reports the total row count.
type FetchFunc[T any] func(ctx context.Context, req Request) (items []T, total int64, err error)

// State is one rendered page of a list.
type State[T any] struct {
	Request    Request
	Items      []T
	Pagination Pagination
}

// Load performs exactly one fetch for req.
func Load[T any](ctx context.Context, req Request, fetch FetchFunc[T]) (State[T], error) {
	st := State[T]{Request: req}

	items, total, err := fetch(ctx, req)
	if err != nil {
		st.Pagination = Pagination{Page: req.Page, Limit: req.Limit, TotalPages: 1}
		return st, err
	}

	totalPages := paging.TotalPages(total, req.Limit)
	st.Items = items
	st.Pagination = Pagination{
		Total:      total,
		Page:       paging.Clamp(req.Page, totalPages),
		Limit:      req.Limit,
		TotalPages: totalPages,
	}

	if req.Page > totalPages {
		st.Request = req.WithPage(totalPages, totalPages)
		st.Items = nil
		return st, ErrOutOfRange
	}
	return st, nil
}

// PageLink is a numbered pager link.
type PageLink struct {
	Number  int
	URL     string
	Current bool
}

// LimitOption is one entry of the page-size selector.
type LimitOption struct {
	Value    int
	URL      string
	Selected bool
}

// Pager is the template model for the pager partial.
type Pager struct {
	Total      int64
	Page       int
	Limit      int
	TotalPages int
	RangeStart int64
	RangeEnd   int64

	HasPrev  bool
	HasNext  bool
	PrevURL  string
	NextURL  string
	FirstURL string
	LastURL  string

	Pages  []PageLink
	Limits []LimitOption

	// Hidden carries search and filters into the page-size form.
	Hidden map[string]string
	// Return is the URL row-action forms send back to.
	Return string
}

const pageWindow = 5

// Pager builds the pager model for links under basePath.
func (s State[T]) Pager(basePath string) Pager {
	p := s.Pagination
	req := s.Request
	rng := paging.ComputeRange(p.Page, p.Limit, p.Total)

	pg := Pager{
		Total:      p.Total,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: p.TotalPages,
		RangeStart: rng.Start,
		RangeEnd:   rng.End,
		HasPrev:    p.Page > 1,
		HasNext:    p.Page < p.TotalPages,
		FirstURL:   req.WithPage(1, p.TotalPages).URL(basePath),
		LastURL:    req.WithPage(p.TotalPages, p.TotalPages).URL(basePath),
		Return:     req.WithPage(p.Page, p.TotalPages).URL(basePath),
		Hidden:     map[string]string{},
	}
	if pg.HasPrev {
		pg.PrevURL = req.WithPage(p.Page-1, p.TotalPages).URL(basePath)
	}
	if pg.HasNext {
		pg.NextURL = req.WithPage(p.Page+1, p.TotalPages).URL(basePath)
	}

	for _, n := range paging.Window(p.Page, p.TotalPages, pageWindow) {
		pg.Pages = append(pg.Pages, PageLink{
			Number:  n,
			URL:     req.WithPage(n, p.TotalPages).URL(basePath),
			Current: n == p.Page,
		})
	}

	for _, l := range paging.Limits {
		pg.Limits = append(pg.Limits, LimitOption{
			Value:    l,
			URL:      req.WithLimit(l).URL(basePath),
			Selected: l == p.Limit,
		})
	}

	if req.Query != "" {
		pg.Hidden["q"] = req.Query
	}
	for k, v := range req.Filters {
		if v != "" {
			pg.Hidden[k] = v
		}
	}
	return pg
}
