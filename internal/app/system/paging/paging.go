// internal/app/system/paging/paging.go
package paging

// Page-size options offered by every list page.
var Limits = []int{5, 10, 20}

// DefaultLimit is used when a request names no limit or an unsupported one.
const DefaultLimit = 10

// ValidLimit reports whether n is one of Limits.
func ValidLimit(n int) bool {
	for _, l := range Limits {
		if l == n {
			return true
		}
	}
	return false
}

// NormalizeLimit returns n when it is offered, otherwise DefaultLimit.
func NormalizeLimit(n int) int {
	if ValidLimit(n) {
		return n
	}
	return DefaultLimit
}

// TotalPages returns the number of pages needed to show total rows,
// never less than 1 so an empty list still has a page to stand on.
func TotalPages(total int64, limit int) int {
	if limit <= 0 {
		limit = DefaultLimit
	}
	n := int((total + int64(limit) - 1) / int64(limit))
	if n < 1 {
		n = 1
	}
	return n
}

// Clamp keeps page inside [1, totalPages].
func Clamp(page, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// Offset is the number of rows skipped before page.
func Offset(page, limit int) int64 {
	if page < 1 {
		page = 1
	}
	return int64(page-1) * int64(limit)
}

// Range is the 1-based row span shown on a page ("Showing 11–20 of 42").
type Range struct {
	Start int64
	End   int64
}

// ComputeRange returns the row span for page given total rows.
func ComputeRange(page, limit int, total int64) Range {
	if total == 0 {
		return Range{}
	}
	start := Offset(page, limit) + 1
	end := start + int64(limit) - 1
	if end > total {
		end = total
	}
	if start > total {
		start = total
	}
	return Range{Start: start, End: end}
}

// Window returns up to size page numbers centred on page, for numbered
// pager links.
func Window(page, totalPages, size int) []int {
	if size < 1 || totalPages < 1 {
		return nil
	}
	page = Clamp(page, totalPages)
	first := page - size/2
	if first < 1 {
		first = 1
	}
	last := first + size - 1
	if last > totalPages {
		last = totalPages
		first = last - size + 1
		if first < 1 {
			first = 1
		}
	}
	out := make([]int, 0, last-first+1)
	for p := first; p <= last; p++ {
		out = append(out, p)
	}
	return out
}
