// Package page provides a pure pagination engine over ordered slices.
package page

// Page is one page of an ordered collection together with pagination
// metadata.
type Page[T any] struct {
	Items      []T `json:"items"`
	TotalCount int `json:"totalCount"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
}

// Paginate slices items into the requested page.
//
// The caller must pre-sort items; Paginate never re-sorts and never mutates
// the input. page and pageSize are clamped to a minimum of 1 and may be
// arbitrarily large. TotalPages is ceil(len(items)/pageSize) and is 0 for an
// empty input. A page past the end yields an empty Items slice rather than
// an error.
func Paginate[T any](items []T, pageNum, pageSize int) Page[T] {
	if pageNum < 1 {
		pageNum = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}

	total := len(items)

	// The ceiling division would wrap for pageSize near MaxInt, so the
	// single-page case is answered directly. In the remaining case
	// pageSize < total keeps the sum in range.
	var totalPages int
	switch {
	case total == 0:
		totalPages = 0
	case pageSize >= total:
		totalPages = 1
	default:
		totalPages = (total + pageSize - 1) / pageSize
	}

	// Pages past the end are empty; deciding that before the offset
	// multiplication keeps (pageNum-1)*pageSize below total.
	start, end := total, total
	if pageNum <= totalPages {
		start = (pageNum - 1) * pageSize
		end = start + pageSize
		if end > total || end < start {
			end = total
		}
	}

	out := make([]T, end-start)
	copy(out, items[start:end])

	return Page[T]{
		Items:      out,
		TotalCount: total,
		Page:       pageNum,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}
