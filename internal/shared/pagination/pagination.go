package pagination

import "strconv"

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// Params are sanitized pagination inputs. Page is 1-based.
type Params struct {
	Page     int
	PageSize int
}

// Parse builds Params from raw query values, falling back to defaults for
// absent or invalid input.
func Parse(pageRaw, sizeRaw string) Params {
	page := DefaultPage
	if v, err := strconv.Atoi(pageRaw); err == nil && v >= 1 {
		page = v
	}
	size := DefaultPageSize
	if v, err := strconv.Atoi(sizeRaw); err == nil && v > 0 {
		size = v
	}
	return Params{Page: page, PageSize: size}
}

// Offset returns the row offset for the current page.
func (p Params) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Envelope describes the page of a larger result set.
type Envelope struct {
	TotalItems   int `json:"totalItems"`
	TotalPages   int `json:"totalPages"`
	CurrentPage  int `json:"currentPage"`
	ItemsPerPage int `json:"itemsPerPage"`
}

// NewEnvelope computes the envelope for a total row count. Pages past the
// end are reported as-is; the caller returns an empty item list for them.
func NewEnvelope(totalItems int, p Params) Envelope {
	totalPages := 0
	if totalItems > 0 {
		totalPages = (totalItems + p.PageSize - 1) / p.PageSize
	}
	return Envelope{
		TotalItems:   totalItems,
		TotalPages:   totalPages,
		CurrentPage:  p.Page,
		ItemsPerPage: p.PageSize,
	}
}
