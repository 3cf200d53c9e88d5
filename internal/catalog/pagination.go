package catalog

import (
	"net/url"
	"strconv"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Meta is the pagination envelope returned next to every list result.
type Meta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int64 `json:"totalPages"`
}

func NewMeta(total int64, page Page) Meta {
	limit := int64(page.Limit)
	totalPages := total / limit
	if total%limit != 0 {
		totalPages++
	}
	return Meta{
		Total:      total,
		Page:       page.Number,
		Limit:      page.Limit,
		TotalPages: totalPages,
	}
}

// Page is a validated page request.
type Page struct {
	Number int
	Limit  int
}

func (p Page) Offset() int {
	return (p.Number - 1) * p.Limit
}

// ParsePage reads page and limit from query parameters. Absent, non-numeric
// or non-positive values fall back to the defaults.
func ParsePage(query url.Values) Page {
	page := DefaultPage
	limit := DefaultLimit

	if raw := query.Get("page"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 1 {
			page = n
		}
	}
	if raw := query.Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 1 {
			limit = n
		}
	}

	return Page{Number: page, Limit: limit}
}

// ListResponse is the JSON shape of every paginated listing.
type ListResponse[T any] struct {
	Data []T  `json:"data"`
	Meta Meta `json:"meta"`
}
