package helpers

import (
	"strconv"

	"offerboard/internal/domain"
)

// DefaultPage is used when the page path segment is missing or not a number.
const DefaultPage = 1

// ParsePage converts the page path segment to a page number. Non-numeric input
// yields DefaultPage; out-of-range numbers are passed through and clamped by
// the pagination engine.
func ParsePage(s string) int {
	if s == "" {
		return DefaultPage
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return DefaultPage
	}
	return v
}

// PaginationMeta is the pagination metadata included in paginated list responses.
// swagger:model PaginationMeta
type PaginationMeta struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewPaginationMeta builds PaginationMeta from a page returned by the pagination engine.
func NewPaginationMeta[T any](p *domain.Page[T]) PaginationMeta {
	return PaginationMeta{
		Page:       p.CurrentPage,
		PageSize:   p.PageSize,
		Total:      p.TotalCount,
		TotalPages: p.TotalPages(),
	}
}
