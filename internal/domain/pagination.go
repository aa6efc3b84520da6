package domain

import (
	"context"
	"fmt"
)

// PaginationParams holds offset-based pagination parameters for list queries.
type PaginationParams struct {
	Page     int
	PageSize int
}

// Offset returns the row offset for the current page (0-based).
// Formula: (Page - 1) * PageSize.
func (p PaginationParams) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}

// LastPage returns ceiling(total / PageSize), but never less than 1: an empty
// result still has one (empty) page.
func (p PaginationParams) LastPage(total int) int {
	if p.PageSize < 1 || total <= 0 {
		return 1
	}
	return (total + p.PageSize - 1) / p.PageSize
}

// Clamp moves Page into [1, LastPage(total)].
func (p PaginationParams) Clamp(total int) PaginationParams {
	last := p.LastPage(total)
	switch {
	case p.Page < 1:
		p.Page = 1
	case p.Page > last:
		p.Page = last
	}
	return p
}

// Page is one window over an ordered result set.
type Page[T any] struct {
	Items       []T `json:"items"`
	CurrentPage int `json:"current_page"`
	PageSize    int `json:"page_size"`
	TotalCount  int `json:"total_count"`
}

// TotalPages returns the number of pages implied by TotalCount; at least 1.
func (p *Page[T]) TotalPages() int {
	return PaginationParams{PageSize: p.PageSize}.LastPage(p.TotalCount)
}

// PageSource is a query that can count its rows and return a window of them in
// a fixed order.
type PageSource[T any] interface {
	Count(ctx context.Context) (int, error)
	Window(ctx context.Context, limit, offset int) ([]T, error)
}

// Paginate counts src once, clamps page to the valid range and fetches that
// page's window.
func Paginate[T any](ctx context.Context, src PageSource[T], page, pageSize int) (*Page[T], error) {
	if pageSize < 1 {
		return nil, fmt.Errorf("page size must be positive, got %d", pageSize)
	}
	total, err := src.Count(ctx)
	if err != nil {
		return nil, err
	}
	p := PaginationParams{Page: page, PageSize: pageSize}.Clamp(total)

	items, err := src.Window(ctx, p.PageSize, p.Offset())
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return &Page[T]{
		Items:       items,
		CurrentPage: p.Page,
		PageSize:    p.PageSize,
		TotalCount:  total,
	}, nil
}
