package pagination

import (
	"errors"
	"fmt"
)

// Pagination defaults and validation limits.
const (
	DefaultPage     = 1
	MinPage         = 1
	DefaultPageSize = 50
	MinPageSize     = 1
	MaxPageSize     = 1000
)

// Common validation errors.
var (
	ErrInvalidPageSize = errors.New("page-size must be between 1 and 1000")
	ErrInvalidPage     = errors.New("page must be >= 1")
)

// PaginationParams holds the CLI page flags.
//
//nolint:revive // PaginationParams is the canonical name for this exported type.
type PaginationParams struct {
	// Page is the 1-based page number.
	Page int

	// PageSize is the number of items per page.
	PageSize int
}

// NewPaginationParams creates a PaginationParams with default values.
func NewPaginationParams() *PaginationParams {
	return &PaginationParams{
		Page:     DefaultPage,
		PageSize: DefaultPageSize,
	}
}

// Validate checks that the parameters are within bounds (value receiver).
func (p PaginationParams) Validate() error {
	if p.Page < MinPage {
		return fmt.Errorf("%w: got %d", ErrInvalidPage, p.Page)
	}
	if p.PageSize < MinPageSize || p.PageSize > MaxPageSize {
		return fmt.Errorf("%w: got %d", ErrInvalidPageSize, p.PageSize)
	}
	return nil
}

// Offset returns the index of the first item on the requested page.
func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// CalculateTotalPages returns ceil(totalResults / PageSize).
func (p PaginationParams) CalculateTotalPages(totalResults int) int {
	if totalResults == 0 || p.PageSize <= 0 {
		return 0
	}
	return (totalResults + p.PageSize - 1) / p.PageSize
}

// EffectivePage caps the requested page to the last available page. It
// returns 0 when there are no pages.
func (p PaginationParams) EffectivePage(totalPages int) int {
	if totalPages == 0 {
		return 0
	}
	return min(p.Page, totalPages)
}
