package pagination

// PaginationMeta contains metadata about paginated results.
//
//nolint:revive // PaginationMeta is the canonical name for this exported type.
type PaginationMeta struct {
	CurrentPage int  `json:"current_page" yaml:"current_page"`
	PageSize    int  `json:"page_size"    yaml:"page_size"`
	TotalPages  int  `json:"total_pages"  yaml:"total_pages"`
	TotalItems  int  `json:"total_items"  yaml:"total_items"`
	HasPrevious bool `json:"has_previous" yaml:"has_previous"`
	HasNext     bool `json:"has_next"     yaml:"has_next"`
}

// NewPaginationMeta creates pagination metadata from parameters and total
// count. CurrentPage is the page actually served, so a request past the end
// reports the last page.
func NewPaginationMeta(params PaginationParams, totalCount int) PaginationMeta {
	totalPages := params.CalculateTotalPages(totalCount)

	currentPage := params.EffectivePage(totalPages)
	if currentPage == 0 {
		currentPage = 1
	}

	return PaginationMeta{
		CurrentPage: currentPage,
		PageSize:    params.PageSize,
		TotalPages:  totalPages,
		TotalItems:  totalCount,
		HasPrevious: currentPage > 1,
		HasNext:     currentPage < totalPages,
	}
}
