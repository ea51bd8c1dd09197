package pagination

import (
	"github.com/rshade/batchview/pkg/batched"
)

// Pages is the part of a batched view that pagination needs.
type Pages[S any] interface {
	Count() int
	BatchSize() int
	Len(i int) int
	At(i int) S
}

// Paginate returns the page params.Page of view, where page p is batch p-1.
// Pages past the end are capped to the last page and pages below MinPage
// are raised to the first. An empty view yields the zero S. The view's batch size is the page size; params.PageSize is only
// used to validate the request.
func Paginate[S any](view Pages[S], params PaginationParams) (S, PaginationMeta) {
	params.PageSize = view.BatchSize()
	params.Page = max(params.Page, MinPage)
	count := view.Count()

	var total int
	if count > 0 {
		total = (count-1)*params.PageSize + view.Len(count-1)
	}
	meta := NewPaginationMeta(params, total)

	var page S
	if count == 0 {
		return page, meta
	}
	return view.At(meta.CurrentPage - 1), meta
}

// PageOf paginates a slice. The returned page shares the slice's backing
// array. params must have passed Validate.
func PageOf[T any](items []T, params PaginationParams) ([]T, PaginationMeta) {
	page, meta := Paginate[[]T](batched.ArrayOf(items).Batched(params.PageSize), params)
	if page == nil {
		page = []T{}
	}
	return page, meta
}
