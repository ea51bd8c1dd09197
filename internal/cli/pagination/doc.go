// Package pagination maps CLI page flags onto batched views.
//
// Page p (1-based) of a listing is batch p-1 of a batched.View whose batch
// size is the page size, so a page is read without copying or scanning the
// pages before it beyond what the source itself requires.
//
//   - PaginationParams: CLI flag values and validation
//   - PaginationMeta: response metadata for paginated results
//   - Paginate / PageOf: page selection over a view or a slice
package pagination
