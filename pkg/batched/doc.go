// Package batched provides a lazy, non-copying view that partitions an ordered
// collection into consecutive fixed-size batches.
//
// A View never materializes its batches. Each access computes the batch
// boundaries from the source's current length and returns the source's own
// sub-range view, so no element is ever copied. Key properties:
//   - Construction is O(1); the batch count is ceil(len / size), recomputed per call
//   - Every batch but the last holds exactly size elements
//   - Random-access sources slice in O(1); forward-only sources step positions
//   - Backward traversal exists only when the source supports it (BidirectionalView)
//
// The view is a live projection of its source, not a snapshot: mutating the
// source between calls changes the boundaries seen by later calls. A view
// performs no locking and must not be used while the source is being mutated.
//
// Passing a non-positive batch size, or indexing outside [0, Count()), is a
// programmer error and panics with an error wrapping ErrInvalidBatchSize or
// ErrIndexOutOfRange respectively.
//
// Example:
//
//	view := batched.Range{Lo: 0, Hi: 7}.Batched(3)
//	for i, batch := range view.All() {
//		fmt.Println(i, batch) // 0 [0,3)  1 [3,6)  2 [6,7)
//	}
package batched
