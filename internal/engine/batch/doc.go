// Package batch drives work over a batched view one batch at a time.
//
// A Processor walks the batches of a pkg/batched view in order, checks for
// context cancellation between batches, and reports Progress after each one.
// Because the view never copies its source, memory overhead stays at
// O(batch size) no matter how large the input is.
package batch
