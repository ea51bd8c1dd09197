// Package tui provides the interactive batch pager used by the browse
// command.
//
// PagerModel shows one batch at a time from a bidirectional batched view.
// Moving between batches goes through the view's IndexAfter and IndexBefore,
// and only the displayed batch is ever sliced out of the source.
package tui
