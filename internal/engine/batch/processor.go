package batch

import (
	"context"
	"errors"
	"fmt"
	"iter"

	"github.com/rshade/batchview/internal/logging"
	"github.com/rshade/batchview/pkg/batched"
)

// Default batch processing configuration.
const (
	// DefaultBatchSize is the default number of items per batch.
	DefaultBatchSize = 100

	// MinBatchSize is the minimum allowed batch size.
	MinBatchSize = 1

	// MaxBatchSize is the maximum allowed batch size.
	MaxBatchSize = 10000
)

// Common batch processing errors.
var (
	ErrInvalidBatchSize = errors.New("batch size must be between 1 and 10000")
	ErrNilCallback      = errors.New("batch callback cannot be nil")
	ErrSizeMismatch     = errors.New("view batch size differs from processor batch size")
)

// Batches is the part of a batched view a Processor consumes. Both
// *batched.View and *batched.BidirectionalView satisfy it.
type Batches[S any] interface {
	Count() int
	BatchSize() int
	Len(i int) int
	All() iter.Seq2[int, S]
}

// BatchCallback processes a single batch. It receives the batch and its
// 0-based index and should return an error if processing fails.
//
//nolint:revive // BatchCallback is the canonical name for this exported type.
type BatchCallback[S any] func(ctx context.Context, batch S, batchIndex int) error

// ProgressCallback is an optional callback invoked after each batch is processed.
type ProgressCallback func(progress *Progress)

// Processor runs a callback over every batch of a view, in order.
type Processor[S any] struct {
	batchSize  int
	onProgress ProgressCallback
}

// NewProcessor creates a processor with the given batch size. Unlike
// batched.New, an out-of-range size is reported as an error because it
// usually comes from user input.
func NewProcessor[S any](batchSize int) (*Processor[S], error) {
	if batchSize < MinBatchSize || batchSize > MaxBatchSize {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidBatchSize, batchSize)
	}
	return &Processor[S]{batchSize: batchSize}, nil
}

// NewProcessorWithDefaults creates a processor with DefaultBatchSize.
func NewProcessorWithDefaults[S any]() *Processor[S] {
	return &Processor[S]{batchSize: DefaultBatchSize}
}

// WithProgressCallback sets a progress callback for the processor.
func (p *Processor[S]) WithProgressCallback(callback ProgressCallback) *Processor[S] {
	p.onProgress = callback
	return p
}

// GetBatchSize returns the configured batch size.
func (p *Processor[S]) GetBatchSize() int {
	return p.batchSize
}

// Process calls callback for each batch of batches in iteration order and
// stops on the first error or on context cancellation. An empty view is not
// an error; the callback is simply never called. The view must have been
// batched with the processor's batch size.
func (p *Processor[S]) Process(ctx context.Context, batches Batches[S], callback BatchCallback[S]) error {
	if callback == nil {
		return ErrNilCallback
	}
	if batches.BatchSize() != p.batchSize {
		return fmt.Errorf("%w: view has %d, processor has %d", ErrSizeMismatch, batches.BatchSize(), p.batchSize)
	}

	count := batches.Count()
	progress := NewProgress(totalItems(batches, count), count, batches.BatchSize())
	logger := logging.FromContext(ctx)

	for i, b := range batches.All() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := callback(ctx, b, i); err != nil {
			return fmt.Errorf("batch %d failed: %w", i, err)
		}

		progress.AddProcessed(batches.Len(i))
		logger.Debug().Ctx(ctx).Int("batch", i).Object("progress", progress.Snapshot()).Msg("batch processed")
		if p.onProgress != nil {
			p.onProgress(progress)
		}
	}

	return nil
}

// CalculateBatches returns the [start, end) offsets of every batch of
// totalItems items.
func (p *Processor[S]) CalculateBatches(totalItems int) [][2]int {
	view := batched.Range{Lo: 0, Hi: totalItems}.Batched(p.batchSize)
	bounds := make([][2]int, 0, view.Count())
	for _, r := range view.All() {
		bounds = append(bounds, [2]int{r.Lo, r.Hi})
	}
	return bounds
}

// totalItems derives the element count from the batch count and the length
// of the final batch.
func totalItems[S any](batches Batches[S], count int) int {
	if count == 0 {
		return 0
	}
	return (count-1)*batches.BatchSize() + batches.Len(count-1)
}

// Reverse returns the batches of v in last-to-first order. Indexes keep
// their forward values.
func Reverse[P comparable, S any](v *batched.BidirectionalView[P, S]) Batches[S] {
	return reversed[P, S]{v}
}

type reversed[P comparable, S any] struct {
	*batched.BidirectionalView[P, S]
}

func (r reversed[P, S]) All() iter.Seq2[int, S] {
	return r.Backward()
}
