package batched

import "iter"

// View presents a Collection as a sequence of consecutive batches of at most
// batchSize elements. It holds the source by reference and never copies it.
type View[P comparable, S any] struct {
	source    Collection[P, S]
	batchSize int
}

// New returns a view of source split into batches of batchSize elements.
// It panics with an error wrapping ErrInvalidBatchSize if batchSize <= 0.
func New[P comparable, S any](source Collection[P, S], batchSize int) *View[P, S] {
	checkBatchSize(batchSize)
	return &View[P, S]{source: source, batchSize: batchSize}
}

// BatchSize returns the maximum number of elements per batch.
func (v *View[P, S]) BatchSize() int {
	return v.batchSize
}

// Source returns the wrapped collection.
func (v *View[P, S]) Source() Collection[P, S] {
	return v.source
}

// Count returns the number of batches, ceil(source.Count() / BatchSize()).
// The source length is read on every call.
func (v *View[P, S]) Count() int {
	return batchCount(v.source.Count(), v.batchSize)
}

// StartIndex returns the index of the first batch, always 0.
func (v *View[P, S]) StartIndex() int {
	return 0
}

// EndIndex returns the past-the-end batch index, equal to Count.
func (v *View[P, S]) EndIndex() int {
	return v.Count()
}

// IndexAfter returns i+1. The result is not bounds checked.
func (v *View[P, S]) IndexAfter(i int) int {
	return i + 1
}

// Len returns the number of elements in batch i without touching the
// source's positions. It panics like At when i is out of range.
func (v *View[P, S]) Len(i int) int {
	n := v.source.Count()
	v.checkIndex(i, batchCount(n, v.batchSize))
	if rest := n - i*v.batchSize; rest < v.batchSize {
		return rest
	}
	return v.batchSize
}

// At returns batch i as a sub-range view of the source.
// It panics with an *IndexOutOfRangeError unless 0 <= i < Count().
func (v *View[P, S]) At(i int) S {
	v.checkIndex(i, v.Count())

	start := advance(v.source, v.source.StartIndex(), i*v.batchSize)
	return v.source.Slice(start, v.batchEnd(start))
}

// All returns an iterator over (index, batch) pairs from first to last.
// The source is walked once, so a full pass over a forward-only source is
// O(n) rather than O(n^2/batchSize).
func (v *View[P, S]) All() iter.Seq2[int, S] {
	return func(yield func(int, S) bool) {
		end := v.source.EndIndex()
		start := v.source.StartIndex()
		for i := 0; start != end; i++ {
			next := v.batchEnd(start)
			if !yield(i, v.source.Slice(start, next)) {
				return
			}
			start = next
		}
	}
}

// batchEnd returns the end position of the batch beginning at start. It only
// advances batchSize steps when more than batchSize elements remain, so it
// never steps past the end of the source.
func (v *View[P, S]) batchEnd(start P) P {
	if distanceToEnd(v.source, start, v.batchSize) > v.batchSize {
		return advance(v.source, start, v.batchSize)
	}
	return v.source.EndIndex()
}

func (v *View[P, S]) checkIndex(i, count int) {
	if i < 0 || i >= count {
		panic(&IndexOutOfRangeError{Index: i, Count: count})
	}
}

// batchCount returns ceil(n / size) for n >= 0 and size > 0. It does not
// form n+size-1, which overflows for n near math.MaxInt.
func batchCount(n, size int) int {
	count := n / size
	if n%size != 0 {
		count++
	}
	return count
}
