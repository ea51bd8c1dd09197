package batched

import "iter"

// BidirectionalView is a View over a BidirectionalCollection. In addition to
// everything a View offers it can step and iterate backward.
type BidirectionalView[P comparable, S any] struct {
	View[P, S]

	bidi BidirectionalCollection[P, S]
}

// NewBidirectional returns a view of source split into batches of batchSize
// elements. It panics with an error wrapping ErrInvalidBatchSize if batchSize <= 0.
func NewBidirectional[P comparable, S any](source BidirectionalCollection[P, S], batchSize int) *BidirectionalView[P, S] {
	checkBatchSize(batchSize)
	return &BidirectionalView[P, S]{
		View: View[P, S]{source: source, batchSize: batchSize},
		bidi: source,
	}
}

// IndexBefore returns i-1. The result is not bounds checked.
func (v *BidirectionalView[P, S]) IndexBefore(i int) int {
	return i - 1
}

// Backward returns an iterator over (index, batch) pairs from last to first.
// It yields exactly the pairs of All in reverse order.
func (v *BidirectionalView[P, S]) Backward() iter.Seq2[int, S] {
	return func(yield func(int, S) bool) {
		n := v.bidi.Count()
		count := batchCount(n, v.batchSize)
		if count == 0 {
			return
		}

		hi := v.bidi.EndIndex()
		lo := retreat(v.bidi, hi, n-(count-1)*v.batchSize)
		for i := count - 1; ; i-- {
			if !yield(i, v.bidi.Slice(lo, hi)) || i == 0 {
				return
			}
			hi = lo
			lo = retreat(v.bidi, hi, v.batchSize)
		}
	}
}
