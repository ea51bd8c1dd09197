package batched

import (
	"fmt"
	"iter"
)

// Range is the half-open integer interval [Lo, Hi). A Range with Hi < Lo is
// empty. Range is random access and bidirectional; its slices are Ranges.
// Its length Hi-Lo must fit in an int, so a Range cannot span more than
// math.MaxInt values.
type Range struct {
	Lo int
	Hi int
}

// Batched splits r into batches of size elements.
func (r Range) Batched(size int) *BidirectionalView[int, Range] {
	return NewBidirectional[int, Range](r, size)
}

func (r Range) StartIndex() int { return r.Lo }

func (r Range) EndIndex() int { return max(r.Lo, r.Hi) }

func (r Range) IndexAfter(i int) int { return i + 1 }

func (r Range) IndexBefore(i int) int { return i - 1 }

func (r Range) IndexOffsetBy(i, n int) int { return i + n }

func (r Range) Distance(from, to int) int { return to - from }

func (r Range) Count() int { return r.EndIndex() - r.Lo }

func (r Range) Slice(lo, hi int) Range { return Range{Lo: lo, Hi: hi} }

// Contains reports whether x lies in [Lo, Hi).
func (r Range) Contains(x int) bool {
	return x >= r.Lo && x < r.Hi
}

// Values returns an iterator over the integers in r in ascending order.
func (r Range) Values() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := r.Lo; i < r.Hi; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Lo, r.Hi)
}

// ClosedRange is the inclusive integer interval [Lo, Hi]. It always holds at
// least one element; use NewClosedRange to have that checked. Positions run
// from Lo to Hi+1, so Hi must be below math.MaxInt.
type ClosedRange struct {
	Lo int
	Hi int
}

// NewClosedRange returns [lo, hi]. It panics if lo > hi.
func NewClosedRange(lo, hi int) ClosedRange {
	if lo > hi {
		panic(fmt.Sprintf("batched: closed range lower bound %d above upper bound %d", lo, hi))
	}
	return ClosedRange{Lo: lo, Hi: hi}
}

// Batched splits r into batches of size elements.
func (r ClosedRange) Batched(size int) *BidirectionalView[int, Range] {
	return NewBidirectional[int, Range](r, size)
}

func (r ClosedRange) StartIndex() int { return r.Lo }

func (r ClosedRange) EndIndex() int { return max(r.Lo, r.Hi+1) }

func (r ClosedRange) IndexAfter(i int) int { return i + 1 }

func (r ClosedRange) IndexBefore(i int) int { return i - 1 }

func (r ClosedRange) IndexOffsetBy(i, n int) int { return i + n }

func (r ClosedRange) Distance(from, to int) int { return to - from }

func (r ClosedRange) Count() int { return r.EndIndex() - r.Lo }

func (r ClosedRange) Slice(lo, hi int) Range { return Range{Lo: lo, Hi: hi} }

// HalfOpen returns the equivalent half-open Range [Lo, Hi+1).
func (r ClosedRange) HalfOpen() Range {
	return Range{Lo: r.Lo, Hi: r.EndIndex()}
}

func (r ClosedRange) String() string {
	return fmt.Sprintf("[%d,%d]", r.Lo, r.Hi)
}
