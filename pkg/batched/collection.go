package batched

// Collection is an ordered, finite, multi-pass sequence that can be traversed
// forward from StartIndex to EndIndex and sliced into sub-range views.
//
// P is the position type. EndIndex is a past-the-end position and must never
// be passed to anything but Slice and comparisons. S is the type of the
// sub-range view returned by Slice; it must not copy elements.
type Collection[P comparable, S any] interface {
	// StartIndex returns the position of the first element, or EndIndex if empty.
	StartIndex() P
	// EndIndex returns the past-the-end position.
	EndIndex() P
	// IndexAfter returns the position immediately after i. i must not be EndIndex.
	IndexAfter(i P) P
	// Count returns the number of elements currently in the collection.
	Count() int
	// Slice returns a view of the elements in [lo, hi).
	Slice(lo, hi P) S
}

// RandomAccessCollection is a Collection whose positions can be advanced and
// measured in constant time. Views detect it at run time and skip stepping.
type RandomAccessCollection[P comparable, S any] interface {
	Collection[P, S]
	// IndexOffsetBy returns the position n steps from i. n may be negative.
	IndexOffsetBy(i P, n int) P
	// Distance returns the number of steps from from to to.
	Distance(from, to P) int
}

// BidirectionalCollection is a Collection that can also be traversed backward.
type BidirectionalCollection[P comparable, S any] interface {
	Collection[P, S]
	// IndexBefore returns the position immediately before i. i must not be StartIndex.
	IndexBefore(i P) P
}

// advance returns the position n steps after i.
func advance[P comparable, S any](c Collection[P, S], i P, n int) P {
	if ra, ok := c.(RandomAccessCollection[P, S]); ok {
		return ra.IndexOffsetBy(i, n)
	}
	for ; n > 0; n-- {
		i = c.IndexAfter(i)
	}
	return i
}

// retreat returns the position n steps before i.
func retreat[P comparable, S any](c BidirectionalCollection[P, S], i P, n int) P {
	if ra, ok := c.(RandomAccessCollection[P, S]); ok {
		return ra.IndexOffsetBy(i, -n)
	}
	for ; n > 0; n-- {
		i = c.IndexBefore(i)
	}
	return i
}

// distanceToEnd counts the elements from i to the end of c, stopping once the
// count exceeds limit. Forward-only sources therefore never walk more than
// limit+1 steps to answer "are there more than limit elements left".
func distanceToEnd[P comparable, S any](c Collection[P, S], i P, limit int) int {
	end := c.EndIndex()
	if ra, ok := c.(RandomAccessCollection[P, S]); ok {
		return ra.Distance(i, end)
	}
	n := 0
	for i != end && n <= limit {
		i = c.IndexAfter(i)
		n++
	}
	return n
}
