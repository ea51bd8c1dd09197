package batched

// Array is a random-access, bidirectional Collection over a Go slice held by
// pointer. Because the pointer is dereferenced on every call, a view over an
// Array observes appends and truncations made to the slice between calls.
//
// Slices handed out by an Array share the backing array with the source and
// have their capacity clipped to their length, so appending to a batch
// reallocates instead of overwriting the next batch.
type Array[T any] struct {
	s *[]T
}

// NewArray returns an Array tracking *s.
func NewArray[T any](s *[]T) Array[T] {
	return Array[T]{s: s}
}

// ArrayOf returns an Array over a fixed slice header. Element writes through
// s are still visible; changes to s's length are not.
func ArrayOf[T any](s []T) Array[T] {
	return Array[T]{s: &s}
}

// Batched splits a into batches of size elements.
func (a Array[T]) Batched(size int) *BidirectionalView[int, []T] {
	return NewBidirectional[int, []T](a, size)
}

func (a Array[T]) StartIndex() int { return 0 }

func (a Array[T]) EndIndex() int { return len(*a.s) }

func (a Array[T]) IndexAfter(i int) int { return i + 1 }

func (a Array[T]) IndexBefore(i int) int { return i - 1 }

func (a Array[T]) IndexOffsetBy(i, n int) int { return i + n }

func (a Array[T]) Distance(from, to int) int { return to - from }

func (a Array[T]) Count() int { return len(*a.s) }

func (a Array[T]) Slice(lo, hi int) []T { return (*a.s)[lo:hi:hi] }
