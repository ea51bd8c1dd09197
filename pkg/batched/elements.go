package batched

import (
	"container/list"
	"iter"
)

// Elements adapts a container/list.List. It is bidirectional with an O(1)
// Count, but not random access. Positions are *list.Element with nil as the
// end; the list is read live on every call.
type Elements struct {
	l *list.List
}

// FromList returns an Elements over l.
func FromList(l *list.List) Elements {
	return Elements{l: l}
}

// Batched splits e into batches of size elements.
func (e Elements) Batched(size int) *BidirectionalView[*list.Element, ElementRange] {
	return NewBidirectional[*list.Element, ElementRange](e, size)
}

func (e Elements) StartIndex() *list.Element { return e.l.Front() }

func (e Elements) EndIndex() *list.Element { return nil }

func (e Elements) IndexAfter(i *list.Element) *list.Element { return i.Next() }

func (e Elements) IndexBefore(i *list.Element) *list.Element {
	if i == nil {
		return e.l.Back()
	}
	return i.Prev()
}

func (e Elements) Count() int { return e.l.Len() }

func (e Elements) Slice(lo, hi *list.Element) ElementRange {
	return ElementRange{lo: lo, hi: hi}
}

// ElementRange is a lazy view of the elements in [lo, hi) of a list.List.
type ElementRange struct {
	lo *list.Element
	hi *list.Element
}

// All returns an iterator over the element values in the range.
func (r ElementRange) All() iter.Seq[any] {
	return func(yield func(any) bool) {
		for i := r.lo; i != r.hi; i = i.Next() {
			if !yield(i.Value) {
				return
			}
		}
	}
}

// Len walks the range; it is O(len).
func (r ElementRange) Len() int {
	n := 0
	for i := r.lo; i != r.hi; i = i.Next() {
		n++
	}
	return n
}
