package batched

import (
	"iter"
	"slices"
)

// Node is an element of a List.
type Node[T any] struct {
	Value T

	next *Node[T]
}

// Next returns the following node, or nil at the end of the list.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// List is a singly linked list. It supports forward traversal only: a view
// over a List has no backward iteration, and reaching batch i costs
// O(i*size) steps. Positions are node pointers with nil as the end.
type List[T any] struct {
	head *Node[T]
	tail *Node[T]
	n    int
}

// NewList returns a list holding values in order.
func NewList[T any](values ...T) *List[T] {
	l := &List[T]{}
	for _, v := range values {
		l.PushBack(v)
	}
	return l
}

// PushBack appends v to the list.
func (l *List[T]) PushBack(v T) {
	node := &Node[T]{Value: v}
	if l.tail == nil {
		l.head = node
	} else {
		l.tail.next = node
	}
	l.tail = node
	l.n++
}

// PushFront prepends v to the list.
func (l *List[T]) PushFront(v T) {
	l.head = &Node[T]{Value: v, next: l.head}
	if l.tail == nil {
		l.tail = l.head
	}
	l.n++
}

// Batched splits l into batches of size elements.
func (l *List[T]) Batched(size int) *View[*Node[T], ListSlice[T]] {
	return New[*Node[T], ListSlice[T]](l, size)
}

func (l *List[T]) StartIndex() *Node[T] { return l.head }

func (l *List[T]) EndIndex() *Node[T] { return nil }

func (l *List[T]) IndexAfter(i *Node[T]) *Node[T] { return i.next }

func (l *List[T]) Count() int { return l.n }

func (l *List[T]) Slice(lo, hi *Node[T]) ListSlice[T] {
	return ListSlice[T]{lo: lo, hi: hi}
}

// All returns an iterator over the list's values.
func (l *List[T]) All() iter.Seq[T] {
	return ListSlice[T]{lo: l.head}.All()
}

// ListSlice is a lazy view of the nodes in [lo, hi) of a List. It is itself a
// forward-only Collection, so a batch can be batched again.
type ListSlice[T any] struct {
	lo *Node[T]
	hi *Node[T]
}

// Batched splits s into batches of size elements.
func (s ListSlice[T]) Batched(size int) *View[*Node[T], ListSlice[T]] {
	return New[*Node[T], ListSlice[T]](s, size)
}

func (s ListSlice[T]) StartIndex() *Node[T] { return s.lo }

func (s ListSlice[T]) EndIndex() *Node[T] { return s.hi }

func (s ListSlice[T]) IndexAfter(i *Node[T]) *Node[T] { return i.next }

// Count walks the slice; it is O(len).
func (s ListSlice[T]) Count() int {
	n := 0
	for i := s.lo; i != s.hi; i = i.next {
		n++
	}
	return n
}

func (s ListSlice[T]) Slice(lo, hi *Node[T]) ListSlice[T] {
	return ListSlice[T]{lo: lo, hi: hi}
}

// All returns an iterator over the values in the slice.
func (s ListSlice[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := s.lo; i != s.hi; i = i.next {
			if !yield(i.Value) {
				return
			}
		}
	}
}

// Values copies the slice's values into a new []T.
func (s ListSlice[T]) Values() []T {
	return slices.Collect(s.All())
}
