package batched

import "unicode/utf8"

// Text is a string viewed as a sequence of runes. Positions are byte offsets
// on rune boundaries, so traversal is bidirectional but not random access,
// and Count is O(len). Invalid UTF-8 bytes count as one rune each.
// Slices are substrings and share the string's memory.
type Text string

// Batched splits t into batches of size runes.
func (t Text) Batched(size int) *BidirectionalView[int, string] {
	return NewBidirectional[int, string](t, size)
}

func (t Text) StartIndex() int { return 0 }

func (t Text) EndIndex() int { return len(t) }

func (t Text) IndexAfter(i int) int {
	_, size := utf8.DecodeRuneInString(string(t[i:]))
	return i + size
}

func (t Text) IndexBefore(i int) int {
	_, size := utf8.DecodeLastRuneInString(string(t[:i]))
	return i - size
}

func (t Text) Count() int { return utf8.RuneCountInString(string(t)) }

func (t Text) Slice(lo, hi int) string { return string(t[lo:hi]) }
