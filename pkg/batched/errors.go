package batched

import (
	"errors"
	"fmt"
)

// Precondition violations. Views panic with errors wrapping these values;
// callers that recover can match them with errors.Is.
var (
	ErrInvalidBatchSize = errors.New("batch size must be greater than zero")
	ErrIndexOutOfRange  = errors.New("batch index out of range")
)

// IndexOutOfRangeError reports a batch access outside [0, Count).
type IndexOutOfRangeError struct {
	Index int
	Count int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("%v: index %d, count %d", ErrIndexOutOfRange, e.Index, e.Count)
}

func (e *IndexOutOfRangeError) Unwrap() error {
	return ErrIndexOutOfRange
}

// checkBatchSize panics unless size is positive.
func checkBatchSize(size int) {
	if size <= 0 {
		panic(fmt.Errorf("%w: got %d", ErrInvalidBatchSize, size))
	}
}
