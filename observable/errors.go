package observable

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned when an index lies outside the sequence.
	ErrOutOfRange = errors.New("index out of range")

	// ErrVetoed is the conventional error for a Before hook rejecting an operation.
	ErrVetoed = errors.New("operation vetoed")

	// ErrNoCurrent is returned by cursor operations that need a current element.
	ErrNoCurrent = errors.New("cursor has no current element")
)

// IndexError describes an out-of-range index.
type IndexError struct {
	Op    string
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: index %d out of range [0,%d)", e.Op, e.Index, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrOutOfRange }

func rangeErr(op string, index, n int) error {
	return &IndexError{Op: op, Index: index, Len: n}
}
