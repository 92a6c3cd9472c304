package partlist

import (
	"errors"
	"fmt"

	"github.com/hupe1980/partlist/observable"
)

var (
	// ErrOutOfRange is returned when an index lies outside the list or partition.
	ErrOutOfRange = observable.ErrOutOfRange

	// ErrVetoed is returned when an Observer rejects a change.
	ErrVetoed = observable.ErrVetoed

	// ErrUnsupportedKey is returned when an element's key has no partition and
	// none may be created.
	ErrUnsupportedKey = errors.New("unsupported partition key")

	// ErrKeyMismatch is returned when a partition is given an element of another key.
	ErrKeyMismatch = errors.New("element key does not match partition")

	// ErrDetached is returned by a partition that has been reclaimed.
	ErrDetached = errors.New("partition detached from list")

	// ErrReentrant is returned when an Observer mutates the list it observes.
	ErrReentrant = errors.New("list modified from inside an observer")
)

// IndexError describes an out-of-range index.
// It matches ErrOutOfRange with errors.Is.
type IndexError = observable.IndexError

// KeyError reports a partition key problem.
//
// The underlying sentinel (ErrUnsupportedKey or ErrKeyMismatch) can be
// accessed via errors.Unwrap.
type KeyError[K comparable] struct {
	Key   K
	cause error
}

func (e *KeyError[K]) Error() string {
	return fmt.Sprintf("%v: %v", e.cause, e.Key)
}

func (e *KeyError[K]) Unwrap() error { return e.cause }

// InvariantError is returned by Check when the two views disagree.
type InvariantError struct {
	Invariant string
	Index     int
	Msg       string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("invariant %s violated at %d: %s", e.Invariant, e.Index, e.Msg)
}

func invariantErrf(inv string, index int, format string, args ...any) error {
	return &InvariantError{Invariant: inv, Index: index, Msg: fmt.Sprintf(format, args...)}
}

func vetoErr(err error) error {
	if err == nil || errors.Is(err, ErrVetoed) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrVetoed, err)
}
