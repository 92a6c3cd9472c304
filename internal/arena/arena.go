package arena

import (
	"errors"
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"github.com/hupe1980/partlist/internal/conv"
)

// Handle addresses one element in an Arena.
type Handle uint32

// MaxHandle is the largest handle an Arena hands out.
const MaxHandle = ^Handle(0) - 1

var (
	// ErrInvalidHandle is returned when a handle is not live.
	ErrInvalidHandle = errors.New("arena: invalid handle")
	// ErrFull is returned when every handle is in use.
	ErrFull = errors.New("arena: full")
)

// Arena is a slot allocator for values of type T.
// It is not safe for concurrent use.
type Arena[T any] struct {
	slots []T
	live  *bitset.BitSet
	free  []Handle
	count int
}

// New creates an arena with room for capacity values before growing.
func New[T any](capacity int) *Arena[T] {
	return &Arena[T]{
		slots: make([]T, 0, capacity),
		live:  bitset.New(uint(capacity)),
	}
}

// Alloc stores v and returns its handle.
func (a *Arena[T]) Alloc(v T) (Handle, error) {
	if n := len(a.free); n > 0 {
		h := a.free[n-1]
		a.free = a.free[:n-1]
		a.slots[h] = v
		a.live.Set(uint(h))
		a.count++
		return h, nil
	}
	n, err := conv.IntToUint32(len(a.slots))
	if err != nil || Handle(n) > MaxHandle {
		return 0, ErrFull
	}
	h := Handle(n)
	a.slots = append(a.slots, v)
	a.live.Set(uint(h))
	a.count++
	return h, nil
}

// Get returns the value stored under h.
// It panics if h is not live; callers only pass handles they hold.
func (a *Arena[T]) Get(h Handle) T {
	if !a.Live(h) {
		panic(fmt.Errorf("%w: %d", ErrInvalidHandle, h))
	}
	return a.slots[h]
}

// Lookup returns the value stored under h and whether h is live.
func (a *Arena[T]) Lookup(h Handle) (T, bool) {
	if !a.Live(h) {
		var zero T
		return zero, false
	}
	return a.slots[h], true
}

// Free releases h and returns the value it held.
func (a *Arena[T]) Free(h Handle) (T, error) {
	var zero T
	if !a.Live(h) {
		return zero, fmt.Errorf("%w: %d", ErrInvalidHandle, h)
	}
	v := a.slots[h]
	a.slots[h] = zero
	a.live.Clear(uint(h))
	a.free = append(a.free, h)
	a.count--
	return v, nil
}

// Live reports whether h currently holds a value.
func (a *Arena[T]) Live(h Handle) bool {
	return int(h) < len(a.slots) && a.live.Test(uint(h))
}

// Len returns the number of live handles.
func (a *Arena[T]) Len() int { return a.count }

// Reset frees every handle.
func (a *Arena[T]) Reset() {
	clear(a.slots)
	a.slots = a.slots[:0]
	a.live.ClearAll()
	a.free = a.free[:0]
	a.count = 0
}

// Clone returns an arena in which every live handle maps to copyFn applied to
// the original value. Free slots stay free, so handles are interchangeable
// between the two arenas.
func (a *Arena[T]) Clone(copyFn func(T) (T, error)) (*Arena[T], error) {
	out := &Arena[T]{
		slots: make([]T, len(a.slots), cap(a.slots)),
		live:  a.live.Clone(),
		free:  append([]Handle(nil), a.free...),
		count: a.count,
	}
	for i, ok := a.live.NextSet(0); ok && int(i) < len(a.slots); i, ok = a.live.NextSet(i + 1) {
		v, err := copyFn(a.slots[i])
		if err != nil {
			return nil, fmt.Errorf("arena: copy handle %d: %w", i, err)
		}
		out.slots[i] = v
	}
	return out, nil
}
