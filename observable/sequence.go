package observable

import (
	"iter"
	"slices"
)

// Sequence is an ordered, indexable list with hooked mutations.
// It is not safe for concurrent use.
type Sequence[T any] struct {
	items []T
	hooks Hooks[T]
}

// New creates an empty sequence. A nil hooks value accepts everything.
func New[T any](hooks Hooks[T]) *Sequence[T] {
	if hooks == nil {
		hooks = NopHooks[T]{}
	}
	return &Sequence[T]{hooks: hooks}
}

// Grow makes room for n more elements without reallocating.
func (s *Sequence[T]) Grow(n int) {
	s.items = slices.Grow(s.items, n)
}

// Len returns the number of elements.
func (s *Sequence[T]) Len() int { return len(s.items) }

// Get returns the element at index.
func (s *Sequence[T]) Get(index int) (T, error) {
	var zero T
	if index < 0 || index >= len(s.items) {
		return zero, rangeErr("get", index, len(s.items))
	}
	if err := s.hooks.BeforeGet(index); err != nil {
		return zero, err
	}
	v := s.items[index]
	s.hooks.AfterGet(index, v)
	return v, nil
}

// At returns the element at index without running hooks.
// It panics if index is out of range.
func (s *Sequence[T]) At(index int) T { return s.items[index] }

// Append adds v at the end.
func (s *Sequence[T]) Append(v T) error {
	return s.Insert(len(s.items), v)
}

// Insert inserts v before index. index may equal Len.
func (s *Sequence[T]) Insert(index int, v T) error {
	if index < 0 || index > len(s.items) {
		return rangeErr("insert", index, len(s.items)+1)
	}
	if err := s.hooks.BeforeAdd(index, v); err != nil {
		return afterErr(s.hooks.AfterAdd(index, v, err), err)
	}
	s.items = slices.Insert(s.items, index, v)
	if err := s.hooks.AfterAdd(index, v, nil); err != nil {
		s.items = slices.Delete(s.items, index, index+1)
		return err
	}
	return nil
}

// Remove deletes and returns the element at index.
func (s *Sequence[T]) Remove(index int) (T, error) {
	var zero T
	if index < 0 || index >= len(s.items) {
		return zero, rangeErr("remove", index, len(s.items))
	}
	v := s.items[index]
	if err := s.hooks.BeforeRemove(index, v); err != nil {
		return zero, afterErr(s.hooks.AfterRemove(index, v, err), err)
	}
	s.items = slices.Delete(s.items, index, index+1)
	if err := s.hooks.AfterRemove(index, v, nil); err != nil {
		s.items = slices.Insert(s.items, index, v)
		return zero, err
	}
	return v, nil
}

// Set replaces the element at index and returns the previous one.
func (s *Sequence[T]) Set(index int, v T) (T, error) {
	var zero T
	if index < 0 || index >= len(s.items) {
		return zero, rangeErr("set", index, len(s.items))
	}
	old := s.items[index]
	if err := s.hooks.BeforeSet(index, old, v); err != nil {
		return zero, afterErr(s.hooks.AfterSet(index, old, v, err), err)
	}
	s.items[index] = v
	if err := s.hooks.AfterSet(index, old, v, nil); err != nil {
		s.items[index] = old
		return zero, err
	}
	return old, nil
}

// DeleteFunc removes every element for which del returns true, without
// running hooks, and returns the number removed. del sees original indexes.
func (s *Sequence[T]) DeleteFunc(del func(index int, v T) bool) int {
	n := len(s.items)
	i := 0
	s.items = slices.DeleteFunc(s.items, func(v T) bool {
		d := del(i, v)
		i++
		return d
	})
	return n - len(s.items)
}

// Reset removes every element without running hooks.
func (s *Sequence[T]) Reset() {
	clear(s.items)
	s.items = s.items[:0]
}

// Values returns a copy of the elements.
func (s *Sequence[T]) Values() []T {
	return slices.Clone(s.items)
}

// All iterates over index/element pairs without running hooks.
func (s *Sequence[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range s.items {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Clone returns a copy of the sequence that reports to hooks.
func (s *Sequence[T]) Clone(hooks Hooks[T]) *Sequence[T] {
	c := New(hooks)
	c.items = slices.Clone(s.items)
	return c
}

// Cursor returns a cursor positioned before the first element.
func (s *Sequence[T]) Cursor() *Cursor[T] {
	return &Cursor[T]{s: s, cur: -1}
}

func afterErr(hookErr, err error) error {
	if hookErr != nil {
		return hookErr
	}
	return err
}

// Discard removes the element at index without running hooks.
// Owners use it to undo a change their hooks already accepted.
func (s *Sequence[T]) Discard(index int) T {
	v := s.items[index]
	s.items = slices.Delete(s.items, index, index+1)
	return v
}
