// Package observable provides Sequence, an indexable list whose mutations are
// intercepted by before/after hooks.
//
// # Hook protocol
//
// For every Insert, Remove and Set the sequence calls the matching Before hook
// first. A non-nil error vetoes the operation: nothing is mutated, the After
// hook still runs with that error, and the caller receives the error.
//
// When the Before hook passes, the sequence applies the change and calls the
// After hook with a nil error. If the After hook returns an error, the change
// is undone and the error is returned. This lets an owner commit dependent
// bookkeeping inside the After hook and get the physical change rolled back
// when that bookkeeping cannot be done.
//
//	seq := observable.New[string](hooks)
//	if err := seq.Insert(0, "a"); err != nil {
//	    // seq is unchanged
//	}
//
// Cursor walks a sequence and can insert, remove and replace through the same
// hooked path while keeping its own position consistent.
package observable
