package partlist

// Op identifies the kind of a Change.
type Op int

const (
	OpInsert Op = iota + 1
	OpRemove
	OpSet
)

func (op Op) String() string {
	switch op {
	case OpInsert:
		return "insert"
	case OpRemove:
		return "remove"
	case OpSet:
		return "set"
	default:
		return "unknown"
	}
}

// Change describes one partition-level mutation.
//
// A Set that keeps the element's key is one OpSet change. A Set that changes
// the key is observed as an OpInsert into the new partition followed by an
// OpRemove from the old one, both at the same master Index.
type Change[K comparable, E any] struct {
	Op    Op
	Index int // master index
	Local int // index within the partition
	Key   K
	Elem  E // inserted, removed or new element
	Old   E // replaced element (OpSet only)
}

// Observer intercepts list mutations.
//
// Before runs before the change becomes visible; a non-nil error vetoes the
// whole operation and leaves the list unchanged. After runs once for every
// Before call, when the operation is complete, with the operation's error.
//
// Observers may read the list but must not mutate it; mutating calls made
// from an observer fail with ErrReentrant.
type Observer[K comparable, E any] interface {
	Before(c Change[K, E]) error
	After(c Change[K, E], err error)
}

// NopObserver accepts every change. Embed it to override only one method.
type NopObserver[K comparable, E any] struct{}

func (NopObserver[K, E]) Before(Change[K, E]) error { return nil }
func (NopObserver[K, E]) After(Change[K, E], error) {}

// ObserverFuncs adapts plain functions to Observer. Nil fields are skipped.
type ObserverFuncs[K comparable, E any] struct {
	BeforeFunc func(c Change[K, E]) error
	AfterFunc  func(c Change[K, E], err error)
}

func (f ObserverFuncs[K, E]) Before(c Change[K, E]) error {
	if f.BeforeFunc == nil {
		return nil
	}
	return f.BeforeFunc(c)
}

func (f ObserverFuncs[K, E]) After(c Change[K, E], err error) {
	if f.AfterFunc != nil {
		f.AfterFunc(c, err)
	}
}
