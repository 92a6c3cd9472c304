package observable

// Hooks intercepts the operations of a Sequence.
//
// After hooks receive the error of the operation (nil on success). Their
// return value is what the caller sees; returning an error after a successful
// change makes the sequence undo it. A hook cannot turn a vetoed operation
// into a success.
type Hooks[T any] interface {
	BeforeAdd(index int, v T) error
	AfterAdd(index int, v T, err error) error

	BeforeRemove(index int, v T) error
	AfterRemove(index int, v T, err error) error

	BeforeSet(index int, old, v T) error
	AfterSet(index int, old, v T, err error) error

	BeforeGet(index int) error
	AfterGet(index int, v T)
}

// NopHooks accepts every operation. Embed it to override only some hooks.
type NopHooks[T any] struct{}

func (NopHooks[T]) BeforeAdd(int, T) error               { return nil }
func (NopHooks[T]) AfterAdd(_ int, _ T, err error) error { return err }

func (NopHooks[T]) BeforeRemove(int, T) error               { return nil }
func (NopHooks[T]) AfterRemove(_ int, _ T, err error) error { return err }

func (NopHooks[T]) BeforeSet(int, T, T) error               { return nil }
func (NopHooks[T]) AfterSet(_ int, _, _ T, err error) error { return err }

func (NopHooks[T]) BeforeGet(int) error { return nil }
func (NopHooks[T]) AfterGet(int, T)     {}
