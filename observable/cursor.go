package observable

// Cursor walks a Sequence front to back. Changes made through the cursor go
// through the sequence hooks and keep the cursor position consistent; changes
// made to the sequence by other means while a cursor is open are not tracked.
type Cursor[T any] struct {
	s    *Sequence[T]
	next int
	cur  int
}

// Next advances to the next element and reports whether there is one.
func (c *Cursor[T]) Next() bool {
	if c.next >= len(c.s.items) {
		c.cur = -1
		return false
	}
	c.cur = c.next
	c.next++
	return true
}

// Index returns the index of the current element, or -1.
func (c *Cursor[T]) Index() int { return c.cur }

// Value returns the current element.
func (c *Cursor[T]) Value() T {
	if c.cur < 0 {
		var zero T
		return zero
	}
	return c.s.items[c.cur]
}

// Remove deletes the current element. The cursor moves back so that the
// following Next yields the element after the removed one.
func (c *Cursor[T]) Remove() error {
	if c.cur < 0 {
		return ErrNoCurrent
	}
	if _, err := c.s.Remove(c.cur); err != nil {
		return err
	}
	c.next = c.cur
	c.cur = -1
	return nil
}

// Set replaces the current element.
func (c *Cursor[T]) Set(v T) error {
	if c.cur < 0 {
		return ErrNoCurrent
	}
	_, err := c.s.Set(c.cur, v)
	return err
}

// Insert inserts v before the element the next call to Next would return.
// The inserted element is not visited by the cursor.
func (c *Cursor[T]) Insert(v T) error {
	if err := c.s.Insert(c.next, v); err != nil {
		return err
	}
	c.next++
	c.cur = -1
	return nil
}
