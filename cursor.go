package partlist

import "github.com/hupe1980/partlist/observable"

// ErrNoCurrent is returned by cursor operations that need a current element.
var ErrNoCurrent = observable.ErrNoCurrent

// view is the indexed surface shared by List and Partition.
type view[E any] interface {
	Len() int
	Get(index int) (E, error)
	Insert(index int, e E) error
	Remove(index int) (E, error)
	Set(index int, e E) (E, error)
}

// Cursor walks a list or a partition front to back.
//
// Remove, Set and Insert are applied through the list, so every view stays
// consistent, and the cursor keeps its own position in step with them.
// Changes made by other means while a cursor is open are not tracked.
type Cursor[E any] struct {
	v    view[E]
	next int
	cur  int
}

// Cursor returns a cursor positioned before the first element of the list.
func (l *List[K, E]) Cursor() *Cursor[E] {
	return &Cursor[E]{v: l, cur: -1}
}

// Cursor returns a cursor positioned before the first element of the
// partition. Its indexes are local indexes.
func (p *Partition[K, E]) Cursor() *Cursor[E] {
	return &Cursor[E]{v: p, cur: -1}
}

// Next advances to the next element and reports whether there is one.
func (c *Cursor[E]) Next() bool {
	if c.next >= c.v.Len() {
		c.cur = -1
		return false
	}
	c.cur = c.next
	c.next++
	return true
}

// Index returns the index of the current element, or -1.
func (c *Cursor[E]) Index() int { return c.cur }

// Value returns the current element.
func (c *Cursor[E]) Value() E {
	var zero E
	if c.cur < 0 {
		return zero
	}
	e, err := c.v.Get(c.cur)
	if err != nil {
		return zero
	}
	return e
}

// Remove deletes the current element. The following Next yields the element
// after the removed one.
func (c *Cursor[E]) Remove() error {
	if c.cur < 0 {
		return ErrNoCurrent
	}
	if _, err := c.v.Remove(c.cur); err != nil {
		return err
	}
	c.next = c.cur
	c.cur = -1
	return nil
}

// Set replaces the current element.
func (c *Cursor[E]) Set(e E) error {
	if c.cur < 0 {
		return ErrNoCurrent
	}
	_, err := c.v.Set(c.cur, e)
	return err
}

// Insert inserts e before the element the next call to Next would return.
// The inserted element is not visited by the cursor.
func (c *Cursor[E]) Insert(e E) error {
	if err := c.v.Insert(c.next, e); err != nil {
		return err
	}
	c.next++
	c.cur = -1
	return nil
}
