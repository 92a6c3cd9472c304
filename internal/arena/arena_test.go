package arena

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArena_AllocGetFree(t *testing.T) {
	a := New[string](2)

	h1, err := a.Alloc("a")
	require.NoError(t, err)
	h2, err := a.Alloc("b")
	require.NoError(t, err)
	h3, err := a.Alloc("c") // grows past initial capacity
	require.NoError(t, err)

	assert.Equal(t, 3, a.Len())
	assert.Equal(t, "a", a.Get(h1))
	assert.Equal(t, "b", a.Get(h2))
	assert.Equal(t, "c", a.Get(h3))

	v, err := a.Free(h2)
	require.NoError(t, err)
	assert.Equal(t, "b", v)
	assert.False(t, a.Live(h2))
	assert.Equal(t, 2, a.Len())

	_, err = a.Free(h2)
	assert.ErrorIs(t, err, ErrInvalidHandle)

	_, ok := a.Lookup(h2)
	assert.False(t, ok)
	assert.Panics(t, func() { a.Get(h2) })
}

func TestArena_ReusesFreedHandles(t *testing.T) {
	a := New[int](0)
	h1, _ := a.Alloc(1)
	_, _ = a.Alloc(2)
	_, err := a.Free(h1)
	require.NoError(t, err)

	h3, err := a.Alloc(3)
	require.NoError(t, err)
	assert.Equal(t, h1, h3)
	assert.Equal(t, 3, a.Get(h3))
}

func TestArena_CloneKeepsHandles(t *testing.T) {
	type box struct{ v int }

	a := New[*box](4)
	h1, _ := a.Alloc(&box{1})
	h2, _ := a.Alloc(&box{2})
	h3, _ := a.Alloc(&box{3})
	_, err := a.Free(h2)
	require.NoError(t, err)

	c, err := a.Clone(func(b *box) (*box, error) {
		cp := *b
		return &cp, nil
	})
	require.NoError(t, err)

	assert.Equal(t, 2, c.Len())
	assert.False(t, c.Live(h2))
	assert.Equal(t, 1, c.Get(h1).v)
	assert.Equal(t, 3, c.Get(h3).v)
	assert.NotSame(t, a.Get(h1), c.Get(h1))

	c.Get(h1).v = 100
	assert.Equal(t, 1, a.Get(h1).v)

	// The clone keeps the free list, so both arenas hand out the same slot next.
	ha, _ := a.Alloc(&box{4})
	hc, _ := c.Alloc(&box{4})
	assert.Equal(t, ha, hc)
}

func TestArena_CloneCopyError(t *testing.T) {
	a := New[int](1)
	_, _ = a.Alloc(1)
	boom := errors.New("boom")

	_, err := a.Clone(func(int) (int, error) { return 0, boom })
	assert.ErrorIs(t, err, boom)
}

func TestArena_Reset(t *testing.T) {
	a := New[int](1)
	h, _ := a.Alloc(1)
	a.Reset()
	assert.Equal(t, 0, a.Len())
	assert.False(t, a.Live(h))
}
