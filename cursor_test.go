package partlist

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursor_ListEdits(t *testing.T) {
	l := New(keyOf)
	for _, e := range []item{it("A", "a1"), it("B", "b1"), it("A", "a2"), it("B", "b2")} {
		require.NoError(t, l.Add(e))
	}

	c := l.Cursor()
	assert.Equal(t, -1, c.Index())
	assert.ErrorIs(t, c.Remove(), ErrNoCurrent)

	var seen []string
	for c.Next() {
		e := c.Value()
		seen = append(seen, e.Name)
		switch e.Name {
		case "b1":
			require.NoError(t, c.Remove())
		case "a2":
			require.NoError(t, c.Set(it("B", "x")))
			require.NoError(t, c.Insert(it("A", "a3")))
		}
		require.NoError(t, l.Check())
	}
	assert.False(t, c.Next())
	assert.Equal(t, item{}, c.Value())

	assert.Equal(t, []string{"a1", "b1", "a2", "b2"}, seen)
	assert.Equal(t, []string{"a1", "x", "a3", "b2"}, names(l.Values()))
	assert.Equal(t, []string{"a1", "a3"}, partNames(t, l, "A"))
	assert.Equal(t, []int{0, 2}, partIndices(t, l, "A"))
	assert.Equal(t, []string{"x", "b2"}, partNames(t, l, "B"))
	assert.Equal(t, []int{1, 3}, partIndices(t, l, "B"))
}

func TestCursor_PartitionEdits(t *testing.T) {
	l := New(keyOf)
	for _, e := range []item{it("A", "a1"), it("B", "b1"), it("A", "a2"), it("B", "b2"), it("A", "a3")} {
		require.NoError(t, l.Add(e))
	}
	a, _ := l.Partition("A")

	c := a.Cursor()
	for c.Next() {
		switch c.Value().Name {
		case "a1":
			require.NoError(t, c.Remove())
			assert.Equal(t, -1, c.Index())
		case "a2":
			assert.Equal(t, 0, c.Index())
			require.NoError(t, c.Insert(it("A", "n")))
		case "a3":
			assert.Equal(t, 2, c.Index())
			require.NoError(t, c.Set(it("A", "z")))
			assert.ErrorIs(t, c.Set(it("B", "bad")), ErrKeyMismatch)
		}
		require.NoError(t, l.Check())
	}

	assert.Equal(t, []string{"b1", "a2", "b2", "n", "z"}, names(l.Values()))
	assert.Equal(t, []string{"a2", "n", "z"}, names(a.Values()))
	assert.Equal(t, []int{1, 3, 4}, a.MasterIndices())
}

func TestCursor_VetoKeepsPosition(t *testing.T) {
	boom := errors.New("no")
	obs := &recordingObserver{veto: func(c Change[string, item]) error {
		if c.Op == OpRemove {
			return boom
		}
		return nil
	}}
	l := newABList(t, WithObserver[string, item](obs))
	before := l.Dump()

	c := l.Cursor()
	require.True(t, c.Next())
	assert.ErrorIs(t, c.Remove(), ErrVetoed)
	assert.Equal(t, 0, c.Index())
	assert.Equal(t, "a1", c.Value().Name)
	assert.Equal(t, before, l.Dump())

	require.True(t, c.Next())
	assert.Equal(t, "a2", c.Value().Name)
}
