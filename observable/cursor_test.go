package observable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fill(t *testing.T, s *Sequence[int], vs ...int) {
	t.Helper()
	for _, v := range vs {
		require.NoError(t, s.Append(v))
	}
}

func TestCursor_Walk(t *testing.T) {
	s := New[int](nil)
	fill(t, s, 1, 2, 3)

	c := s.Cursor()
	assert.Equal(t, -1, c.Index())
	var got []int
	for c.Next() {
		got = append(got, c.Value())
	}
	assert.Equal(t, []int{1, 2, 3}, got)
	assert.Equal(t, -1, c.Index())
}

func TestCursor_RemoveWhileWalking(t *testing.T) {
	s := New[int](nil)
	fill(t, s, 1, 2, 3, 4, 5)

	c := s.Cursor()
	var seen []int
	for c.Next() {
		seen = append(seen, c.Value())
		if c.Value()%2 == 0 {
			require.NoError(t, c.Remove())
			assert.ErrorIs(t, c.Remove(), ErrNoCurrent)
		}
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5}, seen)
	assert.Equal(t, []int{1, 3, 5}, s.Values())
}

func TestCursor_InsertAndSet(t *testing.T) {
	s := New[int](nil)
	fill(t, s, 1, 3)

	c := s.Cursor()
	require.True(t, c.Next())
	require.NoError(t, c.Insert(2))
	assert.ErrorIs(t, c.Set(0), ErrNoCurrent)

	require.True(t, c.Next())
	assert.Equal(t, 3, c.Value())
	assert.Equal(t, 2, c.Index())
	require.NoError(t, c.Set(30))
	assert.False(t, c.Next())

	assert.Equal(t, []int{1, 2, 30}, s.Values())
}

func TestCursor_VetoKeepsPosition(t *testing.T) {
	h := &intVeto{}
	s := New[int](h)
	fill(t, s, 1, 2)

	c := s.Cursor()
	require.True(t, c.Next())
	h.veto = true
	assert.ErrorIs(t, c.Remove(), ErrVetoed)
	assert.Equal(t, 0, c.Index())
	require.True(t, c.Next())
	assert.Equal(t, 2, c.Value())
}

type intVeto struct {
	NopHooks[int]
	veto bool
}

func (h *intVeto) BeforeRemove(int, int) error {
	if h.veto {
		return ErrVetoed
	}
	return nil
}
