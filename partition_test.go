package partlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartition_Insert(t *testing.T) {
	l := newABList(t)
	b, _ := l.Partition("B")

	// Before b1, which sits at list index 2.
	require.NoError(t, b.Insert(0, it("B", "b0")))
	require.NoError(t, l.Check())
	assert.Equal(t, []string{"a1", "a2", "b0", "b1"}, names(l.Values()))
	assert.Equal(t, []int{2, 3}, b.MasterIndices())

	a, _ := l.Partition("A")
	require.NoError(t, a.Insert(1, it("A", "a1.5")))
	require.NoError(t, l.Check())
	assert.Equal(t, []string{"a1", "a1.5", "a2", "b0", "b1"}, names(l.Values()))
	assert.Equal(t, []int{3, 4}, b.MasterIndices())

	// j == Len appends to the list.
	require.NoError(t, a.Insert(a.Len(), it("A", "a3")))
	assert.Equal(t, []int{0, 1, 2, 5}, a.MasterIndices())
	require.NoError(t, l.Check())
}

func TestPartition_Add(t *testing.T) {
	l := newABList(t)
	a, _ := l.Partition("A")

	require.NoError(t, a.Add(it("A", "a3")))
	assert.Equal(t, []string{"a1", "a2", "b1", "a3"}, names(l.Values()))
	assert.Equal(t, []int{0, 1, 3}, a.MasterIndices())
	require.NoError(t, l.Check())
}

func TestPartition_RemoveAndSet(t *testing.T) {
	l := newABList(t)
	a, _ := l.Partition("A")
	b, _ := l.Partition("B")

	e, err := a.Remove(0)
	require.NoError(t, err)
	assert.Equal(t, "a1", e.Name)
	assert.Equal(t, []int{1}, b.MasterIndices())

	old, err := a.Set(0, it("A", "a9"))
	require.NoError(t, err)
	assert.Equal(t, "a2", old.Name)
	assert.Equal(t, []string{"a9", "b1"}, names(l.Values()))
	require.NoError(t, l.Check())

	got, err := a.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "a9", got.Name)
	m, err := a.MasterIndex(0)
	require.NoError(t, err)
	assert.Equal(t, 0, m)
	assert.Equal(t, 0, a.IndexOf(it("A", "a9")))
	assert.Equal(t, -1, a.IndexOf(it("B", "b1")))
}

func TestPartition_KeyMismatch(t *testing.T) {
	l := newABList(t)
	a, _ := l.Partition("A")
	before := l.Dump()

	err := a.Add(it("B", "b2"))
	require.ErrorIs(t, err, ErrKeyMismatch)
	var keyErr *KeyError[string]
	require.ErrorAs(t, err, &keyErr)
	assert.Equal(t, "B", keyErr.Key)

	_, err = a.Set(0, it("B", "b2"))
	assert.ErrorIs(t, err, ErrKeyMismatch)
	err = a.Insert(0, it("B", "b2"))
	assert.ErrorIs(t, err, ErrKeyMismatch)

	assert.Equal(t, before, l.Dump())
}

func TestPartition_OutOfRange(t *testing.T) {
	l := newABList(t)
	b, _ := l.Partition("B")

	_, err := b.Get(1)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = b.Remove(1)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = b.Set(-1, it("B", "x"))
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.ErrorIs(t, b.Insert(2, it("B", "x")), ErrOutOfRange)
	_, err = b.MasterIndex(1)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestPartition_CrossViewEquivalence(t *testing.T) {
	build := func() *List[string, item] {
		l := New(keyOf)
		for i, key := range []string{"A", "B", "A", "C", "B", "A", "C"} {
			require.NoError(t, l.Add(it(key, string(rune('a'+i)))))
		}
		return l
	}

	for _, key := range []string{"A", "B", "C"} {
		ref, _ := build().Partition(key)
		for j := 0; j <= ref.Len(); j++ {
			viaPartition := build()
			viaList := build()

			p, _ := viaPartition.Partition(key)
			require.NoError(t, p.Insert(j, it(key, "new")))

			m := viaList.Len()
			if q, _ := viaList.Partition(key); j < q.Len() {
				m, _ = q.MasterIndex(j)
			}
			require.NoError(t, viaList.Insert(m, it(key, "new")))

			assert.Equal(t, viaList.Dump(), viaPartition.Dump(), "key %s local %d", key, j)
			require.NoError(t, viaPartition.Check())
		}
	}
}

func TestPartition_Reclaim(t *testing.T) {
	l := New(keyOf, WithKeys[string, item]("A"), WithReclaimEmpty[string, item]())
	require.NoError(t, l.Add(it("A", "a1")))
	require.NoError(t, l.Add(it("B", "b1")))
	require.NoError(t, l.Add(it("C", "c1")))
	require.NoError(t, l.Add(it("D", "d1")))

	b, _ := l.Partition("B")
	_, err := b.Remove(0)
	require.NoError(t, err)
	require.NoError(t, l.Check())

	assert.True(t, b.Detached())
	_, ok := l.Partition("B")
	assert.False(t, ok)
	assert.Equal(t, []string{"A", "D", "C"}, l.Keys())

	assert.ErrorIs(t, b.Add(it("B", "b2")), ErrDetached)
	_, err = b.Remove(0)
	assert.ErrorIs(t, err, ErrDetached)
	_, err = b.Get(0)
	assert.ErrorIs(t, err, ErrDetached)

	// Declared partitions survive becoming empty.
	_, err = l.Remove(0)
	require.NoError(t, err)
	a, ok := l.Partition("A")
	require.True(t, ok)
	assert.False(t, a.Detached())

	// A key change can empty the old partition too.
	_, err = l.Set(0, it("A", "a2"))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "D"}, l.Keys())
	require.NoError(t, l.Check())

	// The key comes back as a fresh partition.
	require.NoError(t, l.Add(it("B", "b3")))
	nb, ok := l.Partition("B")
	require.True(t, ok)
	assert.NotSame(t, b, nb)
	require.NoError(t, l.Check())
}

func TestPartition_NoReclaimByDefault(t *testing.T) {
	l := New(keyOf)
	require.NoError(t, l.Add(it("A", "a1")))
	_, err := l.Remove(0)
	require.NoError(t, err)

	a, ok := l.Partition("A")
	require.True(t, ok)
	assert.False(t, a.Detached())
	assert.Equal(t, 0, a.Len())
}
