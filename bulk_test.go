package partlist

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildMixed(t *testing.T, opts ...Option[string, item]) *List[string, item] {
	t.Helper()
	l := New(keyOf, opts...)
	for i, key := range []string{"A", "B", "A", "C", "C", "B", "A", "D", "B", "A"} {
		require.NoError(t, l.Add(it(key, key+string(rune('0'+i)))))
	}
	return l
}

func TestBulk_RemoveFuncMatchesSequential(t *testing.T) {
	preds := map[string]func(item) bool{
		"key A":  func(e item) bool { return e.Key == "A" },
		"odd":    func(e item) bool { return (e.Name[1]-'0')%2 == 1 },
		"none":   func(item) bool { return false },
		"all":    func(item) bool { return true },
		"B or D": func(e item) bool { return strings.ContainsAny(e.Key, "BD") },
	}

	for name, pred := range preds {
		t.Run(name, func(t *testing.T) {
			bulk := buildMixed(t)
			seq := buildMixed(t)

			n, err := bulk.RemoveFunc(pred)
			require.NoError(t, err)
			require.NoError(t, bulk.Check())

			want := 0
			for i := seq.Len() - 1; i >= 0; i-- {
				e, _ := seq.Get(i)
				if pred(e) {
					_, err := seq.Remove(i)
					require.NoError(t, err)
					want++
				}
			}

			assert.Equal(t, want, n)
			assert.Equal(t, seq.Dump(), bulk.Dump())
		})
	}
}

func TestBulk_RemoveKey(t *testing.T) {
	l := buildMixed(t)

	n, err := l.RemoveKey("B")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []string{"A0", "A2", "C3", "C4", "A6", "D7", "A9"}, names(l.Values()))
	assert.Equal(t, []int{0, 1, 4, 6}, partIndices(t, l, "A"))
	assert.Equal(t, []int{2, 3}, partIndices(t, l, "C"))
	assert.Equal(t, []int{5}, partIndices(t, l, "D"))
	assert.Empty(t, partIndices(t, l, "B"))
	require.NoError(t, l.Check())

	n, err = l.RemoveKey("missing")
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestBulk_Veto(t *testing.T) {
	obs := &recordingObserver{}
	l := buildMixed(t, WithObserver[string, item](obs))
	before := l.Dump()
	obs.reset()
	obs.veto = func(c Change[string, item]) error {
		if c.Elem.Name == "A6" {
			return ErrVetoed
		}
		return nil
	}

	n, err := l.RemoveKey("A")
	require.ErrorIs(t, err, ErrVetoed)
	assert.Equal(t, 0, n)
	assert.Equal(t, before, l.Dump())
	assert.Len(t, obs.before, 3)
	assert.Len(t, obs.after, 3)

	obs.veto = nil
	obs.reset()
	n, err = l.RemoveKey("A")
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	// Changes carry the positions the elements had before the call.
	require.Len(t, obs.before, 4)
	for i, want := range []int{0, 2, 6, 9} {
		assert.Equal(t, OpRemove, obs.before[i].Op)
		assert.Equal(t, want, obs.before[i].Index)
		assert.Equal(t, i, obs.before[i].Local)
	}
}

func TestBulk_Clear(t *testing.T) {
	l := buildMixed(t, WithKeys[string, item]("A"), WithReclaimEmpty[string, item]())

	require.NoError(t, l.Clear())
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, []string{"A"}, l.Keys())
	require.NoError(t, l.Check())

	require.NoError(t, l.Add(it("B", "b")))
	assert.Equal(t, []string{"A", "B"}, l.Keys())
	require.NoError(t, l.Check())
}

func TestBulk_Reclaim(t *testing.T) {
	l := buildMixed(t, WithReclaimEmpty[string, item]())
	c, _ := l.Partition("C")

	_, err := l.RemoveFunc(func(e item) bool { return e.Key == "C" || e.Key == "A" })
	require.NoError(t, err)
	assert.True(t, c.Detached())
	assert.ElementsMatch(t, []string{"B", "D"}, l.Keys())
	require.NoError(t, l.Check())
}
