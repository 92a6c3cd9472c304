package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	a := rng.Ops(10, 3, 1)
	rng.Reset()
	b := rng.Ops(10, 3, 1)
	assert.Equal(t, a, b)
	assert.Equal(t, int64(4711), rng.Seed())
}

func TestZipf(t *testing.T) {
	rng := NewRNG(4711)
	counts := make([]int, 5)
	for range 2000 {
		k := rng.Zipf(5, 1.5)
		assert.GreaterOrEqual(t, k, 0)
		assert.Less(t, k, 5)
		counts[k]++
	}
	assert.Greater(t, counts[0], counts[4])
	assert.Equal(t, 0, rng.Zipf(1, 1.5))
}

func TestOps(t *testing.T) {
	rng := NewRNG(4711)
	ops := rng.Ops(500, 4, 1.2)

	assert.Len(t, ops, 500)
	seen := make(map[OpKind]bool)
	for i, op := range ops {
		assert.Equal(t, i, op.Value)
		assert.GreaterOrEqual(t, op.Pick, 0)
		assert.GreaterOrEqual(t, op.Key, 0)
		assert.Less(t, op.Key, 4)
		assert.NotEqual(t, "unknown", op.Kind.String())
		seen[op.Kind] = true
	}
	assert.True(t, seen[OpInsert])
	assert.True(t, seen[OpPartitionRemove])
}
