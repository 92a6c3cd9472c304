package indexarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArray_InsertDelete(t *testing.T) {
	var a Array
	a.Append(1)
	a.Append(3)
	a.Insert(1, 2)
	a.Insert(0, 0)
	require.Equal(t, []int{0, 1, 2, 3}, a.Slice())

	assert.Equal(t, 2, a.Delete(2))
	assert.Equal(t, []int{0, 1, 3}, a.Slice())
	assert.Equal(t, 3, a.Len())
}

func TestArray_LowerBound(t *testing.T) {
	a := New(4)
	for _, x := range []int{2, 5, 9} {
		a.Append(x)
	}

	tests := []struct {
		x    int
		want int
	}{
		{0, 0},
		{2, 0},
		{3, 1},
		{5, 1},
		{6, 2},
		{9, 2},
		{10, 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, a.LowerBound(tt.x), "x=%d", tt.x)
	}

	assert.Equal(t, 1, a.Find(5))
	assert.Equal(t, -1, a.Find(6))
}

func TestArray_ShiftFrom(t *testing.T) {
	var a Array
	for _, x := range []int{0, 1, 2, 3} {
		a.Append(x)
	}
	assert.Equal(t, 2, a.ShiftFrom(2, 10))
	assert.Equal(t, []int{0, 1, 12, 13}, a.Slice())
	assert.Equal(t, 0, a.ShiftFrom(4, 1))
	assert.Equal(t, 0, a.ShiftFrom(7, 1))
}

func TestArray_Sorted(t *testing.T) {
	var a Array
	assert.True(t, a.Sorted())
	a.Append(1)
	a.Append(1)
	assert.False(t, a.Sorted())
	a.Put(1, 2)
	assert.True(t, a.Sorted())
}

func TestArray_CloneIsIndependent(t *testing.T) {
	var a Array
	a.Append(7)
	b := a.Clone()
	b.Put(0, 8)
	b.Append(9)
	assert.Equal(t, []int{7}, a.Slice())
	assert.Equal(t, []int{8, 9}, b.Slice())

	a.Reset()
	assert.Equal(t, 0, a.Len())
}
