package indexarray

import (
	"slices"
	"sort"
)

// Array is a growable array of indexes.
// The zero value is an empty array ready for use.
type Array struct {
	v []int
}

// New creates an Array with the given capacity.
func New(capacity int) Array {
	return Array{v: make([]int, 0, capacity)}
}

// Len returns the number of entries.
func (a *Array) Len() int { return len(a.v) }

// At returns the entry at position i.
func (a *Array) At(i int) int { return a.v[i] }

// Put overwrites the entry at position i.
func (a *Array) Put(i, x int) { a.v[i] = x }

// Insert inserts x at position i, shifting later entries right.
func (a *Array) Insert(i, x int) {
	a.v = slices.Insert(a.v, i, x)
}

// Delete removes the entry at position i and returns it.
func (a *Array) Delete(i int) int {
	x := a.v[i]
	a.v = slices.Delete(a.v, i, i+1)
	return x
}

// Append adds x at the end.
func (a *Array) Append(x int) {
	a.v = append(a.v, x)
}

// Add adds delta to entry i.
func (a *Array) Add(i, delta int) {
	a.v[i] += delta
}

// ShiftFrom adds delta to every entry at positions >= from and returns the
// number of entries touched.
func (a *Array) ShiftFrom(from, delta int) int {
	for i := from; i < len(a.v); i++ {
		a.v[i] += delta
	}
	return max(len(a.v)-from, 0)
}

// LowerBound returns the number of entries strictly less than x.
// The array must be sorted in increasing order.
func (a *Array) LowerBound(x int) int {
	return sort.SearchInts(a.v, x)
}

// Find returns the position of x in a sorted array, or -1.
func (a *Array) Find(x int) int {
	i := a.LowerBound(x)
	if i < len(a.v) && a.v[i] == x {
		return i
	}
	return -1
}

// Sorted reports whether entries are strictly increasing.
func (a *Array) Sorted() bool {
	for i := 1; i < len(a.v); i++ {
		if a.v[i-1] >= a.v[i] {
			return false
		}
	}
	return true
}

// Reset truncates the array, keeping its storage.
func (a *Array) Reset() {
	a.v = a.v[:0]
}

// Slice returns a copy of the entries.
func (a *Array) Slice() []int {
	return slices.Clone(a.v)
}

// Clone returns an independent copy.
func (a *Array) Clone() Array {
	return Array{v: slices.Clone(a.v)}
}
