// Package visited tracks which partitions a single index cascade has already
// shifted.
package visited

import "github.com/bits-and-blooms/bitset"

// VisitedSet tracks visited ordinals using a bitset and a dirty list for fast reset.
type VisitedSet struct {
	bits  *bitset.BitSet
	dirty []uint
}

// New creates a new visited set sized for capacity ordinals.
func New(capacity int) *VisitedSet {
	return &VisitedSet{
		bits:  bitset.New(uint(capacity)),
		dirty: make([]uint, 0, 16),
	}
}

// Visit marks an ordinal as visited and reports whether it was new.
func (v *VisitedSet) Visit(id int) bool {
	u := uint(id)
	if v.bits.Test(u) {
		return false
	}
	v.bits.Set(u)
	v.dirty = append(v.dirty, u)
	return true
}

// Count returns the number of ordinals visited since the last Reset.
func (v *VisitedSet) Count() int {
	return len(v.dirty)
}

// Reset clears the visited status for all ordinals visited in the current session.
func (v *VisitedSet) Reset() {
	for _, id := range v.dirty {
		v.bits.Clear(id)
	}
	v.dirty = v.dirty[:0]
}
