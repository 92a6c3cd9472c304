package bitmap

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// Positions is a set of non-negative list positions below 1<<32.
type Positions struct {
	rb *roaring.Bitmap
}

// New creates an empty set.
func New() *Positions {
	return &Positions{rb: roaring.New()}
}

// Add inserts i.
func (p *Positions) Add(i int) {
	p.rb.Add(uint32(i))
}

// Contains reports whether i is in the set.
func (p *Positions) Contains(i int) bool {
	return i >= 0 && p.rb.Contains(uint32(i))
}

// Len returns the number of positions.
func (p *Positions) Len() int {
	return int(p.rb.GetCardinality())
}

// IsEmpty reports whether the set is empty.
func (p *Positions) IsEmpty() bool {
	return p.rb.IsEmpty()
}

// All iterates over the positions in increasing order.
func (p *Positions) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		it := p.rb.Iterator()
		for it.HasNext() {
			if !yield(int(it.Next())) {
				return
			}
		}
	}
}

// Clear removes every position.
func (p *Positions) Clear() {
	p.rb.Clear()
}
