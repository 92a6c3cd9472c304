package partlist

import (
	"iter"

	"github.com/hupe1980/partlist/internal/arena"
	"github.com/hupe1980/partlist/internal/indexarray"
	"github.com/hupe1980/partlist/observable"
)

// Partition is the sub-sequence of a List holding the elements of one key, in
// list order.
//
// A partition is a view: every change made through it is applied to the list
// at the matching master position, so both views stay consistent.
type Partition[K comparable, E any] struct {
	key  K
	list *List[K, E] // nil once reclaimed

	seq       *observable.Sequence[arena.Handle]
	masterIdx indexarray.Array // per local slot: master index, strictly increasing

	ordinal  int
	declared bool
}

// Key returns the partition key.
func (p *Partition[K, E]) Key() K { return p.key }

// Len returns the number of elements in the partition.
func (p *Partition[K, E]) Len() int { return p.seq.Len() }

// Detached reports whether the partition was reclaimed by its list.
func (p *Partition[K, E]) Detached() bool { return p.list == nil }

// Get returns the element at local index j.
func (p *Partition[K, E]) Get(j int) (E, error) {
	var zero E
	if p.list == nil {
		return zero, ErrDetached
	}
	h, err := p.seq.Get(j)
	if err != nil {
		return zero, err
	}
	return p.list.elems.Get(h), nil
}

// MasterIndex returns the list index of the element at local index j.
func (p *Partition[K, E]) MasterIndex(j int) (int, error) {
	if j < 0 || j >= p.masterIdx.Len() {
		return -1, &IndexError{Op: "master index", Index: j, Len: p.masterIdx.Len()}
	}
	return p.masterIdx.At(j), nil
}

// MasterIndices returns the list index of every element, in local order.
func (p *Partition[K, E]) MasterIndices() []int {
	return p.masterIdx.Slice()
}

// All iterates over local index/element pairs.
func (p *Partition[K, E]) All() iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		if p.list == nil {
			return
		}
		for j, h := range p.seq.All() {
			if !yield(j, p.list.elems.Get(h)) {
				return
			}
		}
	}
}

// Values returns the elements in local order.
func (p *Partition[K, E]) Values() []E {
	out := make([]E, 0, p.seq.Len())
	for _, e := range p.All() {
		out = append(out, e)
	}
	return out
}

// IndexOf returns the local index of the first element equal to e, or -1.
func (p *Partition[K, E]) IndexOf(e E) int {
	if p.list == nil {
		return -1
	}
	for j, h := range p.seq.All() {
		if p.list.opts.equal(p.list.elems.Get(h), e) {
			return j
		}
	}
	return -1
}

// Add appends e to the partition. In the list, e goes to the end.
func (p *Partition[K, E]) Add(e E) error {
	return p.Insert(p.seq.Len(), e)
}

// Insert inserts e before local index j. In the list, e is inserted right
// before the element currently at j; for j == Len it goes to the end.
func (p *Partition[K, E]) Insert(j int, e E) error {
	l := p.list
	if l == nil {
		return ErrDetached
	}
	if j < 0 || j > p.seq.Len() {
		return &IndexError{Op: "insert", Index: j, Len: p.seq.Len() + 1}
	}
	if err := p.checkKey(e); err != nil {
		return err
	}
	m := l.master.Len()
	if j < p.masterIdx.Len() {
		m = p.masterIdx.At(j)
	}
	return l.insert(m, e, p)
}

// Remove deletes and returns the element at local index j.
func (p *Partition[K, E]) Remove(j int) (E, error) {
	var zero E
	l := p.list
	if l == nil {
		return zero, ErrDetached
	}
	if j < 0 || j >= p.seq.Len() {
		return zero, &IndexError{Op: "remove", Index: j, Len: p.seq.Len()}
	}
	return l.remove(p.masterIdx.At(j))
}

// Set replaces the element at local index j and returns the previous one.
// e must belong to this partition's key.
func (p *Partition[K, E]) Set(j int, e E) (E, error) {
	var zero E
	l := p.list
	if l == nil {
		return zero, ErrDetached
	}
	if j < 0 || j >= p.seq.Len() {
		return zero, &IndexError{Op: "set", Index: j, Len: p.seq.Len()}
	}
	if err := p.checkKey(e); err != nil {
		return zero, err
	}
	return l.Set(p.masterIdx.At(j), e)
}

func (p *Partition[K, E]) checkKey(e E) error {
	if k := p.list.keyFn(e); k != p.key {
		return &KeyError[K]{Key: k, cause: ErrKeyMismatch}
	}
	return nil
}
