package partlist

import (
	"fmt"
	"iter"
	"time"

	"github.com/hupe1980/partlist/internal/arena"
	"github.com/hupe1980/partlist/internal/indexarray"
	"github.com/hupe1980/partlist/internal/visited"
	"github.com/hupe1980/partlist/observable"
)

// KeyFunc derives the partition key of an element.
// It must be deterministic: the same element always yields the same key.
type KeyFunc[K comparable, E any] func(E) K

// List is an ordered sequence of elements (the master view) that also keeps
// one Partition per distinct key, holding that key's elements in master order.
//
// Changes made through the list or through any partition keep both views and
// the index mappings between them consistent.
//
// List is not safe for concurrent use; see Synced.
type List[K comparable, E any] struct {
	keyFn   KeyFunc[K, E]
	opts    options[K, E]
	log     *Logger
	metrics MetricsCollector

	elems  *arena.Arena[E]
	master *observable.Sequence[arena.Handle]

	// Per master slot: index within the owning partition, and the owner.
	masterLocal indexarray.Array
	masterOwner []*Partition[K, E]

	parts   map[K]*Partition[K, E]
	order   []*Partition[K, E] // registration order; Partition.ordinal indexes it
	visited *visited.VisitedSet

	busy bool
	op   pending[K, E]
}

// pending is the state of the mutation in progress, read by the hooks.
type pending[K comparable, E any] struct {
	index   int
	target  *Partition[K, E]
	changes []Change[K, E]
	touched int
	parts   int // partitions whose indexes moved
}

// New creates an empty list that routes elements to partitions by keyFn.
func New[K comparable, E any](keyFn KeyFunc[K, E], optFns ...Option[K, E]) *List[K, E] {
	if keyFn == nil {
		panic("partlist: nil KeyFunc")
	}
	o := applyOptions(optFns)
	l := &List[K, E]{
		keyFn:       keyFn,
		opts:        o,
		log:         o.logger,
		metrics:     o.metricsCollector,
		elems:       arena.New[E](o.capacity),
		masterLocal: indexarray.New(o.capacity),
		masterOwner: make([]*Partition[K, E], 0, o.capacity),
		parts:       make(map[K]*Partition[K, E], len(o.keys)),
		visited:     visited.New(len(o.keys)),
	}
	l.master = observable.New[arena.Handle](masterHooks[K, E]{l: l})
	l.master.Grow(o.capacity)
	for _, key := range o.keys {
		if _, ok := l.parts[key]; ok {
			continue
		}
		p := l.newPartition(key)
		p.declared = true
		l.register(p)
	}
	return l
}

// Len returns the number of elements.
func (l *List[K, E]) Len() int { return l.master.Len() }

// Get returns the element at index.
func (l *List[K, E]) Get(index int) (E, error) {
	h, err := l.master.Get(index)
	if err != nil {
		var zero E
		return zero, err
	}
	return l.elems.Get(h), nil
}

// Add appends e at the end of the list and of its partition.
func (l *List[K, E]) Add(e E) error {
	return l.insert(l.master.Len(), e, nil)
}

// Insert inserts e before index. index may equal Len.
//
// Within its partition, e is placed after every element that precedes index
// in the list.
func (l *List[K, E]) Insert(index int, e E) error {
	return l.insert(index, e, nil)
}

// Remove deletes and returns the element at index.
func (l *List[K, E]) Remove(index int) (E, error) {
	return l.remove(index)
}

// RemoveElement removes the first element equal to e and reports whether one
// was found.
func (l *List[K, E]) RemoveElement(e E) (bool, error) {
	i := l.IndexOf(e)
	if i < 0 {
		return false, nil
	}
	if _, err := l.remove(i); err != nil {
		return false, err
	}
	return true, nil
}

// Set replaces the element at index and returns the previous one.
//
// If e has the key of the element it replaces, it takes over the same
// partition slot. Otherwise the old partition loses the slot and e's
// partition gains one at the position matching index.
func (l *List[K, E]) Set(index int, e E) (old E, err error) {
	start := time.Now()
	key := l.keyFn(e)
	defer func() {
		l.metrics.RecordSet(time.Since(start), err)
		l.log.LogSet(index, key, err)
	}()

	if l.busy {
		return old, ErrReentrant
	}
	if index < 0 || index >= l.master.Len() {
		return old, &IndexError{Op: "set", Index: index, Len: l.master.Len()}
	}
	q, created, err := l.resolve(key)
	if err != nil {
		return old, err
	}
	h, err := l.elems.Alloc(e)
	if err != nil {
		return old, err
	}
	p := l.masterOwner[index]

	l.begin(index, q)
	defer l.release()
	oldH, err := l.master.Set(index, h)
	if err != nil {
		_, _ = l.elems.Free(h)
	} else {
		old, _ = l.elems.Free(oldH)
		if created {
			l.register(q)
		}
	}
	l.end(err)

	if err == nil && p != q {
		l.maybeReclaim(p)
	}
	return old, err
}

// IndexOf returns the index of the first element equal to e, or -1.
func (l *List[K, E]) IndexOf(e E) int {
	for i, h := range l.master.All() {
		if l.opts.equal(l.elems.Get(h), e) {
			return i
		}
	}
	return -1
}

// Contains reports whether the list holds an element equal to e.
func (l *List[K, E]) Contains(e E) bool {
	return l.IndexOf(e) >= 0
}

// All iterates over index/element pairs in list order.
func (l *List[K, E]) All() iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		for i, h := range l.master.All() {
			if !yield(i, l.elems.Get(h)) {
				return
			}
		}
	}
}

// Values returns the elements in list order.
func (l *List[K, E]) Values() []E {
	out := make([]E, 0, l.master.Len())
	for _, h := range l.master.All() {
		out = append(out, l.elems.Get(h))
	}
	return out
}

// Partition returns the partition registered for key.
func (l *List[K, E]) Partition(key K) (*Partition[K, E], bool) {
	p, ok := l.parts[key]
	return p, ok
}

// NewPartition returns the partition for key, registering an empty one if
// needed. Partitions registered this way are never reclaimed.
func (l *List[K, E]) NewPartition(key K) (*Partition[K, E], error) {
	if l.busy {
		return nil, ErrReentrant
	}
	p, created, err := l.resolve(key)
	if err != nil {
		return nil, err
	}
	if created {
		p.declared = true
		l.register(p)
	}
	return p, nil
}

// Partitions returns the registered partitions in registration order.
func (l *List[K, E]) Partitions() []*Partition[K, E] {
	out := make([]*Partition[K, E], len(l.order))
	copy(out, l.order)
	return out
}

// Keys returns the registered keys in registration order.
func (l *List[K, E]) Keys() []K {
	out := make([]K, len(l.order))
	for i, p := range l.order {
		out[i] = p.key
	}
	return out
}

func (l *List[K, E]) insert(index int, e E, p *Partition[K, E]) (err error) {
	start := time.Now()
	key := l.keyFn(e)
	defer func() {
		l.metrics.RecordInsert(time.Since(start), err)
		l.log.LogInsert(index, key, err)
	}()

	if l.busy {
		return ErrReentrant
	}
	if index < 0 || index > l.master.Len() {
		return &IndexError{Op: "insert", Index: index, Len: l.master.Len() + 1}
	}
	created := false
	if p == nil {
		if p, created, err = l.resolve(key); err != nil {
			return err
		}
	}
	h, err := l.elems.Alloc(e)
	if err != nil {
		return err
	}

	l.begin(index, p)
	defer l.release()
	err = l.master.Insert(index, h)
	if err != nil {
		_, _ = l.elems.Free(h)
	} else if created {
		l.register(p)
	}
	l.end(err)
	return err
}

func (l *List[K, E]) remove(index int) (e E, err error) {
	start := time.Now()
	var key K
	defer func() {
		l.metrics.RecordRemove(time.Since(start), err)
		l.log.LogRemove(index, key, err)
	}()

	if l.busy {
		return e, ErrReentrant
	}
	if index < 0 || index >= l.master.Len() {
		return e, &IndexError{Op: "remove", Index: index, Len: l.master.Len()}
	}
	p := l.masterOwner[index]
	key = p.key

	l.begin(index, p)
	defer l.release()
	h, err := l.master.Remove(index)
	if err == nil {
		e, _ = l.elems.Free(h)
	}
	l.end(err)

	if err == nil {
		l.maybeReclaim(p)
	}
	return e, err
}

// resolve finds the partition for key. A partition it creates is not
// registered; the caller registers it once the mutation succeeded.
func (l *List[K, E]) resolve(key K) (*Partition[K, E], bool, error) {
	if p, ok := l.parts[key]; ok {
		return p, false, nil
	}
	if l.opts.strictKeys {
		return nil, false, &KeyError[K]{Key: key, cause: ErrUnsupportedKey}
	}
	return l.newPartition(key), true, nil
}

func (l *List[K, E]) newPartition(key K) *Partition[K, E] {
	p := &Partition[K, E]{
		key:     key,
		list:    l,
		ordinal: len(l.order),
	}
	p.seq = observable.New[arena.Handle](partitionHooks[K, E]{p: p})
	return p
}

func (l *List[K, E]) register(p *Partition[K, E]) {
	p.ordinal = len(l.order)
	l.order = append(l.order, p)
	l.parts[p.key] = p
	l.log.LogPartition("created", p.key)
}

func (l *List[K, E]) maybeReclaim(p *Partition[K, E]) {
	if !l.opts.reclaimEmpty || p.declared || p.list != l || p.seq.Len() > 0 {
		return
	}
	last := l.order[len(l.order)-1]
	l.order[p.ordinal] = last
	last.ordinal = p.ordinal
	l.order[len(l.order)-1] = nil
	l.order = l.order[:len(l.order)-1]
	delete(l.parts, p.key)
	p.list = nil
	l.log.LogPartition("reclaimed", p.key)
}

func (l *List[K, E]) begin(index int, target *Partition[K, E]) {
	l.busy = true
	l.op.index = index
	l.op.target = target
	l.op.touched = 0
	l.op.parts = 0
}

func (l *List[K, E]) end(err error) {
	if obs := l.opts.observer; obs != nil {
		for _, c := range l.op.changes {
			obs.After(c, err)
		}
	}
	if err == nil && l.op.touched > 0 {
		l.metrics.RecordCascade(l.op.touched)
		l.log.LogCascade(l.op.index, l.op.touched, l.op.parts)
	}
	l.release()
}

// release clears the mutation state. Mutators defer it right after begin; it
// is a no-op once end has run.
func (l *List[K, E]) release() {
	if !l.busy {
		return
	}
	clear(l.op.changes)
	l.op.changes = l.op.changes[:0]
	l.op.target = nil
	l.busy = false
}

// before asks the observer about c. A panic in Before counts as a veto, so
// the change is rolled back like any other rejected one.
func (l *List[K, E]) before(c Change[K, E]) (err error) {
	obs := l.opts.observer
	if obs == nil {
		return nil
	}
	l.op.changes = append(l.op.changes, c)
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: observer panicked: %v", ErrVetoed, r)
		}
	}()
	return vetoErr(obs.Before(c))
}
