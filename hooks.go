package partlist

import (
	"github.com/hupe1980/partlist/internal/arena"
	"github.com/hupe1980/partlist/observable"
)

// masterHooks commits the partition side and the index cascade once the
// master sequence has changed. An error makes the master undo its change.
type masterHooks[K comparable, E any] struct {
	observable.NopHooks[arena.Handle]
	l *List[K, E]
}

func (h masterHooks[K, E]) AfterAdd(index int, v arena.Handle, err error) error {
	if err != nil {
		return err
	}
	return h.l.commitInsert(index, v)
}

func (h masterHooks[K, E]) AfterRemove(index int, v arena.Handle, err error) error {
	if err != nil {
		return err
	}
	return h.l.commitRemove(index)
}

func (h masterHooks[K, E]) AfterSet(index int, old, v arena.Handle, err error) error {
	if err != nil {
		return err
	}
	return h.l.commitSet(index, v)
}

// partitionHooks guards key consistency and asks the observer before a
// partition changes.
type partitionHooks[K comparable, E any] struct {
	observable.NopHooks[arena.Handle]
	p *Partition[K, E]
}

func (h partitionHooks[K, E]) BeforeAdd(local int, v arena.Handle) error {
	l := h.p.list
	e := l.elems.Get(v)
	if err := h.p.checkKey(e); err != nil {
		return err
	}
	return l.before(Change[K, E]{
		Op:    OpInsert,
		Index: l.op.index,
		Local: local,
		Key:   h.p.key,
		Elem:  e,
	})
}

func (h partitionHooks[K, E]) BeforeRemove(local int, v arena.Handle) error {
	l := h.p.list
	return l.before(Change[K, E]{
		Op:    OpRemove,
		Index: l.op.index,
		Local: local,
		Key:   h.p.key,
		Elem:  l.elems.Get(v),
	})
}

func (h partitionHooks[K, E]) BeforeSet(local int, old, v arena.Handle) error {
	l := h.p.list
	e := l.elems.Get(v)
	if err := h.p.checkKey(e); err != nil {
		return err
	}
	return l.before(Change[K, E]{
		Op:    OpSet,
		Index: l.op.index,
		Local: local,
		Key:   h.p.key,
		Elem:  e,
		Old:   l.elems.Get(old),
	})
}
