package partlist

import (
	"slices"
	"time"

	"github.com/hupe1980/partlist/internal/arena"
	"github.com/hupe1980/partlist/internal/bitmap"
)

// RemoveKey removes every element of key and returns how many were removed.
// The partition itself stays registered unless it is reclaimable.
func (l *List[K, E]) RemoveKey(key K) (int, error) {
	p, ok := l.parts[key]
	if !ok {
		return 0, nil
	}
	return l.removeWhere(func(q *Partition[K, E], _ E) bool { return q == p })
}

// RemoveFunc removes every element for which pred returns true and returns
// how many were removed.
func (l *List[K, E]) RemoveFunc(pred func(E) bool) (int, error) {
	return l.removeWhere(func(_ *Partition[K, E], e E) bool { return pred(e) })
}

// Clear removes every element. Declared partitions stay registered.
func (l *List[K, E]) Clear() error {
	_, err := l.removeWhere(func(*Partition[K, E], E) bool { return true })
	return err
}

// removeWhere removes all matching elements in one pass. The result equals
// removing them one by one, but the index arrays are rebuilt once instead of
// cascading per element. Observers see one OpRemove per element, with the
// indexes the element had before the call; a veto removes nothing.
func (l *List[K, E]) removeWhere(match func(p *Partition[K, E], e E) bool) (removed int, err error) {
	start := time.Now()
	defer func() {
		l.metrics.RecordBulkRemove(removed, time.Since(start), err)
		l.log.LogBulkRemove(removed, err)
	}()

	if l.busy {
		return 0, ErrReentrant
	}

	doomed := bitmap.New()
	for i, h := range l.master.All() {
		if match(l.masterOwner[i], l.elems.Get(h)) {
			doomed.Add(i)
		}
	}
	if doomed.IsEmpty() {
		return 0, nil
	}

	l.begin(-1, nil)
	defer l.release()
	for i := range doomed.All() {
		p := l.masterOwner[i]
		err = l.before(Change[K, E]{
			Op:    OpRemove,
			Index: i,
			Local: l.masterLocal.At(i),
			Key:   p.key,
			Elem:  l.elems.Get(l.master.At(i)),
		})
		if err != nil {
			l.end(err)
			return 0, err
		}
	}

	// Partitions first: their filters read master indexes that are about to
	// be rebuilt.
	for i := range doomed.All() {
		p := l.masterOwner[i]
		if !l.visited.Visit(p.ordinal) {
			continue
		}
		p.seq.DeleteFunc(func(j int, _ arena.Handle) bool {
			return doomed.Contains(p.masterIdx.At(j))
		})
	}
	l.visited.Reset()

	l.master.DeleteFunc(func(i int, h arena.Handle) bool {
		if !doomed.Contains(i) {
			return false
		}
		_, _ = l.elems.Free(h)
		return true
	})

	w := 0
	for i, p := range l.masterOwner {
		if !doomed.Contains(i) {
			l.masterOwner[w] = p
			w++
		}
	}
	clear(l.masterOwner[w:])
	l.masterOwner = l.masterOwner[:w]

	l.rebuildIndexes()
	removed = doomed.Len()
	l.op.touched = len(l.masterOwner)
	l.op.parts = len(l.order)
	l.end(nil)

	for _, p := range slices.Clone(l.order) {
		l.maybeReclaim(p)
	}
	return removed, nil
}

// rebuildIndexes recomputes masterLocal and every partition's masterIdx from
// masterOwner.
func (l *List[K, E]) rebuildIndexes() {
	for _, p := range l.order {
		p.masterIdx.Reset()
	}
	l.masterLocal.Reset()
	for i, p := range l.masterOwner {
		l.masterLocal.Append(p.masterIdx.Len())
		p.masterIdx.Append(i)
	}
}
