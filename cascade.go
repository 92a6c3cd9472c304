package partlist

import (
	"slices"

	"github.com/hupe1980/partlist/internal/arena"
)

// The cascade keeps four index families consistent:
//
//	masterLocal[i]   local index of master slot i in its partition
//	masterOwner[i]   partition owning master slot i
//	p.masterIdx[j]   master index of p's local slot j (strictly increasing)
//	p.seq            p's handles in local order
//
// Each commit runs after the master sequence changed and is the only place
// these arrays are written for single-element mutations. Partition-side
// sequence changes come first because their hooks may still veto; the array
// updates after them cannot fail.

// commitInsert runs once the master holds h at m.
func (l *List[K, E]) commitInsert(m int, h arena.Handle) error {
	p := l.op.target
	j := p.masterIdx.LowerBound(m)
	if err := p.seq.Insert(j, h); err != nil {
		return err
	}

	// masterOwner and masterLocal do not have slot m yet, so old slot i is
	// new slot i+1. Every partition owning a slot at or after m has its
	// master indexes >= m shifted right once.
	touched := 0
	for i := m; i < len(l.masterOwner); i++ {
		q := l.masterOwner[i]
		if q == p {
			l.masterLocal.Add(i, 1)
			touched++
		}
		if l.visited.Visit(q.ordinal) {
			touched += q.masterIdx.ShiftFrom(q.masterIdx.LowerBound(m), 1)
		}
	}
	l.op.parts += l.visited.Count()
	l.visited.Reset()

	p.masterIdx.Insert(j, m)
	l.masterLocal.Insert(m, j)
	l.masterOwner = slices.Insert(l.masterOwner, m, p)
	l.op.touched += touched + 1
	return nil
}

// commitRemove runs once the master no longer holds slot m.
func (l *List[K, E]) commitRemove(m int) error {
	p := l.masterOwner[m]
	j := l.masterLocal.At(m)
	if _, err := p.seq.Remove(j); err != nil {
		return err
	}

	p.masterIdx.Delete(j)
	l.masterLocal.Delete(m)
	l.masterOwner = slices.Delete(l.masterOwner, m, m+1)

	touched := 0
	for i := m; i < len(l.masterOwner); i++ {
		q := l.masterOwner[i]
		if q == p {
			l.masterLocal.Add(i, -1)
			touched++
		}
		if l.visited.Visit(q.ordinal) {
			touched += q.masterIdx.ShiftFrom(q.masterIdx.LowerBound(m+1), -1)
		}
	}
	l.op.parts += l.visited.Count()
	l.visited.Reset()

	l.op.touched += touched + 1
	return nil
}

// commitSet runs once the master holds h at m. Master indexes do not move;
// only local indexes of the partitions losing and gaining the slot do.
func (l *List[K, E]) commitSet(m int, h arena.Handle) error {
	p := l.masterOwner[m]
	q := l.op.target
	j := l.masterLocal.At(m)
	if p == q {
		_, err := p.seq.Set(j, h)
		return err
	}

	k := q.masterIdx.LowerBound(m)
	if err := q.seq.Insert(k, h); err != nil {
		return err
	}
	if _, err := p.seq.Remove(j); err != nil {
		q.seq.Discard(k)
		return err
	}

	p.masterIdx.Delete(j)
	q.masterIdx.Insert(k, m)
	l.masterLocal.Put(m, k)
	l.masterOwner[m] = q

	l.op.parts += 2
	touched := 2
	for i := m + 1; i < len(l.masterOwner); i++ {
		switch l.masterOwner[i] {
		case p:
			l.masterLocal.Add(i, -1)
			touched++
		case q:
			l.masterLocal.Add(i, 1)
			touched++
		}
	}
	l.op.touched += touched
	return nil
}
