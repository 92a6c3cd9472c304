package partlist

import (
	"fmt"
	"reflect"

	"github.com/hupe1980/partlist/internal/visited"
)

// Clone returns a deep structural copy of the list.
//
// Elements are copied with the hook set by WithCopy (shallow by default) or
// WithCodecCopy. A list slot and its partition slot refer to the same copy,
// and slots that hold the same reference (pointer, map, slice or channel)
// share one copy in the clone as well. The clone shares the key function,
// observer, logger and metrics collector.
func (l *List[K, E]) Clone() (*List[K, E], error) {
	if l.busy {
		return nil, ErrReentrant
	}
	elems, err := l.elems.Clone(sharedCopy(l.opts.copyFn))
	if err != nil {
		return nil, fmt.Errorf("partlist: clone: %w", err)
	}

	c := &List[K, E]{
		keyFn:       l.keyFn,
		opts:        l.opts,
		log:         l.log,
		metrics:     l.metrics,
		elems:       elems,
		masterLocal: l.masterLocal.Clone(),
		masterOwner: make([]*Partition[K, E], len(l.masterOwner), cap(l.masterOwner)),
		parts:       make(map[K]*Partition[K, E], len(l.parts)),
		order:       make([]*Partition[K, E], len(l.order)),
		visited:     visited.New(len(l.order)),
	}
	c.opts.keys = append([]K(nil), l.opts.keys...)
	c.master = l.master.Clone(masterHooks[K, E]{l: c})

	for i, p := range l.order {
		cp := &Partition[K, E]{
			key:       p.key,
			list:      c,
			masterIdx: p.masterIdx.Clone(),
			ordinal:   i,
			declared:  p.declared,
		}
		cp.seq = p.seq.Clone(partitionHooks[K, E]{p: cp})
		c.order[i] = cp
		c.parts[cp.key] = cp
	}
	for i, p := range l.masterOwner {
		c.masterOwner[i] = c.order[p.ordinal]
	}
	return c, nil
}

// identity names one reference value. Slices with the same backing array but
// different bounds are different references.
type identity struct {
	typ reflect.Type
	ptr uintptr
	len int
	cap int
}

func identityOf(v any) (identity, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.UnsafePointer:
		if rv.IsNil() {
			return identity{}, false
		}
		return identity{typ: rv.Type(), ptr: rv.Pointer()}, true
	case reflect.Slice:
		if rv.IsNil() {
			return identity{}, false
		}
		return identity{typ: rv.Type(), ptr: rv.Pointer(), len: rv.Len(), cap: rv.Cap()}, true
	default:
		return identity{}, false
	}
}

// sharedCopy wraps copyFn so that each reference is copied once; later
// elements holding the same reference get the first copy.
func sharedCopy[E any](copyFn func(E) (E, error)) func(E) (E, error) {
	seen := make(map[identity]E)
	return func(e E) (E, error) {
		id, ok := identityOf(e)
		if !ok {
			return copyFn(e)
		}
		if c, ok := seen[id]; ok {
			return c, nil
		}
		c, err := copyFn(e)
		if err != nil {
			return c, err
		}
		seen[id] = c
		return c, nil
	}
}
