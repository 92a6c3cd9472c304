package partlist

import (
	"fmt"
	"strings"
)

// Check verifies that the list and its partitions are consistent:
//
//   - I1: every list slot names a partition slot holding the same element;
//   - I2: every partition slot names the list slot that names it back;
//   - I3: each partition's list indexes are strictly increasing;
//   - I4: each element's key is the key of the partition holding it.
//
// It returns an *InvariantError for the first violation found. Check is meant
// for tests and debugging; it walks the whole structure.
func (l *List[K, E]) Check() error {
	n := l.master.Len()
	if l.masterLocal.Len() != n || len(l.masterOwner) != n {
		return invariantErrf("I1", -1, "side tables have %d/%d entries for %d slots", l.masterLocal.Len(), len(l.masterOwner), n)
	}
	if len(l.parts) != len(l.order) {
		return invariantErrf("registry", -1, "%d keys map to %d partitions", len(l.parts), len(l.order))
	}

	total := 0
	for ord, p := range l.order {
		if p.ordinal != ord || l.parts[p.key] != p || p.list != l {
			return invariantErrf("registry", ord, "partition %v is misregistered", p.key)
		}
		if p.seq.Len() != p.masterIdx.Len() {
			return invariantErrf("I2", -1, "partition %v holds %d elements and %d indexes", p.key, p.seq.Len(), p.masterIdx.Len())
		}
		if !p.masterIdx.Sorted() {
			return invariantErrf("I3", -1, "partition %v indexes %v", p.key, p.masterIdx.Slice())
		}
		for j := 0; j < p.masterIdx.Len(); j++ {
			i := p.masterIdx.At(j)
			if i < 0 || i >= n {
				return invariantErrf("I2", j, "partition %v points at %d outside [0,%d)", p.key, i, n)
			}
			if l.masterOwner[i] != p || l.masterLocal.At(i) != j {
				return invariantErrf("I2", j, "partition %v points at %d which points elsewhere", p.key, i)
			}
		}
		total += p.seq.Len()
	}
	if total != n {
		return invariantErrf("I2", -1, "partitions hold %d elements, list holds %d", total, n)
	}

	for i := 0; i < n; i++ {
		p := l.masterOwner[i]
		j := l.masterLocal.At(i)
		if p == nil || j < 0 || j >= p.seq.Len() {
			return invariantErrf("I1", i, "slot points at missing partition slot %d", j)
		}
		h := l.master.At(i)
		if p.seq.At(j) != h {
			return invariantErrf("I1", i, "partition %v slot %d holds another element", p.key, j)
		}
		if p.masterIdx.Find(i) != j {
			return invariantErrf("I1", i, "partition %v does not list slot %d", p.key, i)
		}
		e, ok := l.elems.Lookup(h)
		if !ok {
			return invariantErrf("I1", i, "slot holds freed handle %d", h)
		}
		if k := l.keyFn(e); k != p.key {
			return invariantErrf("I4", i, "element key %v is in partition %v", k, p.key)
		}
	}
	if l.elems.Len() != n {
		return invariantErrf("arena", -1, "%d live elements for %d slots", l.elems.Len(), n)
	}
	return nil
}

// Dump renders both views for debugging.
func (l *List[K, E]) Dump() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "list (%d)\n", l.master.Len())
	for i, h := range l.master.All() {
		fmt.Fprintf(&buf, "  %d: %v/%d %v\n", i, l.masterOwner[i].key, l.masterLocal.At(i), l.elems.Get(h))
	}
	for _, p := range l.order {
		fmt.Fprintf(&buf, "partition %v (%d) %v\n", p.key, p.seq.Len(), p.masterIdx.Slice())
	}
	return buf.String()
}
