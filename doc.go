// Package partlist provides an ordered list that is simultaneously split into
// per-key sub-lists, with both views kept consistent under every mutation.
//
// A List is the master view: an ordinary sequence of elements. Each element
// has a key, derived by a KeyFunc, and each key owns a Partition holding that
// key's elements in the same relative order they have in the list. Elements
// can be added, inserted, replaced and removed through either view; the other
// view and the index mappings between them follow.
//
// # Quick Start
//
//	type Shape struct {
//	    Kind string
//	    Name string
//	}
//
//	l := partlist.New(func(s Shape) string { return s.Kind })
//	_ = l.Add(Shape{"circle", "c1"})
//	_ = l.Add(Shape{"square", "s1"})
//	_ = l.Insert(1, Shape{"circle", "c2"})
//
//	circles, _ := l.Partition("circle")
//	circles.Values()          // [c1 c2]
//	circles.MasterIndices()   // [0 1]
//
//	// Partition-side changes land in the list.
//	_ = circles.Insert(0, Shape{"circle", "c0"})
//	l.Values()                // [c0 c1 c2 s1]
//
// # Keys
//
// Partitions are created on first use. WithKeys declares partitions up front
// and WithStrictKeys rejects any other key with ErrUnsupportedKey. With
// WithReclaimEmpty, a partition created on first use is dropped once it
// becomes empty; the dropped Partition reports Detached and its mutating
// methods return ErrDetached.
//
// # Failure Semantics
//
// Every mutation either fully succeeds or leaves both views untouched.
// An Observer installed with WithObserver sees each change before it is
// applied and may veto it; the veto is returned as an error wrapping
// ErrVetoed. Invalid positions yield an *IndexError wrapping ErrOutOfRange.
//
// # Cloning
//
// Clone copies the list and its partitions. Elements are copied once each,
// with WithCopy or WithCodecCopy for deep copies, so the list slot and the
// partition slot of an element still share one value in the clone.
//
// # Concurrency
//
// A List is not safe for concurrent use. Synced guards one with a
// sync.RWMutex.
//
// # Observability
//
//	metrics := &partlist.BasicMetricsCollector{}
//	l := partlist.New(kindOf,
//	    partlist.WithMetricsCollector[string, Shape](metrics),
//	    partlist.WithLogLevel[string, Shape](slog.LevelDebug),
//	)
package partlist
