package partlist

import (
	"iter"
	"sync"
)

// Synced guards a List with a read-write mutex. Reads take the shared lock;
// everything else, including partition work done in WithPartition, takes
// the exclusive lock.
//
// Observers run under the lock and must not call back into the Synced.
type Synced[K comparable, E any] struct {
	mu sync.RWMutex
	l  *List[K, E]
}

// NewSynced wraps l. l must not be used directly afterwards.
func NewSynced[K comparable, E any](l *List[K, E]) *Synced[K, E] {
	return &Synced[K, E]{l: l}
}

func (s *Synced[K, E]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.l.Len()
}

func (s *Synced[K, E]) Get(index int) (E, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.l.Get(index)
}

func (s *Synced[K, E]) IndexOf(e E) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.l.IndexOf(e)
}

func (s *Synced[K, E]) Contains(e E) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.l.Contains(e)
}

func (s *Synced[K, E]) Values() []E {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.l.Values()
}

// All iterates over a snapshot taken under the shared lock.
func (s *Synced[K, E]) All() iter.Seq2[int, E] {
	values := s.Values()
	return func(yield func(int, E) bool) {
		for i, e := range values {
			if !yield(i, e) {
				return
			}
		}
	}
}

func (s *Synced[K, E]) Keys() []K {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.l.Keys()
}

// PartitionValues returns a copy of the elements of key's partition.
func (s *Synced[K, E]) PartitionValues(key K) ([]E, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.l.Partition(key)
	if !ok {
		return nil, false
	}
	return p.Values(), true
}

func (s *Synced[K, E]) Add(e E) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Add(e)
}

func (s *Synced[K, E]) Insert(index int, e E) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Insert(index, e)
}

func (s *Synced[K, E]) Set(index int, e E) (E, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Set(index, e)
}

func (s *Synced[K, E]) Remove(index int) (E, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Remove(index)
}

func (s *Synced[K, E]) RemoveElement(e E) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.RemoveElement(e)
}

func (s *Synced[K, E]) RemoveKey(key K) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.RemoveKey(key)
}

func (s *Synced[K, E]) RemoveFunc(pred func(E) bool) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.RemoveFunc(pred)
}

func (s *Synced[K, E]) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Clear()
}

// WithPartition runs fn with key's partition under the exclusive lock,
// creating the partition if needed. The partition must not escape fn.
func (s *Synced[K, E]) WithPartition(key K, fn func(p *Partition[K, E]) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.l.NewPartition(key)
	if err != nil {
		return err
	}
	return fn(p)
}

// Clone returns an independent Synced holding a clone of the list.
func (s *Synced[K, E]) Clone() (*Synced[K, E], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, err := s.l.Clone()
	if err != nil {
		return nil, err
	}
	return NewSynced(c), nil
}

// Check verifies the list under the shared lock.
func (s *Synced[K, E]) Check() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.l.Check()
}
