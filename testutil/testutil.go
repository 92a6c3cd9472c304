package testutil

import (
	"math"
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Zipf returns a Zipfian-distributed value in [0, n).
// P(k) ∝ 1/k^s; s=0 is uniform, larger s skews towards small values.
func (r *RNG) Zipf(n int, s float64) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.zipfLocked(n, s)
}

// zipfLocked is the internal implementation (caller must hold lock).
func (r *RNG) zipfLocked(n int, s float64) int {
	if n <= 1 {
		return 0
	}

	var hns float64
	for i := 1; i <= n; i++ {
		hns += 1.0 / math.Pow(float64(i), s)
	}

	u := r.rand.Float64() * hns
	var cumulative float64
	for k := 1; k <= n; k++ {
		cumulative += 1.0 / math.Pow(float64(k), s)
		if u <= cumulative {
			return k - 1
		}
	}

	return n - 1
}

// OpKind is the kind of a scripted operation.
type OpKind int

const (
	OpAdd OpKind = iota
	OpInsert
	OpSet
	OpRemove
	OpPartitionAdd
	OpPartitionInsert
	OpPartitionSet
	OpPartitionRemove
	OpRemoveKey
	numOpKinds
)

var opKindNames = [...]string{
	OpAdd:             "add",
	OpInsert:          "insert",
	OpSet:             "set",
	OpRemove:          "remove",
	OpPartitionAdd:    "partition-add",
	OpPartitionInsert: "partition-insert",
	OpPartitionSet:    "partition-set",
	OpPartitionRemove: "partition-remove",
	OpRemoveKey:       "remove-key",
}

func (k OpKind) String() string {
	if k >= 0 && int(k) < len(opKindNames) {
		return opKindNames[k]
	}
	return "unknown"
}

// Op is one scripted operation.
//
// Pick is a non-negative number the caller reduces modulo the current length
// of whatever it indexes, so one script stays valid for any list state.
type Op struct {
	Kind  OpKind
	Key   int
	Value int
	Pick  int
}

// Ops returns n random operations over keys [0, keys). Keys follow a Zipf
// distribution with exponent skew. Removals are drawn less often than
// insertions, so the list tends to grow. Values are unique within a script.
func (r *RNG) Ops(n, keys int, skew float64) []Op {
	r.mu.Lock()
	defer r.mu.Unlock()

	ops := make([]Op, n)
	for i := range ops {
		kind := OpKind(r.rand.Intn(int(numOpKinds)))
		// Bulk key removal is rare; re-draw most of them.
		if kind == OpRemoveKey && r.rand.Intn(8) != 0 {
			kind = OpAdd
		}
		ops[i] = Op{
			Kind:  kind,
			Key:   r.zipfLocked(keys, skew),
			Value: i,
			Pick:  r.rand.Intn(math.MaxInt32),
		}
	}
	return ops
}
