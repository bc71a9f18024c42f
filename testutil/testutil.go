package testutil

import (
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
		rand: rand.New(rand.NewSource(seed)), //nolint:gosec // deterministic test data
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

// Range returns a random half-open range [start, end) within [0, capacity)
// no longer than maxLen. The range may be empty.
func (r *RNG) Range(capacity, maxLen int) (int, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rangeLocked(capacity, maxLen)
}

func (r *RNG) rangeLocked(capacity, maxLen int) (int, int) {
	start := r.rand.Intn(capacity)
	n := r.rand.Intn(min(maxLen, capacity-start) + 1)
	return start, start + n
}

// OpKind identifies an allocator operation in a generated sequence.
type OpKind int

const (
	OpAlloc OpKind = iota
	OpAllocContiguous
	OpAllocContiguousAt
	OpDealloc
	OpDeallocContiguous
	OpInsert
	OpRemove
)

var opNames = [...]string{
	OpAlloc:             "alloc",
	OpAllocContiguous:   "alloc_contiguous",
	OpAllocContiguousAt: "alloc_contiguous_at",
	OpDealloc:           "dealloc",
	OpDeallocContiguous: "dealloc_contiguous",
	OpInsert:            "insert",
	OpRemove:            "remove",
}

func (k OpKind) String() string {
	if int(k) < len(opNames) {
		return opNames[k]
	}
	return "unknown"
}

// Op is one generated operation. Fields not used by Kind are zero.
type Op struct {
	Kind      OpKind
	Key       int // Dealloc key, or base of *At/DeallocContiguous
	Size      int
	AlignLog2 int
	End       int // Insert/Remove end; Key is the start
}

// Ops generates n valid operations against a node of the given capacity.
// Point and run operations dominate; bulk Insert/Remove are rarer so the
// free set stays fragmented rather than all-or-nothing.
func (r *RNG) Ops(n, capacity int) []Op {
	r.mu.Lock()
	defer r.mu.Unlock()

	maxRun := min(capacity, 64)
	maxAlign := 0
	for 1<<(maxAlign+1) <= maxRun {
		maxAlign++
	}

	ops := make([]Op, n)
	for i := range ops {
		var op Op
		switch p := r.rand.Intn(100); {
		case p < 25:
			op.Kind = OpAlloc
		case p < 40:
			op.Kind = OpAllocContiguous
			op.Size = 1 + r.rand.Intn(maxRun)
			op.AlignLog2 = r.rand.Intn(maxAlign + 1)
		case p < 50:
			op.Kind = OpAllocContiguousAt
			op.Size = 1 + r.rand.Intn(maxRun)
			op.AlignLog2 = r.rand.Intn(maxAlign + 1)
			op.Key = r.rand.Intn(capacity)
		case p < 75:
			op.Kind = OpDealloc
			op.Key = r.rand.Intn(capacity)
		case p < 90:
			op.Kind = OpDeallocContiguous
			op.Key = r.rand.Intn(capacity)
			op.Size = r.rand.Intn(maxRun + 1)
		case p < 95:
			op.Kind = OpInsert
			op.Key, op.End = r.rangeLocked(capacity, capacity/4+1)
		default:
			op.Kind = OpRemove
			op.Key, op.End = r.rangeLocked(capacity, capacity/4+1)
		}
		ops[i] = op
	}
	return ops
}
