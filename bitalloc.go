package bitalloc

// fanout is the number of children of every cascade node.
const fanout = 16

// Fixed capacities of the predefined allocators.
const (
	Cap16   = fanout
	Cap256  = Cap16 * fanout
	Cap4K   = Cap256 * fanout
	Cap64K  = Cap4K * fanout
	Cap1M   = Cap64K * fanout
	Cap16M  = Cap1M * fanout
	Cap256M = Cap16M * fanout
)

// BitAlloc is the operation set shared by every node of the tree, leaf or cascade.
//
// Slots are numbered 0..Cap()-1. A zero value node has every slot allocated;
// callers make slots available with Insert before allocating from them.
//
// Keys and ranges outside the node are programming errors: the node panics
// with an error wrapping ErrKeyOutOfRange, ErrInvalidRange or
// ErrInvalidArgument. Exhaustion and state mismatches are reported through
// the boolean results and never leave a node partially mutated.
//
// Implementations are not safe for concurrent use.
type BitAlloc interface {
	// Cap returns the number of slots managed by the node.
	Cap() int

	// Alloc allocates the lowest free slot.
	Alloc() (int, bool)

	// AllocContiguous allocates the lowest run of size free slots whose
	// first slot is a multiple of 1<<alignLog2.
	AllocContiguous(size, alignLog2 int) (int, bool)

	// AllocContiguousAt allocates the run [base, base+size) if every slot in
	// it is free and base is a multiple of 1<<alignLog2.
	AllocContiguousAt(base, size, alignLog2 int) (int, bool)

	// Next returns the lowest free slot not less than key.
	Next(key int) (int, bool)

	// Dealloc frees key. It reports false if key was already free.
	Dealloc(key int) bool

	// DeallocContiguous frees [base, base+size) if every slot in it is
	// allocated. Otherwise nothing changes and it reports false.
	DeallocContiguous(base, size int) bool

	// Insert marks [start, end) free.
	Insert(start, end int)

	// Remove marks [start, end) allocated.
	Remove(start, end int)

	// IsEmpty reports whether no slot is free.
	IsEmpty() bool

	// Test reports whether key is free.
	Test(key int) bool
}

// Node constrains a cascade child type: T is stored by value and its
// pointer implements BitAlloc.
type Node[T any] interface {
	*T
	BitAlloc
}

// BitAlloc256 is a bitmap allocator of 256 slots.
type BitAlloc256 = Cascade16[BitAlloc16, *BitAlloc16]

// BitAlloc4K is a bitmap allocator of 4096 slots.
type BitAlloc4K = Cascade16[BitAlloc256, *BitAlloc256]

// BitAlloc64K is a bitmap allocator of 65536 slots.
type BitAlloc64K = Cascade16[BitAlloc4K, *BitAlloc4K]

// BitAlloc1M is a bitmap allocator of 2^20 slots.
type BitAlloc1M = Cascade16[BitAlloc64K, *BitAlloc64K]

// BitAlloc16M is a bitmap allocator of 2^24 slots.
type BitAlloc16M = Cascade16[BitAlloc1M, *BitAlloc1M]

// BitAlloc256M is a bitmap allocator of 2^28 slots.
//
// The value is roughly 34 MiB; allocate it with new rather than on the stack.
type BitAlloc256M = Cascade16[BitAlloc16M, *BitAlloc16M]

var (
	_ BitAlloc = (*BitAlloc16)(nil)
	_ BitAlloc = (*BitAlloc256)(nil)
	_ BitAlloc = (*BitAlloc4K)(nil)
	_ BitAlloc = (*BitAlloc64K)(nil)
	_ BitAlloc = (*BitAlloc1M)(nil)
	_ BitAlloc = (*BitAlloc16M)(nil)
	_ BitAlloc = (*BitAlloc256M)(nil)
)
