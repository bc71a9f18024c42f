package bitalloc

import (
	"math/bits"
	"strings"
)

// BitAlloc16 is a bitmap of 16 slots and the leaf of every cascade.
// Bit i set means slot i is free.
type BitAlloc16 struct {
	bits uint16
}

// mask16 returns the bits of [start, end). Callers validate the range.
func mask16(start, end int) uint16 {
	return uint16(uint32(1)<<end - uint32(1)<<start)
}

// Cap returns 16.
func (b *BitAlloc16) Cap() int { return Cap16 }

// Alloc allocates the lowest free slot.
func (b *BitAlloc16) Alloc() (int, bool) {
	if b.bits == 0 {
		return 0, false
	}
	i := bits.TrailingZeros16(b.bits)
	b.bits &^= 1 << i
	return i, true
}

// AllocContiguous allocates the lowest aligned run of size free slots.
func (b *BitAlloc16) AllocContiguous(size, alignLog2 int) (int, bool) {
	return allocContiguous(b, size, alignLog2)
}

// AllocContiguousAt allocates [base, base+size) if it is free and aligned.
func (b *BitAlloc16) AllocContiguousAt(base, size, alignLog2 int) (int, bool) {
	return allocContiguousAt(b, base, size, alignLog2)
}

// Dealloc frees key and reports whether it was allocated.
func (b *BitAlloc16) Dealloc(key int) bool {
	ok := !b.Test(key)
	b.bits |= 1 << key
	return ok
}

// DeallocContiguous frees [base, base+size) if every slot in it is allocated.
func (b *BitAlloc16) DeallocContiguous(base, size int) bool {
	checkStart(base)
	checkRun(size, 0)
	if size > Cap16-base {
		return false
	}
	m := mask16(base, base+size)
	if b.bits&m != 0 {
		return false
	}
	b.bits |= m
	return true
}

// Insert marks [start, end) free.
func (b *BitAlloc16) Insert(start, end int) {
	checkRange(start, end, Cap16)
	b.bits |= mask16(start, end)
}

// Remove marks [start, end) allocated.
func (b *BitAlloc16) Remove(start, end int) {
	checkRange(start, end, Cap16)
	b.bits &^= mask16(start, end)
}

// IsEmpty reports whether no slot is free.
func (b *BitAlloc16) IsEmpty() bool { return b.bits == 0 }

// Test reports whether key is free.
func (b *BitAlloc16) Test(key int) bool {
	checkKey(key, Cap16)
	return b.bits&(1<<key) != 0
}

// Next returns the lowest free slot not less than key.
func (b *BitAlloc16) Next(key int) (int, bool) {
	checkStart(key)
	if key >= Cap16 {
		return 0, false
	}
	rest := b.bits >> key
	if rest == 0 {
		return 0, false
	}
	return key + bits.TrailingZeros16(rest), true
}

// String renders the slots in index order, '1' for free and '0' for allocated.
func (b *BitAlloc16) String() string {
	var sb strings.Builder
	sb.Grow(Cap16)
	for i := range Cap16 {
		if b.bits&(1<<i) != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
