package bitalloc

import "math/bits"

// Cascade16 is a segment tree node holding 16 children of type T.
//
// Bit i of the summary is set iff child i has at least one free slot. The
// summary is derived state: it is refreshed after every mutation of a child
// and slot state itself lives only in the leaves.
//
// Global key k maps to child k/childCap at local key k%childCap.
type Cascade16[T any, PT Node[T]] struct {
	bitset uint16
	sub    [fanout]T
}

func (c *Cascade16[T, PT]) child(i int) PT { return PT(&c.sub[i]) }

func (c *Cascade16[T, PT]) childCap() int { return c.child(0).Cap() }

// refresh recomputes summary bit i from child i.
func (c *Cascade16[T, PT]) refresh(i int) {
	if c.child(i).IsEmpty() {
		c.bitset &^= 1 << i
	} else {
		c.bitset |= 1 << i
	}
}

// Cap returns the number of slots of the node.
func (c *Cascade16[T, PT]) Cap() int { return c.childCap() * fanout }

// Alloc allocates the lowest free slot.
func (c *Cascade16[T, PT]) Alloc() (int, bool) {
	if c.IsEmpty() {
		return 0, false
	}
	i := bits.TrailingZeros16(c.bitset)
	key, ok := c.child(i).Alloc()
	if !ok {
		panic("bitalloc: summary marks an exhausted child as free")
	}
	c.refresh(i)
	return key + i*c.childCap(), true
}

// AllocContiguous allocates the lowest aligned run of size free slots.
func (c *Cascade16[T, PT]) AllocContiguous(size, alignLog2 int) (int, bool) {
	return allocContiguous(c, size, alignLog2)
}

// AllocContiguousAt allocates [base, base+size) if it is free and aligned.
func (c *Cascade16[T, PT]) AllocContiguousAt(base, size, alignLog2 int) (int, bool) {
	return allocContiguousAt(c, base, size, alignLog2)
}

// Dealloc frees key and reports whether it was allocated.
func (c *Cascade16[T, PT]) Dealloc(key int) bool {
	checkKey(key, c.Cap())
	cc := c.childCap()
	i := key / cc
	// A freed slot always leaves its child non-empty.
	c.bitset |= 1 << i
	return c.child(i).Dealloc(key % cc)
}

// DeallocContiguous frees [base, base+size) if every slot in it is allocated.
//
// The run is verified across all spanned children before any child is
// touched, so a false result leaves the node unchanged.
func (c *Cascade16[T, PT]) DeallocContiguous(base, size int) bool {
	return deallocContiguous(c, base, size)
}

// Insert marks [start, end) free.
func (c *Cascade16[T, PT]) Insert(start, end int) {
	c.forRange(start, end, func(sub PT, lo, hi int) { sub.Insert(lo, hi) })
}

// Remove marks [start, end) allocated.
func (c *Cascade16[T, PT]) Remove(start, end int) {
	c.forRange(start, end, func(sub PT, lo, hi int) { sub.Remove(lo, hi) })
}

// forRange splits [start, end) at child boundaries, applies fn to each
// clipped local range and refreshes the summary bit of every child it visits.
func (c *Cascade16[T, PT]) forRange(start, end int, fn func(sub PT, lo, hi int)) {
	checkRange(start, end, c.Cap())
	if start == end {
		return
	}
	cc := c.childCap()
	first, last := start/cc, (end-1)/cc
	for i := first; i <= last; i++ {
		lo, hi := 0, cc
		if i == first {
			lo = start % cc
		}
		if i == last {
			hi = end - i*cc
		}
		fn(c.child(i), lo, hi)
		c.refresh(i)
	}
}

// IsEmpty reports whether no slot is free.
func (c *Cascade16[T, PT]) IsEmpty() bool { return c.bitset == 0 }

// Test reports whether key is free.
func (c *Cascade16[T, PT]) Test(key int) bool {
	checkKey(key, c.Cap())
	cc := c.childCap()
	return c.child(key / cc).Test(key % cc)
}

// Next returns the lowest free slot not less than key.
func (c *Cascade16[T, PT]) Next(key int) (int, bool) {
	checkStart(key)
	cc := c.childCap()
	idx := key / cc
	if idx >= fanout {
		return 0, false
	}
	for m := c.bitset &^ (uint16(1)<<idx - 1); m != 0; m &= m - 1 {
		i := bits.TrailingZeros16(m)
		local := 0
		if i == idx {
			local = key - cc*idx
		}
		if next, ok := c.child(i).Next(local); ok {
			return next + cc*i, true
		}
	}
	return 0, false
}
