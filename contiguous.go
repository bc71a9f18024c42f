package bitalloc

import "math/bits"

// The search routines below only use Next and IsEmpty, so the same code
// serves a bare leaf and a cascade of any depth.

func allocContiguous[N BitAlloc](n N, size, alignLog2 int) (int, bool) {
	checkRun(size, alignLog2)
	base, ok := findContiguous(n, n.Cap(), size, alignLog2)
	if !ok {
		return 0, false
	}
	n.Remove(base, base+size)
	return base, true
}

func allocContiguousAt[N BitAlloc](n N, base, size, alignLog2 int) (int, bool) {
	checkStart(base)
	checkRun(size, alignLog2)
	if !checkContiguous(n, base, n.Cap(), size, alignLog2) {
		return 0, false
	}
	n.Remove(base, base+size)
	return base, true
}

func deallocContiguous[N BitAlloc](n N, base, size int) bool {
	checkStart(base)
	checkRun(size, 0)
	if size > n.Cap()-base {
		return false
	}
	if size == 0 {
		return true
	}
	end := base + size
	if next, ok := n.Next(base); ok && next < end {
		return false
	}
	n.Insert(base, end)
	return true
}

// findContiguous returns the lowest base aligned to 1<<alignLog2 such that
// [base, base+size) is free and below capacity.
func findContiguous[N BitAlloc](n N, capacity, size, alignLog2 int) (int, bool) {
	if size == 0 || !alignFits(capacity, alignLog2) || n.IsEmpty() {
		return 0, false
	}
	first, ok := n.Next(0)
	if !ok {
		return 0, false
	}
	base := alignUpLog2(first, alignLog2)
	offset := base
	for offset < capacity {
		next, ok := n.Next(offset)
		if !ok {
			return 0, false
		}
		if next != offset {
			// [offset, next) is allocated; restart at the first aligned slot after it.
			base = alignUpLog2(next, alignLog2)
			offset = base
			continue
		}
		offset++
		if offset-base == size {
			return base, true
		}
	}
	return 0, false
}

// checkContiguous reports whether [base, base+size) is free, below capacity
// and aligned to 1<<alignLog2.
func checkContiguous[N BitAlloc](n N, base, capacity, size, alignLog2 int) bool {
	if size == 0 || !alignFits(capacity, alignLog2) || n.IsEmpty() || !isAlignedLog2(base, alignLog2) {
		return false
	}
	for offset := base; offset < capacity; {
		next, ok := n.Next(offset)
		if !ok || next != offset {
			return false
		}
		offset++
		if offset-base == size {
			return true
		}
	}
	return false
}

// alignFits reports whether capacity >= 1<<alignLog2.
func alignFits(capacity, alignLog2 int) bool {
	return alignLog2 < bits.UintSize-1 && capacity >= 1<<alignLog2
}

func alignUpLog2(base, alignLog2 int) int {
	mask := 1<<alignLog2 - 1
	return (base + mask) &^ mask
}

func isAlignedLog2(base, alignLog2 int) bool {
	return base&(1<<alignLog2-1) == 0
}
