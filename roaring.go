package bitalloc

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// ToBitmap returns the free slots of n as a roaring bitmap.
//
// The result is a copy; later changes to n are not reflected in it.
func ToBitmap[N BitAlloc](n N) *roaring.Bitmap {
	rb := roaring.New()
	for start, end := range FreeRuns(n) {
		rb.AddRange(uint64(start), uint64(end))
	}
	rb.RunOptimize()
	return rb
}

// InsertBitmap marks every member of rb free in n.
//
// Consecutive members are coalesced into a single Insert. A member not
// below n.Cap() is a contract violation and panics before n is modified.
func InsertBitmap[N BitAlloc](n N, rb *roaring.Bitmap) {
	forEachRun(rb, n.Cap(), n.Insert)
}

// RemoveBitmap marks every member of rb allocated in n.
func RemoveBitmap[N BitAlloc](n N, rb *roaring.Bitmap) {
	forEachRun(rb, n.Cap(), n.Remove)
}

func forEachRun(rb *roaring.Bitmap, capacity int, fn func(start, end int)) {
	if rb == nil || rb.IsEmpty() {
		return
	}
	if hi := int(rb.Maximum()); hi >= capacity {
		panic(fmt.Errorf("%w: key %d, capacity %d", ErrKeyOutOfRange, hi, capacity))
	}
	start, end := -1, -1
	it := rb.Iterator()
	for it.HasNext() {
		v := int(it.Next())
		if v == end {
			end++
			continue
		}
		if start >= 0 {
			fn(start, end)
		}
		start, end = v, v+1
	}
	fn(start, end)
}
