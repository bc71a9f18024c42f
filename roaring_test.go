package bitalloc

import (
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToBitmap(t *testing.T) {
	var ba BitAlloc4K
	ba.Insert(10, 20)
	ba.Insert(300, 301)
	ba.Insert(4000, 4096)

	rb := ToBitmap(&ba)
	assert.Equal(t, uint64(10+1+96), rb.GetCardinality())
	assert.True(t, rb.Contains(10))
	assert.True(t, rb.Contains(19))
	assert.False(t, rb.Contains(20))
	assert.True(t, rb.Contains(300))
	assert.True(t, rb.Contains(4095))

	ba.Alloc()
	assert.True(t, rb.Contains(10), "snapshot is detached from the node")
}

func TestToBitmap_Empty(t *testing.T) {
	var ba BitAlloc256
	assert.True(t, ToBitmap(&ba).IsEmpty())
}

func TestInsertBitmap(t *testing.T) {
	rb := roaring.BitmapOf(1, 2, 3, 7, 200, 201, 4095)

	var ba BitAlloc4K
	InsertBitmap(&ba, rb)

	assert.True(t, rb.Equals(freeSet(&ba)))
	requireSummary(t, &ba)

	RemoveBitmap(&ba, roaring.BitmapOf(2, 201))
	assert.True(t, roaring.BitmapOf(1, 3, 7, 200, 4095).Equals(freeSet(&ba)))
	requireSummary(t, &ba)
}

func TestInsertBitmap_RoundTrip(t *testing.T) {
	var src BitAlloc64K
	src.Insert(0, 100)
	src.Insert(1000, 5000)
	src.Insert(65000, 65536)
	src.Remove(2000, 2001)

	var dst BitAlloc64K
	InsertBitmap(&dst, ToBitmap(&src))

	require.Equal(t, CountFree(&src), CountFree(&dst))
	for start, end := range FreeRuns(&src) {
		n, ok := dst.Next(start)
		require.True(t, ok)
		require.Equal(t, start, n)
		if end < dst.Cap() {
			require.False(t, dst.Test(end))
		}
	}
}

func TestInsertBitmap_NilAndEmpty(t *testing.T) {
	var ba BitAlloc16
	InsertBitmap(&ba, nil)
	InsertBitmap(&ba, roaring.New())
	RemoveBitmap(&ba, nil)
	assert.True(t, ba.IsEmpty())
}

func TestInsertBitmap_OutOfRange(t *testing.T) {
	var ba BitAlloc256
	requirePanicsWith(t, ErrKeyOutOfRange, func() {
		InsertBitmap(&ba, roaring.BitmapOf(3, 256))
	})
	assert.True(t, ba.IsEmpty(), "nothing is inserted when a member is out of range")
}
