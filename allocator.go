package bitalloc

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// Allocator owns one node of a fixed capacity and reports recoverable
// failures as errors, with optional logging and metrics.
//
// The capacity is chosen by the node type:
//
//	a := bitalloc.New[bitalloc.BitAlloc64K]()
//	a.Insert(0, 1024)
//	key, err := a.Alloc()
//
// Allocator is not safe for concurrent use; guard it with a mutex when it is
// shared between goroutines.
type Allocator[T any, PT Node[T]] struct {
	node    T
	logger  *Logger
	metrics MetricsCollector
}

// New returns an Allocator with every slot allocated.
func New[T any, PT Node[T]](optFns ...Option) *Allocator[T, PT] {
	o := applyOptions(optFns)
	a := &Allocator[T, PT]{
		metrics: o.metricsCollector,
	}
	a.logger = o.logger.WithCap(a.Cap())
	return a
}

// Node returns the underlying node. Mutations through it bypass logging and metrics.
func (a *Allocator[T, PT]) Node() PT { return PT(&a.node) }

// Cap returns the number of slots.
func (a *Allocator[T, PT]) Cap() int { return a.Node().Cap() }

// Alloc allocates the lowest free slot.
func (a *Allocator[T, PT]) Alloc() (int, error) {
	key, ok := a.Node().Alloc()
	var err error
	if !ok {
		err = ErrExhausted
	}
	a.metrics.RecordAlloc(1, err)
	a.logger.LogAlloc(key, 1, err)
	return key, err
}

// AllocContiguous allocates the lowest run of size free slots aligned to 1<<alignLog2.
func (a *Allocator[T, PT]) AllocContiguous(size, alignLog2 int) (int, error) {
	base, ok := a.Node().AllocContiguous(size, alignLog2)
	var err error
	if !ok {
		err = fmt.Errorf("%w: size %d, align_log2 %d", ErrUnavailable, size, alignLog2)
	}
	a.metrics.RecordAlloc(size, err)
	a.logger.LogAlloc(base, size, err)
	return base, err
}

// AllocContiguousAt allocates exactly [base, base+size).
func (a *Allocator[T, PT]) AllocContiguousAt(base, size, alignLog2 int) error {
	_, ok := a.Node().AllocContiguousAt(base, size, alignLog2)
	var err error
	if !ok {
		err = fmt.Errorf("%w: [%d, %d), align_log2 %d", ErrUnavailable, base, base+size, alignLog2)
	}
	a.metrics.RecordAlloc(size, err)
	a.logger.LogAlloc(base, size, err)
	return err
}

// Free releases key. It returns ErrNotAllocated if key was already free;
// key is free afterwards in both cases.
func (a *Allocator[T, PT]) Free(key int) error {
	var err error
	if !a.Node().Dealloc(key) {
		err = fmt.Errorf("%w: key %d", ErrNotAllocated, key)
	}
	a.metrics.RecordFree(1, err)
	a.logger.LogFree(key, 1, err)
	return err
}

// FreeContiguous releases [base, base+size). Unless every slot in the run is
// allocated it returns ErrNotAllocated and changes nothing.
func (a *Allocator[T, PT]) FreeContiguous(base, size int) error {
	var err error
	if !a.Node().DeallocContiguous(base, size) {
		err = fmt.Errorf("%w: [%d, %d)", ErrNotAllocated, base, base+size)
	}
	a.metrics.RecordFree(size, err)
	a.logger.LogFree(base, size, err)
	return err
}

// Insert makes [start, end) available regardless of its current state.
func (a *Allocator[T, PT]) Insert(start, end int) {
	a.Node().Insert(start, end)
	a.metrics.RecordInsert(end - start)
	a.logger.LogInsert(start, end)
}

// Remove withdraws [start, end) regardless of its current state.
func (a *Allocator[T, PT]) Remove(start, end int) {
	a.Node().Remove(start, end)
	a.metrics.RecordRemove(end - start)
	a.logger.LogRemove(start, end)
}

// InsertBitmap makes every member of rb available.
func (a *Allocator[T, PT]) InsertBitmap(rb *roaring.Bitmap) {
	forEachRun(rb, a.Cap(), a.Insert)
}

// Test reports whether key is free.
func (a *Allocator[T, PT]) Test(key int) bool { return a.Node().Test(key) }

// Next returns the lowest free slot not less than key.
func (a *Allocator[T, PT]) Next(key int) (int, bool) { return a.Node().Next(key) }

// IsEmpty reports whether no slot is free.
func (a *Allocator[T, PT]) IsEmpty() bool { return a.Node().IsEmpty() }

// Available returns the number of free slots. It walks the free set.
func (a *Allocator[T, PT]) Available() int { return CountFree(a.Node()) }

// Snapshot returns the free slots as a roaring bitmap.
func (a *Allocator[T, PT]) Snapshot() *roaring.Bitmap { return ToBitmap(a.Node()) }
