package bitalloc

import "sync/atomic"

// MetricsCollector defines an interface for collecting allocator metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// size is the number of slots an operation covered; err is nil if it succeeded.
type MetricsCollector interface {
	// RecordAlloc is called after each Alloc, AllocContiguous and AllocContiguousAt.
	RecordAlloc(size int, err error)

	// RecordFree is called after each Free and FreeContiguous.
	RecordFree(size int, err error)

	// RecordInsert is called after each Insert and InsertBitmap range.
	RecordInsert(size int)

	// RecordRemove is called after each Remove.
	RecordRemove(size int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAlloc(int, error) {}
func (NoopMetricsCollector) RecordFree(int, error)  {}
func (NoopMetricsCollector) RecordInsert(int)       {}
func (NoopMetricsCollector) RecordRemove(int)       {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Counters are atomic, so one collector may be shared by several allocators.
type BasicMetricsCollector struct {
	AllocCount  atomic.Int64
	AllocSlots  atomic.Int64
	AllocErrors atomic.Int64
	FreeCount   atomic.Int64
	FreeSlots   atomic.Int64
	FreeErrors  atomic.Int64
	InsertCount atomic.Int64
	InsertSlots atomic.Int64
	RemoveCount atomic.Int64
	RemoveSlots atomic.Int64
}

// RecordAlloc implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAlloc(size int, err error) {
	b.AllocCount.Add(1)
	if err != nil {
		b.AllocErrors.Add(1)
		return
	}
	b.AllocSlots.Add(int64(size))
}

// RecordFree implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFree(size int, err error) {
	b.FreeCount.Add(1)
	if err != nil {
		b.FreeErrors.Add(1)
		return
	}
	b.FreeSlots.Add(int64(size))
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert(size int) {
	b.InsertCount.Add(1)
	b.InsertSlots.Add(int64(size))
}

// RecordRemove implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRemove(size int) {
	b.RemoveCount.Add(1)
	b.RemoveSlots.Add(int64(size))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		AllocCount:  b.AllocCount.Load(),
		AllocSlots:  b.AllocSlots.Load(),
		AllocErrors: b.AllocErrors.Load(),
		FreeCount:   b.FreeCount.Load(),
		FreeSlots:   b.FreeSlots.Load(),
		FreeErrors:  b.FreeErrors.Load(),
		InsertCount: b.InsertCount.Load(),
		InsertSlots: b.InsertSlots.Load(),
		RemoveCount: b.RemoveCount.Load(),
		RemoveSlots: b.RemoveSlots.Load(),
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	AllocCount  int64
	AllocSlots  int64
	AllocErrors int64
	FreeCount   int64
	FreeSlots   int64
	FreeErrors  int64
	InsertCount int64
	InsertSlots int64
	RemoveCount int64
	RemoveSlots int64
}

// InUse returns the net number of slots handed out by successful
// allocations and not yet returned by successful frees.
func (s BasicMetricsStats) InUse() int64 {
	return s.AllocSlots - s.FreeSlots
}
