// Package bitalloc provides hierarchical bitmap allocators for numbered slots.
//
// An allocator tracks which of a fixed universe of slots 0..Cap()-1 are free
// and hands out single slots or aligned contiguous runs of them. It is meant
// to be embedded in a resource manager (page frames, descriptor table
// entries, IDs) that maps slot numbers onto real resources.
//
// # Architecture
//
// The structure is a 16-ary segment tree over bits:
//
//	Cascade16 (summary: uint16, bit i = child i has a free slot)
//	├── child 0  ──  Cascade16 ... ── BitAlloc16 (uint16, bit i = slot i free)
//	├── child 1
//	│   ...
//	└── child 15
//
// Every level multiplies the capacity by 16. The predefined types cover
// 16, 256, 4K, 64K, 1M, 16M and 256M slots:
//
//	BitAlloc16, BitAlloc256, BitAlloc4K, BitAlloc64K,
//	BitAlloc1M, BitAlloc16M, BitAlloc256M
//
// Nodes are composed with generics, so each capacity is a distinct concrete
// type with its children stored inline. Point operations cost one step per
// level. Contiguous search is driven by Next and skips allocated gaps; its
// cost grows with fragmentation.
//
// # Quick Start
//
//	var frames bitalloc.BitAlloc4K  // zero value: nothing is free
//	frames.Insert(0, 4096)          // register usable slots
//
//	key, ok := frames.Alloc()                 // lowest free slot
//	base, ok := frames.AllocContiguous(8, 3)  // 8 slots, 8-aligned
//	frames.Dealloc(key)
//	frames.DeallocContiguous(base, 8)
//
// For error results, logging and metrics wrap a node in an Allocator:
//
//	a := bitalloc.New[bitalloc.BitAlloc64K](
//	    bitalloc.WithLogLevel(slog.LevelDebug),
//	    bitalloc.WithMetricsCollector(&bitalloc.BasicMetricsCollector{}),
//	)
//	a.Insert(0, a.Cap())
//	key, err := a.Alloc() // ErrExhausted when full
//
// # Contract
//
// Out-of-range keys and malformed ranges are programming errors and panic
// with an error wrapping ErrKeyOutOfRange, ErrInvalidRange or
// ErrInvalidArgument. Every other failure is a plain result and leaves the
// allocator unchanged; in particular DeallocContiguous verifies the whole
// run before freeing any of it.
//
// Nothing in this package is synchronized. Guard shared allocators with a lock.
package bitalloc
