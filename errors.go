package bitalloc

import (
	"errors"
	"fmt"
)

// Contract violations. Nodes panic with an error wrapping one of these;
// they are never returned.
var (
	// ErrKeyOutOfRange indicates a slot key outside [0, Cap()).
	ErrKeyOutOfRange = errors.New("bitalloc: key out of range")

	// ErrInvalidRange indicates a range with start > end, a negative start or end > Cap().
	ErrInvalidRange = errors.New("bitalloc: invalid range")

	// ErrInvalidArgument indicates a negative size or alignment.
	ErrInvalidArgument = errors.New("bitalloc: invalid argument")
)

// Recoverable conditions reported by Allocator.
var (
	// ErrExhausted is returned when no slot is free.
	ErrExhausted = errors.New("bitalloc: no free slot")

	// ErrUnavailable is returned when no aligned run of the requested size is
	// free, or the requested placement is not entirely free.
	ErrUnavailable = errors.New("bitalloc: contiguous run unavailable")

	// ErrNotAllocated is returned when freeing a slot or run that was not
	// entirely allocated.
	ErrNotAllocated = errors.New("bitalloc: not allocated")
)

func checkKey(key, capacity int) {
	if key < 0 || key >= capacity {
		panic(fmt.Errorf("%w: key %d, capacity %d", ErrKeyOutOfRange, key, capacity))
	}
}

func checkRange(start, end, capacity int) {
	if start < 0 || start > end || end > capacity {
		panic(fmt.Errorf("%w: [%d, %d), capacity %d", ErrInvalidRange, start, end, capacity))
	}
}

func checkStart(key int) {
	if key < 0 {
		panic(fmt.Errorf("%w: key %d", ErrKeyOutOfRange, key))
	}
}

func checkRun(size, alignLog2 int) {
	if size < 0 || alignLog2 < 0 {
		panic(fmt.Errorf("%w: size %d, align_log2 %d", ErrInvalidArgument, size, alignLog2))
	}
}
