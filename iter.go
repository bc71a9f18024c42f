package bitalloc

import "iter"

// FreeSlots returns an iterator over the free slots of n in ascending order.
//
// The node must not be mutated while iterating.
func FreeSlots[N BitAlloc](n N) iter.Seq[int] {
	return func(yield func(int) bool) {
		key := 0
		for {
			next, ok := n.Next(key)
			if !ok || !yield(next) {
				return
			}
			key = next + 1
		}
	}
}

// FreeRuns returns an iterator over the maximal runs of free slots of n as
// half-open [start, end) pairs in ascending order.
func FreeRuns[N BitAlloc](n N) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		start, end := -1, -1
		for key := range FreeSlots(n) {
			if key == end {
				end++
				continue
			}
			if start >= 0 && !yield(start, end) {
				return
			}
			start, end = key, key+1
		}
		if start >= 0 {
			yield(start, end)
		}
	}
}

// CountFree returns the number of free slots of n.
func CountFree[N BitAlloc](n N) int {
	count := 0
	for range FreeSlots(n) {
		count++
	}
	return count
}
