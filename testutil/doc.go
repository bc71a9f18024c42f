// Package testutil provides testing utilities for bitalloc.
//
// This package is intended for use in tests and benchmarks only.
//
// # Random Operation Sequences
//
//	rng := testutil.NewRNG(seed)
//	for _, op := range rng.Ops(10_000, bitalloc.Cap4K) {
//	    // apply op to the allocator and to a reference model
//	}
//
// # Random Ranges
//
//	start, end := rng.Range(capacity, maxLen) // [start, end), possibly empty
package testutil
