package benchmark_test

import (
	"runtime"
	"testing"
)

// WarmupIterations is the number of iterations run before measurement
// starts, so caches and branch predictors settle on the hot path.
const WarmupIterations = 64

// BenchLoop runs fn b.N times after a warmup phase and a GC.
//
// fn receives the iteration index modulo workload, so a benchmark can cycle
// through a prepared set of keys or requests. fn must leave the allocator in
// the state it found it; otherwise later iterations measure a different
// workload.
func BenchLoop(b *testing.B, workload int, fn func(i int)) {
	b.Helper()

	for i := 0; i < WarmupIterations; i++ {
		fn(i % workload)
	}

	runtime.GC()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		fn(i % workload)
	}
}
