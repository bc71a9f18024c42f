package bitalloc

import (
	"fmt"
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/stretchr/testify/require"
)

// result pairs the (int, bool) returns of node operations so they can be
// compared in one assertion: assert.Equal(t, some(3), res(n.Alloc())).
type result struct {
	Key int
	OK  bool
}

func res(key int, ok bool) result { return result{key, ok} }

func some(key int) result { return result{key, true} }

var none = result{}

// summaryChecker is implemented in tests by every node type.
type summaryChecker interface {
	checkSummary() error
}

func (b *BitAlloc16) checkSummary() error { return nil }

func (c *Cascade16[T, PT]) checkSummary() error {
	for i := range fanout {
		child := c.child(i)
		if got, want := c.bitset&(1<<i) != 0, !child.IsEmpty(); got != want {
			return fmt.Errorf("summary bit %d = %v, child non-empty = %v", i, got, want)
		}
		if sc, ok := any(child).(summaryChecker); ok {
			if err := sc.checkSummary(); err != nil {
				return fmt.Errorf("child %d: %w", i, err)
			}
		}
	}
	return nil
}

func requireSummary(t *testing.T, n BitAlloc) {
	t.Helper()
	sc, ok := n.(summaryChecker)
	require.True(t, ok)
	require.NoError(t, sc.checkSummary())
}

// freeSet returns the free slots of n by probing every key with Test.
func freeSet(n BitAlloc) *roaring.Bitmap {
	rb := roaring.New()
	for key := range n.Cap() {
		if n.Test(key) {
			rb.Add(uint32(key))
		}
	}
	return rb
}

func requirePanicsWith(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		require.NotNil(t, r, "expected panic wrapping %v", target)
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.ErrorIs(t, err, target)
	}()
	fn()
}
