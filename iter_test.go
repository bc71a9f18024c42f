package bitalloc

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFreeSlots(t *testing.T) {
	var ba BitAlloc256
	ba.Insert(3, 6)
	ba.Insert(15, 17)
	ba.Insert(255, 256)

	assert.Equal(t, []int{3, 4, 5, 15, 16, 255}, slices.Collect(FreeSlots(&ba)))
	assert.Equal(t, 6, CountFree(&ba))
}

func TestFreeSlots_EarlyStop(t *testing.T) {
	var ba BitAlloc4K
	ba.Insert(0, 4096)

	var got []int
	for key := range FreeSlots(&ba) {
		if key == 3 {
			break
		}
		got = append(got, key)
	}
	assert.Equal(t, []int{0, 1, 2}, got)
}

func TestFreeRuns(t *testing.T) {
	var ba BitAlloc4K
	ba.Insert(3, 6)
	ba.Insert(250, 270)
	ba.Insert(4000, 4096)

	type run struct{ start, end int }
	var got []run
	for start, end := range FreeRuns(&ba) {
		got = append(got, run{start, end})
	}
	assert.Equal(t, []run{{3, 6}, {250, 270}, {4000, 4096}}, got)
}

func TestFreeRuns_EarlyStop(t *testing.T) {
	var ba BitAlloc16
	ba.Insert(0, 2)
	ba.Insert(4, 6)
	ba.Insert(8, 10)

	count := 0
	for range FreeRuns(&ba) {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
}

func TestFreeRuns_Empty(t *testing.T) {
	var ba BitAlloc256
	for range FreeRuns(&ba) {
		t.Fatal("no runs expected")
	}
	assert.Equal(t, 0, CountFree(&ba))
}
