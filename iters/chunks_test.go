package iters_test

import (
	"iter"
	"maps"
	"slices"
	"testing"

	"github.com/0xalexb/ebbe/iters"

	"github.com/stretchr/testify/assert"
)

func TestChunks(t *testing.T) {
	t.Parallel()

	items := []int{1, 2, 3, 4, 5, 6}

	testCases := []struct {
		name     string
		size     int
		items    []int
		expected [][]int
	}{
		{"size 2", 2, items, [][]int{{1, 2}, {3, 4}, {5, 6}}},
		{"size 3", 3, items, [][]int{{1, 2, 3}, {4, 5, 6}}},
		{"size 4", 4, items, [][]int{{1, 2, 3, 4}, {5, 6}}},
		{"exact size", 6, items, [][]int{items}},
		{"larger than input", 18, items, [][]int{items}},
		{"empty input", 3, nil, nil},
		{"size below one", 0, []int{1, 2}, [][]int{{1}, {2}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			result := slices.Collect(iters.Chunks(tc.size, slices.Values(tc.items)))

			assert.Equal(t, tc.expected, result)
		})
	}
}

func TestChunks_EarlyStop(t *testing.T) {
	t.Parallel()

	var first []int

	for chunk := range iters.Chunks(2, slices.Values([]int{1, 2, 3, 4, 5})) {
		first = chunk

		break
	}

	assert.Equal(t, []int{1, 2}, first)
}

func TestReconciledChunks(t *testing.T) {
	t.Parallel()

	data := []int{1, 2, 3, 4, 5, 6}

	work := func(chunk []int) map[int]bool {
		evens := make(map[int]bool)

		for _, n := range chunk {
			if n%2 == 0 {
				evens[n] = true
			}
		}

		return evens
	}

	reconcile := func(evens map[int]bool, item int) bool {
		return evens[item]
	}

	for size := 1; size <= 6; size++ {
		result := maps.Collect(iters.ReconciledChunks(size, slices.Values(data), work, reconcile))

		assert.Equal(t, map[int]bool{1: false, 2: true, 3: false, 4: true, 5: false, 6: true}, result)
	}
}

func TestOuterZip(t *testing.T) {
	t.Parallel()

	type entry struct {
		name  string
		value int
	}

	data := []entry{{"one", 1}, {"two", 2}, {"three", 3}}

	work := func(keys iter.Seq[int]) iter.Seq[int] {
		return func(yield func(int) bool) {
			for chunk := range iters.Chunks(2, keys) {
				for _, n := range chunk {
					if !yield(n * 2) {
						return
					}
				}
			}
		}
	}

	var output []string

	for item, result := range iters.OuterZip(slices.Values(data), func(e entry) int { return e.value }, work) {
		output = append(output, item.name)

		assert.Equal(t, item.value*2, result)
	}

	assert.Equal(t, []string{"one", "two", "three"}, output)
}
