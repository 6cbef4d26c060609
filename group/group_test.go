package group_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/0xalexb/ebbe/group"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type person struct {
	name string
	city string
}

func people() []person {
	return []person{
		{"ada", "london"},
		{"grace", "new york"},
		{"alan", "london"},
		{"edsger", "amsterdam"},
		{"barbara", "new york"},
	}
}

func city(p person) string { return p.city }

func TestIndexed(t *testing.T) {
	t.Parallel()

	index := group.Indexed(slices.Values(people()), func(p person) string { return p.name })

	require.Len(t, index, 5)
	assert.Equal(t, "amsterdam", index["edsger"].city)

	byCity := group.Indexed(slices.Values(people()), city)

	assert.Equal(t, "alan", byCity["london"].name, "later items win")
	assert.Empty(t, group.Indexed(slices.Values([]person{}), city))
}

func TestGrouped(t *testing.T) {
	t.Parallel()

	groups := group.Grouped(slices.Values(people()), city)

	assert.Equal(t, map[string][]person{
		"london":    {{"ada", "london"}, {"alan", "london"}},
		"new york":  {{"grace", "new york"}, {"barbara", "new york"}},
		"amsterdam": {{"edsger", "amsterdam"}},
	}, groups)
}

func TestGroupedItems(t *testing.T) {
	t.Parallel()

	groups := group.GroupedItems(slices.Values(people()), city, func(p person) string { return p.name })

	assert.Equal(t, map[string][]string{
		"london":    {"ada", "alan"},
		"new york":  {"grace", "barbara"},
		"amsterdam": {"edsger"},
	}, groups)
}

func TestGroupedSet(t *testing.T) {
	t.Parallel()

	words := []string{"apple", "avocado", "apple", "banana", "blueberry", "banana"}

	groups := group.GroupedSet(slices.Values(words), func(w string) byte { return w[0] })

	assert.Equal(t, map[byte]map[string]struct{}{
		'a': {"apple": {}, "avocado": {}},
		'b': {"banana": {}, "blueberry": {}},
	}, groups)
}

func TestPartitioned(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		items    []int
		expected [][]int
	}{
		{"parity", []int{3, 4, 5, 6, 8}, [][]int{{3, 5}, {4, 6, 8}}},
		{"single group", []int{2, 4}, [][]int{{2, 4}}},
		{"empty", nil, [][]int{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			result := group.Partitioned(slices.Values(tc.items), func(n int) int { return n % 2 })

			assert.Equal(t, tc.expected, result)
		})
	}
}

func TestPartitionedItems(t *testing.T) {
	t.Parallel()

	groups := group.PartitionedItems(slices.Values(people()), city)

	keys := make([]string, 0, len(groups))
	for _, g := range groups {
		keys = append(keys, g.Key)
	}

	assert.Equal(t, []string{"london", "new york", "amsterdam"}, keys)
	assert.Len(t, groups[0].Items, 2)
	assert.Equal(t, "barbara", groups[1].Items[1].name)
}

func TestNilFuncPanics(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		call func()
	}{
		{"indexed", func() { group.Indexed[int, int](slices.Values([]int{1}), nil) }},
		{"grouped", func() { group.Grouped[int, int](slices.Values([]int{1}), nil) }},
		{"grouped items value", func() {
			group.GroupedItems[int, int, int](slices.Values([]int{1}), func(n int) int { return n }, nil)
		}},
		{"grouped set", func() { group.GroupedSet[int, int](slices.Values([]int{1}), nil) }},
		{"partitioned", func() { group.Partitioned[int, int](slices.Values([]int{1}), nil) }},
		{"sorted uniq func", func() { group.SortedUniqFunc([]int{1}, nil) }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			defer func() {
				err, ok := recover().(error)
				require.True(t, ok)
				require.ErrorIs(t, err, group.ErrNilFunc)
			}()

			tc.call()
		})
	}
}

func TestPick(t *testing.T) {
	t.Parallel()

	m := map[string]int{"a": 1, "b": 2, "c": 3}

	assert.Equal(t, map[string]int{"a": 1, "c": 3}, group.Pick(m, "a", "c", "z"))
	assert.Empty(t, group.Pick(m))
	assert.Len(t, m, 3)
}

func TestOmit(t *testing.T) {
	t.Parallel()

	m := map[string]int{"a": 1, "b": 2, "c": 3}

	assert.Equal(t, map[string]int{"b": 2}, group.Omit(m, "a", "c", "z"))
	assert.Equal(t, m, group.Omit(m))
	assert.Len(t, m, 3)
}

func TestSortedUniq(t *testing.T) {
	t.Parallel()

	input := []int{3, 1, 3, 2}

	assert.Equal(t, []int{1, 2, 3}, group.SortedUniq(input))
	assert.Equal(t, []int{3, 1, 3, 2}, input)
	assert.Equal(t, []string{"a", "b"}, group.SortedUniq([]string{"b", "a", "b", "a"}))
	assert.Empty(t, group.SortedUniq([]int{}))
}

func TestSortedUniqFunc(t *testing.T) {
	t.Parallel()

	words := []string{"Banana", "apple", "banana", "Cherry"}

	result := group.SortedUniqFunc(words, func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})

	assert.Equal(t, []string{"apple", "Banana", "Cherry"}, result)
}
