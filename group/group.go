package group

import (
	"errors"
	"fmt"
	"iter"
	"reflect"
)

// ErrNilFunc is the panic value, wrapped, of functions given a nil callback.
var ErrNilFunc = errors.New("function must not be nil")

// Group is one partition produced by PartitionedItems.
type Group[K comparable, T any] struct {
	Key   K
	Items []T
}

// Indexed maps the key of every item to the item. Later items win on duplicate keys.
func Indexed[T any, K comparable](seq iter.Seq[T], key func(T) K) map[K]T {
	mustFunc("key", key)

	index := make(map[K]T)

	for item := range seq {
		index[key(item)] = item
	}

	return index
}

// Grouped collects items sharing a key, keeping their original order.
func Grouped[T any, K comparable](seq iter.Seq[T], key func(T) K) map[K][]T {
	mustFunc("key", key)

	return GroupedItems(seq, key, func(item T) T { return item })
}

// GroupedItems is Grouped storing value(item) instead of the item.
func GroupedItems[T any, K comparable, V any](seq iter.Seq[T], key func(T) K, value func(T) V) map[K][]V {
	mustFunc("key", key)
	mustFunc("value", value)

	groups := make(map[K][]V)

	for item := range seq {
		k := key(item)
		groups[k] = append(groups[k], value(item))
	}

	return groups
}

// GroupedSet collects the distinct items sharing a key.
func GroupedSet[T, K comparable](seq iter.Seq[T], key func(T) K) map[K]map[T]struct{} {
	mustFunc("key", key)

	groups := make(map[K]map[T]struct{})

	for item := range seq {
		k := key(item)

		set, ok := groups[k]
		if !ok {
			set = make(map[T]struct{})
			groups[k] = set
		}

		set[item] = struct{}{}
	}

	return groups
}

// Partitioned splits seq into groups of items sharing a key.
// Groups are ordered by the first appearance of their key.
func Partitioned[T any, K comparable](seq iter.Seq[T], key func(T) K) [][]T {
	groups := PartitionedItems(seq, key)

	partitions := make([][]T, len(groups))
	for i, g := range groups {
		partitions[i] = g.Items
	}

	return partitions
}

// PartitionedItems is Partitioned keeping the key of every group.
func PartitionedItems[T any, K comparable](seq iter.Seq[T], key func(T) K) []Group[K, T] {
	mustFunc("key", key)

	var groups []Group[K, T]

	positions := make(map[K]int)

	for item := range seq {
		k := key(item)

		i, ok := positions[k]
		if !ok {
			i = len(groups)
			positions[k] = i
			groups = append(groups, Group[K, T]{Key: k})
		}

		groups[i].Items = append(groups[i].Items, item)
	}

	return groups
}

func mustFunc[F any](name string, fn F) {
	if isNil(fn) {
		panic(fmt.Errorf("%s: %w", name, ErrNilFunc))
	}
}

func isNil(fn any) bool {
	v := reflect.ValueOf(fn)

	return !v.IsValid() || (v.Kind() == reflect.Func && v.IsNil())
}
