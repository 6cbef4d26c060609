package group

import (
	"cmp"
	"slices"
)

// Pick returns a new map holding only the given keys of m. Absent keys are ignored.
func Pick[M ~map[K]V, K comparable, V any](m M, keys ...K) M {
	picked := make(M, len(keys))

	for _, k := range keys {
		if v, ok := m[k]; ok {
			picked[k] = v
		}
	}

	return picked
}

// Omit returns a new map holding every entry of m except the given keys.
func Omit[M ~map[K]V, K comparable, V any](m M, keys ...K) M {
	omitted := make(M, len(m))

	for k, v := range m {
		if !slices.Contains(keys, k) {
			omitted[k] = v
		}
	}

	return omitted
}

// SortedUniq returns the distinct values of s in ascending order. s is left untouched.
func SortedUniq[S ~[]E, E cmp.Ordered](s S) S {
	sorted := slices.Clone(s)
	slices.Sort(sorted)

	return slices.Clip(slices.Compact(sorted))
}

// SortedUniqFunc is SortedUniq ordering with compare. Values comparing equal are merged.
func SortedUniqFunc[S ~[]E, E any](s S, compare func(a, b E) int) S {
	mustFunc("compare", compare)

	sorted := slices.Clone(s)
	slices.SortStableFunc(sorted, compare)

	return slices.Clip(slices.CompactFunc(sorted, func(a, b E) bool {
		return compare(a, b) == 0
	}))
}
