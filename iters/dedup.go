package iters

import "iter"

// Uniq drops items equal to the item right before them.
func Uniq[T comparable](seq iter.Seq[T]) iter.Seq[T] {
	return UniqBy(seq, identity[T])
}

// UniqBy drops items whose key equals the key of the item right before them.
func UniqBy[T any, K comparable](seq iter.Seq[T], key func(T) K) iter.Seq[T] {
	return func(yield func(T) bool) {
		var (
			last    K
			started bool
		)

		for item := range seq {
			k := key(item)
			if started && k == last {
				continue
			}

			started = true
			last = k

			if !yield(item) {
				return
			}
		}
	}
}

// Distinct drops items already seen anywhere earlier in seq.
func Distinct[T comparable](seq iter.Seq[T]) iter.Seq[T] {
	return DistinctBy(seq, identity[T])
}

// DistinctBy drops items whose key was already seen.
func DistinctBy[T any, K comparable](seq iter.Seq[T], key func(T) K) iter.Seq[T] {
	return func(yield func(T) bool) {
		seen := make(map[K]struct{})

		for item := range seq {
			k := key(item)
			if _, ok := seen[k]; ok {
				continue
			}

			seen[k] = struct{}{}

			if !yield(item) {
				return
			}
		}
	}
}

func identity[T any](v T) T {
	return v
}
