package iters

import "iter"

// Grams yields every window of size consecutive items of s, as sub-slices of s.
// An input shorter than size is yielded once as a whole; an empty input yields nothing.
func Grams[S ~[]E, E any](size int, s S) iter.Seq[S] {
	n := max(size, 1)

	return func(yield func(S) bool) {
		if len(s) == 0 {
			return
		}

		if len(s) < n {
			yield(s[:len(s):len(s)])

			return
		}

		for i := 0; i+n <= len(s); i++ {
			if !yield(s[i : i+n : i+n]) {
				return
			}
		}
	}
}

// GramsSeq is Grams over a lazy sequence. Each window is a fresh slice.
func GramsSeq[T any](size int, seq iter.Seq[T]) iter.Seq[[]T] {
	n := max(size, 1)

	return func(yield func([]T) bool) {
		window := make([]T, 0, n)

		for item := range seq {
			if len(window) < n {
				window = append(window, item)

				continue
			}

			if !yield(clone(window)) {
				return
			}

			copy(window, window[1:])
			window[n-1] = item
		}

		if len(window) > 0 {
			yield(clone(window))
		}
	}
}

func clone[T any](s []T) []T {
	return append(make([]T, 0, len(s)), s...)
}
