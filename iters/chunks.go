package iters

import "iter"

// Chunks yields consecutive slices of at most size items. A size below 1 is treated as 1.
func Chunks[T any](size int, seq iter.Seq[T]) iter.Seq[[]T] {
	n := max(size, 1)

	return func(yield func([]T) bool) {
		chunk := make([]T, 0, n)

		for item := range seq {
			if len(chunk) == n {
				if !yield(chunk) {
					return
				}

				chunk = make([]T, 0, n)
			}

			chunk = append(chunk, item)
		}

		if len(chunk) > 0 {
			yield(chunk)
		}
	}
}

// ReconciledChunks processes seq in chunks with work, then pairs every item
// with reconcile applied to the chunk result and the item.
func ReconciledChunks[T, M, R any](
	size int,
	seq iter.Seq[T],
	work func([]T) M,
	reconcile func(M, T) R,
) iter.Seq2[T, R] {
	return func(yield func(T, R) bool) {
		for chunk := range Chunks(size, seq) {
			data := work(chunk)

			for _, item := range chunk {
				if !yield(item, reconcile(data, item)) {
					return
				}
			}
		}
	}
}

// OuterZip feeds the keys of seq to work and pairs each result with the item
// it was derived from. work must yield exactly one result per key, in order;
// items left without a result are dropped.
func OuterZip[T, K, R any](seq iter.Seq[T], key func(T) K, work func(iter.Seq[K]) iter.Seq[R]) iter.Seq2[T, R] {
	return func(yield func(T, R) bool) {
		var pending []T

		keys := func(yieldKey func(K) bool) {
			for item := range seq {
				pending = append(pending, item)

				if !yieldKey(key(item)) {
					return
				}
			}
		}

		for result := range work(keys) {
			if len(pending) == 0 {
				return
			}

			item := pending[0]

			var zero T
			pending[0] = zero
			pending = pending[1:]

			if !yield(item, result) {
				return
			}
		}
	}
}
