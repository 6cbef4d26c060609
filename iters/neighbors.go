package iters

import "iter"

// Neighbors is an item with the items around it.
// HasPrev and HasNext tell whether Prev and Next hold an actual item.
type Neighbors[T any] struct {
	Prev    T
	Item    T
	Next    T
	HasPrev bool
	HasNext bool
}

// WithPrev yields every item with the one before it. Next is never set.
func WithPrev[T any](seq iter.Seq[T]) iter.Seq[Neighbors[T]] {
	return func(yield func(Neighbors[T]) bool) {
		var (
			prev    T
			hasPrev bool
		)

		for item := range seq {
			if !yield(Neighbors[T]{Prev: prev, Item: item, HasPrev: hasPrev}) {
				return
			}

			prev, hasPrev = item, true
		}
	}
}

// WithNext yields every item with the one after it. Prev is never set.
func WithNext[T any](seq iter.Seq[T]) iter.Seq[Neighbors[T]] {
	return func(yield func(Neighbors[T]) bool) {
		for n := range WithPrevAndNext(seq) {
			n.Prev, n.HasPrev = *new(T), false

			if !yield(n) {
				return
			}
		}
	}
}

// WithPrevAndNext yields every item with the ones before and after it.
func WithPrevAndNext[T any](seq iter.Seq[T]) iter.Seq[Neighbors[T]] {
	return func(yield func(Neighbors[T]) bool) {
		var (
			current Neighbors[T]
			started bool
		)

		for item := range seq {
			if !started {
				current.Item, started = item, true

				continue
			}

			current.Next, current.HasNext = item, true
			if !yield(current) {
				return
			}

			current = Neighbors[T]{Prev: current.Item, Item: item, HasPrev: true}
		}

		if started {
			yield(current)
		}
	}
}

// WithIsFirst yields true with the first item and false with the others.
func WithIsFirst[T any](seq iter.Seq[T]) iter.Seq2[bool, T] {
	return func(yield func(bool, T) bool) {
		first := true

		for item := range seq {
			if !yield(first, item) {
				return
			}

			first = false
		}
	}
}

// WithIsLast yields true with the last item and false with the others.
func WithIsLast[T any](seq iter.Seq[T]) iter.Seq2[bool, T] {
	return func(yield func(bool, T) bool) {
		for n := range WithNext(seq) {
			if !yield(!n.HasNext, n.Item) {
				return
			}
		}
	}
}

// WithoutFirst yields every item but the first.
func WithoutFirst[T any](seq iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for first, item := range WithIsFirst(seq) {
			if first {
				continue
			}

			if !yield(item) {
				return
			}
		}
	}
}

// WithoutLast yields every item but the last.
func WithoutLast[T any](seq iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for last, item := range WithIsLast(seq) {
			if last {
				return
			}

			if !yield(item) {
				return
			}
		}
	}
}
