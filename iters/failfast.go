package iters

import "iter"

// FailFast pulls the first element of seq immediately. If producing it fails,
// the error is returned before anything is yielded. Otherwise the returned
// sequence yields that element followed by the rest of seq, errors included.
//
// The returned sequence can be ranged over once. Ranging over it, even
// partially, releases the underlying pull iterator; callers that may not
// range over it must call stop. Calling stop more than once is harmless,
// and after stop the sequence yields nothing.
func FailFast[T any](seq iter.Seq2[T, error]) (iter.Seq2[T, error], func(), error) {
	next, stop := iter.Pull2(seq)

	first, err, ok := next()
	if !ok {
		stop()

		return func(func(T, error) bool) {}, stop, nil
	}

	if err != nil {
		stop()

		return nil, stop, err
	}

	stopped := false
	release := func() {
		stopped = true

		stop()
	}

	return func(yield func(T, error) bool) {
		if stopped {
			return
		}

		defer release()

		if !yield(first, nil) {
			return
		}

		for {
			item, err, ok := next()
			if !ok || !yield(item, err) {
				return
			}
		}
	}, release, nil
}
