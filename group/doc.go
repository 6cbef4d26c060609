// Package group builds maps and ordered partitions out of sequences.
//
// Every function consumes an iter.Seq, so slices are passed through slices.Values:
//
//	byLetter := group.Grouped(slices.Values(words), func(w string) byte { return w[0] })
//
// A nil key or value function is a programming error and makes the function panic
// with an error wrapping ErrNilFunc.
package group
