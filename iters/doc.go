// Package iters provides lazy helpers over iter.Seq and iter.Seq2.
//
// Every helper returns a new sequence that pulls from its input on demand.
// Buffering is limited to what each algorithm needs: one chunk for Chunks,
// a bounded window for GramsSeq, one lookahead item for WithNext and
// friends, and the set of seen keys for Distinct.
//
// Sequences are restartable only when their input is:
//
//	for chunk := range iters.Chunks(2, slices.Values([]int{1, 2, 3})) {
//		fmt.Println(chunk) // [1 2], then [3]
//	}
package iters
