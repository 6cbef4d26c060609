// Package pathget resolves paths inside nested structures.
//
// A Path is an ordered list of steps, each one a string key or an integer
// index. Resolution walks the target one step at a time and probes the
// capability of the current value:
//   - containers (maps, slices, arrays and values implementing Container)
//     are accessed by key or index when item access is enabled; strings are
//     indexed by rune and yield a one-rune string;
//   - records (structs and values implementing Record) are accessed by field
//     name when attribute access is enabled.
//
// Any miss along the way (missing key, index out of range, missing field,
// unsupported step type) yields the configured default. The only errors are
// usage errors, such as a plain string path given without a split character:
//
//	v, err := pathget.Get(doc, "a.b.0.c", pathget.WithSplitChar("."), pathget.WithParseIndices(true))
//
// Negative indices count from the end of sequences:
//
//	v, _ := pathget.Get([]any{10, 20, 30}, []int{-1}) // 30
//
// A Getter parses its paths once and can be applied to many targets.
package pathget
