// Package ebbe is a collection of generic helpers for Go programs.
//
// The helpers live in small independent packages:
//   - pathget resolves paths of keys and indices inside nested values
//   - format renders durations, counts and file sizes for humans
//   - iters adapts iter.Seq sequences (chunks, n-grams, neighbours, dedup)
//   - group indexes, groups and partitions sequences
//   - funcs composes functions and counts their parameters
//   - timer reports how long a scope took
//
// The ebbe command in cmd/ebbe exposes the formatters and the path resolver
// on the command line.
package ebbe
