// Package funcs holds small functional helpers: a no-op, arity counting and composition.
package funcs
