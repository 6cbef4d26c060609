package funcs

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
)

var (
	// ErrNotFunc is returned by CountArity for values that are not functions.
	ErrNotFunc = errors.New("value is not a function")
	// ErrNoFuncs is returned when composing nothing.
	ErrNoFuncs = errors.New("compose expects at least one function")
	// ErrNilFunc is returned when one of the composed functions is nil.
	ErrNilFunc = errors.New("compose expects non-nil functions")
)

// Noop accepts anything and does nothing.
func Noop(...any) {}

// CountArity returns the number of required parameters of fn.
// A trailing variadic parameter is optional and therefore not counted,
// so catch-all functions such as Noop have an arity of 0 rather than
// counting their variadic parameter.
func CountArity(fn any) (int, error) {
	t := reflect.TypeOf(fn)
	if t == nil || t.Kind() != reflect.Func {
		return 0, fmt.Errorf("%w: %T", ErrNotFunc, fn)
	}

	arity := t.NumIn()
	if t.IsVariadic() {
		arity--
	}

	return arity, nil
}

// Compose chains fns right to left: Compose(f, g)(x) is f(g(x)).
func Compose[T any](fns ...func(T) T) (func(T) T, error) {
	if err := check(fns); err != nil {
		return nil, err
	}

	chain := slices.Clone(fns)
	slices.Reverse(chain)

	return pipeline(chain), nil
}

// RCompose chains fns left to right: RCompose(f, g)(x) is g(f(x)).
func RCompose[T any](fns ...func(T) T) (func(T) T, error) {
	if err := check(fns); err != nil {
		return nil, err
	}

	return pipeline(slices.Clone(fns)), nil
}

// Then feeds the result of f to g. It composes functions of different types.
func Then[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

func check[T any](fns []func(T) T) error {
	if len(fns) == 0 {
		return ErrNoFuncs
	}

	for i, fn := range fns {
		if fn == nil {
			return fmt.Errorf("function %d: %w", i, ErrNilFunc)
		}
	}

	return nil
}

func pipeline[T any](chain []func(T) T) func(T) T {
	return func(arg T) T {
		for _, fn := range chain {
			arg = fn(arg)
		}

		return arg
	}
}
