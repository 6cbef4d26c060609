package pathget

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// ErrAmbiguousPath is returned when a plain string path is given without a split character.
var ErrAmbiguousPath = errors.New("string path needs a split character")

// ErrInvalidPath is returned when the path is not of a supported type.
var ErrInvalidPath = errors.New("unsupported path type")

// Container is implemented by values exposing keyed or indexed access.
// Item reports false when the step does not address an element.
type Container interface {
	Item(step Step) (any, bool)
}

// Record is implemented by values exposing named fields.
// Field reports false when the field does not exist.
type Record interface {
	Field(name string) (any, bool)
}

// Get resolves path inside target.
//
// The path may be a Path, a []Step, a []any of strings and integers, a
// []string, a []int, or a string when a split character is configured.
// Misses yield the configured default; the returned error only reports
// an unusable path.
func Get(target any, path any, opts ...Option) (any, error) {
	cfg := newConfig(opts)

	steps, err := cfg.toPath(path)
	if err != nil {
		return nil, err
	}

	return cfg.resolve(target, steps, cfg.Default), nil
}

// Lookup performs a single item access, returning def on a miss or an invalid step.
func Lookup(target any, step any, def any) any {
	s, err := toStep(step)
	if err != nil {
		return def
	}

	value, found := item(target, s)
	if !found {
		return def
	}

	return value
}

func (c Config) toPath(path any) (Path, error) {
	switch p := path.(type) {
	case Path:
		return p, nil
	case []Step:
		return Path(p), nil
	case string:
		if c.SplitChar == "" {
			return nil, fmt.Errorf("%w: %q", ErrAmbiguousPath, p)
		}

		return ParsePath(p, c.SplitChar, c.ParseIndices), nil
	case []string:
		steps := make(Path, len(p))
		for i, key := range p {
			steps[i] = Key(key)
		}

		return steps, nil
	case []int:
		steps := make(Path, len(p))
		for i, index := range p {
			steps[i] = Index(index)
		}

		return steps, nil
	case []any:
		return NewPath(p...)
	default:
		return nil, fmt.Errorf("%w: %T", ErrInvalidPath, path)
	}
}

func (c Config) resolve(target any, path Path, def any) any {
	current := target

	for _, step := range path {
		var (
			value any
			found bool
		)

		switch {
		case c.Items && isContainer(current):
			value, found = item(current, step)
		case c.Attributes:
			value, found = field(current, step)
		default:
			return def
		}

		if !found {
			return def
		}

		current = value
	}

	return current
}

func isContainer(target any) bool {
	switch target.(type) {
	case nil:
		return false
	case Container, map[string]any, []any, string:
		return true
	}

	switch indirect(reflect.ValueOf(target)).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.String:
		return true
	default:
		return false
	}
}

func item(target any, step Step) (any, bool) {
	switch t := target.(type) {
	case Container:
		return t.Item(step)
	case map[string]any:
		if step.isIndex {
			return nil, false
		}

		value, found := t[step.key]

		return value, found
	case []any:
		i, ok := position(step, len(t))
		if !ok {
			return nil, false
		}

		return t[i], true
	case string:
		return runeAt(t, step)
	}

	rv := indirect(reflect.ValueOf(target))

	switch rv.Kind() {
	case reflect.String:
		return runeAt(rv.String(), step)
	case reflect.Map:
		return mapItem(rv, step)
	case reflect.Slice, reflect.Array:
		i, ok := position(step, rv.Len())
		if !ok {
			return nil, false
		}

		return rv.Index(i).Interface(), true
	default:
		return nil, false
	}
}

// runeAt indexes s by rune and returns the rune as a string.
func runeAt(s string, step Step) (any, bool) {
	runes := []rune(s)

	i, ok := position(step, len(runes))
	if !ok {
		return nil, false
	}

	return string(runes[i]), true
}

// position turns an index step into a bounds-checked offset.
func position(step Step, length int) (int, bool) {
	if !step.isIndex {
		return 0, false
	}

	i := step.index
	if i < 0 {
		i += length
	}

	if i < 0 || i >= length {
		return 0, false
	}

	return i, true
}

func mapItem(m reflect.Value, step Step) (any, bool) {
	key, ok := mapKey(m.Type().Key(), step)
	if !ok {
		return nil, false
	}

	value := m.MapIndex(key)
	if !value.IsValid() {
		return nil, false
	}

	return value.Interface(), true
}

func mapKey(keyType reflect.Type, step Step) (reflect.Value, bool) {
	raw := reflect.ValueOf(step.Value())

	if raw.Type().AssignableTo(keyType) {
		return raw, true
	}

	key := reflect.New(keyType).Elem()

	switch keyType.Kind() {
	case reflect.String:
		if step.isIndex {
			return reflect.Value{}, false
		}

		key.SetString(step.key)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if !step.isIndex || key.OverflowInt(int64(step.index)) {
			return reflect.Value{}, false
		}

		key.SetInt(int64(step.index))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if !step.isIndex || step.index < 0 || key.OverflowUint(uint64(step.index)) {
			return reflect.Value{}, false
		}

		key.SetUint(uint64(step.index))
	default:
		return reflect.Value{}, false
	}

	return key, true
}

func field(target any, step Step) (any, bool) {
	if step.isIndex {
		return nil, false
	}

	if record, ok := target.(Record); ok {
		return record.Field(step.key)
	}

	rv := indirect(reflect.ValueOf(target))
	if rv.Kind() != reflect.Struct {
		return nil, false
	}

	sf, ok := lookupField(rv.Type(), step.key)
	if !ok {
		return nil, false
	}

	value, err := rv.FieldByIndexErr(sf.Index)
	if err != nil {
		return nil, false
	}

	return value.Interface(), true
}

// lookupField matches exported fields by Go name first, then by json or yaml tag name.
func lookupField(t reflect.Type, name string) (reflect.StructField, bool) {
	if name == "" {
		return reflect.StructField{}, false
	}

	fields := reflect.VisibleFields(t)

	for _, sf := range fields {
		if sf.IsExported() && !sf.Anonymous && sf.Name == name {
			return sf, true
		}
	}

	for _, sf := range fields {
		if !sf.IsExported() || sf.Anonymous {
			continue
		}

		if tagName(sf, "json") == name || tagName(sf, "yaml") == name {
			return sf, true
		}
	}

	return reflect.StructField{}, false
}

func tagName(sf reflect.StructField, key string) string {
	tag, ok := sf.Tag.Lookup(key)
	if !ok {
		return ""
	}

	name, _, _ := strings.Cut(tag, ",")
	if name == "-" {
		return ""
	}

	return name
}

func indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}
		}

		v = v.Elem()
	}

	return v
}
