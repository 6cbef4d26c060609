package document

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/0xalexb/ebbe/pathget"

	"github.com/goccy/go-yaml"
)

// ErrEmptyDocument is returned when decoding blank data.
var ErrEmptyDocument = errors.New("empty document")

// Mapping is an ordered mapping. It resolves path steps against its keys.
type Mapping yaml.MapSlice

// Item looks up the entry whose key renders as the step.
// Keys are compared by their string form, so "1" and Index(1) both match the key 1.
func (m Mapping) Item(step pathget.Step) (any, bool) {
	want := step.String()

	for _, entry := range m {
		if key, ok := entry.Key.(string); ok {
			if key == want {
				return entry.Value, true
			}

			continue
		}

		if fmt.Sprint(entry.Key) == want {
			return entry.Value, true
		}
	}

	return nil, false
}

// Keys returns the keys in document order.
func (m Mapping) Keys() []any {
	keys := make([]any, len(m))
	for i, entry := range m {
		keys[i] = entry.Key
	}

	return keys
}

// MarshalYAML keeps the key order when the mapping is encoded again.
func (m Mapping) MarshalYAML() (any, error) {
	return yaml.MapSlice(m), nil
}

// Document is a decoded YAML or JSON document.
type Document struct {
	root any
}

// Decode parses data. Mappings become Mapping values and sequences []any.
func Decode(data []byte) (*Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyDocument
	}

	var raw any

	if err := yaml.UnmarshalWithOptions(data, &raw, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("decoding document: %w", err)
	}

	return &Document{root: normalize(raw)}, nil
}

// Root returns the top-level value.
func (d *Document) Root() any {
	return d.root
}

// Get resolves path inside the document. See pathget.Get.
func (d *Document) Get(path any, opts ...pathget.Option) (any, error) {
	value, err := pathget.Get(d.root, path, opts...)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	return value, nil
}

func normalize(value any) any {
	switch v := value.(type) {
	case yaml.MapSlice:
		m := make(Mapping, len(v))
		for i, item := range v {
			m[i] = yaml.MapItem{Key: item.Key, Value: normalize(item.Value)}
		}

		return m
	case []any:
		s := make([]any, len(v))
		for i, item := range v {
			s[i] = normalize(item)
		}

		return s
	default:
		return value
	}
}
