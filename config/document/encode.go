package document

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// Style selects the output syntax of Encode.
type Style int

const (
	// StyleYAML writes block-style YAML.
	StyleYAML Style = iota
	// StyleJSON writes JSON.
	StyleJSON
)

// ErrUnknownStyle is returned by ParseStyle and Encode for unsupported styles.
var ErrUnknownStyle = errors.New("unknown output style")

// ParseStyle maps "yaml" and "json" to their Style.
func ParseStyle(name string) (Style, error) {
	switch name {
	case "", "yaml", "yml":
		return StyleYAML, nil
	case "json":
		return StyleJSON, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
	}
}

// Encode writes v, typically a value returned by Document.Get, in the given style.
func Encode(v any, style Style) ([]byte, error) {
	var opts []yaml.EncodeOption

	switch style {
	case StyleYAML:
	case StyleJSON:
		opts = append(opts, yaml.JSON())
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownStyle, style)
	}

	data, err := yaml.MarshalWithOptions(v, opts...)
	if err != nil {
		return nil, fmt.Errorf("encoding value: %w", err)
	}

	return data, nil
}
