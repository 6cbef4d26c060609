package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/0xalexb/ebbe/pathget"

	"github.com/goccy/go-yaml"
)

var (
	// ErrEmptyData is returned when the input data is empty.
	ErrEmptyData = errors.New("empty data")
	// ErrPathNotFound is returned when the section path matches no node.
	ErrPathNotFound = errors.New("path not found")
	// ErrInvalidPath is returned for paths that cannot be expressed as a YAML path.
	ErrInvalidPath = errors.New("invalid path")
)

// Parser implements config.Parser for YAML data.
type Parser struct {
	strict bool
}

// Option configures a Parser.
type Option func(*Parser)

// WithStrict makes decoding fail on keys the target does not declare.
func WithStrict(strict bool) Option {
	return func(p *Parser) {
		p.strict = strict
	}
}

// NewParser creates a YAML parser.
func NewParser(opts ...Option) *Parser {
	p := &Parser{}

	for _, apply := range opts {
		apply(p)
	}

	return p
}

// Parse decodes the section of data found at path into target.
func (p *Parser) Parse(data []byte, target any, path string) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return ErrEmptyData
	}

	if path == "" {
		if err := yaml.UnmarshalWithOptions(data, target, p.decodeOptions()...); err != nil {
			return fmt.Errorf("unmarshal error: %w", err)
		}

		return nil
	}

	yamlPath, err := convertToYAMLPath(path)
	if err != nil {
		return err
	}

	pathObj, err := yaml.PathString(yamlPath)
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrInvalidPath, path, err)
	}

	node, err := pathObj.ReadNode(bytes.NewReader(data))
	if err != nil {
		if yaml.IsNotFoundNodeError(err) {
			return fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}

		return fmt.Errorf("reading path %q: %w", path, err)
	}

	if err := yaml.NodeToValue(node, target, p.decodeOptions()...); err != nil {
		return fmt.Errorf("decoding path %q: %w", path, err)
	}

	return nil
}

func (p *Parser) decodeOptions() []yaml.DecodeOption {
	if p.strict {
		return []yaml.DecodeOption{yaml.DisallowUnknownField()}
	}

	return nil
}

// convertToYAMLPath turns a dot-separated section path into a go-yaml path:
//   - "key" -> "$.key"
//   - "ebbe.format" -> "$.ebbe.format"
//   - "profiles.0.name" -> "$.profiles[0].name"
func convertToYAMLPath(path string) (string, error) {
	var b strings.Builder

	b.WriteString("$")

	for _, step := range pathget.ParsePath(path, pathget.DefaultSplitChar, true) {
		switch {
		case step.IsIndex() && step.Index() < 0:
			return "", fmt.Errorf("%w %q: negative index %d", ErrInvalidPath, path, step.Index())
		case step.IsIndex():
			fmt.Fprintf(&b, "[%d]", step.Index())
		case step.Key() == "":
			return "", fmt.Errorf("%w %q: empty segment", ErrInvalidPath, path)
		default:
			b.WriteString(".")
			b.WriteString(step.Key())
		}
	}

	return b.String(), nil
}
