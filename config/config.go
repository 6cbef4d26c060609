package config

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrNilTarget is returned by a provider built around a nil target.
var ErrNilTarget = errors.New("config target is nil")

// Parser decodes raw configuration data into target.
//
// The path selects a section of the document. Segments are separated by a dot
// and purely numeric segments address list elements:
//   - "ebbe.format" navigates to doc["ebbe"]["format"]
//   - "profiles.0" navigates to the first element of doc["profiles"]
//   - "" decodes the entire document
type Parser interface {
	Parse(data []byte, target any, path string) error
}

// DataFetcher returns raw configuration data.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// Validator is implemented by settings able to check themselves after decoding.
type Validator interface {
	Validate() error
}

// Defaulter is implemented by settings filling their unset fields.
type Defaulter interface {
	SetDefaults() (changed bool)
}

// Provider returns a constructor that fetches, parses, defaults and validates
// the settings found at path, storing them into target.
func Provider[T any](target *T, path string) func(Parser, DataFetcher) (*T, error) {
	return func(parser Parser, fetcher DataFetcher) (*T, error) {
		if target == nil {
			return nil, ErrNilTarget
		}

		data, err := fetcher.Fetch()
		if err != nil {
			return nil, fmt.Errorf("fetching config: %w", err)
		}

		if err := parser.Parse(data, target, path); err != nil {
			return nil, fmt.Errorf("parsing config at %q: %w", path, err)
		}

		if defaulter, ok := any(target).(Defaulter); ok && defaulter.SetDefaults() {
			slog.Debug("config defaults applied", slog.String("path", path))
		}

		if validator, ok := any(target).(Validator); ok {
			if err := validator.Validate(); err != nil {
				return nil, fmt.Errorf("validating config at %q: %w", path, err)
			}
		}

		return target, nil
	}
}

// Load runs a Provider for a fresh T.
func Load[T any](parser Parser, fetcher DataFetcher, path string) (*T, error) {
	return Provider(new(T), path)(parser, fetcher)
}
