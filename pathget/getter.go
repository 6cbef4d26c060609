package pathget

import (
	"errors"
	"fmt"
	"slices"
)

// ErrNoPaths is returned when a Getter is built without any path.
var ErrNoPaths = errors.New("at least one path is required")

// Getter resolves a fixed set of paths against any number of targets.
// Paths are parsed once at construction and never change afterwards.
type Getter struct {
	paths []Path
	cfg   Config
}

// NewGetter parses paths with the given options and returns a reusable Getter.
// Each path accepts the same forms as Get.
func NewGetter(paths []any, opts ...Option) (*Getter, error) {
	if len(paths) == 0 {
		return nil, ErrNoPaths
	}

	cfg := newConfig(opts)
	parsed := make([]Path, 0, len(paths))

	for i, raw := range paths {
		path, err := cfg.toPath(raw)
		if err != nil {
			return nil, fmt.Errorf("path %d: %w", i, err)
		}

		parsed = append(parsed, slices.Clone(path))
	}

	return &Getter{
		paths: parsed,
		cfg:   cfg,
	}, nil
}

// Get resolves the paths against target using the configured default.
// With a single path it returns the resolved value, otherwise a []any holding
// one result per path, in order.
func (g *Getter) Get(target any) any {
	return g.GetOr(target, g.cfg.Default)
}

// GetOr is Get with def overriding the configured default.
func (g *Getter) GetOr(target any, def any) any {
	if len(g.paths) == 1 {
		return g.cfg.resolve(target, g.paths[0], def)
	}

	return g.values(target, def)
}

// Values always returns one result per path, in order.
func (g *Getter) Values(target any) []any {
	return g.values(target, g.cfg.Default)
}

// Len returns the number of paths.
func (g *Getter) Len() int {
	return len(g.paths)
}

func (g *Getter) values(target any, def any) []any {
	results := make([]any, len(g.paths))
	for i, path := range g.paths {
		results[i] = g.cfg.resolve(target, path, def)
	}

	return results
}
