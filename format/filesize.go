package format

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// ErrNegativeSize is returned when a file size is negative.
var ErrNegativeSize = errors.New("size must not be negative")

// FilesizeConfig holds the rendering options of Filesize.
type FilesizeConfig struct {
	// Binary selects base-1024 IEC suffixes (KiB, MiB) instead of base-1000 (kB, MB).
	Binary bool
	// Short selects single letter suffixes without a space, e.g. "83M".
	Short bool
}

// FilesizeOption defines a function type for configuring Filesize.
type FilesizeOption func(*FilesizeConfig)

// WithBinary selects base-1024 suffixes.
func WithBinary(binary bool) FilesizeOption {
	return func(cfg *FilesizeConfig) {
		cfg.Binary = binary
	}
}

// WithShortSuffix selects single letter suffixes.
func WithShortSuffix(short bool) FilesizeOption {
	return func(cfg *FilesizeConfig) {
		cfg.Short = short
	}
}

// Filesize renders a byte count: "83 MB", "79 MiB" with WithBinary, "83M" with WithShortSuffix.
func Filesize(size int64, opts ...FilesizeOption) (string, error) {
	if size < 0 {
		return "", fmt.Errorf("%w: %d", ErrNegativeSize, size)
	}

	var cfg FilesizeConfig

	for _, apply := range opts {
		apply(&cfg)
	}

	var formatted string

	if cfg.Binary {
		formatted = humanize.IBytes(uint64(size))
	} else {
		formatted = humanize.Bytes(uint64(size))
	}

	if cfg.Short {
		return shortSuffix(formatted), nil
	}

	return formatted, nil
}

// shortSuffix turns "1.5 KiB" into "1.5K" and "7 B" into "7B".
func shortSuffix(formatted string) string {
	value, suffix, found := strings.Cut(formatted, " ")
	if !found || suffix == "" {
		return formatted
	}

	if suffix == "B" {
		return value + suffix
	}

	return value + strings.ToUpper(suffix[:1])
}
