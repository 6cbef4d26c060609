package timer

import (
	"io"
	"log/slog"
	"os"

	"github.com/zoobzio/clockz"
)

// DefaultName is the label used when a timer is started without a name.
const DefaultName = "Timer"

// Config holds the settings of a Timer.
type Config struct {
	Writer io.Writer
	Logger *slog.Logger
	Clock  clockz.Clock
}

// Option defines a function type for configuring a Timer.
type Option func(*Config)

// WithWriter sets where the report line is written. A nil writer disables it.
func WithWriter(w io.Writer) Option {
	return func(cfg *Config) {
		cfg.Writer = w
	}
}

// WithLogger additionally logs every report as a structured record.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *Config) {
		cfg.Logger = logger
	}
}

// WithClock sets the clock used to take timestamps.
func WithClock(clock clockz.Clock) Option {
	return func(cfg *Config) {
		cfg.Clock = clock
	}
}

func newConfig(opts []Option) Config {
	cfg := Config{
		Writer: os.Stderr,
		Clock:  clockz.RealClock,
	}

	for _, apply := range opts {
		apply(&cfg)
	}

	if cfg.Clock == nil {
		cfg.Clock = clockz.RealClock
	}

	return cfg
}
