package pathget

// DefaultSplitChar is the conventional separator for string paths.
const DefaultSplitChar = "."

// Config holds the resolution policy.
type Config struct {
	// Default is returned whenever a step cannot be resolved. Defaults to nil.
	Default any
	// Items enables key and index access on containers. Defaults to true.
	Items bool
	// Attributes enables field access on records when item access does not
	// apply. Defaults to false.
	Attributes bool
	// SplitChar splits string paths into steps. Empty means string paths are rejected.
	SplitChar string
	// ParseIndices turns numeric segments of split string paths into index steps.
	ParseIndices bool
}

// DefaultConfig returns the configuration used when no option is given.
func DefaultConfig() Config {
	return Config{Items: true}
}

// Option defines a function type for configuring resolution.
type Option func(*Config)

// WithDefault sets the value returned on a miss.
func WithDefault(value any) Option {
	return func(cfg *Config) {
		cfg.Default = value
	}
}

// WithItems enables or disables key and index access.
func WithItems(enabled bool) Option {
	return func(cfg *Config) {
		cfg.Items = enabled
	}
}

// WithAttributes enables or disables field access.
func WithAttributes(enabled bool) Option {
	return func(cfg *Config) {
		cfg.Attributes = enabled
	}
}

// WithSplitChar sets the separator used to split string paths.
func WithSplitChar(splitChar string) Option {
	return func(cfg *Config) {
		cfg.SplitChar = splitChar
	}
}

// WithParseIndices enables integer parsing of split path segments.
func WithParseIndices(enabled bool) Option {
	return func(cfg *Config) {
		cfg.ParseIndices = enabled
	}
}

func newConfig(opts []Option) Config {
	cfg := DefaultConfig()

	for _, apply := range opts {
		apply(&cfg)
	}

	return cfg
}
