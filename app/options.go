package app

import (
	"io"
	"os"

	"go.uber.org/fx"
)

// Streams are the standard streams handed to commands.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// DefaultStreams returns the process standard streams.
func DefaultStreams() Streams {
	return Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// Options holds configuration settings for the application.
type Options struct {
	Modules   []fx.Option
	LogLevel  string
	LogFormat string
	Streams   Streams
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithLogLevel sets the log level: debug, info, warn or error. Defaults to info.
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithLogFormat selects json (default) or text log records.
func WithLogFormat(format string) Option {
	return func(opts *Options) {
		opts.LogFormat = format
	}
}

// WithStreams replaces the process streams. Nil members keep their default.
func WithStreams(streams Streams) Option {
	return func(opts *Options) {
		if streams.In != nil {
			opts.Streams.In = streams.In
		}

		if streams.Out != nil {
			opts.Streams.Out = streams.Out
		}

		if streams.Err != nil {
			opts.Streams.Err = streams.Err
		}
	}
}
