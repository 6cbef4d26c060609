// Package logging builds the log/slog loggers used by the ebbe command.
// Records go to the given writer as JSON by default, or as logfmt-style text.
package logging
