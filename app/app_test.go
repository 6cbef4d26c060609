package app_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/0xalexb/ebbe/app"
	"github.com/0xalexb/ebbe/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func TestNew_WithLogLevel(t *testing.T) {
	t.Parallel()

	for _, level := range []string{"debug", "info", "warn", "error", ""} {
		t.Run(level, func(t *testing.T) {
			t.Parallel()

			a := app.New(app.WithLogLevel(level), app.WithStreams(app.Streams{Err: &bytes.Buffer{}}))
			require.NotNil(t, a)
			assert.NotNil(t, a.Logger())
		})
	}
}

func TestNew_SuppliesDependencies(t *testing.T) {
	t.Parallel()

	var (
		out          bytes.Buffer
		logs         bytes.Buffer
		logger       *slog.Logger
		loggerConfig logging.LoggerConfig
		streams      app.Streams
	)

	module := fx.Module("test",
		fx.Invoke(func(l *slog.Logger, c logging.LoggerConfig, s app.Streams) {
			logger = l
			loggerConfig = c
			streams = s
		}),
	)

	a := app.New(
		app.WithLogLevel("warn"),
		app.WithLogFormat("text"),
		app.WithStreams(app.Streams{Out: &out, Err: &logs}),
		app.WithModules(module),
	)

	require.NoError(t, a.Execute())
	require.NotNil(t, logger)
	assert.Equal(t, logging.LoggerConfig{Level: "warn", Format: "text"}, loggerConfig)
	assert.Same(t, &out, streams.Out)
	assert.Same(t, &logs, streams.Err)
	assert.NotNil(t, streams.In, "unset streams keep their default")
}

func TestNew_LogsToErrStream(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer

	module := fx.Module("test",
		fx.Invoke(func(l *slog.Logger) {
			l.Error("formatting failed", slog.String("unit", "fortnights"))
		}),
	)

	a := app.New(
		app.WithLogLevel("error"),
		app.WithStreams(app.Streams{Err: &logs}),
		app.WithModules(module),
	)
	require.NoError(t, a.Execute())

	var entry map[string]any

	require.NoError(t, json.Unmarshal(logs.Bytes(), &entry))
	assert.Equal(t, "formatting failed", entry["msg"])
	assert.Equal(t, "fortnights", entry["unit"])
}

func TestExecute_ReturnsInvokeError(t *testing.T) {
	t.Parallel()

	errCommand := errors.New("command failed")

	a := app.New(
		app.WithLogLevel("error"),
		app.WithStreams(app.Streams{Err: &bytes.Buffer{}}),
		app.WithModules(fx.Invoke(func() error { return errCommand })),
	)

	err := a.Execute()

	require.ErrorIs(t, err, errCommand)
}

func TestExecute_RunsHooks(t *testing.T) {
	t.Parallel()

	var started, stopped bool

	module := fx.Module("test",
		fx.Invoke(func(lc fx.Lifecycle) {
			lc.Append(fx.Hook{
				OnStart: func(context.Context) error {
					started = true

					return nil
				},
				OnStop: func(context.Context) error {
					stopped = true

					return nil
				},
			})
		}),
	)

	a := app.New(app.WithStreams(app.Streams{Err: &bytes.Buffer{}}), app.WithModules(module))

	require.NoError(t, a.Execute())
	assert.True(t, started, "OnStart hook should be called")
	assert.True(t, stopped, "OnStop hook should be called")
}

func TestApp_NilApp(t *testing.T) {
	t.Parallel()

	var a *app.App

	require.Error(t, a.Start())
	require.Error(t, a.Stop())
	require.Error(t, a.Execute())
	assert.NotNil(t, a.Logger())
}
