package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/0xalexb/ebbe/logging"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

var errAppNotInitialized = errors.New("app not initialized")

// App is an fx application running one ebbe command.
type App struct {
	app    *fx.App
	logger *slog.Logger
}

// New builds the container. Invoked functions run here; their error is reported by Start.
func New(opts ...Option) *App {
	options := Options{Streams: DefaultStreams()}

	for _, apply := range opts {
		apply(&options)
	}

	loggerConfig := logging.LoggerConfig{Level: options.LogLevel, Format: options.LogFormat}
	logger := logging.NewLogger(loggerConfig, options.Streams.Err)
	slog.SetDefault(logger)

	return &App{
		logger: logger,
		app: fx.New(
			fx.WithLogger(func() fxevent.Logger {
				return &fxevent.SlogLogger{Logger: logger}
			}),
			fx.Supply(loggerConfig),
			fx.Supply(logger),
			fx.Supply(options.Streams),
			fx.Options(options.Modules...),
		),
	}
}

// Logger returns the logger supplied to the container.
func (app *App) Logger() *slog.Logger {
	if app == nil || app.logger == nil {
		return slog.Default()
	}

	return app.logger
}

// Start runs the start hooks, or returns the construction error.
func (app *App) Start() error {
	if app == nil || app.app == nil {
		return errAppNotInitialized
	}

	if err := app.app.Start(context.Background()); err != nil {
		return fmt.Errorf("failed to start app: %w", err)
	}

	return nil
}

// Stop runs the stop hooks.
func (app *App) Stop() error {
	if app == nil || app.app == nil {
		return errAppNotInitialized
	}

	if err := app.app.Stop(context.Background()); err != nil {
		return fmt.Errorf("failed to stop app: %w", err)
	}

	return nil
}

// Execute starts and immediately stops the application, which is all a
// one-shot command needs.
func (app *App) Execute() error {
	if err := app.Start(); err != nil {
		return err
	}

	return app.Stop()
}
