// Package app runs ebbe commands inside an fx container.
//
// The container supplies a *slog.Logger, the logging.LoggerConfig it was built
// from, the Streams commands read and write, and, through SettingsModule, the
// *Settings loaded from a YAML file. Commands are plain fx.Invoke functions:
//
//	a := app.New(
//	    app.WithLogLevel("warn"),
//	    app.WithModules(
//	        app.SettingsModule(""),
//	        fx.Invoke(func(s *app.Settings, streams app.Streams) error { ... }),
//	    ),
//	)
//	err := a.Execute()
package app
