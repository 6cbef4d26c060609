// Command ebbe formats durations, counts and file sizes, and extracts values
// from YAML or JSON documents.
//
//	ebbe time -precision minutes 4865268458795
//	ebbe size -binary 1536
//	ebbe get settings.yaml ebbe.format.short
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/0xalexb/ebbe/app"
	"github.com/0xalexb/ebbe/format"
	"github.com/0xalexb/ebbe/logging"
	"github.com/0xalexb/ebbe/timer"

	"go.uber.org/fx"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], app.DefaultStreams()))
}

func run(args []string, streams app.Streams) int {
	errOut := streams.Err
	if errOut == nil {
		errOut = os.Stderr
	}

	global := flag.NewFlagSet("ebbe", flag.ContinueOnError)
	global.SetOutput(errOut)
	global.Usage = func() { printUsage(errOut, global) }

	logLevel := global.String("log-level", "warn", "log level: debug, info, warn or error")
	logFormat := global.String("log-format", logging.FormatJSON, "log format: json or text")
	configPath := global.String("config", "", "YAML settings file with an ebbe section")
	timed := global.Bool("timed", false, "report how long the command took on stderr")

	if err := global.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}

		return exitUsage
	}

	if global.NArg() == 0 {
		global.Usage()

		return exitUsage
	}

	name := global.Arg(0)

	cmd, ok := commands()[name]
	if !ok {
		_, _ = fmt.Fprintf(errOut, "ebbe: unknown command %q, expected %s\n",
			name, format.Join(commandNames(), ",", "or"))

		return exitUsage
	}

	var cmdErr error

	invoke := fx.Invoke(func(settings *app.Settings, streams app.Streams, logger *slog.Logger) {
		if *timed {
			t := timer.Start("ebbe "+name, timer.WithWriter(streams.Err), timer.WithLogger(logger))
			defer t.Stop()
		}

		cmdErr = cmd.run(env{settings: settings, streams: streams, logger: logger}, global.Args()[1:])
	})

	a := app.New(
		app.WithLogLevel(*logLevel),
		app.WithLogFormat(*logFormat),
		app.WithStreams(streams),
		app.WithModules(app.SettingsModule(*configPath), invoke),
	)

	err := a.Execute()
	if err == nil {
		err = cmdErr
	}

	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
		return exitOK
	case errors.Is(err, errUsage):
		a.Logger().Error("invalid usage", slog.String("command", name), slog.Any("error", err))

		return exitUsage
	default:
		a.Logger().Error("command failed", slog.String("command", name), slog.Any("error", err))

		return exitError
	}
}

func printUsage(w io.Writer, global *flag.FlagSet) {
	_, _ = fmt.Fprintln(w, "usage: ebbe [flags] <command> [command flags] args")
	_, _ = fmt.Fprintln(w, "\ncommands:")

	all := commands()
	for _, name := range commandNames() {
		_, _ = fmt.Fprintf(w, "  %-8s %s\n", name, all[name].usage)
	}

	_, _ = fmt.Fprintln(w, "\nflags:")
	global.PrintDefaults()
}
