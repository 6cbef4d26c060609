package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strconv"

	"github.com/0xalexb/ebbe"
	"github.com/0xalexb/ebbe/app"
	"github.com/0xalexb/ebbe/config/document"
	filefetcher "github.com/0xalexb/ebbe/config/fetcher/file"
	"github.com/0xalexb/ebbe/format"
	"github.com/0xalexb/ebbe/group"
	"github.com/0xalexb/ebbe/iters"
	"github.com/0xalexb/ebbe/pathget"
)

var errUsage = errors.New("invalid usage")

type env struct {
	settings *app.Settings
	streams  app.Streams
	logger   *slog.Logger
}

type command struct {
	usage string
	run   func(e env, args []string) error
}

func commands() map[string]command {
	return map[string]command{
		"time":    {usage: "[-unit U] [-precision P] [-max N] [-short] VALUE...", run: runTime},
		"seconds": {usage: "[-max N] [-short] SECONDS...", run: runSeconds},
		"size":    {usage: "[-binary] [-short] BYTES...", run: runSize},
		"int":     {usage: "[-sep S] NUMBER...", run: runInt},
		"get":     {usage: "[-split C] [-indices] [-attributes] [-default V] [-output yaml|json] FILE|- PATH...", run: runGet},
		"version": {usage: "", run: runVersion},
	}
}

func commandNames() []string {
	return group.SortedUniq(slices.Collect(maps.Keys(commands())))
}

func (e env) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(e.streams.Err)

	return fs
}

func (e env) println(text string) error {
	_, err := fmt.Fprintln(e.streams.Out, text)

	return err
}

// parse parses args and checks that at least minArgs positional arguments remain.
func parse(fs *flag.FlagSet, args []string, minArgs int) ([]string, error) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}

		return nil, fmt.Errorf("%w: %w", errUsage, err)
	}

	if fs.NArg() < minArgs {
		return nil, fmt.Errorf("%w: %s expects at least %d argument(s)", errUsage, fs.Name(), minArgs)
	}

	return fs.Args(), nil
}

func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", errUsage, s)
	}

	return v, nil
}

func runTime(e env, args []string) error {
	fs := e.flagSet("time")
	unit := fs.String("unit", e.settings.Format.Unit, "unit of the values")
	precision := fs.String("precision", e.settings.Format.Precision, "finest unit rendered")
	maxItems := fs.Int("max", e.settings.Format.MaxItems, "maximum number of components, 0 for all")
	short := fs.Bool("short", e.settings.Format.Short, "abbreviated units")

	values, err := parse(fs, args, 1)
	if err != nil {
		return err
	}

	opts := []format.TimeOption{
		format.WithUnit(*unit),
		format.WithPrecision(*precision),
		format.WithMaxItems(*maxItems),
		format.WithShort(*short),
	}

	for _, raw := range values {
		v, err := parseFloat(raw)
		if err != nil {
			return err
		}

		text, err := format.Time(v, opts...)
		if err != nil {
			return err
		}

		if err := e.println(text); err != nil {
			return err
		}
	}

	return nil
}

func runSeconds(e env, args []string) error {
	fs := e.flagSet("seconds")
	maxItems := fs.Int("max", e.settings.Format.MaxItems, "maximum number of components, 0 for all")
	short := fs.Bool("short", e.settings.Format.Short, "abbreviated units")

	values, err := parse(fs, args, 1)
	if err != nil {
		return err
	}

	for _, raw := range values {
		v, err := parseFloat(raw)
		if err != nil {
			return err
		}

		text, err := format.Seconds(v, format.WithMaxItems(*maxItems), format.WithShort(*short))
		if err != nil {
			return err
		}

		if err := e.println(text); err != nil {
			return err
		}
	}

	return nil
}

func runSize(e env, args []string) error {
	fs := e.flagSet("size")
	binary := fs.Bool("binary", false, "base-1024 units (KiB, MiB...)")
	short := fs.Bool("short", e.settings.Format.Short, "single letter suffixes")

	values, err := parse(fs, args, 1)
	if err != nil {
		return err
	}

	for _, raw := range values {
		size, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %q is not a byte count", errUsage, raw)
		}

		text, err := format.Filesize(size, format.WithBinary(*binary), format.WithShortSuffix(*short))
		if err != nil {
			return err
		}

		if err := e.println(text); err != nil {
			return err
		}
	}

	return nil
}

func runInt(e env, args []string) error {
	fs := e.flagSet("int")
	separator := fs.String("sep", ",", "thousands separator")

	values, err := parse(fs, args, 1)
	if err != nil {
		return err
	}

	for _, raw := range values {
		v, err := parseFloat(raw)
		if err != nil {
			return err
		}

		formatted, err := format.IntWithSeparator(v, *separator)
		if err != nil {
			return err
		}

		if err := e.println(formatted); err != nil {
			return err
		}
	}

	return nil
}

func runGet(e env, args []string) error {
	fs := e.flagSet("get")
	split := fs.String("split", e.settings.Get.Split, "path separator")
	indices := fs.Bool("indices", e.settings.Get.ParseIndicesEnabled(), "numeric segments are list indices")
	attributes := fs.Bool("attributes", false, "fall back to named fields")
	def := fs.String("default", "", "value printed for missing paths")
	output := fs.String("output", e.settings.Get.OutputStyle(), "output style: yaml or json")

	positional, err := parse(fs, args, 2)
	if err != nil {
		return err
	}

	style, err := document.ParseStyle(*output)
	if err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	doc, err := readDocument(e, positional[0])
	if err != nil {
		return err
	}

	opts := []pathget.Option{
		pathget.WithSplitChar(*split),
		pathget.WithParseIndices(*indices),
		pathget.WithAttributes(*attributes),
	}

	if isFlagSet(fs, "default") {
		opts = append(opts, pathget.WithDefault(*def))
	}

	paths := make([]any, 0, len(positional)-1)
	for _, p := range positional[1:] {
		paths = append(paths, p)
	}

	getter, err := pathget.NewGetter(paths, opts...)
	if err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	e.logger.Debug("resolving paths", slog.Int("paths", getter.Len()), slog.String("split", *split))

	for isLast, value := range iters.WithIsLast(slices.Values(getter.Values(doc.Root()))) {
		out, err := document.Encode(value, style)
		if err != nil {
			return err
		}

		if !isLast && style == document.StyleYAML {
			out = append(out, "---\n"...)
		}

		if _, err := e.streams.Out.Write(out); err != nil {
			return err
		}
	}

	return nil
}

func readDocument(e env, source string) (*document.Document, error) {
	constructor := filefetcher.NewFetcher(source)
	if source == filefetcher.Stdin {
		constructor = filefetcher.NewReaderFetcher("stdin", e.streams.In)
	}

	fetcher, err := constructor()
	if err != nil {
		return nil, err
	}

	data, err := fetcher.Fetch()
	if err != nil {
		return nil, err
	}

	doc, err := document.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fetcher.Source(), err)
	}

	return doc, nil
}

func isFlagSet(fs *flag.FlagSet, name string) bool {
	set := false

	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})

	return set
}

func runVersion(e env, _ []string) error {
	return e.println(ebbe.BuildInfo())
}
