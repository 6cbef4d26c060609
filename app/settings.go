package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/0xalexb/ebbe/config"
	filefetcher "github.com/0xalexb/ebbe/config/fetcher/file"
	yamlparser "github.com/0xalexb/ebbe/config/parser/yaml"
	"github.com/0xalexb/ebbe/format"
	"github.com/0xalexb/ebbe/pathget"

	"go.uber.org/fx"
)

// SettingsPath is the section of the settings file read by SettingsModule.
const SettingsPath = "ebbe"

var errNegativeMaxItems = errors.New("max_items must not be negative")

// FormatSettings are the defaults of the time and seconds commands.
type FormatSettings struct {
	Short     bool   `yaml:"short"`
	Unit      string `yaml:"unit"`
	Precision string `yaml:"precision"`
	MaxItems  int    `yaml:"max_items"`
}

// GetSettings are the defaults of the get command.
type GetSettings struct {
	Split        string `yaml:"split"`
	ParseIndices *bool  `yaml:"parse_indices"`
	Output       string `yaml:"output"`
}

// Settings is the ebbe section of a settings file.
type Settings struct {
	Format FormatSettings `yaml:"format"`
	Get    GetSettings    `yaml:"get"`
}

// SetDefaults fills the unset fields.
func (s *Settings) SetDefaults() bool {
	changed := false

	if s.Format.Unit == "" {
		s.Format.Unit = "nanoseconds"
		changed = true
	}

	if s.Format.Precision == "" {
		s.Format.Precision = "nanoseconds"
		changed = true
	}

	if s.Get.Split == "" {
		s.Get.Split = pathget.DefaultSplitChar
		changed = true
	}

	if s.Get.ParseIndices == nil {
		enabled := true
		s.Get.ParseIndices = &enabled
		changed = true
	}

	if s.Get.Output == "" {
		s.Get.Output = "yaml"
		changed = true
	}

	return changed
}

// Validate checks unit names against the formatter's unit table.
func (s *Settings) Validate() error {
	if _, err := format.Time(0, format.WithUnit(s.Format.Unit), format.WithPrecision(s.Format.Precision)); err != nil {
		return fmt.Errorf("format: %w", err)
	}

	if s.Format.MaxItems < 0 {
		return fmt.Errorf("format: %w", errNegativeMaxItems)
	}

	return nil
}

// SettingsModule provides *Settings. An empty path yields the defaults,
// otherwise the ebbe section of the YAML file at path is loaded.
func SettingsModule(path string) fx.Option {
	if path == "" {
		return fx.Module("settings",
			fx.Provide(func() *Settings {
				settings := &Settings{}
				settings.SetDefaults()

				return settings
			}),
		)
	}

	return fx.Module("settings",
		fx.Provide(
			fx.Annotate(
				func() *yamlparser.Parser { return yamlparser.NewParser(yamlparser.WithStrict(true)) },
				fx.As(new(config.Parser)),
			),
			fx.Annotate(
				filefetcher.NewFetcher(path),
				fx.As(new(config.DataFetcher)),
			),
			config.Provider(&Settings{}, SettingsPath),
		),
	)
}

// ParseIndicesEnabled reports the effective parse_indices setting.
func (g GetSettings) ParseIndicesEnabled() bool {
	return g.ParseIndices == nil || *g.ParseIndices
}

// OutputStyle returns the normalised output name.
func (g GetSettings) OutputStyle() string {
	return strings.ToLower(g.Output)
}
