package config_test

import (
	"errors"
	"fmt"
	"strings"

	"github.com/0xalexb/ebbe/config"
	filefetcher "github.com/0xalexb/ebbe/config/fetcher/file"
	yamlparser "github.com/0xalexb/ebbe/config/parser/yaml"
)

type formatSettings struct {
	Short     bool   `yaml:"short"`
	Precision string `yaml:"precision"`
	MaxItems  int    `yaml:"max_items"`
}

func (s *formatSettings) SetDefaults() bool {
	if s.Precision != "" {
		return false
	}

	s.Precision = "nanoseconds"

	return true
}

func (s *formatSettings) Validate() error {
	if s.MaxItems < 0 {
		return errors.New("max_items must not be negative")
	}

	return nil
}

const settings = `
ebbe:
  format:
    short: true
    max_items: 2
`

func ExampleProvider() {
	fetcher, err := filefetcher.NewReaderFetcher("settings", strings.NewReader(settings))()
	if err != nil {
		fmt.Printf("Error: %v\n", err)

		return
	}

	provider := config.Provider(&formatSettings{}, "ebbe.format")

	result, err := provider(yamlparser.NewParser(), fetcher)
	if err != nil {
		fmt.Printf("Error: %v\n", err)

		return
	}

	fmt.Printf("short=%t precision=%s max_items=%d\n", result.Short, result.Precision, result.MaxItems)
	// Output: short=true precision=nanoseconds max_items=2
}

func ExampleLoad() {
	fetcher, err := filefetcher.NewReaderFetcher("settings", strings.NewReader("ebbe:\n  format:\n    max_items: -1\n"))()
	if err != nil {
		fmt.Printf("Error: %v\n", err)

		return
	}

	_, err = config.Load[formatSettings](yamlparser.NewParser(), fetcher, "ebbe.format")
	fmt.Println(err)
	// Output: validating config at "ebbe.format": max_items must not be negative
}
