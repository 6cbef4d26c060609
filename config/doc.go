// Package config loads the settings of the ebbe command.
//
// Loading is split over three small interfaces:
//   - DataFetcher returns raw bytes (see config/fetcher/file)
//   - Parser decodes a section of them into a Go value (see config/parser/yaml)
//   - Defaulter and Validator, implemented by the settings type, finish the job
//
// Sections are addressed with dot-separated paths, numeric segments being list
// indices:
//
//	type FormatSettings struct {
//	    Short     bool   `yaml:"short"`
//	    Precision string `yaml:"precision"`
//	}
//
//	provider := config.Provider(&FormatSettings{}, "ebbe.format")
//	settings, err := provider(yamlparser.NewParser(), fetcher)
package config
