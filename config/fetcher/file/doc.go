// Package file provides config.DataFetcher implementations reading files and streams.
//
// Data is read once, when the constructor returned by NewFetcher or NewReaderFetcher
// runs, and every Fetch returns a private copy of it. The constructors have the
// func() (*Fetcher, error) shape expected by fx.Provide.
//
//	fetcher, err := file.NewFetcher("settings.yaml")()
//
// The path "-" reads standard input.
package file
