package file

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Stdin is the path NewFetcher maps to standard input.
const Stdin = "-"

// ErrPathIsDirectory is returned when the path points to a directory.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// ErrNilReader is returned by NewReaderFetcher when no reader is given.
var ErrNilReader = errors.New("reader is nil")

// Fetcher implements config.DataFetcher over data read at construction time.
type Fetcher struct {
	source string
	data   []byte
}

// NewFetcher returns a constructor reading the file at fpath, or standard input for "-".
func NewFetcher(fpath string) func() (*Fetcher, error) {
	if fpath == Stdin {
		return NewReaderFetcher(Stdin, os.Stdin)
	}

	return func() (*Fetcher, error) {
		cleanPath := filepath.Clean(fpath)

		stat, err := os.Stat(cleanPath)
		if err != nil {
			return nil, fmt.Errorf("stat file %q: %w", cleanPath, err)
		}

		if stat.IsDir() {
			return nil, fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
		}

		data, err := os.ReadFile(cleanPath) // #nosec G304 -- path is cleaned and validated
		if err != nil {
			return nil, fmt.Errorf("reading file %q: %w", cleanPath, err)
		}

		return &Fetcher{source: cleanPath, data: data}, nil
	}
}

// NewReaderFetcher returns a constructor draining r. The name labels errors.
func NewReaderFetcher(name string, r io.Reader) func() (*Fetcher, error) {
	return func() (*Fetcher, error) {
		if r == nil {
			return nil, fmt.Errorf("%s: %w", name, ErrNilReader)
		}

		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}

		return &Fetcher{source: name, data: data}, nil
	}
}

// Source returns the cleaned path or the reader name the data came from.
func (f *Fetcher) Source() string {
	return f.source
}

// Fetch returns a copy of the cached data.
func (f *Fetcher) Fetch() ([]byte, error) {
	result := make([]byte, len(f.data))
	copy(result, f.data)

	return result, nil
}
