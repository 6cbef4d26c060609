package format_test

import (
	"testing"

	"github.com/0xalexb/ebbe/format"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilesize(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		size     int64
		opts     []format.FilesizeOption
		expected string
	}{
		{"zero", 0, nil, "0 B"},
		{"bytes", 42, nil, "42 B"},
		{"kilobytes", 1000, nil, "1.0 kB"},
		{"megabytes", 82854982, nil, "83 MB"},
		{"binary kibibytes", 1024, []format.FilesizeOption{format.WithBinary(true)}, "1.0 KiB"},
		{"binary mebibytes", 82854982, []format.FilesizeOption{format.WithBinary(true)}, "79 MiB"},
		{"short bytes", 7, []format.FilesizeOption{format.WithShortSuffix(true)}, "7B"},
		{"short megabytes", 82854982, []format.FilesizeOption{format.WithShortSuffix(true)}, "83M"},
		{
			"short binary",
			1536,
			[]format.FilesizeOption{format.WithBinary(true), format.WithShortSuffix(true)},
			"1.5K",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			result, err := format.Filesize(tc.size, tc.opts...)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, result)
		})
	}
}

func TestFilesize_Negative(t *testing.T) {
	t.Parallel()

	result, err := format.Filesize(-1)

	require.ErrorIs(t, err, format.ErrNegativeSize)
	assert.Empty(t, result)
}
