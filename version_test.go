package ebbe_test

import (
	"testing"

	"github.com/0xalexb/ebbe"

	"github.com/stretchr/testify/require"
)

func TestVersion_DefaultValues(t *testing.T) {
	t.Parallel()

	require.Equal(t, "dev", ebbe.Version)
	require.Equal(t, "unknown", ebbe.CompiledAt)
	require.Equal(t, "ebbe dev (compiled unknown)", ebbe.BuildInfo())
}
