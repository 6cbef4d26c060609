package document_test

import (
	"testing"

	"github.com/0xalexb/ebbe/config/document"
	"github.com/0xalexb/ebbe/pathget"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const usersDocument = `
users:
  - name: ada
    languages: [analytical engine, notes]
  - name: grace
    languages: [cobol]
meta:
  zeta: 1
  alpha: 2
  404: not found
`

func decode(t *testing.T, data string) *document.Document {
	t.Helper()

	doc, err := document.Decode([]byte(data))
	require.NoError(t, err)

	return doc
}

func TestDocument_Get(t *testing.T) {
	t.Parallel()

	doc := decode(t, usersDocument)
	dotted := []pathget.Option{pathget.WithSplitChar("."), pathget.WithParseIndices(true)}

	testCases := []struct {
		name     string
		path     any
		opts     []pathget.Option
		expected any
	}{
		{"nested key and index", []any{"users", 0, "name"}, nil, "ada"},
		{"negative index", []any{"users", -1, "name"}, nil, "grace"},
		{"parsed path", "users.0.languages.1", dotted, "notes"},
		{"missing key", "users.0.email", dotted, nil},
		{"out of range", "users.5.name", dotted, nil},
		{"default", "users.5.name", append(dotted, pathget.WithDefault("?")), "?"},
		{"numeric key by index step", []any{"meta", 404}, nil, "not found"},
		{"numeric key by string step", []string{"meta", "404"}, nil, "not found"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			value, err := doc.Get(tc.path, tc.opts...)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, value)
		})
	}
}

func TestDocument_Get_AmbiguousPath(t *testing.T) {
	t.Parallel()

	_, err := decode(t, usersDocument).Get("users.0")

	require.ErrorIs(t, err, pathget.ErrAmbiguousPath)
}

func TestDocument_KeepsKeyOrder(t *testing.T) {
	t.Parallel()

	meta, err := decode(t, usersDocument).Get([]string{"meta"})
	require.NoError(t, err)

	mapping, ok := meta.(document.Mapping)
	require.True(t, ok)

	keys := mapping.Keys()
	require.Len(t, keys, 3)
	assert.Equal(t, "zeta", keys[0])
	assert.Equal(t, "alpha", keys[1])
	assert.EqualValues(t, 404, keys[2])

	out, err := document.Encode(meta, document.StyleYAML)
	require.NoError(t, err)
	assert.Equal(t, "zeta: 1\nalpha: 2\n404: not found\n", string(out))
}

func TestDocument_JSONInput(t *testing.T) {
	t.Parallel()

	doc := decode(t, `{"b": {"c": [1, 2, 3]}, "a": true}`)

	value, err := doc.Get([]any{"b", "c", -1})
	require.NoError(t, err)
	assert.EqualValues(t, 3, value)

	root, ok := doc.Root().(document.Mapping)
	require.True(t, ok)
	assert.Equal(t, []any{"b", "a"}, root.Keys())
}

func TestDocument_ScalarRoot(t *testing.T) {
	t.Parallel()

	doc := decode(t, "hello")

	assert.Equal(t, "hello", doc.Root())

	value, err := doc.Get([]string{"x"}, pathget.WithDefault("none"))
	require.NoError(t, err)
	assert.Equal(t, "none", value)
}

func TestDecode_Errors(t *testing.T) {
	t.Parallel()

	_, err := document.Decode([]byte("  \n"))
	require.ErrorIs(t, err, document.ErrEmptyDocument)

	_, err = document.Decode([]byte("a: [1, 2"))
	require.Error(t, err)
}

func TestEncode_JSON(t *testing.T) {
	t.Parallel()

	languages, err := decode(t, usersDocument).Get([]any{"users", 1, "languages"})
	require.NoError(t, err)

	out, err := document.Encode(languages, document.StyleJSON)
	require.NoError(t, err)
	assert.JSONEq(t, `["cobol"]`, string(out))

	_, err = document.Encode(languages, document.Style(9))
	require.ErrorIs(t, err, document.ErrUnknownStyle)
}

func TestParseStyle(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		input    string
		expected document.Style
	}{
		{"", document.StyleYAML},
		{"yaml", document.StyleYAML},
		{"yml", document.StyleYAML},
		{"json", document.StyleJSON},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()

			style, err := document.ParseStyle(tc.input)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, style)
		})
	}

	_, err := document.ParseStyle("toml")
	require.ErrorIs(t, err, document.ErrUnknownStyle)
}
