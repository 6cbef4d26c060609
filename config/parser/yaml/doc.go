// Package yaml implements config.Parser on top of github.com/goccy/go-yaml.
//
// Section paths are translated into go-yaml path expressions and evaluated
// with PathString, so only the selected node is decoded:
//   - "" decodes the whole document
//   - "ebbe" becomes "$.ebbe"
//   - "ebbe.profiles.1" becomes "$.ebbe.profiles[1]"
//
// Negative indices are not supported by YAML paths and are rejected.
package yaml
