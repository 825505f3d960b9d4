// Package yaml wraps [github.com/goccy/go-yaml] with the decoding, encoding
// and error reporting conventions used across scholar.
//
// Errors produced while decoding or validating carry the YAML path or token
// of the offending node, so they can be reported with line and column
// information.
package yaml
