// Package templates carries the default feed templates compiled into the
// binary.
package templates

import "embed"

// Files provides read-only access to the template files.
//
//go:embed *.tmpl
var Files embed.FS
