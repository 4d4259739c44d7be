// Package web carries the static dashboard page, compiled into the binary so
// the image stays a single artifact.
package web

import _ "embed"

//go:embed index.html
var IndexHTML []byte
