// Package data holds the settings and rewrite definitions used when the
// user supplies none.
package data

import "embed"

//go:embed settings.json rewrite.def
var Assets embed.FS
