// Package web holds the browser front-end of the search server.
package web

import "embed"

// Assets contains index.html and the static/ directory
//
//go:embed index.html static
var Assets embed.FS
