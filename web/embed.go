// Package web provides the embedded static assets for the site shell.
package web

import "embed"

// StaticFS contains the embedded static site files.
//
//go:embed all:static
var StaticFS embed.FS
