// Package web holds the static public and admin clients, compiled into the
// binary so the server is self-contained.
package web

import "embed"

//go:embed public admin
var Assets embed.FS
