package server

import "embed"

// staticFiles holds the embedded front-end: a single-page canvas that talks
// to the /api routes.
//
//go:embed static
var staticFiles embed.FS
