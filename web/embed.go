package web

import "embed"

// DistFS holds the dashboard pages served under /ui/.
//
//go:embed all:dist
var DistFS embed.FS
