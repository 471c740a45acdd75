package web

import "embed"

// StaticFS holds the embedded static assets (stylesheet, copy and alert scripts).
//
//go:embed static/*
var StaticFS embed.FS
