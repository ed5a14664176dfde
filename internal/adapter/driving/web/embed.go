// Package web serves the embedded browser client and uploaded files.
package web

import "embed"

// StaticFS holds the embedded client: the public page, the admin
// dashboard, and their CSS and JS.
//
//go:embed static/*
var StaticFS embed.FS
