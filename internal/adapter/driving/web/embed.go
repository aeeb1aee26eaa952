package web

import "embed"

// StaticFS holds the embedded static assets (client page, JS, CSS).
//
//go:embed static/*
var StaticFS embed.FS
