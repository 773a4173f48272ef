// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package web embeds the poll page and its assets.
package web

import (
	"embed"
	"io/fs"
)

// IndexFile is the landing page's name within Assets
const IndexFile = "index.html"

//go:embed static
var content embed.FS

// Assets returns the page assets rooted at the static directory
func Assets() fs.FS {
	sub, err := fs.Sub(content, "static")
	if err != nil {
		// "static" is embedded above, so Sub cannot fail
		panic(err)
	}
	return sub
}
