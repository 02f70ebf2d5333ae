// Package web embeds the static HTML pages served at the site root.
package web

import (
	"embed"
	"io/fs"
)

//go:embed pages/*.html
var embedded embed.FS

// Pages returns the page files rooted at the pages directory.
func Pages() fs.FS {
	pages, err := fs.Sub(embedded, "pages")
	if err != nil {
		panic(err)
	}

	return pages
}
