// Package static embeds the site's own CSS and JS. Third party libraries load from CDNs.
package static

import (
	"embed"
	"io/fs"
)

//go:embed assets/*
var embedded embed.FS

// FS is the asset tree rooted at assets/, served under /static/.
var FS fs.FS = mustSub(embedded, "assets")

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}
