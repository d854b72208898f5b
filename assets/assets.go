// Package assets embeds the default maps and narrative content.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed content.yaml
var Content []byte

//go:embed maps
var maps embed.FS

// Maps returns the embedded map tree, one directory per room.
func Maps() fs.FS {
	sub, err := fs.Sub(maps, "maps")
	if err != nil {
		panic(err)
	}
	return sub
}
