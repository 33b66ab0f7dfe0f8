package assets

import (
	"embed"
	"io/fs"
)

// DefaultConfigTOML contains the configuration written by init.
//
//go:embed defaults/config.toml
var DefaultConfigTOML []byte

//go:embed defaults/library
var defaultLibrary embed.FS

// DefaultLibrary returns the starter library, rooted at the library directory.
func DefaultLibrary() fs.FS {
	sub, err := fs.Sub(defaultLibrary, "defaults/library")
	if err != nil {
		panic(err)
	}
	return sub
}
