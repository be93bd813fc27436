// Package templates carries the built-in template tree.
//
// Layout, relative to the tree root:
//
//	common_structure/         copied for every package
//	commonjs/, module/        module-system specific files
//	template_files/<type>/    rendered with the answer record
//	contributors/<unit>/      files written by the contributor units
package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
)

//go:embed all:assets
var assets embed.FS

// FS returns the embedded template tree.
func FS() fs.FS {
	sub, err := fs.Sub(assets, "assets")
	if err != nil {
		panic(fmt.Sprintf("templates: %v", err))
	}
	return sub
}

// Open returns the template tree at dir, or the embedded tree when dir is
// empty. The directory must exist.
func Open(dir string) (fs.FS, error) {
	if dir == "" {
		return FS(), nil
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("template directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("template directory: %s is not a directory", dir)
	}
	return os.DirFS(dir), nil
}
