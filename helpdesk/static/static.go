package static

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed assets
var assets embed.FS

// FileSystem serves the embedded assets rooted at the assets directory.
func FileSystem() http.FileSystem {
	sub, err := fs.Sub(assets, "assets")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
