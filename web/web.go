// Package web serves the browser frontend embedded into the binary.
// The frontend only talks to the JSON API; it has no server-side logic.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var staticFS embed.FS

// Handler serves index.html at "/" and the static assets next to it.
func Handler() http.Handler {
	// The "static" directory is embedded above, so Sub cannot fail.
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}
