// Package assets serves the embedded static files.
package assets

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static/*
var staticFS embed.FS

// FS returns the static files rooted at the static directory.
func FS() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// The directory is embedded at build time; failing here is a build bug.
		panic(err)
	}
	return sub
}

// Handler serves the static files under /static/.
func Handler() http.Handler {
	fileServer := http.FileServer(http.FS(FS()))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=86400")
		http.StripPrefix("/static/", fileServer).ServeHTTP(w, r)
	})
}

// Path returns the URL path for a static asset.
func Path(name string) string {
	return "/static/" + name
}
