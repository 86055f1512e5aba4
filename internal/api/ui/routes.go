package ui

import (
	"io/fs"
	"net/http"
	"strings"

	"github.com/johnwards/hrdash/web"
)

// RegisterRoutes registers the web UI at /ui/: the employee table at
// /ui/ and the creation form at /ui/form.html.
func RegisterRoutes(mux *http.ServeMux) {
	distFS, err := fs.Sub(web.DistFS, "dist")
	if err != nil {
		panic("failed to create sub filesystem: " + err.Error())
	}

	fileServer := http.StripPrefix("/ui/", http.FileServer(http.FS(distFS)))

	mux.Handle("GET /ui", http.RedirectHandler("/ui/", http.StatusMovedPermanently))
	mux.HandleFunc("GET /ui/", func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimPrefix(r.URL.Path, "/ui/")

		if path != "" {
			f, err := distFS.Open(path)
			if err == nil {
				_ = f.Close()
				w.Header().Set("Cache-Control", "no-cache")
				fileServer.ServeHTTP(w, r)
				return
			}
		}

		// Root or unknown page: serve the table.
		indexBytes, err := fs.ReadFile(distFS, "index.html")
		if err != nil {
			http.Error(w, "index.html not found", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(indexBytes)
	})
}
