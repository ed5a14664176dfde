package web

import (
	"fmt"
	"io/fs"
	"net/http"
)

// RegisterRoutes registers the browser-facing routes on the provided mux.
// The public page is served at /, the admin dashboard at /admin, static
// assets from the embedded filesystem at /static/*, and uploaded images
// from uploadDir at /uploads/*.
func RegisterRoutes(mux *http.ServeMux, uploadDir string) {
	staticFS, err := fs.Sub(StaticFS, "static")
	if err != nil {
		// The static directory is compiled into the binary; failing to
		// find it means the build itself is broken.
		panic(fmt.Sprintf("embedded static assets unavailable: %v", err))
	}
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(staticFS)))

	mux.HandleFunc("GET /{$}", servePage(staticFS, "index.html"))
	mux.HandleFunc("GET /admin", servePage(staticFS, "admin.html"))

	mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServer(filesOnlyDir{http.Dir(uploadDir)})))
}

// servePage serves one embedded HTML document.
func servePage(staticFS fs.FS, name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := fs.ReadFile(staticFS, name)
		if err != nil {
			http.Error(w, "page not found", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(page)
	}
}

// filesOnlyDir serves individual files and reports directories as
// absent, so the upload root cannot be enumerated through a listing.
type filesOnlyDir struct {
	http.Dir
}

func (d filesOnlyDir) Open(name string) (http.File, error) {
	f, err := d.Dir.Open(name)
	if err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if info.IsDir() {
		_ = f.Close()
		return nil, fs.ErrNotExist
	}

	return f, nil
}
