package api

import (
	"net/http"
	"path"
	"path/filepath"
	"strings"
)

// adminIndex стартовая страница админки
const adminIndex = "index2.html"

// adminFileServer раздаёт админку, для каталогов отдаёт index2.html
func adminFileServer(dir string) http.Handler {
	files := http.StripPrefix("/admin/", http.FileServer(http.Dir(dir)))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") {
			rel := path.Clean("/" + strings.TrimPrefix(r.URL.Path, "/admin/"))
			http.ServeFile(w, r, filepath.Join(dir, filepath.FromSlash(rel), adminIndex))
			return
		}
		files.ServeHTTP(w, r)
	})
}
