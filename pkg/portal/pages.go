package portal

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
)

//go:embed templates/*.html
var templateFiles embed.FS

var pages = template.Must(template.ParseFS(templateFiles, "templates/*.html"))

// pageData is everything a page may render.
type pageData struct {
	Title     string
	Refresh   int
	Stored    int
	Capacity  int
	StoreFull bool
	Message   string
}

// render executes the named page into a buffer so a template error never
// produces a half-written response.
func (s *Server) render(w http.ResponseWriter, status int, name string, data pageData) {
	data.Title = s.config.Title

	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		s.warn("render page", "page", name, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
