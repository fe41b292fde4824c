package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"path"

	"bigvalue-web/internal/lib/logger/sl"
)

//go:embed templates/*.html
var files embed.FS

const layoutFile = "base.layout.html"

// Placeholder is the "No Image" picture of list cards without a thumbnail.
const Placeholder = `data:image/svg+xml,%3Csvg xmlns="http://www.w3.org/2000/svg" width="400" height="300"%3E%3Crect width="400" height="300" fill="%23f0f0f0"/%3E%3Ctext x="50%25" y="50%25" dominant-baseline="middle" text-anchor="middle" font-family="sans-serif" font-size="18" fill="%23999"%3ENo Image%3C/text%3E%3C/svg%3E`

var functions = template.FuncMap{
	"placeholder": func() template.URL {
		return template.URL(Placeholder)
	},
}

type View struct {
	log   *slog.Logger
	pages map[string]*template.Template
}

// New parses every *.page.html together with the layout and the partials.
func New(log *slog.Logger) (*View, error) {
	const op = "view.New"

	pageFiles, err := fs.Glob(files, "templates/*.page.html")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	pages := make(map[string]*template.Template, len(pageFiles))
	for _, pageFile := range pageFiles {
		ts, err := template.New("").Funcs(functions).ParseFS(files,
			path.Join("templates", layoutFile),
			"templates/*.partial.html",
			pageFile,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %s: %w", op, pageFile, err)
		}
		pages[path.Base(pageFile)] = ts
	}

	return &View{
		log:   log,
		pages: pages,
	}, nil
}

// Render executes the page into a buffer first so a template error never
// leaves a half written response.
func (v *View) Render(w http.ResponseWriter, r *http.Request, page string, data any) {
	const op = "view.Render"

	log := v.log.With(slog.String("op", op), slog.String("page", page))

	ts, ok := v.pages[page]
	if !ok {
		log.Error("page template not found")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	buf := new(bytes.Buffer)
	if err := ts.ExecuteTemplate(buf, "base", data); err != nil {
		log.Error("failed to render page", sl.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}
