// Package views holds the HTML templates and the Echo renderer that executes
// them. Every page is parsed together with the shared layout.
package views

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var files embed.FS

const layoutFile = "templates/layout.html"

type Renderer struct {
	pages map[string]*template.Template
}

func funcs() template.FuncMap {
	return template.FuncMap{
		"fecha": func(t time.Time) string {
			return t.Format("02/01/2006 15:04")
		},
		// safeHTML must only receive markup that was sanitized before storage.
		"safeHTML": func(s string) template.HTML {
			return template.HTML(s)
		},
	}
}

// NewRenderer parses every page in templates/ against the layout.
func NewRenderer() (*Renderer, error) {
	names, err := fs.Glob(files, "templates/*.html")
	if err != nil {
		return nil, err
	}

	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, name := range names {
		if name == layoutFile {
			continue
		}
		page := strings.TrimSuffix(path.Base(name), ".html")
		tmpl, err := template.New(page).Funcs(funcs()).ParseFS(files, layoutFile, name)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		r.pages[page] = tmpl
	}
	return r, nil
}

// Render implements echo.Renderer.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}
	return tmpl.ExecuteTemplate(w, "layout", data)
}
