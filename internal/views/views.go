package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
)

const layout = "layout.html"

//go:embed templates/*.html
var files embed.FS

type Views struct {
	pages map[string]*template.Template
}

// New parses every page under templates/ together with the shared layout.
func New() (*Views, error) {
	const op = "views.New"

	names, err := fs.Glob(files, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	v := &Views{pages: make(map[string]*template.Template, len(names))}

	for _, name := range names {
		page := path.Base(name)
		if page == layout {
			continue
		}

		t, err := template.New(page).ParseFS(files, "templates/"+layout, name)
		if err != nil {
			return nil, fmt.Errorf("%s: %s: %w", op, page, err)
		}

		v.pages[page] = t
	}

	return v, nil
}

// Render executes page into a buffer first, so a template error never leaves
// a half written response behind.
func (v *Views) Render(w http.ResponseWriter, status int, page string, data any) error {
	const op = "views.Render"

	t, ok := v.pages[page]
	if !ok {
		return fmt.Errorf("%s: unknown page %q", op, page)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("%s: %s: %w", op, page, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)

	return err
}
