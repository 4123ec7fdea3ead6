package ui

import (
	"fmt"
	"html/template"
	"io"
	"io/fs"
)

var pageNames = []string{"items", "item_form", "import", "stats", "error"}

var funcs = template.FuncMap{
	"add": func(a, b int) int { return a + b },
	"sub": func(a, b int) int { return a - b },
}

// Templates holds one parsed template set per page, each combined with the
// shared layout.
type Templates struct {
	pages map[string]*template.Template
}

// LoadTemplates parses layout.html together with every page template.
func LoadTemplates(fsys fs.FS) (*Templates, error) {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tmpl, err := template.New(name).Funcs(funcs).ParseFS(fsys, "layout.html", name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		pages[name] = tmpl
	}
	return &Templates{pages: pages}, nil
}

// Render executes the layout for the named page.
func (t *Templates) Render(w io.Writer, page string, data any) error {
	tmpl, ok := t.pages[page]
	if !ok {
		return fmt.Errorf("template %q not found", page)
	}
	return tmpl.ExecuteTemplate(w, "layout", data)
}
