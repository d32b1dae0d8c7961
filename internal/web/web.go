// Package web embeds the page templates and static assets.
package web

import (
	"embed"
	"html/template"
	"io/fs"

	"github.com/kauhanhernandes/portfolio/internal/notify"
	"github.com/kauhanhernandes/portfolio/internal/view"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Template names rendered by the handlers.
const (
	PageTemplate    = "index.html"
	SectionTemplate = "section.html"
	ContactTemplate = "contact.html"
	HintTemplate    = "hint.html"
)

var funcs = template.FuncMap{
	"toastClass": func(l notify.Level) string {
		if l == notify.LevelSuccess {
			return "toast toast-success"
		}
		return "toast toast-error"
	},
	"hint": func(field, message string) view.FieldHint {
		return view.FieldHint{Field: field, Message: message}
	},
}

// Templates parses every embedded template.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
}

// Static returns the asset tree served under /static.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
