// Package web holds the page templates and static assets served by folio.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"net/url"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Funcs are the helpers available to every template.
var Funcs = template.FuncMap{
	// tagQuery builds the query string of a tag toggle request.
	"tagQuery": func(active, tag string) string {
		return url.Values{"active": {active}, "tag": {tag}}.Encode()
	},
	"selectQuery": func(tag string) string {
		return url.Values{"tag": {tag}}.Encode()
	},
}

// Templates parses every page and fragment template.
func Templates() (*template.Template, error) {
	t, err := template.New("").Funcs(Funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return t, nil
}

// Static returns the static asset tree rooted at static/.
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
