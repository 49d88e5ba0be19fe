// Package web holds the HTML pages, embedded so the binary and the tests run
// from any working directory.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var files embed.FS

func Templates() *template.Template {
	return template.Must(template.ParseFS(files, "templates/*.html"))
}
