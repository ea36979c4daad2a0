// Package web holds the embedded chat viewer page and its static assets.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
)

//go:embed templates/* static/*
var contentFS embed.FS

// Pages renders the chat viewer.
type Pages struct {
	index  *template.Template
	static http.Handler
}

func NewPages() (*Pages, error) {
	index, err := template.ParseFS(contentFS, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("parse index template: %w", err)
	}
	staticFS, err := fs.Sub(contentFS, "static")
	if err != nil {
		return nil, fmt.Errorf("static sub filesystem: %w", err)
	}
	return &Pages{
		index:  index,
		static: http.FileServer(http.FS(staticFS)),
	}, nil
}

// RenderIndex executes the main page with no data. The output is buffered so
// a template error never leaves a half-written page.
func (p *Pages) RenderIndex(w io.Writer) error {
	var buf bytes.Buffer
	if err := p.index.Execute(&buf, nil); err != nil {
		return fmt.Errorf("render index: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// Static serves files under static/, with the URL prefix already stripped.
func (p *Pages) Static() http.Handler {
	return p.static
}
