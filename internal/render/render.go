// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package render executes the page templates and writes HTML responses.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/olegiv/ocms-breadcrumbs/internal/breadcrumb"
)

// blankLinesRegex matches runs of blank lines left behind by template actions.
var blankLinesRegex = regexp.MustCompile(`(\r?\n[ \t]*)+\r?\n`)

const (
	layoutsDir  = "layouts"
	partialsDir = "partials"
	baseLayout  = "layouts/base.html"
)

// Renderer handles template rendering with caching.
type Renderer struct {
	templates  map[string]*template.Template
	crumbs     *breadcrumb.Renderer
	extraFuncs template.FuncMap
}

// Config holds renderer configuration.
type Config struct {
	TemplatesFS fs.FS
	// Breadcrumbs renders trails; nil uses the built-in defaults.
	Breadcrumbs *breadcrumb.Renderer
	// Funcs are merged over the built-in template functions.
	Funcs template.FuncMap
}

// New creates a new Renderer with parsed templates.
func New(cfg Config) (*Renderer, error) {
	crumbs := cfg.Breadcrumbs
	if crumbs == nil {
		crumbs = breadcrumb.NewRenderer(breadcrumb.Options{})
	}

	r := &Renderer{
		templates:  make(map[string]*template.Template),
		crumbs:     crumbs,
		extraFuncs: cfg.Funcs,
	}

	if err := r.parseTemplates(cfg.TemplatesFS); err != nil {
		return nil, err
	}

	return r, nil
}

// parseTemplates parses every page template together with the base layout
// and all partials. Pages live in any top-level directory other than
// layouts and partials and are named "<dir>/<file>" without the extension.
func (r *Renderer) parseTemplates(templatesFS fs.FS) error {
	partials, err := r.getTemplateFiles(templatesFS, partialsDir)
	if err != nil {
		return fmt.Errorf("getting partials: %w", err)
	}

	dirs, err := fs.ReadDir(templatesFS, ".")
	if err != nil {
		return fmt.Errorf("reading templates root: %w", err)
	}

	for _, dir := range dirs {
		if !dir.IsDir() || dir.Name() == layoutsDir || dir.Name() == partialsDir {
			continue
		}

		pages, err := r.getTemplateFiles(templatesFS, dir.Name())
		if err != nil {
			return fmt.Errorf("getting %s templates: %w", dir.Name(), err)
		}

		for _, tmplPath := range pages {
			name := dir.Name() + "/" + strings.TrimSuffix(path.Base(tmplPath), ".html")

			// Parse in order: base layout, partials, page template
			files := []string{baseLayout}
			files = append(files, partials...)
			files = append(files, tmplPath)

			tmpl, err := template.New("").Funcs(r.TemplateFuncs()).ParseFS(templatesFS, files...)
			if err != nil {
				return fmt.Errorf("parsing template %s: %w", name, err)
			}

			r.templates[name] = tmpl
		}
	}

	return nil
}

// getTemplateFiles returns all .html files in a directory.
func (r *Renderer) getTemplateFiles(templatesFS fs.FS, dir string) ([]string, error) {
	var files []string

	entries, err := fs.ReadDir(templatesFS, dir)
	if err != nil {
		// Directory might not exist yet, that's ok
		return files, nil
	}

	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".html") {
			files = append(files, path.Join(dir, entry.Name()))
		}
	}

	return files, nil
}

// Has reports whether a template with the given name was parsed.
func (r *Renderer) Has(name string) bool {
	_, ok := r.templates[name]
	return ok
}

// TemplateData holds data passed to templates.
type TemplateData struct {
	Title       string
	Data        any
	Crumbs      *breadcrumb.State
	CurrentYear int
	// StatusCode is the response status; zero means 200.
	StatusCode int
}

// Render renders a template with the given data. The request's resource
// breadcrumb is added right before the template executes.
func (r *Renderer) Render(w http.ResponseWriter, req *http.Request, name string, data TemplateData) error {
	tmpl, ok := r.templates[name]
	if !ok {
		return fmt.Errorf("template %s not found", name)
	}

	crumbs := breadcrumb.FromRequest(req)
	data.Crumbs = crumbs
	data.CurrentYear = time.Now().Year()

	return breadcrumb.WrapRender(crumbs, func() error {
		// Render to buffer first to catch errors
		buf := new(bytes.Buffer)
		if err := tmpl.ExecuteTemplate(buf, "base", data); err != nil {
			return fmt.Errorf("executing template %s: %w", name, err)
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if data.StatusCode != 0 {
			w.WriteHeader(data.StatusCode)
		}
		_, err := w.Write(blankLinesRegex.ReplaceAll(buf.Bytes(), []byte("\n")))
		return err
	})
}

// RenderPage renders a template and answers 500 if rendering fails.
func (r *Renderer) RenderPage(w http.ResponseWriter, req *http.Request, name string, data TemplateData) {
	if err := r.Render(w, req, name, data); err != nil {
		slog.Error("render error", "template", name, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
