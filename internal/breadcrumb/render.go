// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package breadcrumb

import (
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

const (
	dividerSpan = "<span class='divider'>/</span>"
	activeClass = "active"
)

// separatorPolicy allows simple inline markup in separators and strips the rest.
func separatorPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("b", "i", "em", "strong", "span")
	p.AllowAttrs("class").OnElements("span", "i")
	return p
}

// Renderer turns a request's trail into markup.
type Renderer struct {
	defaults Options
	policy   *bluemonday.Policy
}

// NewRenderer returns a Renderer whose zero options fall back to defaults,
// and then to DefaultOptions.
func NewRenderer(defaults Options) *Renderer {
	return &Renderer{
		defaults: defaults.withDefaults(DefaultOptions()),
		policy:   separatorPolicy(),
	}
}

var defaultRenderer = NewRenderer(Options{})

// Render renders the trail of s with the built-in defaults.
func Render(s *State, args ...any) (template.HTML, error) {
	return defaultRenderer.Render(s, args...)
}

// Defaults returns the options used for zero fields.
func (r *Renderer) Defaults() Options {
	return r.defaults
}

// Render parses args with ParseOptions and renders the trail of s.
func (r *Renderer) Render(s *State, args ...any) (template.HTML, error) {
	opts, err := ParseOptions(args...)
	if err != nil {
		return "", err
	}
	return r.RenderOptions(s, opts), nil
}

// item is one rendered <li>.
type item struct {
	class   string
	content string
	divider bool
}

func (it item) String() string {
	var b strings.Builder
	if it.class == "" {
		b.WriteString("<li>")
	} else {
		b.WriteString("<li class='")
		b.WriteString(template.HTMLEscapeString(it.class))
		b.WriteString("'>")
	}
	b.WriteString(it.content)
	if it.divider {
		b.WriteString(dividerSpan)
	}
	b.WriteString("</li>")
	return b.String()
}

// RenderOptions renders the trail of s. Labels and links are escaped and the
// result is safe to emit as is. A Type other than StyleLinks or
// StyleBootstrap renders as StyleList.
func (r *Renderer) RenderOptions(s *State, opts Options) template.HTML {
	opts = opts.withDefaults(r.defaults)
	entries := s.Entries()

	if opts.Type == StyleLinks {
		parts := make([]string, 0, len(entries))
		for _, e := range entries {
			parts = append(parts, linkOrText(e, isCurrent(s, e.Link)))
		}
		sep := " " + r.policy.Sanitize(opts.Separator) + " "
		return template.HTML(strings.Join(parts, sep)) //nolint:gosec // labels and links are escaped, separator is sanitized
	}

	items := make([]item, 0, len(entries))
	for _, e := range entries {
		current := isCurrent(s, e.Link)
		it := item{content: linkOrText(e, current)}
		if opts.Type == StyleBootstrap {
			if current {
				it.class = activeClass
			} else {
				it.divider = true
			}
		} else {
			it.class = opts.ItemClass
		}
		items = append(items, it)
	}

	// The last bootstrap crumb always reads as the active page.
	if opts.Type == StyleBootstrap && len(items) > 0 {
		last := &items[len(items)-1]
		last.class = activeClass
		last.divider = false
	}

	listClass := opts.ListClass
	if opts.Type == StyleBootstrap {
		listClass = "breadcrumb"
	}

	var b strings.Builder
	b.WriteString("<ul class='")
	b.WriteString(template.HTMLEscapeString(listClass))
	b.WriteString("'>")
	for _, it := range items {
		b.WriteString(it.String())
	}
	b.WriteString("</ul>")
	return template.HTML(b.String()) //nolint:gosec // labels and links are escaped
}

func isCurrent(s *State, link string) bool {
	return link == "" || s.IsCurrent(link)
}

// linkOrText renders the escaped label, wrapped in an anchor unless current.
func linkOrText(e Entry, current bool) string {
	label := template.HTMLEscapeString(e.Text())
	if current {
		return label
	}
	return `<a href="` + template.HTMLEscapeString(e.Link) + `">` + label + `</a>`
}

// FuncMap returns the template functions backed by r:
//
//	{{ breadcrumbs .Crumbs }}
//	{{ breadcrumbs .Crumbs "::" }}
//	{{ breadcrumbs .Crumbs "type" "bootstrap" }}
//	{{ breadcrumbs .Crumbs (crumbOpts "type" "list" "class" "nav") }}
func (r *Renderer) FuncMap() template.FuncMap {
	return template.FuncMap{
		"breadcrumbs": r.Render,
		"crumbOpts":   ParseOptions,
	}
}
