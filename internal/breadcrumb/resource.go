// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package breadcrumb

import (
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/jinzhu/inflection"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Record is implemented by resources that know whether they have been saved.
type Record interface {
	IsNew() bool
}

// actionSegments are route segments that name an action rather than a resource.
var actionSegments = map[string]bool{
	"new":  true,
	"edit": true,
	"*":    true,
}

// ResourceName returns the singular name of the resource served by the
// request: the Scope if one was set, otherwise the last static segment of
// the matched chi route pattern ("/posts/{id}/edit" gives "post").
func (s *State) ResourceName() string {
	if s == nil {
		return ""
	}
	scope := s.scope
	if scope == "" && s.req != nil {
		if rctx := chi.RouteContext(s.req.Context()); rctx != nil {
			scope = scopeFromPattern(rctx.RoutePattern())
		}
	}
	if scope == "" {
		return ""
	}
	return inflection.Singular(scope)
}

func scopeFromPattern(pattern string) string {
	segments := strings.Split(pattern, "/")
	for i := len(segments) - 1; i >= 0; i-- {
		seg := segments[i]
		if seg == "" || actionSegments[seg] || strings.HasPrefix(seg, "{") {
			continue
		}
		return seg
	}
	return ""
}

// Titleize turns a resource name into display text: "blog_post" becomes "Blog Post".
func Titleize(name string) string {
	name = strings.NewReplacer("_", " ", "-", " ").Replace(name)
	return cases.Title(language.English).String(strings.TrimSpace(name))
}

// Finalize appends the resource crumb when AutoResource is enabled for the
// request. It runs at most once; later calls do nothing.
//
// The crumb is taken from the request variable named by ResourceName. A
// Record reporting IsNew yields "New <Resource>"; any other value becomes the
// label itself. No variable, no crumb.
func (s *State) Finalize() {
	if s == nil || s.finalized {
		return
	}
	s.finalized = true
	if !s.autoResource {
		return
	}

	name := s.ResourceName()
	if name == "" {
		return
	}
	v, ok := s.Lookup(name)
	if !ok {
		return
	}
	if rec, ok := v.(Record); ok && rec.IsNew() {
		s.Append("New "+Titleize(name), "")
		return
	}
	s.Append(v, "")
}

// WrapRender runs the resource hook and then fn, returning fn's error.
// Renderers call it around the step that writes the response body.
func WrapRender(s *State, fn func() error) error {
	s.Finalize()
	return fn()
}
