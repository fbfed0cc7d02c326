// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package breadcrumb

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

type contextKey struct{}

// State holds the breadcrumb data for a single request. It is owned by the
// goroutine serving the request and is not safe for concurrent use.
//
// All methods accept a nil receiver: appends are dropped and the trail reads
// as empty, so handlers mounted without Middleware keep working.
type State struct {
	trail     Trail
	req       *http.Request
	accessors Accessors
	provided  map[string]func() string
	vars      map[string]any

	scope        string
	autoResource bool
	finalized    bool
}

// NewState returns a State bound to r. Accessors may be nil.
func NewState(r *http.Request, accessors Accessors) *State {
	return &State{req: r, accessors: accessors}
}

// NewContext returns a copy of ctx carrying s.
func NewContext(ctx context.Context, s *State) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext returns the State stored in ctx, or nil.
func FromContext(ctx context.Context) *State {
	s, _ := ctx.Value(contextKey{}).(*State)
	return s
}

// FromRequest returns the State attached to r, or nil.
func FromRequest(r *http.Request) *State {
	return FromContext(r.Context())
}

// attach returns the State for r, creating and attaching one if the request
// did not pass through Middleware.
func attach(r *http.Request, accessors Accessors) (*State, *http.Request) {
	if s := FromRequest(r); s != nil {
		return s, r
	}
	s := NewState(r, accessors)
	r = r.WithContext(NewContext(r.Context(), s))
	s.req = r
	return s, r
}

// Append adds a crumb with a literal link.
func (s *State) Append(label any, link string) {
	if s == nil {
		return
	}
	s.trail.Append(label, link)
}

// Add adds a crumb, resolving accessor links against the request right away.
// Accessors registered with Provide shadow the shared ones.
func (s *State) Add(label any, link Link) error {
	if s == nil {
		return nil
	}
	u := link.value
	if link.accessor {
		resolved, err := s.resolve(link.value)
		if err != nil {
			return err
		}
		u = resolved
	}
	s.trail.Append(label, u)
	return nil
}

func (s *State) resolve(name string) (string, error) {
	if fn, ok := s.provided[name]; ok {
		return fn(), nil
	}
	if fn, ok := s.accessors[name]; ok {
		return fn(s.req), nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownAccessor, name)
}

// Provide registers an accessor for this request only.
func (s *State) Provide(name string, fn func() string) {
	if s == nil {
		return
	}
	if s.provided == nil {
		s.provided = make(map[string]func() string)
	}
	s.provided[name] = fn
}

// Set binds a request variable. The resource hook looks up the variable
// named after the singular resource ("post" for a "posts" scope).
func (s *State) Set(name string, v any) {
	if s == nil {
		return
	}
	if s.vars == nil {
		s.vars = make(map[string]any)
	}
	s.vars[name] = v
}

// Lookup returns the request variable bound to name. Variables bound to nil
// are reported as missing.
func (s *State) Lookup(name string) (any, bool) {
	if s == nil {
		return nil, false
	}
	v, ok := s.vars[name]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// Entries returns the trail in append order.
func (s *State) Entries() []Entry {
	if s == nil {
		return nil
	}
	return s.trail.Entries()
}

// Len returns the number of crumbs on the trail.
func (s *State) Len() int {
	if s == nil {
		return 0
	}
	return s.trail.Len()
}

// IsCurrent reports whether link points at the page being served.
// Only GET and HEAD requests have a current page. Links to another host
// never match; paths compare without trailing slashes, and a query string
// on the link must equal the request's.
func (s *State) IsCurrent(link string) bool {
	if s == nil || s.req == nil || s.req.URL == nil {
		return false
	}
	if s.req.Method != http.MethodGet && s.req.Method != http.MethodHead {
		return false
	}
	u, err := url.Parse(link)
	if err != nil {
		return false
	}
	if u.Host != "" && !strings.EqualFold(u.Host, s.req.Host) {
		return false
	}
	if normalizePath(u.Path) != normalizePath(s.req.URL.Path) {
		return false
	}
	if u.RawQuery != "" && u.RawQuery != s.req.URL.RawQuery {
		return false
	}
	return true
}

func normalizePath(p string) string {
	p = strings.TrimRight(p, "/")
	if p == "" {
		return "/"
	}
	return p
}
