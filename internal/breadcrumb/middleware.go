// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package breadcrumb

import (
	"log/slog"
	"net/http"
)

// Middleware attaches a fresh State to every request. Accessors are shared
// by all requests and resolve Accessor links.
func Middleware(accessors Accessors) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s := NewState(r, accessors)
			r = r.WithContext(NewContext(r.Context(), s))
			s.req = r
			next.ServeHTTP(w, r)
		})
	}
}

// Register returns middleware that adds the crumb (label, link) before every
// request matching cond. A nil cond matches all requests.
//
// A link naming an unknown accessor is a wiring error: it is logged and the
// request is answered with 500.
func Register(label any, link Link, cond Condition) func(http.Handler) http.Handler {
	if cond == nil {
		cond = Always()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cond(r) {
				var s *State
				s, r = attach(r, nil)
				if err := s.Add(label, link); err != nil {
					slog.Error("failed to add breadcrumb",
						"label", Entry{Label: label}.Text(),
						"link", link.String(),
						"path", r.URL.Path,
						"error", err)
					http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// AutoResource returns middleware that enables the resource crumb for
// requests matching all conds (every request when none are given).
// See State.Finalize.
func AutoResource(conds ...Condition) func(http.Handler) http.Handler {
	cond := All(conds...)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cond(r) {
				var s *State
				s, r = attach(r, nil)
				s.autoResource = true
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Scope returns middleware that names the resource scope (plural, e.g.
// "posts") instead of deriving it from the route pattern.
func Scope(name string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var s *State
			s, r = attach(r, nil)
			s.scope = name
			next.ServeHTTP(w, r)
		})
	}
}
