// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package breadcrumb

import (
	"net/http"
	"path"
	"strings"
)

// Condition selects the requests a declarative crumb applies to.
type Condition func(r *http.Request) bool

// Always matches every request.
func Always() Condition {
	return func(*http.Request) bool { return true }
}

// Methods matches requests using one of the given HTTP methods.
func Methods(methods ...string) Condition {
	return func(r *http.Request) bool {
		for _, m := range methods {
			if strings.EqualFold(r.Method, m) {
				return true
			}
		}
		return false
	}
}

// Paths matches requests whose URL path matches one of the path.Match
// patterns, e.g. "/posts/*/edit".
func Paths(patterns ...string) Condition {
	return func(r *http.Request) bool {
		p := normalizePath(r.URL.Path)
		for _, pattern := range patterns {
			if ok, err := path.Match(pattern, p); err == nil && ok {
				return true
			}
		}
		return false
	}
}

// Not inverts c.
func Not(c Condition) Condition {
	return func(r *http.Request) bool { return !c(r) }
}

// All matches when every condition matches.
func All(conds ...Condition) Condition {
	return func(r *http.Request) bool {
		for _, c := range conds {
			if !c(r) {
				return false
			}
		}
		return true
	}
}

// Any matches when at least one condition matches.
func Any(conds ...Condition) Condition {
	return func(r *http.Request) bool {
		for _, c := range conds {
			if c(r) {
				return true
			}
		}
		return false
	}
}
