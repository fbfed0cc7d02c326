// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package breadcrumb

import (
	"errors"
	"net/http"
)

// ErrUnknownAccessor is returned when a deferred link names an accessor
// that is registered neither on the request nor on the middleware.
var ErrUnknownAccessor = errors.New("unknown link accessor")

// Link is the target of a breadcrumb: either a literal URL or the name of
// an accessor resolved against the current request when the crumb is added.
type Link struct {
	value    string
	accessor bool
}

// URL returns a literal link. An empty URL means "no link".
func URL(u string) Link {
	return Link{value: u}
}

// Accessor returns a link resolved by calling the named accessor at append time.
func Accessor(name string) Link {
	return Link{value: name, accessor: true}
}

// IsAccessor reports whether the link is resolved through an accessor.
func (l Link) IsAccessor() bool {
	return l.accessor
}

// String returns the literal URL, or the accessor name prefixed with a colon.
func (l Link) String() string {
	if l.accessor {
		return ":" + l.value
	}
	return l.value
}

// Accessors maps accessor names to functions that compute a URL from the
// request. They are shared by every request passing through Middleware.
type Accessors map[string]func(r *http.Request) string
