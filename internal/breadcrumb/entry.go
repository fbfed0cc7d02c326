// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package breadcrumb collects per-request breadcrumb trails in HTTP handlers
// and renders them as navigation markup in templates.
//
// A trail lives on a *State attached to the request context by Middleware.
// Handlers append entries directly or declare them up front with Register;
// AutoResource appends a crumb for the request's primary record right
// before the page is rendered.
package breadcrumb

import "fmt"

// Entry is a single breadcrumb: a display label and an optional link.
// An empty Link renders the label as plain text.
type Entry struct {
	// Label is usually a string. Any other value is displayed with fmt.Sprint,
	// so records implementing fmt.Stringer print through String().
	Label any
	Link  string
}

// Text returns the display form of the label.
func (e Entry) Text() string {
	switch v := e.Label.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// Trail is an ordered list of entries. The zero value is an empty trail;
// storage is allocated on first append.
type Trail struct {
	entries []Entry
}

// Append adds an entry to the end of the trail.
func (t *Trail) Append(label any, link string) {
	t.entries = append(t.entries, Entry{Label: label, Link: link})
}

// Entries returns a copy of the entries in append order.
func (t *Trail) Entries() []Entry {
	if len(t.entries) == 0 {
		return nil
	}
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Len returns the number of entries.
func (t *Trail) Len() int {
	return len(t.entries)
}
