// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

// Route pattern constants for chi router registration.
const (
	// RouteRoot is the root path.
	RouteRoot = "/"
	// RoutePages is the pages route.
	RoutePages = "/pages"

	// RouteSuffixNew is the suffix for "new" routes.
	RouteSuffixNew = "/new"
	// RouteSuffixEdit is the suffix for "edit" routes.
	RouteSuffixEdit = "/edit"

	// RouteParamID is the ID parameter pattern.
	RouteParamID = "/{id}"
)

// Names of the link accessors used in breadcrumbs.
const (
	AccessorRoot  = "root_path"
	AccessorPages = "pages_path"
	AccessorPage  = "page_path"
)
