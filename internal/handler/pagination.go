// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"strconv"
)

// PagesPerScreen is the number of pages shown per list screen.
const PagesPerScreen = 10

// Pagination holds pagination data for list templates.
type Pagination struct {
	CurrentPage int
	TotalPages  int
	TotalItems  int64
	PerPage     int
	HasPrev     bool
	HasNext     bool
	PrevURL     string
	NextURL     string
	Links       []PaginationLink
}

// PaginationLink is a single numbered link, or an ellipsis between them.
type PaginationLink struct {
	Number     int
	URL        string
	IsCurrent  bool
	IsEllipsis bool
}

// ParsePageParam returns the ?page= query value, or 1 when it is missing
// or not a positive number.
func ParsePageParam(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// CalculateTotalPages returns the number of screens needed for totalItems.
// There is always at least one.
func CalculateTotalPages(totalItems int64, perPage int) int {
	if perPage <= 0 || totalItems <= 0 {
		return 1
	}
	return int((totalItems + int64(perPage) - 1) / int64(perPage))
}

// ClampPage keeps page within [1, totalPages].
func ClampPage(page, totalPages int) int {
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}
	return page
}

// BuildPagination creates pagination data for the list at baseURL.
// The first screen links to baseURL itself so it stays the canonical URL.
func BuildPagination(currentPage int, totalItems int64, perPage int, baseURL string) Pagination {
	totalPages := CalculateTotalPages(totalItems, perPage)
	currentPage = ClampPage(currentPage, totalPages)

	pageURL := func(n int) string {
		if n <= 1 {
			return baseURL
		}
		return baseURL + "?page=" + strconv.Itoa(n)
	}

	p := Pagination{
		CurrentPage: currentPage,
		TotalPages:  totalPages,
		TotalItems:  totalItems,
		PerPage:     perPage,
		HasPrev:     currentPage > 1,
		HasNext:     currentPage < totalPages,
	}
	if p.HasPrev {
		p.PrevURL = pageURL(currentPage - 1)
	}
	if p.HasNext {
		p.NextURL = pageURL(currentPage + 1)
	}

	// At most five numbered links around the current screen.
	start, end := currentPage-2, currentPage+2
	if start < 1 {
		start, end = 1, 5
	}
	if end > totalPages {
		end = totalPages
		start = max(end-4, 1)
	}

	if start > 1 {
		p.Links = append(p.Links, PaginationLink{Number: 1, URL: pageURL(1)})
		if start > 2 {
			p.Links = append(p.Links, PaginationLink{IsEllipsis: true})
		}
	}
	for i := start; i <= end; i++ {
		p.Links = append(p.Links, PaginationLink{Number: i, URL: pageURL(i), IsCurrent: i == currentPage})
	}
	if end < totalPages {
		if end < totalPages-1 {
			p.Links = append(p.Links, PaginationLink{IsEllipsis: true})
		}
		p.Links = append(p.Links, PaginationLink{Number: totalPages, URL: pageURL(totalPages)})
	}

	return p
}

// Offset returns the number of items before the current screen.
func (p Pagination) Offset() int {
	return (p.CurrentPage - 1) * p.PerPage
}

// ShouldShow reports whether there is more than one screen.
func (p Pagination) ShouldShow() bool {
	return p.TotalPages > 1
}
