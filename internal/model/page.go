// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines the records served by the application.
package model

import (
	"strconv"
	"time"
)

// Page statuses
const (
	PageStatusDraft     = "draft"
	PageStatusPublished = "published"
)

// Page represents a content page.
type Page struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsNew returns true if the page has not been saved yet.
func (p *Page) IsNew() bool {
	return p == nil || p.ID == 0
}

// String returns the page title; breadcrumbs display pages through it.
func (p *Page) String() string {
	if p == nil {
		return ""
	}
	return p.Title
}

// IsPublished returns true if the page is published.
func (p *Page) IsPublished() bool {
	return p.Status == PageStatusPublished
}

// IsDraft returns true if the page is a draft.
func (p *Page) IsDraft() bool {
	return p.Status == PageStatusDraft
}

// Path returns the URL of the page.
func (p *Page) Path() string {
	return "/pages/" + strconv.FormatInt(p.ID, 10)
}

// EditPath returns the URL of the page edit form.
func (p *Page) EditPath() string {
	return p.Path() + "/edit"
}

// ValidStatuses lists the accepted page statuses.
var ValidStatuses = []string{PageStatusDraft, PageStatusPublished}

// IsValidStatus returns true if s is a known page status.
func IsValidStatus(s string) bool {
	for _, v := range ValidStatuses {
		if v == s {
			return true
		}
	}
	return false
}
