// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"database/sql"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/ocms-breadcrumbs/internal/breadcrumb"
	"github.com/olegiv/ocms-breadcrumbs/internal/model"
	"github.com/olegiv/ocms-breadcrumbs/internal/render"
	"github.com/olegiv/ocms-breadcrumbs/internal/store"
	"github.com/olegiv/ocms-breadcrumbs/web"
)

// testDB creates a migrated SQLite database in a temporary directory.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := store.NewDB(filepath.Join(t.TempDir(), "handler-test.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := store.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

// testRouter wires the pages routes the way cmd/crumbs does.
func testRouter(t *testing.T, db *sql.DB) http.Handler {
	t.Helper()

	renderer, err := render.New(render.Config{
		TemplatesFS: mustSub(t, web.Templates, "templates"),
		Breadcrumbs: breadcrumb.NewRenderer(breadcrumb.Options{}),
	})
	if err != nil {
		t.Fatalf("failed to create renderer: %v", err)
	}

	r := chi.NewRouter()
	r.Use(breadcrumb.Middleware(Accessors()))
	r.Mount(RoutePages, NewPagesHandler(db, renderer).Routes())
	return r
}

// createTestPage inserts a page and returns it.
func createTestPage(t *testing.T, db *sql.DB, title, body string) *model.Page {
	t.Helper()

	now := time.Now()
	page, err := store.New(db).CreatePage(context.Background(), store.CreatePageParams{
		Title:     title,
		Body:      body,
		Status:    model.PageStatusPublished,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("failed to create page: %v", err)
	}
	return page
}

// doGet performs a GET against h.
func doGet(h http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

// doPostForm performs a form POST against h.
func doPostForm(h http.Handler, target string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// mustSub returns the subtree of fsys rooted at dir.
func mustSub(t *testing.T, fsys fs.FS, dir string) fs.FS {
	t.Helper()

	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		t.Fatalf("failed to open %s: %v", dir, err)
	}
	return sub
}
