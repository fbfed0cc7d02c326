// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olegiv/ocms-breadcrumbs/internal/model"
)

// testDB creates a temporary migrated test database.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	f, err := os.CreateTemp(t.TempDir(), "crumbs-test-*.db")
	require.NoError(t, err)
	dbPath := f.Name()
	require.NoError(t, f.Close())

	db, err := NewDB(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, Migrate(db))
	return db
}

func TestDefaultDBConfig(t *testing.T) {
	cfg := DefaultDBConfig()

	assert.Equal(t, 10, cfg.MaxOpenConns)
	assert.Equal(t, 5, cfg.MaxIdleConns)
	assert.Equal(t, 30*time.Minute, cfg.ConnMaxLifetime)
	assert.Equal(t, 5*time.Minute, cfg.ConnMaxIdleTime)
}

func TestNewDBUsesWAL(t *testing.T) {
	db := testDB(t)

	// journal_mode is stored in the database file, so any pooled connection sees it.
	var mode string
	require.NoError(t, db.QueryRow("PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)
}

func TestCreateAndGetPage(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	q := New(db)

	now := time.Now().UTC().Truncate(time.Second)
	page, err := q.CreatePage(ctx, CreatePageParams{
		Title:     "About",
		Body:      "Hello",
		Status:    model.PageStatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	})
	require.NoError(t, err)
	assert.NotZero(t, page.ID)
	assert.False(t, page.IsNew())

	got, err := q.GetPage(ctx, page.ID)
	require.NoError(t, err)
	assert.Equal(t, "About", got.Title)
	assert.Equal(t, "Hello", got.Body)
	assert.Equal(t, model.PageStatusDraft, got.Status)
	assert.True(t, now.Equal(got.CreatedAt.UTC()))
}

func TestGetPageNotFound(t *testing.T) {
	q := New(testDB(t))

	_, err := q.GetPage(context.Background(), 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdatePage(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	q := New(db)

	now := time.Now()
	page, err := q.CreatePage(ctx, CreatePageParams{Title: "Old", Status: model.PageStatusDraft, CreatedAt: now, UpdatedAt: now})
	require.NoError(t, err)

	err = q.UpdatePage(ctx, UpdatePageParams{
		ID:        page.ID,
		Title:     "New",
		Body:      "Body",
		Status:    model.PageStatusPublished,
		UpdatedAt: now.Add(time.Minute),
	})
	require.NoError(t, err)

	got, err := q.GetPage(ctx, page.ID)
	require.NoError(t, err)
	assert.Equal(t, "New", got.Title)
	assert.True(t, got.IsPublished())

	err = q.UpdatePage(ctx, UpdatePageParams{ID: 999, Title: "x", Status: model.PageStatusDraft, UpdatedAt: now})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListPages(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	q := New(db)

	pages, err := q.ListPages(ctx, ListPagesParams{Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, pages)

	base := time.Now()
	for i, title := range []string{"First", "Second", "Third"} {
		ts := base.Add(time.Duration(i) * time.Minute)
		_, err := q.CreatePage(ctx, CreatePageParams{Title: title, Status: model.PageStatusDraft, CreatedAt: ts, UpdatedAt: ts})
		require.NoError(t, err)
	}

	pages, err = q.ListPages(ctx, ListPagesParams{Limit: 10})
	require.NoError(t, err)
	require.Len(t, pages, 3)
	assert.Equal(t, "Third", pages[0].Title)
	assert.Equal(t, "First", pages[2].Title)

	pages, err = q.ListPages(ctx, ListPagesParams{Limit: 2, Offset: 2})
	require.NoError(t, err)
	require.Len(t, pages, 1)
	assert.Equal(t, "First", pages[0].Title)

	n, err := q.CountPages(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)
}

func TestSeed(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	q := New(db)

	require.NoError(t, Seed(ctx, db, false))
	n, err := q.CountPages(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	require.NoError(t, Seed(ctx, db, true))
	require.NoError(t, Seed(ctx, db, true))
	n, err = q.CountPages(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, len(seedPages), n)
}
