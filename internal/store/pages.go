// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/olegiv/ocms-breadcrumbs/internal/model"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("not found")

// Queries runs page queries against a database.
type Queries struct {
	db *sql.DB
}

// New returns Queries bound to db.
func New(db *sql.DB) *Queries {
	return &Queries{db: db}
}

const pageColumns = "id, title, body, status, created_at, updated_at"

func scanPage(row interface{ Scan(...any) error }) (*model.Page, error) {
	var p model.Page
	if err := row.Scan(&p.ID, &p.Title, &p.Body, &p.Status, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

// ListPagesParams selects a window of the page list.
type ListPagesParams struct {
	Limit  int64
	Offset int64
}

// ListPages returns a window of pages, most recently updated first.
func (q *Queries) ListPages(ctx context.Context, arg ListPagesParams) ([]*model.Page, error) {
	rows, err := q.db.QueryContext(ctx,
		"SELECT "+pageColumns+" FROM pages ORDER BY updated_at DESC, id DESC LIMIT ? OFFSET ?",
		arg.Limit, arg.Offset)
	if err != nil {
		return nil, fmt.Errorf("listing pages: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var pages []*model.Page
	for rows.Next() {
		p, err := scanPage(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning page: %w", err)
		}
		pages = append(pages, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating pages: %w", err)
	}
	return pages, nil
}

// CountPages returns the number of pages.
func (q *Queries) CountPages(ctx context.Context) (int64, error) {
	var n int64
	if err := q.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM pages").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting pages: %w", err)
	}
	return n, nil
}

// GetPage returns the page with the given ID, or ErrNotFound.
func (q *Queries) GetPage(ctx context.Context, id int64) (*model.Page, error) {
	p, err := scanPage(q.db.QueryRowContext(ctx,
		"SELECT "+pageColumns+" FROM pages WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting page %d: %w", id, err)
	}
	return p, nil
}

// CreatePageParams holds the fields of a new page.
type CreatePageParams struct {
	Title     string
	Body      string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreatePage inserts a page and returns it with its ID set.
func (q *Queries) CreatePage(ctx context.Context, arg CreatePageParams) (*model.Page, error) {
	res, err := q.db.ExecContext(ctx,
		"INSERT INTO pages (title, body, status, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
		arg.Title, arg.Body, arg.Status, arg.CreatedAt, arg.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("creating page: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading page id: %w", err)
	}
	return &model.Page{
		ID:        id,
		Title:     arg.Title,
		Body:      arg.Body,
		Status:    arg.Status,
		CreatedAt: arg.CreatedAt,
		UpdatedAt: arg.UpdatedAt,
	}, nil
}

// UpdatePageParams holds the editable fields of a page.
type UpdatePageParams struct {
	ID        int64
	Title     string
	Body      string
	Status    string
	UpdatedAt time.Time
}

// UpdatePage updates a page, returning ErrNotFound if it does not exist.
func (q *Queries) UpdatePage(ctx context.Context, arg UpdatePageParams) error {
	res, err := q.db.ExecContext(ctx,
		"UPDATE pages SET title = ?, body = ?, status = ?, updated_at = ? WHERE id = ?",
		arg.Title, arg.Body, arg.Status, arg.UpdatedAt, arg.ID)
	if err != nil {
		return fmt.Errorf("updating page %d: %w", arg.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating page %d: %w", arg.ID, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
