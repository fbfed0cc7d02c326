// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/olegiv/ocms-breadcrumbs/internal/model"
)

// seedPages are created on first start when seeding is enabled.
var seedPages = []CreatePageParams{
	{
		Title:  "Welcome",
		Body:   "# Welcome\n\nEvery page shows where it sits in the site above its title.",
		Status: model.PageStatusPublished,
	},
	{
		Title:  "About",
		Body:   "Breadcrumbs are built while the request is handled and rendered by the layout.",
		Status: model.PageStatusDraft,
	},
}

// Seed creates demo pages if the database has none.
func Seed(ctx context.Context, db *sql.DB, doSeed bool) error {
	if !doSeed {
		slog.Info("seeding disabled, skipping")
		return nil
	}

	queries := New(db)

	count, err := queries.CountPages(ctx)
	if err != nil {
		return fmt.Errorf("checking for pages: %w", err)
	}
	if count > 0 {
		slog.Info("pages already exist, skipping seed", "count", count)
		return nil
	}

	now := time.Now()
	for _, params := range seedPages {
		params.CreatedAt = now
		params.UpdatedAt = now
		page, err := queries.CreatePage(ctx, params)
		if err != nil {
			return fmt.Errorf("seeding page %q: %w", params.Title, err)
		}
		slog.Info("created seed page", "id", page.ID, "title", page.Title)
	}

	return nil
}
