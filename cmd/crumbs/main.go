// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/olegiv/ocms-breadcrumbs/internal/breadcrumb"
	"github.com/olegiv/ocms-breadcrumbs/internal/config"
	"github.com/olegiv/ocms-breadcrumbs/internal/handler"
	"github.com/olegiv/ocms-breadcrumbs/internal/middleware"
	"github.com/olegiv/ocms-breadcrumbs/internal/render"
	"github.com/olegiv/ocms-breadcrumbs/internal/store"
	"github.com/olegiv/ocms-breadcrumbs/internal/version"
	"github.com/olegiv/ocms-breadcrumbs/web"
)

// Version information - injected at build time via ldflags
var (
	appVersion   string
	appGitCommit string
	appBuildTime string
)

func main() {
	// Parse CLI flags
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	showHelp := flag.Bool("help", false, "Show help information")
	flag.BoolVar(showHelp, "h", false, "Show help information (shorthand)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "crumbs - page manager with breadcrumb navigation\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  CRUMBS_DB_PATH         SQLite database path (default: ./data/crumbs.db)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  CRUMBS_SERVER_HOST     Listen host (default: localhost)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  CRUMBS_SERVER_PORT     Listen port (default: 8080)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  CRUMBS_ENV             Environment: development|production (default: development)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  CRUMBS_LOG_LEVEL       debug|info|warn|error (default: info)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  CRUMBS_SEPARATOR       Breadcrumb separator for the links style (default: ›)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  CRUMBS_STYLE           Default breadcrumb style: links|list|bootstrap (default: links)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  CRUMBS_LIST_CLASS      Class of the <ul> in the list style\n")
		_, _ = fmt.Fprintf(os.Stderr, "  CRUMBS_ITEM_CLASS      Class of each <li> in the list style\n")
		_, _ = fmt.Fprintf(os.Stderr, "  CRUMBS_DO_SEED         Create demo pages on first start (default: false)\n")
	}

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if *showVersion {
		info := version.Info{Version: appVersion, GitCommit: appGitCommit, BuildTime: appBuildTime}
		_, _ = fmt.Printf("crumbs %s\n", info)
		os.Exit(0)
	}

	if err := run(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env file if present (development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)

	// Ensure data directory exists
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	slog.Info("initializing database", "path", cfg.DBPath)
	db, err := store.NewDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer func(db *sql.DB) {
		if err := db.Close(); err != nil {
			slog.Error("error closing database connection", "error", err)
		}
	}(db)

	slog.Info("running database migrations")
	if err := store.Migrate(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	if err := store.Seed(context.Background(), db, cfg.DoSeed); err != nil {
		return fmt.Errorf("seeding database: %w", err)
	}

	crumbOpts, err := cfg.BreadcrumbOptions()
	if err != nil {
		return fmt.Errorf("breadcrumb options: %w", err)
	}

	templatesFS, err := fs.Sub(web.Templates, "templates")
	if err != nil {
		return fmt.Errorf("opening templates: %w", err)
	}

	renderer, err := render.New(render.Config{
		TemplatesFS: templatesFS,
		Breadcrumbs: breadcrumb.NewRenderer(crumbOpts),
	})
	if err != nil {
		return fmt.Errorf("creating renderer: %w", err)
	}

	pagesHandler := handler.NewPagesHandler(db, renderer)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(breadcrumb.Middleware(handler.Accessors()))
	r.Use(middleware.RequestLogger(logger))
	r.Use(chimw.Recoverer)
	r.Use(middleware.StripTrailingSlash)

	r.Get(handler.RouteRoot, func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, handler.RoutePages, http.StatusFound)
	})
	r.Mount(handler.RoutePages, pagesHandler.Routes())

	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env,
			"breadcrumb_style", crumbOpts.Type)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
