// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package config loads application configuration from the environment.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/olegiv/ocms-breadcrumbs/internal/breadcrumb"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	DBPath     string `env:"CRUMBS_DB_PATH" envDefault:"./data/crumbs.db"`
	ServerHost string `env:"CRUMBS_SERVER_HOST" envDefault:"localhost"`
	ServerPort int    `env:"CRUMBS_SERVER_PORT" envDefault:"8080"`
	Env        string `env:"CRUMBS_ENV" envDefault:"development"`
	LogLevel   string `env:"CRUMBS_LOG_LEVEL" envDefault:"info"`

	// Breadcrumb rendering defaults, used when a template passes no options
	Separator string `env:"CRUMBS_SEPARATOR" envDefault:"›"`
	Style     string `env:"CRUMBS_STYLE" envDefault:"links"` // links, list or bootstrap
	ListClass string `env:"CRUMBS_LIST_CLASS"`
	ItemClass string `env:"CRUMBS_ITEM_CLASS"`

	DoSeed bool `env:"CRUMBS_DO_SEED" envDefault:"false"` // Create demo pages on first start
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// SlogLevel maps LogLevel to a slog.Level, defaulting to Info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// BreadcrumbOptions returns the configured rendering defaults.
func (c Config) BreadcrumbOptions() (breadcrumb.Options, error) {
	style, err := breadcrumb.ParseStyle(c.Style)
	if err != nil {
		return breadcrumb.Options{}, err
	}
	return breadcrumb.Options{
		Separator: c.Separator,
		Type:      style,
		ListClass: c.ListClass,
		ItemClass: c.ItemClass,
	}, nil
}

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if _, err := cfg.BreadcrumbOptions(); err != nil {
		return nil, fmt.Errorf("CRUMBS_STYLE: %w", err)
	}

	if cfg.ServerPort <= 0 || cfg.ServerPort > 65535 {
		return nil, fmt.Errorf("CRUMBS_SERVER_PORT must be between 1 and 65535, got %d", cfg.ServerPort)
	}

	return cfg, nil
}
