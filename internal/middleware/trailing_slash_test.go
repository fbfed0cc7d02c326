// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestStripTrailingSlash(t *testing.T) {
	tests := []struct {
		name         string
		method       string
		target       string
		wantStatus   int
		wantLocation string
	}{
		{"root untouched", http.MethodGet, "/", http.StatusOK, ""},
		{"no slash", http.MethodGet, "/pages", http.StatusOK, ""},
		{"trailing slash", http.MethodGet, "/pages/", http.StatusMovedPermanently, "/pages"},
		{"keeps query", http.MethodGet, "/pages/?sort=title", http.StatusMovedPermanently, "/pages?sort=title"},
		{"multiple slashes", http.MethodHead, "/pages//", http.StatusMovedPermanently, "/pages"},
		{"protocol relative", http.MethodGet, "//evil.com/", http.StatusMovedPermanently, "/evil.com"},
		{"post passes through", http.MethodPost, "/pages/", http.StatusOK, ""},
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, nil)
			rec := httptest.NewRecorder()

			StripTrailingSlash(next).ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if got := rec.Header().Get("Location"); got != tt.wantLocation {
				t.Errorf("Location = %q, want %q", got, tt.wantLocation)
			}
		})
	}
}
