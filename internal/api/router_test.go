// WhenTo - Collaborative event calendar for self-hosted environments
// Copyright (C) 2025 WhenTo Contributors
// SPDX-License-Identifier: BSL-1.1

package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/eventsched/eventsched/internal/api"
	"github.com/eventsched/eventsched/internal/config"
)

func TestNewRouter_HealthRoute(t *testing.T) {
	cfg := config.Load()
	router := api.NewRouter(cfg, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestNewRouter_UnknownRouteIs404(t *testing.T) {
	cfg := config.Load()
	router := api.NewRouter(cfg, nil)

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
