// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/property-service/internal/logging"
	"github.com/canonical/property-service/internal/monitoring"
	"github.com/canonical/property-service/internal/tracing"
	"github.com/canonical/property-service/internal/version"
)

type pinger struct {
	err error
}

func (p pinger) Ping(context.Context) error {
	return p.err
}

type schemaChecker struct {
	err error
}

func (s schemaChecker) CheckSchema(context.Context) error {
	return s.err
}

func newTestRouter(err error) http.Handler {
	return newTestRouterWithSchema(err, nil)
}

func newTestRouterWithSchema(err error, schema SchemaCheckerInterface) http.Handler {
	mux := chi.NewMux()
	NewAPI(pinger{err: err}, schema, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger()).RegisterEndpoints(mux)
	return mux
}

func TestAlive(t *testing.T) {
	rr := httptest.NewRecorder()
	newTestRouter(nil).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/status", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var s Status
	if err := json.NewDecoder(rr.Body).Decode(&s); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if s.Status != okValue {
		t.Errorf("expected %q, got %q", okValue, s.Status)
	}
}

func TestReady(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "database up", expected: http.StatusOK},
		{name: "database down", err: errors.New("connection refused"), expected: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			newTestRouter(tt.err).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ready", nil))

			if rr.Code != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, rr.Code)
			}
		})
	}
}

func TestReadyChecksSchema(t *testing.T) {
	tests := []struct {
		name     string
		schema   SchemaCheckerInterface
		expected int
		status   string
	}{
		{name: "schema current", schema: schemaChecker{}, expected: http.StatusOK, status: okValue},
		{name: "migrations pending", schema: schemaChecker{err: errors.New("migrations are pending")}, expected: http.StatusServiceUnavailable, status: degraded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			newTestRouterWithSchema(nil, tt.schema).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ready", nil))

			if rr.Code != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, rr.Code)
			}

			var s Status
			if err := json.NewDecoder(rr.Body).Decode(&s); err != nil {
				t.Fatalf("failed to decode: %v", err)
			}
			if s.Status != tt.status {
				t.Errorf("expected %q, got %q", tt.status, s.Status)
			}
		})
	}
}

func TestVersion(t *testing.T) {
	rr := httptest.NewRecorder()
	newTestRouter(nil).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/version", nil))

	var b BuildInfo
	if err := json.NewDecoder(rr.Body).Decode(&b); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if b.Version != version.Version {
		t.Errorf("expected version %q, got %q", version.Version, b.Version)
	}
}
