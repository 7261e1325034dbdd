// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package kratos

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/canonical/property-service/internal/logging"
	"github.com/canonical/property-service/internal/monitoring"
	"github.com/canonical/property-service/internal/tracing"
	"github.com/canonical/property-service/internal/types"
)

const identityJSON = `{
	"id": "landlord-1",
	"schema_id": "default",
	"schema_url": "http://kratos/schemas/default",
	"traits": {
		"name": {"first": "Ada", "last": "Lovelace"},
		"email": "ada@example.com",
		"role": "landlord"
	}
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(srv.URL, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())
}

func TestGetProfile(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/admin/identities/landlord-1" {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error": {"code": 404, "message": "not found"}}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(identityJSON))
	})

	p, err := c.GetProfile(context.Background(), "landlord-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := types.Profile{
		ID:    "landlord-1",
		Name:  "Ada Lovelace",
		Email: "ada@example.com",
		Role:  types.RoleLandlord,
	}
	if *p != expected {
		t.Errorf("expected %+v, got %+v", expected, *p)
	}

	if _, err := c.GetProfile(context.Background(), "ghost"); !errors.Is(err, ErrProfileNotFound) {
		t.Errorf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestGetProfiles(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/admin/identities" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("[" + identityJSON + "]"))
	})

	profiles, err := c.GetProfiles(context.Background(), []string{"landlord-1", "ghost"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(profiles) != 1 || profiles["landlord-1"] == nil {
		t.Errorf("unexpected profiles %v", profiles)
	}
}

func TestTraitsPlainName(t *testing.T) {
	tr := traits{Name: []byte(`"Grace Hopper"`)}
	if got := tr.name(); got != "Grace Hopper" {
		t.Errorf("expected Grace Hopper, got %q", got)
	}

	tr = traits{Name: []byte(`{"first": " Alan "}`)}
	if got := tr.name(); got != "Alan" {
		t.Errorf("expected Alan, got %q", got)
	}
}

func TestProfileFromTraits(t *testing.T) {
	profile, err := ProfileFromTraits("tenant-1", []byte(`{"email": "ada@example.com", "name": {"first": "Ada", "last": "Lovelace"}, "role": "tenant"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := types.Profile{ID: "tenant-1", Name: "Ada Lovelace", Email: "ada@example.com", Role: types.RoleTenant}
	if *profile != expected {
		t.Errorf("expected %+v, got %+v", expected, *profile)
	}

	if _, err := ProfileFromTraits("tenant-1", nil); err == nil {
		t.Error("expected error for missing traits")
	}
}
