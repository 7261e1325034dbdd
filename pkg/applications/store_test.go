// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package applications

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/canonical/property-service/internal/storage"
	"github.com/canonical/property-service/internal/types"
)

// memoryStore keeps rows in maps and emulates a transaction by serializing
// WithTx callers and restoring a snapshot when the callback fails.
type memoryStore struct {
	txMu sync.Mutex
	mu   sync.Mutex

	applications map[string]types.Application
	properties   map[string]types.Property
	obligations  []types.RentObligation

	bindErr error
	rentErr error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		applications: map[string]types.Application{},
		properties:   map[string]types.Property{},
	}
}

func (m *memoryStore) WithTx(ctx context.Context, fn func(context.Context) error) error {
	m.txMu.Lock()
	defer m.txMu.Unlock()

	m.mu.Lock()
	applications := maps.Clone(m.applications)
	properties := maps.Clone(m.properties)
	m.mu.Unlock()

	if err := fn(ctx); err != nil {
		m.mu.Lock()
		m.applications = applications
		m.properties = properties
		m.mu.Unlock()
		return err
	}

	return nil
}

func (m *memoryStore) CreateApplication(_ context.Context, a *types.Application) (*types.Application, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.applications {
		if existing.TenantID == a.TenantID && existing.PropertyID == a.PropertyID && existing.Status == types.ApplicationPending {
			return nil, fmt.Errorf("failed to create application: %w", storage.ErrDuplicateKey)
		}
	}

	created := *a
	created.ID = fmt.Sprintf("app-%d", len(m.applications)+1)
	created.Status = types.ApplicationPending
	m.applications[created.ID] = created

	return &created, nil
}

func (m *memoryStore) GetApplicationForUpdate(_ context.Context, id string) (*types.Application, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.applications[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &a, nil
}

func (m *memoryStore) ListApplications(_ context.Context, filter types.ApplicationFilter) ([]*types.Application, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []*types.Application{}
	for _, id := range slices.Sorted(maps.Keys(m.applications)) {
		a := m.applications[id]
		if filter.TenantID != "" && a.TenantID != filter.TenantID {
			continue
		}
		if filter.LandlordID != "" && m.properties[a.PropertyID].LandlordID != filter.LandlordID {
			continue
		}
		out = append(out, &a)
	}
	return out, nil
}

func (m *memoryStore) SetApplicationStatus(_ context.Context, id string, status types.ApplicationStatus, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.applications[id]
	if !ok {
		return storage.ErrNotFound
	}
	a.Status = status
	a.UpdatedAt = at
	m.applications[id] = a
	return nil
}

func (m *memoryStore) GetPropertyByID(_ context.Context, id string) (*types.Property, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.properties[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &p, nil
}

func (m *memoryStore) GetPropertyForUpdate(ctx context.Context, id string) (*types.Property, error) {
	return m.GetPropertyByID(ctx, id)
}

func (m *memoryStore) GetPropertyRent(ctx context.Context, id string) (float64, error) {
	p, err := m.GetPropertyByID(ctx, id)
	if err != nil {
		return 0, err
	}
	return p.Rent, nil
}

func (m *memoryStore) BindTenant(_ context.Context, propertyID, tenantID string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.bindErr != nil {
		return m.bindErr
	}

	p, ok := m.properties[propertyID]
	if !ok {
		return storage.ErrNotFound
	}
	p.TenantID = &tenantID
	p.Status = types.PropertyOccupied
	p.UpdatedAt = at
	m.properties[propertyID] = p
	return nil
}

func (m *memoryStore) CreateRentObligation(_ context.Context, r *types.RentObligation) (*types.RentObligation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.rentErr != nil {
		return nil, m.rentErr
	}

	created := *r
	created.ID = fmt.Sprintf("rent-%d", len(m.obligations)+1)
	m.obligations = append(m.obligations, created)
	return &created, nil
}

func (m *memoryStore) property(id string) types.Property {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.properties[id]
}

func (m *memoryStore) application(id string) types.Application {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.applications[id]
}

func (m *memoryStore) ledger() []types.RentObligation {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.obligations)
}

var errStore = errors.New("store unavailable")
