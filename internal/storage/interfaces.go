// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	"github.com/canonical/property-service/internal/types"
)

type PropertyStoreInterface interface {
	CreateProperty(ctx context.Context, p *types.Property) (*types.Property, error)
	GetPropertyByID(ctx context.Context, id string) (*types.Property, error)
	GetPropertyForUpdate(ctx context.Context, id string) (*types.Property, error)
	GetPropertyByDisplayID(ctx context.Context, displayID string) (*types.Property, error)
	GetPropertyRent(ctx context.Context, id string) (float64, error)
	ListProperties(ctx context.Context, filter types.PropertyFilter) ([]*types.Property, error)
	UpdateProperty(ctx context.Context, p *types.Property, paths []string) error
	BindTenant(ctx context.Context, propertyID, tenantID string, at time.Time) error
	ClearTenant(ctx context.Context, propertyID string, at time.Time) error
	DeleteProperty(ctx context.Context, id string) error
}

type ApplicationStoreInterface interface {
	CreateApplication(ctx context.Context, a *types.Application) (*types.Application, error)
	GetApplicationByID(ctx context.Context, id string) (*types.Application, error)
	GetApplicationForUpdate(ctx context.Context, id string) (*types.Application, error)
	ListApplications(ctx context.Context, filter types.ApplicationFilter) ([]*types.Application, error)
	SetApplicationStatus(ctx context.Context, id string, status types.ApplicationStatus, at time.Time) error
}

type RentStoreInterface interface {
	CreateRentObligation(ctx context.Context, r *types.RentObligation) (*types.RentObligation, error)
	GetRentObligationForUpdate(ctx context.Context, id string) (*types.RentObligation, error)
	ListRentObligations(ctx context.Context, filter types.RentFilter) ([]*types.RentStatement, error)
	MarkRentObligationPaid(ctx context.Context, id, method, transactionID string, at time.Time) error
}

type MaintenanceStoreInterface interface {
	CreateMaintenanceRequest(ctx context.Context, m *types.MaintenanceRequest) (*types.MaintenanceRequest, error)
	GetMaintenanceRequestByID(ctx context.Context, id string) (*types.MaintenanceRequest, error)
	ListMaintenanceRequests(ctx context.Context, filter types.MaintenanceFilter) ([]*types.MaintenanceRequest, error)
	SetMaintenanceStatus(ctx context.Context, id string, status types.MaintenanceStatus, at time.Time) error
}

type StorageInterface interface {
	PropertyStoreInterface
	ApplicationStoreInterface
	RentStoreInterface
	MaintenanceStoreInterface
}
