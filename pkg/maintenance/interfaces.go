// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package maintenance

import (
	"context"
	"time"

	"github.com/canonical/property-service/internal/types"
)

type ServiceInterface interface {
	Submit(ctx context.Context, request *types.MaintenanceRequest) (*types.MaintenanceRequest, error)
	List(ctx context.Context, propertyID string) ([]*types.MaintenanceRequest, error)
	UpdateStatus(ctx context.Context, id string, status types.MaintenanceStatus) (*types.MaintenanceRequest, error)
}

type StorageInterface interface {
	GetPropertyByID(ctx context.Context, id string) (*types.Property, error)
	CreateMaintenanceRequest(ctx context.Context, m *types.MaintenanceRequest) (*types.MaintenanceRequest, error)
	GetMaintenanceRequestByID(ctx context.Context, id string) (*types.MaintenanceRequest, error)
	ListMaintenanceRequests(ctx context.Context, filter types.MaintenanceFilter) ([]*types.MaintenanceRequest, error)
	SetMaintenanceStatus(ctx context.Context, id string, status types.MaintenanceStatus, at time.Time) error
}

type AuthzInterface interface {
	CanManage(ctx context.Context, userID, propertyID string) (bool, error)
}
