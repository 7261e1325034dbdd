// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package applications

import (
	"context"
	"time"

	"github.com/canonical/property-service/internal/types"
)

type ServiceInterface interface {
	Submit(ctx context.Context, propertyID, message string) (*types.Application, error)
	ListForTenant(ctx context.Context) ([]*types.Application, error)
	ListForLandlord(ctx context.Context, propertyID string) ([]*types.Application, error)
	Review(ctx context.Context, applicationID string, decision types.ApplicationStatus) (*ReviewResult, error)
}

// StorageInterface is the subset of the internal/storage interface touched by
// the application lifecycle, rent seeding included.
type StorageInterface interface {
	CreateApplication(ctx context.Context, a *types.Application) (*types.Application, error)
	GetApplicationForUpdate(ctx context.Context, id string) (*types.Application, error)
	ListApplications(ctx context.Context, filter types.ApplicationFilter) ([]*types.Application, error)
	SetApplicationStatus(ctx context.Context, id string, status types.ApplicationStatus, at time.Time) error

	GetPropertyByID(ctx context.Context, id string) (*types.Property, error)
	GetPropertyForUpdate(ctx context.Context, id string) (*types.Property, error)
	GetPropertyRent(ctx context.Context, id string) (float64, error)
	BindTenant(ctx context.Context, propertyID, tenantID string, at time.Time) error

	CreateRentObligation(ctx context.Context, r *types.RentObligation) (*types.RentObligation, error)
}

type TxRunnerInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}

type AuthzInterface interface {
	CanReview(ctx context.Context, userID, propertyID string) (bool, error)
	AssignTenant(ctx context.Context, propertyID, userID string) error
}
