// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package properties

import (
	"context"
	"time"

	"github.com/canonical/property-service/internal/types"
)

type ServiceInterface interface {
	Create(ctx context.Context, p *types.Property) (*types.Property, error)
	List(ctx context.Context, page, size int64) ([]*types.Property, error)
	Update(ctx context.Context, p *types.Property, paths []string) (*types.Property, error)
	Delete(ctx context.Context, id string) error
	RemoveTenant(ctx context.Context, id string) (*types.Property, error)
	Verify(ctx context.Context, displayID string) (*Verification, error)
	Summary(ctx context.Context) (*Summary, error)
}

type StorageInterface interface {
	CreateProperty(ctx context.Context, p *types.Property) (*types.Property, error)
	GetPropertyForUpdate(ctx context.Context, id string) (*types.Property, error)
	GetPropertyByDisplayID(ctx context.Context, displayID string) (*types.Property, error)
	ListProperties(ctx context.Context, filter types.PropertyFilter) ([]*types.Property, error)
	UpdateProperty(ctx context.Context, p *types.Property, paths []string) error
	ClearTenant(ctx context.Context, propertyID string, at time.Time) error
	DeleteProperty(ctx context.Context, id string) error
}

type TxRunnerInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}

type AuthzInterface interface {
	CanManage(ctx context.Context, userID, propertyID string) (bool, error)
	AssignLandlord(ctx context.Context, propertyID, userID string) error
	RemoveTenant(ctx context.Context, propertyID, userID string) error
	DeleteProperty(ctx context.Context, propertyID string) error
}

type ProfileReaderInterface interface {
	GetProfile(ctx context.Context, id string) (*types.Profile, error)
}
