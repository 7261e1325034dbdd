// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package rent

import (
	"context"
	"time"

	"github.com/canonical/property-service/internal/types"
)

type ServiceInterface interface {
	ListForTenant(ctx context.Context) ([]*types.RentStatement, error)
	Pay(ctx context.Context, obligationID, method string) (*types.RentObligation, error)
}

// StorageInterface is the subset of the rent ledger used by the service.
type StorageInterface interface {
	GetRentObligationForUpdate(ctx context.Context, id string) (*types.RentObligation, error)
	ListRentObligations(ctx context.Context, filter types.RentFilter) ([]*types.RentStatement, error)
	MarkRentObligationPaid(ctx context.Context, id, method, transactionID string, at time.Time) error
}

type TxRunnerInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}

type ProfileReaderInterface interface {
	GetProfiles(ctx context.Context, ids []string) (map[string]*types.Profile, error)
}
