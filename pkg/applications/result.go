// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package applications

import "github.com/canonical/property-service/internal/types"

type Outcome string

const (
	FullySucceeded     Outcome = "fully_succeeded"
	PartiallySucceeded Outcome = "partially_succeeded"
)

// ReviewResult reports what a review durably changed. A partially succeeded
// approval bound the tenant but has no rent obligation in the ledger.
type ReviewResult struct {
	Application        *types.Application    `json:"application"`
	Property           *types.Property       `json:"property,omitempty"`
	RentObligation     *types.RentObligation `json:"rent_obligation,omitempty"`
	Outcome            Outcome               `json:"outcome"`
	MissingLedgerEntry bool                  `json:"missing_ledger_entry"`
}
