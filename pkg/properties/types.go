// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package properties

import (
	"time"

	"github.com/canonical/property-service/internal/types"
)

type VerificationStatus string

const (
	Verified VerificationStatus = "verified"
	NotFound VerificationStatus = "not_found"
)

const noDescription = "No description available"

// Verification is the public view of a property looked up by display id.
type Verification struct {
	DisplayID   string             `json:"display_id"`
	Status      VerificationStatus `json:"status"`
	Title       string             `json:"title"`
	Address     string             `json:"address"`
	Description string             `json:"description"`
	Rent        float64            `json:"rent"`
	Landlord    types.Contact      `json:"landlord"`
	LastUpdated *time.Time         `json:"last_updated,omitempty"`
}

func notFound(displayID string) *Verification {
	return &Verification{
		DisplayID: displayID,
		Status:    NotFound,
		Title:     "Property not found",
		Address:   "Not found",
		Landlord:  types.UnavailableContact(),
	}
}

// Summary aggregates a landlord's portfolio.
type Summary struct {
	Total         int     `json:"total"`
	Available     int     `json:"available"`
	Occupied      int     `json:"occupied"`
	Maintenance   int     `json:"maintenance"`
	MonthlyIncome float64 `json:"monthly_income"`
}
