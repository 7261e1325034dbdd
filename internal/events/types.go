// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package events

import "time"

type Kind string

const (
	KindPropertyCreated    Kind = "property.created"
	KindPropertyUpdated    Kind = "property.updated"
	KindPropertyDeleted    Kind = "property.deleted"
	KindTenantRemoved      Kind = "property.tenant_removed"
	KindApplicationCreated Kind = "application.created"
	KindApplicationDecided Kind = "application.decided"
	KindTenantBound        Kind = "property.tenant_bound"
	KindRentCreated        Kind = "rent.created"
	KindRentPaid           Kind = "rent.paid"
	KindMaintenanceCreated Kind = "maintenance.created"
	KindMaintenanceUpdated Kind = "maintenance.updated"
)

// ChangeEvent describes a committed mutation. Parties are optional and are
// used to route the event to the users it concerns.
type ChangeEvent struct {
	ID         string    `json:"id"`
	Kind       Kind      `json:"kind"`
	Entity     string    `json:"entity"`
	EntityID   string    `json:"entity_id"`
	Status     string    `json:"status,omitempty"`
	PropertyID string    `json:"property_id,omitempty"`
	TenantID   string    `json:"tenant_id,omitempty"`
	LandlordID string    `json:"landlord_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Concerns reports whether userID is the tenant or the landlord of the event.
func (e ChangeEvent) Concerns(userID string) bool {
	return userID != "" && (e.TenantID == userID || e.LandlordID == userID)
}

// Filter selects the events a subscriber receives, nil selects all.
type Filter func(ChangeEvent) bool

func ForUser(userID string) Filter {
	return func(e ChangeEvent) bool {
		return e.Concerns(userID)
	}
}
