// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

type PropertyStatus string

const (
	PropertyAvailable   PropertyStatus = "available"
	PropertyOccupied    PropertyStatus = "occupied"
	PropertyMaintenance PropertyStatus = "maintenance"
)

func (s PropertyStatus) Valid() bool {
	switch s {
	case PropertyAvailable, PropertyOccupied, PropertyMaintenance:
		return true
	}
	return false
}

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)

// Terminal reports whether no further review is allowed.
func (s ApplicationStatus) Terminal() bool {
	return s == ApplicationApproved || s == ApplicationRejected
}

type RentStatus string

const (
	RentPending RentStatus = "pending"
	RentPaid    RentStatus = "paid"
)

type MaintenanceStatus string

const (
	MaintenancePending    MaintenanceStatus = "pending"
	MaintenanceInProgress MaintenanceStatus = "in_progress"
	MaintenanceCompleted  MaintenanceStatus = "completed"
)

func (s MaintenanceStatus) Valid() bool {
	switch s {
	case MaintenancePending, MaintenanceInProgress, MaintenanceCompleted:
		return true
	}
	return false
}

type Role string

const (
	RoleLandlord Role = "landlord"
	RoleTenant   Role = "tenant"
)

func (r Role) Valid() bool {
	return r == RoleLandlord || r == RoleTenant
}

type Property struct {
	ID          string         `db:"id" json:"id"`
	DisplayID   string         `db:"display_id" json:"display_id"`
	Title       string         `db:"title" json:"title"`
	Address     string         `db:"address" json:"address"`
	Description string         `db:"description" json:"description"`
	Rent        float64        `db:"rent" json:"rent"`
	Status      PropertyStatus `db:"status" json:"status"`
	LandlordID  string         `db:"landlord_id" json:"landlord_id"`
	TenantID    *string        `db:"tenant_id" json:"tenant_id"`
	CreatedAt   time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at" json:"updated_at"`
}

// Occupied reports whether the property is bound to a tenant.
func (p *Property) Occupied() bool {
	return p.TenantID != nil && *p.TenantID != ""
}

type Application struct {
	ID         string            `db:"id" json:"id"`
	TenantID   string            `db:"tenant_id" json:"tenant_id"`
	PropertyID string            `db:"property_id" json:"property_id"`
	Status     ApplicationStatus `db:"status" json:"status"`
	Message    string            `db:"message" json:"message,omitempty"`
	CreatedAt  time.Time         `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time         `db:"updated_at" json:"updated_at"`
}

type RentObligation struct {
	ID            string     `db:"id" json:"id"`
	TenantID      string     `db:"tenant_id" json:"tenant_id"`
	PropertyID    string     `db:"property_id" json:"property_id"`
	Amount        float64    `db:"amount" json:"amount"`
	DueDate       time.Time  `db:"due_date" json:"due_date"`
	Status        RentStatus `db:"status" json:"status"`
	PaymentMethod string     `db:"payment_method" json:"payment_method,omitempty"`
	TransactionID string     `db:"transaction_id" json:"transaction_id,omitempty"`
	PaidAt        *time.Time `db:"paid_at" json:"paid_at,omitempty"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
}

type MaintenanceRequest struct {
	ID          string            `db:"id" json:"id"`
	PropertyID  string            `db:"property_id" json:"property_id"`
	TenantID    string            `db:"tenant_id" json:"tenant_id"`
	Title       string            `db:"title" json:"title"`
	Description string            `db:"description" json:"description"`
	Category    string            `db:"category" json:"category"`
	Priority    string            `db:"priority" json:"priority"`
	Status      MaintenanceStatus `db:"status" json:"status"`
	CreatedAt   time.Time         `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time         `db:"updated_at" json:"updated_at"`
}

// Profile is the contact card of a platform user, sourced from identity traits.
type Profile struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Role    Role   `json:"role"`
}

// Contact is a profile rendered for display, empty fields carry a placeholder.
type Contact struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

const (
	NotProvided  = "Not provided"
	NotAvailable = "Not available"
)

// ContactFromProfile fills missing fields with NotProvided, a nil profile is
// treated as one with every field missing.
func ContactFromProfile(p *Profile) Contact {
	if p == nil {
		p = new(Profile)
	}

	orDefault := func(v string) string {
		if v == "" {
			return NotProvided
		}
		return v
	}

	return Contact{
		Name:    orDefault(p.Name),
		Email:   orDefault(p.Email),
		Phone:   orDefault(p.Phone),
		Address: orDefault(p.Address),
	}
}

// UnavailableContact is shown when there is no landlord to look up at all.
func UnavailableContact() Contact {
	return Contact{
		Name:    NotAvailable,
		Email:   NotAvailable,
		Phone:   NotAvailable,
		Address: NotAvailable,
	}
}

// PropertyFilter narrows a property listing, RentedBy adds the properties
// rented by that tenant on top of the ones matching Statuses.
type PropertyFilter struct {
	LandlordID string
	RentedBy   string
	Statuses   []PropertyStatus
	Page       int64
	Size       int64
}

type ApplicationFilter struct {
	TenantID   string
	LandlordID string
	PropertyID string
	Status     ApplicationStatus
}

type RentFilter struct {
	TenantID   string
	PropertyID string
	Status     RentStatus
}

// RentStatement is an obligation joined with the property it is owed for.
type RentStatement struct {
	RentObligation
	PropertyTitle   string  `json:"property_title"`
	PropertyAddress string  `json:"property_address"`
	LandlordID      string  `json:"landlord_id"`
	Landlord        Contact `json:"landlord"`
	Overdue         bool    `json:"overdue"`
}

type MaintenanceFilter struct {
	TenantID   string
	LandlordID string
	PropertyID string
}
