// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import "github.com/canonical/property-service/internal/types"

// Welcome is the greeting sent once a new account has its role
type Welcome struct {
	Email string
	Name  string
	Role  types.Role
}

// Validation is the deliverability verdict for an address
type Validation struct {
	IsValid     bool    `json:"is_valid"`
	Status      string  `json:"status"`
	SubStatus   string  `json:"sub_status"`
	FreeEmail   bool    `json:"free_email"`
	DidYouMean  *string `json:"did_you_mean,omitempty"`
	Domain      string  `json:"domain"`
	ProcessedAt string  `json:"processed_at"`
}

type Config struct {
	ResendAPIKey     string
	ResendURL        string
	From             string
	AppURL           string
	ZeroBounceAPIKey string
	ZeroBounceURL    string
	RetryMax         int
}
