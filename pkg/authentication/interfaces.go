// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"

	"github.com/coreos/go-oidc/v3/oidc"

	"github.com/canonical/property-service/internal/types"
)

type ProviderInterface interface {
	// Verifier returns the token verifier associated with the specified OIDC issuer
	Verifier(*oidc.Config) *oidc.IDTokenVerifier
}

type TokenVerifierInterface interface {
	// VerifyToken verifies a raw JWT string and validates authorization claims
	// Returns the claims if the token is valid and authorized, otherwise an error
	VerifyToken(ctx context.Context, rawToken string) (*Claims, error)
}

type ProfileReaderInterface interface {
	GetProfile(ctx context.Context, id string) (*types.Profile, error)
}

type RoleCheckerInterface interface {
	// HasRole reports whether the role was assigned to the user at sign up
	HasRole(ctx context.Context, userID, role string) (bool, error)
}
