// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"

	"github.com/canonical/property-service/internal/logging"
	"github.com/canonical/property-service/internal/monitoring"
	"github.com/canonical/property-service/internal/tracing"
)

type Config struct {
	Enabled         bool
	Issuer          string
	JWKSURL         string
	AllowedSubjects []string
	RequiredScope   string
}

// NewAuthenticator returns the token verifier matching cfg: the no-op one when
// authentication is disabled, a JWKS backed one when a JWKS URL is given and
// an OIDC discovery backed one otherwise.
func NewAuthenticator(
	ctx context.Context,
	cfg Config,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) (TokenVerifierInterface, error) {
	if !cfg.Enabled {
		logger.Warn("Authentication is disabled, bearer tokens are taken as user ids")
		return NewNoopVerifier(), nil
	}

	if cfg.Issuer == "" {
		return nil, fmt.Errorf("issuer is required for JWT authentication")
	}

	if cfg.JWKSURL != "" {
		logger.Infof("Using manual JWKS URL: %s", cfg.JWKSURL)
		idTokenVerifier, err := NewJWKSVerifier(ctx, cfg.Issuer, cfg.JWKSURL)
		if err != nil {
			return nil, fmt.Errorf("failed to create JWKS verifier: %v", err)
		}
		return NewJWTVerifierDirect(idTokenVerifier, cfg.AllowedSubjects, cfg.RequiredScope, tracer, monitor, logger), nil
	}

	logger.Infof("Using OIDC discovery for issuer: %s", cfg.Issuer)
	provider, err := NewProvider(ctx, cfg.Issuer)
	if err != nil {
		return nil, fmt.Errorf("failed to create OIDC provider: %v", err)
	}

	return NewJWTVerifier(provider, cfg.Issuer, cfg.AllowedSubjects, cfg.RequiredScope, tracer, monitor, logger), nil
}
