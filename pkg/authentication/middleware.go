// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"net/http"
	"slices"
	"strings"

	httptypes "github.com/canonical/property-service/internal/http/types"
	"github.com/canonical/property-service/internal/logging"
	"github.com/canonical/property-service/internal/monitoring"
	"github.com/canonical/property-service/internal/tracing"
	"github.com/canonical/property-service/internal/types"
)

type Middleware struct {
	verifier TokenVerifierInterface
	profiles ProfileReaderInterface
	roles    RoleCheckerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Authenticate verifies the bearer token and stores the caller in the request
// context. The role comes from the token when present, otherwise from the
// caller's profile.
func (m *Middleware) Authenticate() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authentication.Middleware.Authenticate")
			defer span.End()

			token, found := m.getBearerToken(r.Header)
			if !found {
				m.errorResponse(w, http.StatusUnauthorized, "missing authorization header")
				return
			}

			claims, err := m.verifier.VerifyToken(ctx, token)
			if err != nil {
				m.logger.Debugf("JWT verification failed: %v", err)
				m.errorResponse(w, http.StatusUnauthorized, "invalid token")
				return
			}

			principal := Principal{ID: claims.Subject, Role: claims.Role}
			if !principal.Role.Valid() && m.profiles != nil {
				profile, err := m.profiles.GetProfile(ctx, principal.ID)
				if err != nil {
					m.logger.Debugf("failed to resolve role of %s: %v", principal.ID, err)
				} else {
					principal.Role = profile.Role
				}
			}

			ctx = WithPrincipal(ctx, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole rejects callers whose role is not one of roles. A caller whose
// role could not be resolved at authentication is checked against the role
// assignments recorded at sign up.
func (m *Middleware) RequireRole(roles ...types.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := PrincipalFromContext(r.Context())
			if !ok {
				m.errorResponse(w, http.StatusUnauthorized, "unauthenticated")
				return
			}

			if !principal.Role.Valid() {
				principal.Role = m.assignedRole(r.Context(), principal.ID, roles)
			}

			if !slices.Contains(roles, principal.Role) {
				m.logger.Security().AuthzFailure(principal.ID, r.URL.Path)
				m.errorResponse(w, http.StatusForbidden, "forbidden")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), principal)))
		})
	}
}

func (m *Middleware) assignedRole(ctx context.Context, userID string, roles []types.Role) types.Role {
	if m.roles == nil {
		return ""
	}

	for _, role := range roles {
		ok, err := m.roles.HasRole(ctx, userID, string(role))
		if err != nil {
			m.logger.Errorf("failed to check role %s of %s: %v", role, userID, err)
			return ""
		}
		if ok {
			return role
		}
	}
	return ""
}

func (m *Middleware) getBearerToken(headers http.Header) (string, bool) {
	bearer := headers.Get("Authorization")
	if bearer == "" {
		return "", false
	}

	// Only support "Bearer <token>" format (RFC 6750)
	if !strings.HasPrefix(bearer, "Bearer ") {
		return "", false
	}

	return strings.TrimPrefix(bearer, "Bearer "), true
}

func (m *Middleware) errorResponse(w http.ResponseWriter, status int, message string) {
	if err := httptypes.WriteError(w, status, message); err != nil {
		m.logger.Errorf("failed to encode error response: %v", err)
	}
}

func NewMiddleware(verifier TokenVerifierInterface, profiles ProfileReaderInterface, roles RoleCheckerInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		verifier: verifier,
		profiles: profiles,
		roles:    roles,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}
