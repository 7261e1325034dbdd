// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/property-service/internal/logging"
	"github.com/canonical/property-service/internal/monitoring"
	"github.com/canonical/property-service/internal/tracing"
	"github.com/canonical/property-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_interfaces.go -source=./interfaces.go

func newTestMiddleware(verifier TokenVerifierInterface, profiles ProfileReaderInterface, roles RoleCheckerInterface) *Middleware {
	return NewMiddleware(verifier, profiles, roles, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())
}

func TestMiddleware_Authenticate(t *testing.T) {
	tests := []struct {
		name               string
		authHeader         string
		setupMocks         func(*MockTokenVerifierInterface, *MockProfileReaderInterface)
		expectedStatusCode int
		expectedPrincipal  Principal
	}{
		{
			name:               "Missing token - rejects request",
			authHeader:         "",
			setupMocks:         func(*MockTokenVerifierInterface, *MockProfileReaderInterface) {},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:               "Invalid token format - rejects request",
			authHeader:         "InvalidToken",
			setupMocks:         func(*MockTokenVerifierInterface, *MockProfileReaderInterface) {},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:       "Token verification fails - rejects request",
			authHeader: "Bearer invalid-token",
			setupMocks: func(v *MockTokenVerifierInterface, _ *MockProfileReaderInterface) {
				v.EXPECT().VerifyToken(gomock.Any(), "invalid-token").Return(nil, fmt.Errorf("invalid token"))
			},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:       "Role from token claims",
			authHeader: "Bearer valid-token",
			setupMocks: func(v *MockTokenVerifierInterface, _ *MockProfileReaderInterface) {
				v.EXPECT().VerifyToken(gomock.Any(), "valid-token").Return(&Claims{Subject: "user-123", Role: types.RoleLandlord}, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedPrincipal:  Principal{ID: "user-123", Role: types.RoleLandlord},
		},
		{
			name:       "Role from profile",
			authHeader: "Bearer valid-token",
			setupMocks: func(v *MockTokenVerifierInterface, p *MockProfileReaderInterface) {
				v.EXPECT().VerifyToken(gomock.Any(), "valid-token").Return(&Claims{Subject: "user-123"}, nil)
				p.EXPECT().GetProfile(gomock.Any(), "user-123").Return(&types.Profile{ID: "user-123", Role: types.RoleTenant}, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedPrincipal:  Principal{ID: "user-123", Role: types.RoleTenant},
		},
		{
			name:       "Profile lookup fails - authenticated without role",
			authHeader: "Bearer valid-token",
			setupMocks: func(v *MockTokenVerifierInterface, p *MockProfileReaderInterface) {
				v.EXPECT().VerifyToken(gomock.Any(), "valid-token").Return(&Claims{Subject: "user-123"}, nil)
				p.EXPECT().GetProfile(gomock.Any(), "user-123").Return(nil, errors.New("kratos down"))
			},
			expectedStatusCode: http.StatusOK,
			expectedPrincipal:  Principal{ID: "user-123"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockVerifier := NewMockTokenVerifierInterface(ctrl)
			mockProfiles := NewMockProfileReaderInterface(ctrl)
			tt.setupMocks(mockVerifier, mockProfiles)

			var got Principal
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got, _ = PrincipalFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rr := httptest.NewRecorder()

			newTestMiddleware(mockVerifier, mockProfiles, nil).Authenticate()(handler).ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatusCode {
				t.Errorf("expected status %d, got %d", tt.expectedStatusCode, rr.Code)
			}
			if got != tt.expectedPrincipal {
				t.Errorf("expected principal %+v, got %+v", tt.expectedPrincipal, got)
			}
		})
	}
}

func TestMiddleware_RequireRole(t *testing.T) {
	tests := []struct {
		name               string
		principal          *Principal
		setupMocks         func(*MockRoleCheckerInterface)
		expectedStatusCode int
		expectedRole       types.Role
	}{
		{
			name:               "anonymous",
			setupMocks:         func(*MockRoleCheckerInterface) {},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:               "tenant on landlord route",
			principal:          &Principal{ID: "t", Role: types.RoleTenant},
			setupMocks:         func(*MockRoleCheckerInterface) {},
			expectedStatusCode: http.StatusForbidden,
		},
		{
			name:               "landlord",
			principal:          &Principal{ID: "l", Role: types.RoleLandlord},
			setupMocks:         func(*MockRoleCheckerInterface) {},
			expectedStatusCode: http.StatusOK,
			expectedRole:       types.RoleLandlord,
		},
		{
			name:      "unresolved role assigned at sign up",
			principal: &Principal{ID: "l"},
			setupMocks: func(c *MockRoleCheckerInterface) {
				c.EXPECT().HasRole(gomock.Any(), "l", "landlord").Return(true, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedRole:       types.RoleLandlord,
		},
		{
			name:      "unresolved role not assigned",
			principal: &Principal{ID: "t"},
			setupMocks: func(c *MockRoleCheckerInterface) {
				c.EXPECT().HasRole(gomock.Any(), "t", "landlord").Return(false, nil)
			},
			expectedStatusCode: http.StatusForbidden,
		},
		{
			name:      "role check fails",
			principal: &Principal{ID: "l"},
			setupMocks: func(c *MockRoleCheckerInterface) {
				c.EXPECT().HasRole(gomock.Any(), "l", "landlord").Return(false, errors.New("openfga down"))
			},
			expectedStatusCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRoles := NewMockRoleCheckerInterface(ctrl)
			tt.setupMocks(mockRoles)

			var got types.Role
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				principal, _ := PrincipalFromContext(r.Context())
				got = principal.Role
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/properties", nil)
			if tt.principal != nil {
				req = req.WithContext(WithPrincipal(req.Context(), *tt.principal))
			}
			rr := httptest.NewRecorder()

			newTestMiddleware(NewNoopVerifier(), nil, mockRoles).RequireRole(types.RoleLandlord)(handler).ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatusCode {
				t.Errorf("expected status %d, got %d", tt.expectedStatusCode, rr.Code)
			}
			if got != tt.expectedRole {
				t.Errorf("expected role %q, got %q", tt.expectedRole, got)
			}
		})
	}
}

func TestMiddleware_GetBearerToken(t *testing.T) {
	tests := []struct {
		name          string
		authHeader    string
		expectedToken string
		expectedFound bool
	}{
		{
			name:          "No Authorization header",
			authHeader:    "",
			expectedToken: "",
			expectedFound: false,
		},
		{
			name:          "Bearer token",
			authHeader:    "Bearer my-token-123",
			expectedToken: "my-token-123",
			expectedFound: true,
		},
		{
			name:          "Raw token without Bearer prefix",
			authHeader:    "my-token-123",
			expectedToken: "",
			expectedFound: false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			middleware := newTestMiddleware(NewNoopVerifier(), nil, nil)

			headers := http.Header{}
			if test.authHeader != "" {
				headers.Set("Authorization", test.authHeader)
			}

			token, found := middleware.getBearerToken(headers)

			if token != test.expectedToken {
				t.Errorf("expected token %q, got %q", test.expectedToken, token)
			}
			if found != test.expectedFound {
				t.Errorf("expected found %v, got %v", test.expectedFound, found)
			}
		})
	}
}

func TestNoopVerifier(t *testing.T) {
	v := NewNoopVerifier()

	c, _ := v.VerifyToken(context.Background(), "landlord:user-1")
	if c.Subject != "user-1" || c.Role != types.RoleLandlord {
		t.Errorf("unexpected claims %+v", c)
	}

	c, _ = v.VerifyToken(context.Background(), "user-2")
	if c.Subject != "user-2" || c.Role != "" {
		t.Errorf("unexpected claims %+v", c)
	}
}
