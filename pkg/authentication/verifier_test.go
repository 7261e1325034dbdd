// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"testing"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"

	"github.com/canonical/property-service/internal/logging"
	"github.com/canonical/property-service/internal/monitoring"
	"github.com/canonical/property-service/internal/tracing"
	"github.com/canonical/property-service/internal/types"
)

const testIssuer = "https://issuer.example.com"

func signToken(t *testing.T, key *rsa.PrivateKey, claims map[string]any) string {
	t.Helper()

	enc := func(v any) string {
		raw, err := json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal: %v", err)
		}
		return base64.RawURLEncoding.EncodeToString(raw)
	}

	signingInput := enc(map[string]string{"alg": "RS256", "typ": "JWT"}) + "." + enc(claims)
	digest := sha256.Sum256([]byte(signingInput))

	sig, err := rsa.SignPKCS1v15(rand.Reader, key, crypto.SHA256, digest[:])
	if err != nil {
		t.Fatalf("failed to sign: %v", err)
	}

	return signingInput + "." + base64.RawURLEncoding.EncodeToString(sig)
}

func TestJWTVerifier_VerifyToken(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("failed to generate key: %v", err)
	}

	idVerifier := oidc.NewVerifier(
		testIssuer,
		&oidc.StaticKeySet{PublicKeys: []crypto.PublicKey{&key.PublicKey}},
		&oidc.Config{SkipClientIDCheck: true},
	)

	base := func(sub string, extra map[string]any) map[string]any {
		c := map[string]any{
			"iss": testIssuer,
			"sub": sub,
			"exp": time.Now().Add(time.Hour).Unix(),
		}
		for k, v := range extra {
			c[k] = v
		}
		return c
	}

	tests := []struct {
		name            string
		allowedSubjects []string
		requiredScope   string
		claims          map[string]any
		expectedErr     bool
		expectedRole    types.Role
	}{
		{
			name:         "no policy accepts end-user token",
			claims:       base("user-1", map[string]any{"role": "tenant"}),
			expectedRole: types.RoleTenant,
		},
		{
			name:          "required scope present",
			requiredScope: "property:write",
			claims:        base("client-1", map[string]any{"scope": "openid property:write"}),
		},
		{
			name:          "required scope missing",
			requiredScope: "property:write",
			claims:        base("client-1", map[string]any{"scope": "openid"}),
			expectedErr:   true,
		},
		{
			name:            "allowed subject",
			allowedSubjects: []string{"client-2"},
			claims:          base("client-2", nil),
		},
		{
			name:        "expired token",
			claims:      map[string]any{"iss": testIssuer, "sub": "user-1", "exp": time.Now().Add(-time.Hour).Unix()},
			expectedErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewJWTVerifierDirect(idVerifier, tt.allowedSubjects, tt.requiredScope, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())

			claims, err := v.VerifyToken(context.Background(), signToken(t, key, tt.claims))

			if tt.expectedErr {
				if err == nil {
					t.Error("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if claims.Role != tt.expectedRole {
				t.Errorf("expected role %q, got %q", tt.expectedRole, claims.Role)
			}
		})
	}
}
