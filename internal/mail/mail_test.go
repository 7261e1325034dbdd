// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canonical/property-service/internal/logging"
	"github.com/canonical/property-service/internal/monitoring"
	"github.com/canonical/property-service/internal/tracing"
	"github.com/canonical/property-service/internal/types"
)

func newTestSender(t *testing.T, handler http.HandlerFunc) *ResendSender {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := Config{ResendAPIKey: "re_test", ResendURL: srv.URL, AppURL: "https://app.example.com", RetryMax: 1}
	return NewResendSender(cfg, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())
}

func newTestValidator(t *testing.T, handler http.HandlerFunc) *ZeroBounceValidator {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := Config{ZeroBounceAPIKey: "zb_test", ZeroBounceURL: srv.URL, RetryMax: 1}
	return NewZeroBounceValidator(cfg, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())
}

func TestSendWelcome(t *testing.T) {
	s := newTestSender(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer re_test", r.Header.Get("Authorization"))

		var email resendEmail
		require.NoError(t, json.NewDecoder(r.Body).Decode(&email))

		assert.Equal(t, []string{"ada@example.com"}, email.To)
		assert.Equal(t, defaultFrom, email.From)
		assert.Equal(t, welcomeSubject, email.Subject)
		assert.Contains(t, email.HTML, "Welcome to PropertyPro, Ada Lovelace!")
		assert.Contains(t, email.HTML, "Add your properties to the platform")
		assert.Contains(t, email.HTML, "https://app.example.com")

		_, _ = w.Write([]byte(`{"id":"email-1"}`))
	})

	err := s.SendWelcome(context.Background(), Welcome{Email: "ada@example.com", Name: "Ada Lovelace", Role: types.RoleLandlord})
	assert.NoError(t, err)
}

func TestSendWelcomeRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32

	s := newTestSender(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"id":"email-1"}`))
	})

	err := s.SendWelcome(context.Background(), Welcome{Email: "t@example.com", Role: types.RoleTenant})
	assert.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestSendWelcomeRejected(t *testing.T) {
	s := newTestSender(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	})

	err := s.SendWelcome(context.Background(), Welcome{Email: "not-an-email", Role: types.RoleTenant})
	assert.Error(t, err)
}

func TestRenderWelcomeEscapesName(t *testing.T) {
	html, err := renderWelcome(Welcome{Email: "x@example.com", Name: "<script>", Role: types.RoleTenant}, "")
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "Browse available properties")
	assert.NotContains(t, html, "Get Started")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		status  string
		isValid bool
	}{
		{name: "valid", status: "valid", isValid: true},
		{name: "catch all", status: "catch-all", isValid: true},
		{name: "invalid", status: "invalid", isValid: false},
		{name: "do not mail", status: "do_not_mail", isValid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newTestValidator(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "zb_test", r.URL.Query().Get("api_key"))
				assert.Equal(t, "ada@example.com", r.URL.Query().Get("email"))

				_ = json.NewEncoder(w).Encode(zeroBounceResponse{Address: "ada@example.com", Status: tt.status, Domain: "example.com"})
			})

			result, err := v.Validate(context.Background(), "  ada@example.com ")
			require.NoError(t, err)
			require.NotNil(t, result)

			assert.Equal(t, tt.isValid, result.IsValid)
			assert.Equal(t, tt.status, result.Status)
			assert.Equal(t, "example.com", result.Domain)
		})
	}
}

func TestValidateBlankAddress(t *testing.T) {
	v := newTestValidator(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for a blank address")
	})

	result, err := v.Validate(context.Background(), "   ")
	assert.NoError(t, err)
	assert.Nil(t, result)
}

func TestValidateUpstreamError(t *testing.T) {
	v := newTestValidator(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(strings.Repeat("x", 10)))
	})

	result, err := v.Validate(context.Background(), "ada@example.com")
	assert.Error(t, err)
	assert.Nil(t, result)
}
