// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package rent

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	httptypes "github.com/canonical/property-service/internal/http/types"
	"github.com/canonical/property-service/internal/logging"
	"github.com/canonical/property-service/internal/types"
)

func TestHandleList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockService.EXPECT().ListForTenant(gomock.Any()).Return([]*types.RentStatement{
		{RentObligation: types.RentObligation{ID: "r-1", Amount: 1200}, PropertyTitle: "Flat"},
	}, nil)

	mux := chi.NewMux()
	NewAPI(mockService, logging.NewNoopLogger()).RegisterEndpoints(mux)

	req := httptest.NewRequest(http.MethodGet, "/rent", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	var body struct {
		Data []types.RentStatement `json:"data"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(body.Data) != 1 || body.Data[0].PropertyTitle != "Flat" {
		t.Errorf("unexpected body %+v", body)
	}
}

func TestHandlePay(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "success",
			body: `{"method":"credit_card"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().Pay(gomock.Any(), "r-1", "credit_card").Return(&types.RentObligation{ID: "r-1", Status: types.RentPaid}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid method",
			body:           `{"method":"cash"}`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "already paid",
			body: `{}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().Pay(gomock.Any(), "r-1", "").Return(nil, ErrAlreadyPaid)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    ErrAlreadyPaid.Error(),
		},
		{
			name: "not found",
			body: `{}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().Pay(gomock.Any(), "r-1", "").Return(nil, ErrObligationNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "forbidden",
			body: `{}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().Pay(gomock.Any(), "r-1", "").Return(nil, ErrForbidden)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name: "internal error is not leaked",
			body: `{}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().Pay(gomock.Any(), "r-1", "").Return(nil, errors.New("connection refused"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "failed to pay rent",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			test.setupMocks(mockService)

			mux := chi.NewMux()
			NewAPI(mockService, logging.NewNoopLogger()).RegisterEndpoints(mux)

			req := httptest.NewRequest(http.MethodPost, "/rent/r-1/pay", strings.NewReader(test.body))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			if w.Code != test.expectedStatus {
				t.Fatalf("expected status %d, got %d", test.expectedStatus, w.Code)
			}

			if test.expectedMsg == "" {
				return
			}

			var body httptypes.ErrorResponse
			if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}

			if body.Message != test.expectedMsg {
				t.Errorf("expected message %q, got %q", test.expectedMsg, body.Message)
			}
		})
	}
}
