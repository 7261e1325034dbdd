// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package applications

import (
	"context"
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

func TestHandleReview(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "approved",
			body: `{"decision":"approved"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().Review(gomock.Any(), "app-1", types.ApplicationApproved).Return(&ReviewResult{
					Application:        &types.Application{ID: "app-1", Status: types.ApplicationApproved},
					Outcome:            PartiallySucceeded,
					MissingLedgerEntry: true,
				}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing decision",
			body:           `{}`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "invalid decision",
			body: `{"decision":"maybe"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().Review(gomock.Any(), "app-1", types.ApplicationStatus("maybe")).Return(nil, ErrInvalidDecision)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    ErrInvalidDecision.Error(),
		},
		{
			name: "not found",
			body: `{"decision":"rejected"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().Review(gomock.Any(), "app-1", types.ApplicationRejected).Return(nil, ErrApplicationNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "forbidden",
			body: `{"decision":"approved"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().Review(gomock.Any(), "app-1", types.ApplicationApproved).Return(nil, ErrForbidden)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name: "already decided",
			body: `{"decision":"approved"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().Review(gomock.Any(), "app-1", types.ApplicationApproved).Return(nil, ErrAlreadyDecided)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    ErrAlreadyDecided.Error(),
		},
		{
			name: "store failure on approval",
			body: `{"decision":"approved"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().Review(gomock.Any(), "app-1", types.ApplicationApproved).Return(nil, errors.New("pq: connection reset"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "failed to approve application",
		},
		{
			name: "store failure on rejection",
			body: `{"decision":"rejected"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().Review(gomock.Any(), "app-1", types.ApplicationRejected).Return(nil, errors.New("pq: connection reset"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "failed to reject application",
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

			req := httptest.NewRequest(http.MethodPost, "/applications/app-1/review", strings.NewReader(test.body))
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

			if body.Message != test.expectedMsg || body.Status != test.expectedStatus {
				t.Errorf("unexpected body %+v", body)
			}
		})
	}
}

func TestHandleList(t *testing.T) {
	tests := []struct {
		name           string
		ctx            context.Context
		url            string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name:           "anonymous",
			ctx:            context.Background(),
			url:            "/applications",
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "tenant",
			ctx:  asTenant("tenant-1"),
			url:  "/applications",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().ListForTenant(gomock.Any()).Return([]*types.Application{{ID: "app-1"}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "landlord filtered by property",
			ctx:  asLandlord("landlord-1"),
			url:  "/applications?property_id=prop-1",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().ListForLandlord(gomock.Any(), "prop-1").Return([]*types.Application{}, nil)
			},
			expectedStatus: http.StatusOK,
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

			req := httptest.NewRequest(http.MethodGet, test.url, nil).WithContext(test.ctx)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			if w.Code != test.expectedStatus {
				t.Errorf("expected status %d, got %d", test.expectedStatus, w.Code)
			}
		})
	}
}

func TestHandleSubmit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockService.EXPECT().Submit(gomock.Any(), "prop-1", "I would like to rent it").Return(nil, ErrDuplicateApplication)

	mux := chi.NewMux()
	NewAPI(mockService, logging.NewNoopLogger()).RegisterEndpoints(mux)

	req := httptest.NewRequest(http.MethodPost, "/applications", strings.NewReader(`{"property_id":"prop-1","message":"I would like to rent it"}`))
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Errorf("expected status %d, got %d", http.StatusConflict, w.Code)
	}
}
