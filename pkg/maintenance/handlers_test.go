// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package maintenance

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/property-service/internal/logging"
	"github.com/canonical/property-service/internal/types"
)

func TestHandleSubmit(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name: "defaults category and priority",
			body: `{"property_id":"prop-1","title":"Leaking tap"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().Submit(gomock.Any(), &types.MaintenanceRequest{
					PropertyID: "prop-1",
					Title:      "Leaking tap",
					Category:   "other",
					Priority:   "medium",
				}).Return(&types.MaintenanceRequest{ID: "m-1"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "unknown category",
			body:           `{"property_id":"prop-1","title":"Leaking tap","category":"garden"}`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "not renting",
			body: `{"property_id":"prop-1","title":"Leaking tap","priority":"high"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(nil, ErrNotRenting)
			},
			expectedStatus: http.StatusForbidden,
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

			req := httptest.NewRequest(http.MethodPost, "/maintenance", strings.NewReader(test.body))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			if w.Code != test.expectedStatus {
				t.Errorf("expected status %d, got %d", test.expectedStatus, w.Code)
			}
		})
	}
}

func TestHandleUpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockService.EXPECT().UpdateStatus(gomock.Any(), "m-1", types.MaintenanceCompleted).Return(&types.MaintenanceRequest{ID: "m-1", Status: types.MaintenanceCompleted}, nil)

	mux := chi.NewMux()
	NewAPI(mockService, logging.NewNoopLogger()).RegisterEndpoints(mux)

	req := httptest.NewRequest(http.MethodPatch, "/maintenance/m-1", strings.NewReader(`{"status":"completed"}`))
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
}
