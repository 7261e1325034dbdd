// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package maintenance

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/canonical/property-service/internal/events"
	"github.com/canonical/property-service/internal/logging"
	"github.com/canonical/property-service/internal/monitoring"
	"github.com/canonical/property-service/internal/storage"
	"github.com/canonical/property-service/internal/tracing"
	"github.com/canonical/property-service/internal/types"
	"github.com/canonical/property-service/pkg/authentication"
)

//go:generate mockgen -build_flags=--mod=mod -package maintenance -destination ./mock_interfaces.go -source=./interfaces.go

func principal(id string, role types.Role) context.Context {
	return authentication.WithPrincipal(context.Background(), authentication.Principal{ID: id, Role: role})
}

func newService(t *testing.T) (*Service, *MockStorageInterface, *MockAuthzInterface, <-chan events.ChangeEvent) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockStorage := NewMockStorageInterface(ctrl)
	mockAuthz := NewMockAuthzInterface(ctrl)

	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("test")
	logger := logging.NewNoopLogger()
	broker := events.NewBroker(4, nil, tracer, monitor, logger)

	ch, cancel := broker.Subscribe(nil)
	t.Cleanup(cancel)

	return NewService(mockStorage, mockAuthz, broker, tracer, monitor, logger), mockStorage, mockAuthz, ch
}

func rented(tenantID string) *types.Property {
	return &types.Property{ID: "prop-1", LandlordID: "landlord-1", Status: types.PropertyOccupied, TenantID: &tenantID}
}

func TestService_Submit(t *testing.T) {
	tests := []struct {
		name        string
		setupMocks  func(*MockStorageInterface)
		expectedErr error
	}{
		{
			name: "not renting",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetPropertyByID(gomock.Any(), "prop-1").Return(rented("tenant-2"), nil)
			},
			expectedErr: ErrNotRenting,
		},
		{
			name: "unknown property",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetPropertyByID(gomock.Any(), "prop-1").Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrPropertyNotFound,
		},
		{
			name: "success",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetPropertyByID(gomock.Any(), "prop-1").Return(rented("tenant-1"), nil)
				s.EXPECT().CreateMaintenanceRequest(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, m *types.MaintenanceRequest) (*types.MaintenanceRequest, error) {
						created := *m
						created.ID = "m-1"
						created.Status = types.MaintenancePending
						return &created, nil
					},
				)
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s, mockStorage, _, ch := newService(t)
			test.setupMocks(mockStorage)

			created, err := s.Submit(principal("tenant-1", types.RoleTenant), &types.MaintenanceRequest{PropertyID: "prop-1", Title: " Leaking tap "})

			if test.expectedErr != nil {
				if !errors.Is(err, test.expectedErr) {
					t.Errorf("expected %v, got %v", test.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if created.TenantID != "tenant-1" || created.Title != "Leaking tap" {
				t.Errorf("unexpected request %+v", created)
			}

			e := <-ch
			if e.Kind != events.KindMaintenanceCreated || e.LandlordID != "landlord-1" {
				t.Errorf("unexpected event %+v", e)
			}
		})
	}
}

func TestService_UpdateStatus(t *testing.T) {
	request := func() *types.MaintenanceRequest {
		return &types.MaintenanceRequest{ID: "m-1", PropertyID: "prop-1", TenantID: "tenant-1", Status: types.MaintenancePending}
	}

	tests := []struct {
		name        string
		ctx         context.Context
		status      types.MaintenanceStatus
		setupMocks  func(*MockStorageInterface, *MockAuthzInterface)
		expectedErr error
	}{
		{
			name:        "invalid status",
			ctx:         principal("landlord-1", types.RoleLandlord),
			status:      "done",
			setupMocks:  func(*MockStorageInterface, *MockAuthzInterface) {},
			expectedErr: ErrInvalidRequest,
		},
		{
			name:   "tenant cannot update",
			ctx:    principal("tenant-1", types.RoleTenant),
			status: types.MaintenanceCompleted,
			setupMocks: func(s *MockStorageInterface, _ *MockAuthzInterface) {
				s.EXPECT().GetMaintenanceRequestByID(gomock.Any(), "m-1").Return(request(), nil)
				s.EXPECT().GetPropertyByID(gomock.Any(), "prop-1").Return(rented("tenant-1"), nil)
			},
			expectedErr: ErrForbidden,
		},
		{
			name:   "unknown request",
			ctx:    principal("landlord-1", types.RoleLandlord),
			status: types.MaintenanceCompleted,
			setupMocks: func(s *MockStorageInterface, _ *MockAuthzInterface) {
				s.EXPECT().GetMaintenanceRequestByID(gomock.Any(), "m-1").Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrRequestNotFound,
		},
		{
			name:   "landlord",
			ctx:    principal("landlord-1", types.RoleLandlord),
			status: types.MaintenanceInProgress,
			setupMocks: func(s *MockStorageInterface, a *MockAuthzInterface) {
				s.EXPECT().GetMaintenanceRequestByID(gomock.Any(), "m-1").Return(request(), nil)
				s.EXPECT().GetPropertyByID(gomock.Any(), "prop-1").Return(rented("tenant-1"), nil)
				a.EXPECT().CanManage(gomock.Any(), "landlord-1", "prop-1").Return(true, nil)
				s.EXPECT().SetMaintenanceStatus(gomock.Any(), "m-1", types.MaintenanceInProgress, gomock.AssignableToTypeOf(time.Time{})).Return(nil)
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s, mockStorage, mockAuthz, _ := newService(t)
			test.setupMocks(mockStorage, mockAuthz)

			updated, err := s.UpdateStatus(test.ctx, "m-1", test.status)

			if test.expectedErr != nil {
				if !errors.Is(err, test.expectedErr) {
					t.Errorf("expected %v, got %v", test.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if updated.Status != test.status {
				t.Errorf("expected status %s, got %s", test.status, updated.Status)
			}
		})
	}
}

func TestService_List(t *testing.T) {
	s, mockStorage, _, _ := newService(t)

	mockStorage.EXPECT().ListMaintenanceRequests(gomock.Any(), types.MaintenanceFilter{LandlordID: "landlord-1", PropertyID: "prop-1"}).Return(nil, nil)
	mockStorage.EXPECT().ListMaintenanceRequests(gomock.Any(), types.MaintenanceFilter{TenantID: "tenant-1"}).Return(nil, nil)

	if _, err := s.List(principal("landlord-1", types.RoleLandlord), "prop-1"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if _, err := s.List(principal("tenant-1", types.RoleTenant), ""); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
