// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package rent

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

//go:generate mockgen -build_flags=--mod=mod -package rent -destination ./mock_interfaces.go -source=./interfaces.go

var fixedNow = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

func tenantContext(id string) context.Context {
	return authentication.WithPrincipal(context.Background(), authentication.Principal{ID: id, Role: types.RoleTenant})
}

func runInline(tx *MockTxRunnerInterface) {
	tx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()
}

func newTestService(ctrl *gomock.Controller) (*Service, *MockStorageInterface, *MockTxRunnerInterface, *MockProfileReaderInterface, *events.Broker) {
	mockStorage := NewMockStorageInterface(ctrl)
	mockTx := NewMockTxRunnerInterface(ctrl)
	mockProfiles := NewMockProfileReaderInterface(ctrl)

	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("test")
	logger := logging.NewNoopLogger()

	broker := events.NewBroker(8, nil, tracer, monitor, logger)

	s := NewService(mockStorage, mockTx, mockProfiles, broker, tracer, monitor, logger)
	s.now = func() time.Time { return fixedNow }

	return s, mockStorage, mockTx, mockProfiles, broker
}

func TestService_ListForTenant(t *testing.T) {
	statements := func() []*types.RentStatement {
		return []*types.RentStatement{
			{
				RentObligation: types.RentObligation{ID: "r-1", TenantID: "tenant-1", Amount: 1200, Status: types.RentPending, DueDate: fixedNow.AddDate(0, 0, -1)},
				PropertyTitle:  "Flat",
				LandlordID:     "landlord-1",
			},
			{
				RentObligation: types.RentObligation{ID: "r-2", TenantID: "tenant-1", Amount: 900, Status: types.RentPending, DueDate: fixedNow.AddDate(0, 1, 0)},
				LandlordID:     "landlord-2",
			},
			{
				RentObligation: types.RentObligation{ID: "r-3", TenantID: "tenant-1", Amount: 900, Status: types.RentPaid, DueDate: fixedNow.AddDate(0, -1, 0)},
				LandlordID:     "landlord-1",
			},
		}
	}

	tests := []struct {
		name          string
		ctx           context.Context
		setupMocks    func(*MockStorageInterface, *MockProfileReaderInterface)
		expectedErr   error
		expectedNames []string
		expectedOver  []bool
	}{
		{
			name:        "anonymous",
			ctx:         context.Background(),
			setupMocks:  func(*MockStorageInterface, *MockProfileReaderInterface) {},
			expectedErr: ErrUnauthenticated,
		},
		{
			name: "contacts and overdue flags",
			ctx:  tenantContext("tenant-1"),
			setupMocks: func(s *MockStorageInterface, p *MockProfileReaderInterface) {
				s.EXPECT().ListRentObligations(gomock.Any(), types.RentFilter{TenantID: "tenant-1"}).Return(statements(), nil)
				p.EXPECT().GetProfiles(gomock.Any(), []string{"landlord-1", "landlord-2"}).Return(
					map[string]*types.Profile{"landlord-1": {ID: "landlord-1", Name: "Alice"}},
					nil,
				)
			},
			expectedNames: []string{"Alice", types.NotProvided, "Alice"},
			expectedOver:  []bool{true, false, false},
		},
		{
			name: "profile lookup failure keeps the ledger",
			ctx:  tenantContext("tenant-1"),
			setupMocks: func(s *MockStorageInterface, p *MockProfileReaderInterface) {
				s.EXPECT().ListRentObligations(gomock.Any(), gomock.Any()).Return(statements(), nil)
				p.EXPECT().GetProfiles(gomock.Any(), gomock.Any()).Return(nil, errors.New("kratos down"))
			},
			expectedNames: []string{types.NotProvided, types.NotProvided, types.NotProvided},
			expectedOver:  []bool{true, false, false},
		},
		{
			name: "storage error",
			ctx:  tenantContext("tenant-1"),
			setupMocks: func(s *MockStorageInterface, p *MockProfileReaderInterface) {
				s.EXPECT().ListRentObligations(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedErr: errors.New("db error"),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, mockStorage, _, mockProfiles, _ := newTestService(ctrl)
			test.setupMocks(mockStorage, mockProfiles)

			result, err := s.ListForTenant(test.ctx)

			if test.expectedErr != nil {
				if err == nil {
					t.Fatalf("expected error %v, got nil", test.expectedErr)
				}
				if errors.Is(test.expectedErr, ErrUnauthenticated) && !errors.Is(err, ErrUnauthenticated) {
					t.Errorf("expected error %v, got %v", test.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(result) != len(test.expectedNames) {
				t.Fatalf("expected %d statements, got %d", len(test.expectedNames), len(result))
			}

			for i, st := range result {
				if st.Landlord.Name != test.expectedNames[i] {
					t.Errorf("statement %d: expected landlord %q, got %q", i, test.expectedNames[i], st.Landlord.Name)
				}
				if st.Overdue != test.expectedOver[i] {
					t.Errorf("statement %d: expected overdue %v, got %v", i, test.expectedOver[i], st.Overdue)
				}
			}
		})
	}
}

func TestService_Pay(t *testing.T) {
	pending := func() *types.RentObligation {
		return &types.RentObligation{ID: "r-1", TenantID: "tenant-1", PropertyID: "p-1", Amount: 1200, Status: types.RentPending}
	}

	tests := []struct {
		name        string
		ctx         context.Context
		method      string
		setupMocks  func(*MockStorageInterface)
		expectedErr error
		expectEvent bool
	}{
		{
			name:        "anonymous",
			ctx:         context.Background(),
			setupMocks:  func(*MockStorageInterface) {},
			expectedErr: ErrUnauthenticated,
		},
		{
			name:        "unknown method",
			ctx:         tenantContext("tenant-1"),
			method:      "cash",
			setupMocks:  func(*MockStorageInterface) {},
			expectedErr: ErrInvalidMethod,
		},
		{
			name:   "not found",
			ctx:    tenantContext("tenant-1"),
			method: "credit_card",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetRentObligationForUpdate(gomock.Any(), "r-1").Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrObligationNotFound,
		},
		{
			name: "someone else's obligation",
			ctx:  tenantContext("tenant-2"),
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetRentObligationForUpdate(gomock.Any(), "r-1").Return(pending(), nil)
			},
			expectedErr: ErrForbidden,
		},
		{
			name: "already paid",
			ctx:  tenantContext("tenant-1"),
			setupMocks: func(s *MockStorageInterface) {
				o := pending()
				o.Status = types.RentPaid
				s.EXPECT().GetRentObligationForUpdate(gomock.Any(), "r-1").Return(o, nil)
			},
			expectedErr: ErrAlreadyPaid,
		},
		{
			name: "paid concurrently",
			ctx:  tenantContext("tenant-1"),
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetRentObligationForUpdate(gomock.Any(), "r-1").Return(pending(), nil)
				s.EXPECT().MarkRentObligationPaid(gomock.Any(), "r-1", DefaultPaymentMethod, gomock.Any(), fixedNow).Return(storage.ErrNotFound)
			},
			expectedErr: ErrAlreadyPaid,
		},
		{
			name:   "success",
			ctx:    tenantContext("tenant-1"),
			method: "bank_transfer",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetRentObligationForUpdate(gomock.Any(), "r-1").Return(pending(), nil)
				s.EXPECT().MarkRentObligationPaid(gomock.Any(), "r-1", "bank_transfer", "txn_1710504000000", fixedNow).Return(nil)
			},
			expectEvent: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, mockStorage, mockTx, _, broker := newTestService(ctrl)
			runInline(mockTx)
			test.setupMocks(mockStorage)

			ch, cancel := broker.Subscribe(nil)
			defer cancel()

			result, err := s.Pay(test.ctx, "r-1", test.method)

			if test.expectedErr != nil {
				if !errors.Is(err, test.expectedErr) {
					t.Errorf("expected error %v, got %v", test.expectedErr, err)
				}
				if len(ch) != 0 {
					t.Errorf("expected no event on failure")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if result.Status != types.RentPaid || result.TransactionID != "txn_1710504000000" || result.PaidAt == nil {
				t.Errorf("unexpected obligation %+v", result)
			}

			select {
			case e := <-ch:
				if e.Kind != events.KindRentPaid || e.EntityID != "r-1" || e.TenantID != "tenant-1" {
					t.Errorf("unexpected event %+v", e)
				}
			default:
				t.Errorf("expected a rent.paid event")
			}
		})
	}
}
