// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/canonical/property-service/internal/db"
	"github.com/canonical/property-service/internal/logging"
	"github.com/canonical/property-service/internal/monitoring"
	"github.com/canonical/property-service/internal/tracing"
	"github.com/canonical/property-service/internal/types"
)

func setupStorage(t *testing.T) (*Storage, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	logger := logging.NewNoopLogger()
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("test")

	client := db.NewDBClientFromDB(sqlDB, nil, tracer, monitor, logger)

	return NewStorage(client, tracer, monitor, logger), mock
}

func propertyRows(now time.Time, tenantID any) *sqlmock.Rows {
	return sqlmock.NewRows(propertyColumns).
		AddRow("prop-1", "PROP-1A2B3C4D", "Flat", "1 Main St", "", 1200.0, "available", "landlord-1", tenantID, now, now)
}

func TestNewDisplayID(t *testing.T) {
	id := NewDisplayID()

	if !strings.HasPrefix(id, "PROP-") {
		t.Fatalf("expected PROP- prefix, got %q", id)
	}
	if len(id) != len("PROP-")+8 {
		t.Errorf("expected 8 characters after prefix, got %q", id)
	}
	if strings.ToUpper(id) != id {
		t.Errorf("expected upper-case display id, got %q", id)
	}
}

func TestCreatePropertyRetriesDisplayIDCollision(t *testing.T) {
	s, mock := setupStorage(t)
	now := time.Now()

	collision := &pgconn.PgError{Code: pgErrCodeUniqueViolation, ConstraintName: displayIDConstraint}

	mock.ExpectQuery("INSERT INTO properties").WillReturnError(collision)
	mock.ExpectQuery("INSERT INTO properties").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), "Flat", "1 Main St", "", 1200.0, "available", "landlord-1").
		WillReturnRows(propertyRows(now, nil))

	p, err := s.CreateProperty(context.Background(), &types.Property{
		Title:      "Flat",
		Address:    "1 Main St",
		Rent:       1200,
		LandlordID: "landlord-1",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if p.DisplayID != "PROP-1A2B3C4D" {
		t.Errorf("unexpected display id %q", p.DisplayID)
	}
	if p.TenantID != nil {
		t.Errorf("expected no tenant, got %v", *p.TenantID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestGetPropertyByIDNotFound(t *testing.T) {
	s, mock := setupStorage(t)

	mock.ExpectQuery("SELECT (.+) FROM properties WHERE id = \\$1").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := s.GetPropertyByID(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestGetPropertyByDisplayIDNormalises(t *testing.T) {
	s, mock := setupStorage(t)
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM properties WHERE display_id = \\$1").
		WithArgs("PROP-1A2B3C4D").
		WillReturnRows(propertyRows(now, "tenant-1"))

	p, err := s.GetPropertyByDisplayID(context.Background(), " prop-1a2b3c4d ")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if p.TenantID == nil || *p.TenantID != "tenant-1" {
		t.Errorf("expected tenant-1, got %v", p.TenantID)
	}
}

func TestBindTenantWithinTransaction(t *testing.T) {
	s, mock := setupStorage(t)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM properties WHERE id = \\$1 FOR UPDATE").
		WithArgs("prop-1").
		WillReturnRows(propertyRows(now, nil))
	mock.ExpectExec("UPDATE properties SET tenant_id = \\$1, status = \\$2, updated_at = \\$3 WHERE id = \\$4").
		WithArgs("tenant-1", "occupied", now, "prop-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := s.db.WithTx(context.Background(), func(ctx context.Context) error {
		if _, err := s.GetPropertyForUpdate(ctx, "prop-1"); err != nil {
			return err
		}
		return s.BindTenant(ctx, "prop-1", "tenant-1", now)
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestClearTenantNotFound(t *testing.T) {
	s, mock := setupStorage(t)
	now := time.Now()

	mock.ExpectExec("UPDATE properties SET tenant_id = \\$1, status = \\$2, updated_at = \\$3 WHERE id = \\$4").
		WithArgs(nil, "available", now, "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := s.ClearTenant(context.Background(), "missing", now); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListPropertiesForTenant(t *testing.T) {
	s, mock := setupStorage(t)
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM properties WHERE \\(status IN \\(\\$1\\) OR tenant_id = \\$2\\) ORDER BY created_at DESC LIMIT 100 OFFSET 0").
		WithArgs("available", "tenant-1").
		WillReturnRows(propertyRows(now, nil))

	properties, err := s.ListProperties(context.Background(), types.PropertyFilter{
		RentedBy: "tenant-1",
		Statuses: []types.PropertyStatus{types.PropertyAvailable},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(properties) != 1 {
		t.Errorf("expected 1 property, got %d", len(properties))
	}
}

func TestCreateApplicationDuplicatePending(t *testing.T) {
	s, mock := setupStorage(t)

	mock.ExpectQuery("INSERT INTO tenant_applications").
		WillReturnError(&pgconn.PgError{Code: pgErrCodeUniqueViolation, ConstraintName: "tenant_applications_one_pending"})

	_, err := s.CreateApplication(context.Background(), &types.Application{TenantID: "tenant-1", PropertyID: "prop-1"})
	if !errors.Is(err, ErrDuplicateKey) {
		t.Errorf("expected ErrDuplicateKey, got %v", err)
	}
}

func TestSetApplicationStatus(t *testing.T) {
	s, mock := setupStorage(t)
	now := time.Now()

	mock.ExpectExec("UPDATE tenant_applications SET status = \\$1, updated_at = \\$2 WHERE id = \\$3").
		WithArgs("approved", now, "app-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := s.SetApplicationStatus(context.Background(), "app-1", types.ApplicationApproved, now); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}

func TestCreateRentObligation(t *testing.T) {
	s, mock := setupStorage(t)
	now := time.Now()
	due := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("INSERT INTO rent_payments").
		WithArgs(sqlmock.AnyArg(), "tenant-1", "prop-1", 1200.0, due, "pending").
		WillReturnRows(sqlmock.NewRows(rentColumns).
			AddRow("rent-1", "tenant-1", "prop-1", 1200.0, due, "pending", "", "", nil, now))

	r, err := s.CreateRentObligation(context.Background(), &types.RentObligation{
		TenantID:   "tenant-1",
		PropertyID: "prop-1",
		Amount:     1200,
		DueDate:    due,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if r.Status != types.RentPending || !r.DueDate.Equal(due) || r.PaidAt != nil {
		t.Errorf("unexpected obligation %+v", r)
	}
}

func TestListRentObligationsJoinsProperty(t *testing.T) {
	s, mock := setupStorage(t)
	now := time.Now()

	columns := append(append([]string{}, rentColumns...), "title", "address", "landlord_id")
	mock.ExpectQuery("SELECT (.+) FROM rent_payments r JOIN properties p ON p.id = r.property_id WHERE r.tenant_id = \\$1").
		WithArgs("tenant-1").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("rent-1", "tenant-1", "prop-1", 1200.0, now, "pending", "", "", nil, now, "Flat", "1 Main St", "landlord-1"))

	statements, err := s.ListRentObligations(context.Background(), types.RentFilter{TenantID: "tenant-1"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(statements))
	}
	if statements[0].PropertyTitle != "Flat" || statements[0].LandlordID != "landlord-1" {
		t.Errorf("unexpected statement %+v", statements[0])
	}
}

func TestMarkRentObligationPaidTwice(t *testing.T) {
	s, mock := setupStorage(t)
	now := time.Now()

	mock.ExpectExec("UPDATE rent_payments SET (.+) WHERE id = \\$5 AND status = \\$6").
		WithArgs("paid", "credit_card", "txn_1", now, "rent-1", "pending").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := s.MarkRentObligationPaid(context.Background(), "rent-1", "credit_card", "txn_1", now)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSetMaintenanceStatus(t *testing.T) {
	s, mock := setupStorage(t)
	now := time.Now()

	mock.ExpectExec("UPDATE maintenance_requests SET status = \\$1, updated_at = \\$2 WHERE id = \\$3").
		WithArgs("in_progress", now, "req-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := s.SetMaintenanceStatus(context.Background(), "req-1", types.MaintenanceInProgress, now); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}
