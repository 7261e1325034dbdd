// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/property-service/internal/types"
)

var rentColumns = []string{
	"id", "tenant_id", "property_id", "amount", "due_date", "status",
	"payment_method", "transaction_id", "paid_at", "created_at",
}

func scanRentObligation(row rowScanner, extra ...any) (*types.RentObligation, error) {
	var r types.RentObligation
	dest := []any{
		&r.ID, &r.TenantID, &r.PropertyID, &r.Amount, &r.DueDate, &r.Status,
		&r.PaymentMethod, &r.TransactionID, &r.PaidAt, &r.CreatedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *Storage) CreateRentObligation(ctx context.Context, r *types.RentObligation) (*types.RentObligation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateRentObligation")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate rent obligation ID: %w", err)
	}

	status := r.Status
	if status == "" {
		status = types.RentPending
	}

	row := s.db.Statement(ctx).
		Insert("rent_payments").
		Columns("id", "tenant_id", "property_id", "amount", "due_date", "status").
		Values(id.String(), r.TenantID, r.PropertyID, r.Amount, r.DueDate, string(status)).
		Suffix("RETURNING " + strings.Join(rentColumns, ", ")).
		QueryRowContext(ctx)

	created, err := scanRentObligation(row)
	if err != nil {
		return nil, translate(err, "insert rent obligation")
	}

	return created, nil
}

func (s *Storage) GetRentObligationForUpdate(ctx context.Context, id string) (*types.RentObligation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetRentObligationForUpdate")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(rentColumns...).
		From("rent_payments").
		Where(sq.Eq{"id": id}).
		Suffix("FOR UPDATE").
		QueryRowContext(ctx)

	r, err := scanRentObligation(row)
	if err != nil {
		return nil, translate(err, "get rent obligation")
	}
	return r, nil
}

// ListRentObligations returns obligations joined with the title, address and
// landlord of their property, latest due date first.
func (s *Storage) ListRentObligations(ctx context.Context, filter types.RentFilter) ([]*types.RentStatement, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListRentObligations")
	defer span.End()

	columns := append(prefixed("r", rentColumns), "p.title", "p.address", "p.landlord_id")

	query := s.db.Statement(ctx).
		Select(columns...).
		From("rent_payments r").
		Join("properties p ON p.id = r.property_id").
		OrderBy("r.due_date DESC")

	if filter.TenantID != "" {
		query = query.Where(sq.Eq{"r.tenant_id": filter.TenantID})
	}
	if filter.PropertyID != "" {
		query = query.Where(sq.Eq{"r.property_id": filter.PropertyID})
	}
	if filter.Status != "" {
		query = query.Where(sq.Eq{"r.status": string(filter.Status)})
	}

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rent obligations: %w", err)
	}
	defer rows.Close()

	statements := make([]*types.RentStatement, 0)
	for rows.Next() {
		st := new(types.RentStatement)
		r, err := scanRentObligation(rows, &st.PropertyTitle, &st.PropertyAddress, &st.LandlordID)
		if err != nil {
			return nil, fmt.Errorf("failed to scan rent obligation: %w", err)
		}
		st.RentObligation = *r
		statements = append(statements, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return statements, nil
}

// MarkRentObligationPaid settles a pending obligation, a settled or missing
// one yields ErrNotFound.
func (s *Storage) MarkRentObligationPaid(ctx context.Context, id, method, transactionID string, at time.Time) error {
	ctx, span := s.tracer.Start(ctx, "storage.MarkRentObligationPaid")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("rent_payments").
		Set("status", string(types.RentPaid)).
		Set("payment_method", method).
		Set("transaction_id", transactionID).
		Set("paid_at", at).
		Where(sq.Eq{"id": id, "status": string(types.RentPending)}).
		ExecContext(ctx)

	return expectOne(res, err, "mark rent obligation paid")
}
