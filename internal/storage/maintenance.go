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

var maintenanceColumns = []string{
	"id", "property_id", "tenant_id", "title", "description", "category",
	"priority", "status", "created_at", "updated_at",
}

func scanMaintenanceRequest(row rowScanner) (*types.MaintenanceRequest, error) {
	var m types.MaintenanceRequest
	err := row.Scan(
		&m.ID, &m.PropertyID, &m.TenantID, &m.Title, &m.Description, &m.Category,
		&m.Priority, &m.Status, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *Storage) CreateMaintenanceRequest(ctx context.Context, m *types.MaintenanceRequest) (*types.MaintenanceRequest, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateMaintenanceRequest")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate maintenance request ID: %w", err)
	}

	row := s.db.Statement(ctx).
		Insert("maintenance_requests").
		Columns("id", "property_id", "tenant_id", "title", "description", "category", "priority", "status").
		Values(id.String(), m.PropertyID, m.TenantID, m.Title, m.Description, m.Category, m.Priority, string(types.MaintenancePending)).
		Suffix("RETURNING " + strings.Join(maintenanceColumns, ", ")).
		QueryRowContext(ctx)

	created, err := scanMaintenanceRequest(row)
	if err != nil {
		return nil, translate(err, "insert maintenance request")
	}

	return created, nil
}

func (s *Storage) GetMaintenanceRequestByID(ctx context.Context, id string) (*types.MaintenanceRequest, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetMaintenanceRequestByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(maintenanceColumns...).
		From("maintenance_requests").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	m, err := scanMaintenanceRequest(row)
	if err != nil {
		return nil, translate(err, "get maintenance request")
	}
	return m, nil
}

func (s *Storage) ListMaintenanceRequests(ctx context.Context, filter types.MaintenanceFilter) ([]*types.MaintenanceRequest, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListMaintenanceRequests")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(prefixed("m", maintenanceColumns)...).
		From("maintenance_requests m").
		OrderBy("m.created_at DESC")

	if filter.LandlordID != "" {
		query = query.
			Join("properties p ON p.id = m.property_id").
			Where(sq.Eq{"p.landlord_id": filter.LandlordID})
	}
	if filter.TenantID != "" {
		query = query.Where(sq.Eq{"m.tenant_id": filter.TenantID})
	}
	if filter.PropertyID != "" {
		query = query.Where(sq.Eq{"m.property_id": filter.PropertyID})
	}

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list maintenance requests: %w", err)
	}
	defer rows.Close()

	requests := make([]*types.MaintenanceRequest, 0)
	for rows.Next() {
		m, err := scanMaintenanceRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan maintenance request: %w", err)
		}
		requests = append(requests, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return requests, nil
}

func (s *Storage) SetMaintenanceStatus(ctx context.Context, id string, status types.MaintenanceStatus, at time.Time) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetMaintenanceStatus")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("maintenance_requests").
		Set("status", string(status)).
		Set("updated_at", at).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	return expectOne(res, err, "update maintenance status")
}
