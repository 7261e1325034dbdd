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

var applicationColumns = []string{
	"id", "tenant_id", "property_id", "status", "message", "created_at", "updated_at",
}

func scanApplication(row rowScanner) (*types.Application, error) {
	var a types.Application
	err := row.Scan(&a.ID, &a.TenantID, &a.PropertyID, &a.Status, &a.Message, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// CreateApplication stores a pending application. A second pending
// application from the same tenant for the same property is rejected with
// ErrDuplicateKey.
func (s *Storage) CreateApplication(ctx context.Context, a *types.Application) (*types.Application, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateApplication")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate application ID: %w", err)
	}

	row := s.db.Statement(ctx).
		Insert("tenant_applications").
		Columns("id", "tenant_id", "property_id", "status", "message").
		Values(id.String(), a.TenantID, a.PropertyID, string(types.ApplicationPending), a.Message).
		Suffix("RETURNING " + strings.Join(applicationColumns, ", ")).
		QueryRowContext(ctx)

	created, err := scanApplication(row)
	if err != nil {
		return nil, translate(err, "insert application")
	}

	return created, nil
}

func (s *Storage) getApplication(ctx context.Context, id string, forUpdate bool) (*types.Application, error) {
	query := s.db.Statement(ctx).
		Select(applicationColumns...).
		From("tenant_applications").
		Where(sq.Eq{"id": id})

	if forUpdate {
		query = query.Suffix("FOR UPDATE")
	}

	a, err := scanApplication(query.QueryRowContext(ctx))
	if err != nil {
		return nil, translate(err, "get application")
	}
	return a, nil
}

func (s *Storage) GetApplicationByID(ctx context.Context, id string) (*types.Application, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetApplicationByID")
	defer span.End()

	return s.getApplication(ctx, id, false)
}

// GetApplicationForUpdate locks the row until the surrounding transaction ends.
func (s *Storage) GetApplicationForUpdate(ctx context.Context, id string) (*types.Application, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetApplicationForUpdate")
	defer span.End()

	return s.getApplication(ctx, id, true)
}

func (s *Storage) ListApplications(ctx context.Context, filter types.ApplicationFilter) ([]*types.Application, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListApplications")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(prefixed("a", applicationColumns)...).
		From("tenant_applications a").
		OrderBy("a.created_at DESC")

	if filter.LandlordID != "" {
		query = query.
			Join("properties p ON p.id = a.property_id").
			Where(sq.Eq{"p.landlord_id": filter.LandlordID})
	}
	if filter.TenantID != "" {
		query = query.Where(sq.Eq{"a.tenant_id": filter.TenantID})
	}
	if filter.PropertyID != "" {
		query = query.Where(sq.Eq{"a.property_id": filter.PropertyID})
	}
	if filter.Status != "" {
		query = query.Where(sq.Eq{"a.status": string(filter.Status)})
	}

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	defer rows.Close()

	applications := make([]*types.Application, 0)
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		applications = append(applications, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return applications, nil
}

func (s *Storage) SetApplicationStatus(ctx context.Context, id string, status types.ApplicationStatus, at time.Time) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetApplicationStatus")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("tenant_applications").
		Set("status", string(status)).
		Set("updated_at", at).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	return expectOne(res, err, "update application status")
}
