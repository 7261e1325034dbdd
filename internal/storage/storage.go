// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/property-service/internal/db"
	"github.com/canonical/property-service/internal/logging"
	"github.com/canonical/property-service/internal/monitoring"
	"github.com/canonical/property-service/internal/tracing"
	"github.com/canonical/property-service/internal/types"
)

const (
	displayIDPrefix        = "PROP-"
	displayIDConstraint    = "properties_display_id_key"
	maxDisplayIDCollisions = 5
)

var _ StorageInterface = (*Storage)(nil)

var propertyColumns = []string{
	"id", "display_id", "title", "address", "description", "rent",
	"status", "landlord_id", "tenant_id", "created_at", "updated_at",
}

type rowScanner interface {
	Scan(dest ...any) error
}

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

// NewDisplayID returns a public property reference such as PROP-1A2B3C4D.
func NewDisplayID() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return displayIDPrefix + strings.ToUpper(hex[:8])
}

func scanProperty(row rowScanner) (*types.Property, error) {
	var p types.Property
	err := row.Scan(
		&p.ID, &p.DisplayID, &p.Title, &p.Address, &p.Description, &p.Rent,
		&p.Status, &p.LandlordID, &p.TenantID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func prefixed(alias string, columns []string) []string {
	out := make([]string, 0, len(columns))
	for _, c := range columns {
		out = append(out, alias+"."+c)
	}
	return out
}

func (s *Storage) CreateProperty(ctx context.Context, p *types.Property) (*types.Property, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateProperty")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate property ID: %w", err)
	}

	status := p.Status
	if status == "" {
		status = types.PropertyAvailable
	}

	for attempt := 1; ; attempt++ {
		row := s.db.Statement(ctx).
			Insert("properties").
			Columns("id", "display_id", "title", "address", "description", "rent", "status", "landlord_id").
			Values(id.String(), NewDisplayID(), p.Title, p.Address, p.Description, p.Rent, string(status), p.LandlordID).
			Suffix("RETURNING " + strings.Join(propertyColumns, ", ")).
			QueryRowContext(ctx)

		created, err := scanProperty(row)
		if err == nil {
			return created, nil
		}

		if violatedConstraint(err) == displayIDConstraint && attempt < maxDisplayIDCollisions {
			s.logger.Debugf("display id collision, retrying (attempt %d)", attempt)
			continue
		}

		return nil, translate(err, "insert property")
	}
}

func (s *Storage) getProperty(ctx context.Context, where sq.Sqlizer, forUpdate bool) (*types.Property, error) {
	query := s.db.Statement(ctx).
		Select(propertyColumns...).
		From("properties").
		Where(where)

	if forUpdate {
		query = query.Suffix("FOR UPDATE")
	}

	p, err := scanProperty(query.QueryRowContext(ctx))
	if err != nil {
		return nil, translate(err, "get property")
	}
	return p, nil
}

func (s *Storage) GetPropertyByID(ctx context.Context, id string) (*types.Property, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetPropertyByID")
	defer span.End()

	return s.getProperty(ctx, sq.Eq{"id": id}, false)
}

// GetPropertyForUpdate locks the row until the surrounding transaction ends.
func (s *Storage) GetPropertyForUpdate(ctx context.Context, id string) (*types.Property, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetPropertyForUpdate")
	defer span.End()

	return s.getProperty(ctx, sq.Eq{"id": id}, true)
}

func (s *Storage) GetPropertyByDisplayID(ctx context.Context, displayID string) (*types.Property, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetPropertyByDisplayID")
	defer span.End()

	return s.getProperty(ctx, sq.Eq{"display_id": strings.ToUpper(strings.TrimSpace(displayID))}, false)
}

func (s *Storage) GetPropertyRent(ctx context.Context, id string) (float64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetPropertyRent")
	defer span.End()

	var rent float64
	err := s.db.Statement(ctx).
		Select("rent").
		From("properties").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&rent)

	if err != nil {
		return 0, translate(err, "get property rent")
	}
	return rent, nil
}

func (s *Storage) ListProperties(ctx context.Context, filter types.PropertyFilter) ([]*types.Property, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListProperties")
	defer span.End()

	pageSize := db.PageSize(filter.Size)

	query := s.db.Statement(ctx).
		Select(propertyColumns...).
		From("properties").
		OrderBy("created_at DESC").
		Limit(pageSize).
		Offset(db.Offset(filter.Page, pageSize))

	if filter.LandlordID != "" {
		query = query.Where(sq.Eq{"landlord_id": filter.LandlordID})
	}

	statuses := make([]string, 0, len(filter.Statuses))
	for _, st := range filter.Statuses {
		statuses = append(statuses, string(st))
	}

	switch {
	case len(statuses) > 0 && filter.RentedBy != "":
		query = query.Where(sq.Or{sq.Eq{"status": statuses}, sq.Eq{"tenant_id": filter.RentedBy}})
	case len(statuses) > 0:
		query = query.Where(sq.Eq{"status": statuses})
	case filter.RentedBy != "":
		query = query.Where(sq.Eq{"tenant_id": filter.RentedBy})
	}

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	defer rows.Close()

	properties := make([]*types.Property, 0)
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan property: %w", err)
		}
		properties = append(properties, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return properties, nil
}

// UpdateProperty follows PATCH semantics: only the fields named in paths are
// written, unknown paths are ignored.
func (s *Storage) UpdateProperty(ctx context.Context, p *types.Property, paths []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateProperty")
	defer span.End()

	updateMap := make(map[string]any)
	for _, path := range paths {
		switch path {
		case "title":
			updateMap["title"] = p.Title
		case "address":
			updateMap["address"] = p.Address
		case "description":
			updateMap["description"] = p.Description
		case "rent":
			updateMap["rent"] = p.Rent
		case "status":
			updateMap["status"] = string(p.Status)
		}
	}

	if len(updateMap) == 0 {
		return nil
	}
	updateMap["updated_at"] = p.UpdatedAt

	res, err := s.db.Statement(ctx).
		Update("properties").
		SetMap(updateMap).
		Where(sq.Eq{"id": p.ID}).
		ExecContext(ctx)

	return expectOne(res, err, "update property")
}

// BindTenant marks the property occupied by tenantID.
func (s *Storage) BindTenant(ctx context.Context, propertyID, tenantID string, at time.Time) error {
	ctx, span := s.tracer.Start(ctx, "storage.BindTenant")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("properties").
		Set("tenant_id", tenantID).
		Set("status", string(types.PropertyOccupied)).
		Set("updated_at", at).
		Where(sq.Eq{"id": propertyID}).
		ExecContext(ctx)

	return expectOne(res, err, "bind tenant")
}

// ClearTenant detaches the current tenant and makes the property available.
func (s *Storage) ClearTenant(ctx context.Context, propertyID string, at time.Time) error {
	ctx, span := s.tracer.Start(ctx, "storage.ClearTenant")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("properties").
		Set("tenant_id", nil).
		Set("status", string(types.PropertyAvailable)).
		Set("updated_at", at).
		Where(sq.Eq{"id": propertyID}).
		ExecContext(ctx)

	return expectOne(res, err, "clear tenant")
}

func (s *Storage) DeleteProperty(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteProperty")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("properties").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	return expectOne(res, err, "delete property")
}
