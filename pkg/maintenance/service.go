// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package maintenance

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/canonical/property-service/internal/events"
	"github.com/canonical/property-service/internal/logging"
	"github.com/canonical/property-service/internal/monitoring"
	"github.com/canonical/property-service/internal/storage"
	"github.com/canonical/property-service/internal/tracing"
	"github.com/canonical/property-service/internal/types"
	"github.com/canonical/property-service/pkg/authentication"
)

var (
	ErrUnauthenticated  = errors.New("unauthenticated")
	ErrForbidden        = errors.New("forbidden")
	ErrNotRenting       = errors.New("property is not rented by the caller")
	ErrPropertyNotFound = errors.New("property not found")
	ErrRequestNotFound  = errors.New("maintenance request not found")
	ErrInvalidRequest   = errors.New("invalid maintenance request")
)

type Service struct {
	storage StorageInterface
	authz   AuthzInterface
	events  events.PublisherInterface

	now func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Submit files a request for a property the caller currently rents.
func (s *Service) Submit(ctx context.Context, request *types.MaintenanceRequest) (*types.MaintenanceRequest, error) {
	ctx, span := s.tracer.Start(ctx, "maintenance.Service.Submit")
	defer span.End()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}

	request.Title = strings.TrimSpace(request.Title)
	if request.Title == "" {
		return nil, ErrInvalidRequest
	}

	property, err := s.storage.GetPropertyByID(ctx, request.PropertyID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrPropertyNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to submit maintenance request: %w", err)
	}

	if !property.Occupied() || *property.TenantID != principal.ID {
		return nil, ErrNotRenting
	}

	request.TenantID = principal.ID

	created, err := s.storage.CreateMaintenanceRequest(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("failed to submit maintenance request: %w", err)
	}

	s.publish(ctx, events.KindMaintenanceCreated, created, property.LandlordID)

	return created, nil
}

// List returns the caller's requests as tenant, or the requests on the
// caller's properties as landlord.
func (s *Service) List(ctx context.Context, propertyID string) ([]*types.MaintenanceRequest, error) {
	ctx, span := s.tracer.Start(ctx, "maintenance.Service.List")
	defer span.End()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}

	filter := types.MaintenanceFilter{PropertyID: propertyID}

	switch {
	case principal.IsLandlord():
		filter.LandlordID = principal.ID
	case principal.IsTenant():
		filter.TenantID = principal.ID
	default:
		return nil, ErrForbidden
	}

	return s.storage.ListMaintenanceRequests(ctx, filter)
}

func (s *Service) UpdateStatus(ctx context.Context, id string, status types.MaintenanceStatus) (*types.MaintenanceRequest, error) {
	ctx, span := s.tracer.Start(ctx, "maintenance.Service.UpdateStatus")
	defer span.End()

	if !status.Valid() {
		return nil, ErrInvalidRequest
	}

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}

	request, err := s.storage.GetMaintenanceRequestByID(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrRequestNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to update maintenance request: %w", err)
	}

	property, err := s.storage.GetPropertyByID(ctx, request.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to update maintenance request: %w", err)
	}

	if property.LandlordID != principal.ID {
		s.logger.Security().AuthzFailure(principal.ID, "maintenance:"+id)
		return nil, ErrForbidden
	}

	allowed, err := s.authz.CanManage(ctx, principal.ID, property.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check manage permission: %w", err)
	}

	if !allowed {
		s.logger.Security().AuthzFailure(principal.ID, "maintenance:"+id)
		return nil, ErrForbidden
	}

	at := s.now()
	if err := s.storage.SetMaintenanceStatus(ctx, id, status, at); err != nil {
		return nil, fmt.Errorf("failed to update maintenance request: %w", err)
	}

	request.Status = status
	request.UpdatedAt = at

	s.publish(ctx, events.KindMaintenanceUpdated, request, property.LandlordID)

	return request, nil
}

func (s *Service) publish(ctx context.Context, kind events.Kind, m *types.MaintenanceRequest, landlordID string) {
	s.events.Publish(ctx, events.ChangeEvent{
		Kind:       kind,
		Entity:     "maintenance_request",
		EntityID:   m.ID,
		Status:     string(m.Status),
		PropertyID: m.PropertyID,
		TenantID:   m.TenantID,
		LandlordID: landlordID,
	})
}

func NewService(
	storage StorageInterface,
	authz AuthzInterface,
	publisher events.PublisherInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := new(Service)

	s.storage = storage
	s.authz = authz
	s.events = publisher
	s.now = func() time.Time { return time.Now().UTC() }

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
