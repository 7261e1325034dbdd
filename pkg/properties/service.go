// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package properties

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/canonical/property-service/internal/events"
	"github.com/canonical/property-service/internal/kratos"
	"github.com/canonical/property-service/internal/logging"
	"github.com/canonical/property-service/internal/monitoring"
	"github.com/canonical/property-service/internal/storage"
	"github.com/canonical/property-service/internal/tracing"
	"github.com/canonical/property-service/internal/types"
	"github.com/canonical/property-service/pkg/authentication"
)

// summaryPageSize is the largest page the storage layer serves.
const summaryPageSize int64 = 500

type Service struct {
	storage  StorageInterface
	tx       TxRunnerInterface
	authz    AuthzInterface
	profiles ProfileReaderInterface
	events   events.PublisherInterface

	now func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) Create(ctx context.Context, p *types.Property) (*types.Property, error) {
	ctx, span := s.tracer.Start(ctx, "properties.Service.Create")
	defer span.End()

	principal, err := s.landlord(ctx)
	if err != nil {
		return nil, err
	}

	p.Title = strings.TrimSpace(p.Title)
	p.Address = strings.TrimSpace(p.Address)

	if p.Title == "" || p.Address == "" || p.Rent < 0 {
		return nil, ErrInvalidProperty
	}

	if p.Status == "" {
		p.Status = types.PropertyAvailable
	}

	if p.Status != types.PropertyAvailable && p.Status != types.PropertyMaintenance {
		return nil, fmt.Errorf("%w: status %q", ErrInvalidProperty, p.Status)
	}

	p.LandlordID = principal.ID
	p.TenantID = nil

	created, err := s.storage.CreateProperty(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("failed to create property: %w", err)
	}

	if err := s.authz.AssignLandlord(ctx, created.ID, principal.ID); err != nil {
		s.logger.Errorf("failed to assign landlord %s to property %s: %v", principal.ID, created.ID, err)
	}

	s.publish(ctx, events.KindPropertyCreated, created, "")
	s.logger.Security().AdminAction(principal.ID, "create", "property", created.ID)

	return created, nil
}

// List returns the landlord's own properties, or for a tenant the properties
// open for applications plus the ones they rent.
func (s *Service) List(ctx context.Context, page, size int64) ([]*types.Property, error) {
	ctx, span := s.tracer.Start(ctx, "properties.Service.List")
	defer span.End()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}

	filter := types.PropertyFilter{Page: page, Size: size}

	switch {
	case principal.IsLandlord():
		filter.LandlordID = principal.ID
	case principal.IsTenant():
		filter.Statuses = []types.PropertyStatus{types.PropertyAvailable}
		filter.RentedBy = principal.ID
	default:
		return nil, ErrForbidden
	}

	return s.storage.ListProperties(ctx, filter)
}

// Update applies the fields named in paths. Occupancy is owned by the review
// and tenant removal workflows, so the status of an occupied property cannot
// be changed here and occupied cannot be set directly.
func (s *Service) Update(ctx context.Context, p *types.Property, paths []string) (*types.Property, error) {
	ctx, span := s.tracer.Start(ctx, "properties.Service.Update")
	defer span.End()

	principal, err := s.landlord(ctx)
	if err != nil {
		return nil, err
	}

	var updated *types.Property

	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		current, err := s.lockOwned(ctx, principal, p.ID)
		if err != nil {
			return err
		}

		for _, path := range paths {
			switch path {
			case "title":
				current.Title = strings.TrimSpace(p.Title)
				if current.Title == "" {
					return fmt.Errorf("%w: empty title", ErrInvalidProperty)
				}
			case "address":
				current.Address = strings.TrimSpace(p.Address)
				if current.Address == "" {
					return fmt.Errorf("%w: empty address", ErrInvalidProperty)
				}
			case "description":
				current.Description = p.Description
			case "rent":
				if p.Rent < 0 {
					return fmt.Errorf("%w: negative rent", ErrInvalidProperty)
				}
				current.Rent = p.Rent
			case "status":
				if current.Occupied() {
					return ErrPropertyOccupied
				}
				if p.Status != types.PropertyAvailable && p.Status != types.PropertyMaintenance {
					return fmt.Errorf("%w: status %q", ErrInvalidProperty, p.Status)
				}
				current.Status = p.Status
			default:
				return fmt.Errorf("%w: unknown field %q", ErrInvalidProperty, path)
			}
		}

		current.UpdatedAt = s.now()

		if err := s.storage.UpdateProperty(ctx, current, paths); err != nil {
			return err
		}

		updated = current
		return nil
	})

	if err != nil {
		return nil, s.wrap(err, "failed to update property")
	}

	s.publish(ctx, events.KindPropertyUpdated, updated, "")

	return updated, nil
}

// Delete removes a vacant property together with its applications and
// ledger history.
func (s *Service) Delete(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "properties.Service.Delete")
	defer span.End()

	principal, err := s.landlord(ctx)
	if err != nil {
		return err
	}

	var deleted *types.Property

	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		p, err := s.lockOwned(ctx, principal, id)
		if err != nil {
			return err
		}

		if p.Occupied() {
			return ErrPropertyOccupied
		}

		deleted = p
		return s.storage.DeleteProperty(ctx, id)
	})

	if err != nil {
		return s.wrap(err, "failed to delete property")
	}

	if err := s.authz.DeleteProperty(ctx, id); err != nil {
		s.logger.Errorf("failed to delete relations of property %s: %v", id, err)
	}

	s.publish(ctx, events.KindPropertyDeleted, deleted, "")
	s.logger.Security().AdminAction(principal.ID, "delete", "property", id)

	return nil
}

// RemoveTenant detaches the current tenant and makes the property available
// again. Rent obligations of the former tenant stay in the ledger as they are.
func (s *Service) RemoveTenant(ctx context.Context, id string) (*types.Property, error) {
	ctx, span := s.tracer.Start(ctx, "properties.Service.RemoveTenant")
	defer span.End()

	principal, err := s.landlord(ctx)
	if err != nil {
		return nil, err
	}

	var (
		property *types.Property
		tenantID string
	)

	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		p, err := s.lockOwned(ctx, principal, id)
		if err != nil {
			return err
		}

		if !p.Occupied() {
			return ErrNoTenant
		}

		now := s.now()
		if err := s.storage.ClearTenant(ctx, p.ID, now); err != nil {
			return err
		}

		tenantID = *p.TenantID
		p.TenantID = nil
		p.Status = types.PropertyAvailable
		p.UpdatedAt = now
		property = p

		return nil
	})

	if err != nil {
		return nil, s.wrap(err, "failed to remove tenant")
	}

	if err := s.authz.RemoveTenant(ctx, id, tenantID); err != nil {
		s.logger.Errorf("failed to remove tenant %s from property %s: %v", tenantID, id, err)
	}

	s.publish(ctx, events.KindTenantRemoved, property, tenantID)
	s.logger.Security().AdminAction(principal.ID, "remove_tenant", "property", id)

	return property, nil
}

// Verify looks a property up by display id for anyone holding it. A missing
// or incomplete landlord profile does not fail the lookup, the affected
// contact fields carry a placeholder instead.
func (s *Service) Verify(ctx context.Context, displayID string) (*Verification, error) {
	ctx, span := s.tracer.Start(ctx, "properties.Service.Verify")
	defer span.End()

	displayID = strings.ToUpper(strings.TrimSpace(displayID))

	p, err := s.storage.GetPropertyByDisplayID(ctx, displayID)
	if errors.Is(err, storage.ErrNotFound) {
		return notFound(displayID), nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to verify property: %w", err)
	}

	var profile *types.Profile
	if p.LandlordID != "" {
		profile, err = s.profiles.GetProfile(ctx, p.LandlordID)
		if err != nil && !errors.Is(err, kratos.ErrProfileNotFound) {
			s.logger.Warnf("failed to fetch landlord profile %s: %v", p.LandlordID, err)
		}
	}

	description := p.Description
	if description == "" {
		description = noDescription
	}

	updated := p.UpdatedAt

	return &Verification{
		DisplayID:   p.DisplayID,
		Status:      Verified,
		Title:       p.Title,
		Address:     p.Address,
		Description: description,
		Rent:        p.Rent,
		Landlord:    types.ContactFromProfile(profile),
		LastUpdated: &updated,
	}, nil
}

// Summary counts the caller's properties by status and adds up the rent of
// the occupied ones.
func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	ctx, span := s.tracer.Start(ctx, "properties.Service.Summary")
	defer span.End()

	principal, err := s.landlord(ctx)
	if err != nil {
		return nil, err
	}

	summary := new(Summary)

	for page := int64(1); ; page++ {
		properties, err := s.storage.ListProperties(ctx, types.PropertyFilter{LandlordID: principal.ID, Page: page, Size: summaryPageSize})
		if err != nil {
			return nil, fmt.Errorf("failed to summarize properties: %w", err)
		}

		for _, p := range properties {
			summary.Total++

			switch p.Status {
			case types.PropertyOccupied:
				summary.Occupied++
				if !p.Occupied() {
					s.logger.Errorf("property %s is occupied without a tenant", p.ID)
					continue
				}
				summary.MonthlyIncome += p.Rent
			case types.PropertyAvailable:
				summary.Available++
			case types.PropertyMaintenance:
				summary.Maintenance++
			default:
				s.logger.Errorf("property %s has unknown status %q", p.ID, p.Status)
			}
		}

		if int64(len(properties)) < summaryPageSize {
			break
		}
	}

	return summary, nil
}

func (s *Service) landlord(ctx context.Context) (authentication.Principal, error) {
	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		return principal, ErrUnauthenticated
	}

	if !principal.IsLandlord() {
		return principal, ErrForbidden
	}

	return principal, nil
}

// lockOwned locks the property row and checks that the caller may manage it.
func (s *Service) lockOwned(ctx context.Context, principal authentication.Principal, id string) (*types.Property, error) {
	p, err := s.storage.GetPropertyForUpdate(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrPropertyNotFound
	}

	if err != nil {
		return nil, err
	}

	if p.LandlordID != principal.ID {
		s.logger.Security().AuthzFailure(principal.ID, "property:"+id)
		return nil, ErrForbidden
	}

	allowed, err := s.authz.CanManage(ctx, principal.ID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to check manage permission: %w", err)
	}

	if !allowed {
		s.logger.Security().AuthzFailure(principal.ID, "property:"+id)
		return nil, ErrForbidden
	}

	return p, nil
}

func (s *Service) wrap(err error, message string) error {
	for _, target := range []error{ErrPropertyNotFound, ErrForbidden, ErrInvalidProperty, ErrPropertyOccupied, ErrNoTenant} {
		if errors.Is(err, target) {
			return err
		}
	}
	return fmt.Errorf("%s: %w", message, err)
}

func (s *Service) publish(ctx context.Context, kind events.Kind, p *types.Property, tenantID string) {
	if tenantID == "" && p.TenantID != nil {
		tenantID = *p.TenantID
	}

	s.events.Publish(ctx, events.ChangeEvent{
		Kind:       kind,
		Entity:     "property",
		EntityID:   p.ID,
		Status:     string(p.Status),
		PropertyID: p.ID,
		TenantID:   tenantID,
		LandlordID: p.LandlordID,
	})
}

func NewService(
	storage StorageInterface,
	tx TxRunnerInterface,
	authz AuthzInterface,
	profiles ProfileReaderInterface,
	publisher events.PublisherInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := new(Service)

	s.storage = storage
	s.tx = tx
	s.authz = authz
	s.profiles = profiles
	s.events = publisher
	s.now = func() time.Time { return time.Now().UTC() }

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
