// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package applications

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
	"github.com/canonical/property-service/pkg/rent"
)

type Service struct {
	storage StorageInterface
	tx      TxRunnerInterface
	authz   AuthzInterface
	events  events.PublisherInterface

	now func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Submit files an application of the caller for an available property.
func (s *Service) Submit(ctx context.Context, propertyID, message string) (*types.Application, error) {
	ctx, span := s.tracer.Start(ctx, "applications.Service.Submit")
	defer span.End()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}

	if !principal.IsTenant() {
		return nil, ErrForbidden
	}

	property, err := s.storage.GetPropertyByID(ctx, propertyID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrPropertyNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to submit application: %w", err)
	}

	if property.Status != types.PropertyAvailable || property.Occupied() {
		return nil, ErrPropertyUnavailable
	}

	application, err := s.storage.CreateApplication(ctx, &types.Application{
		TenantID:   principal.ID,
		PropertyID: property.ID,
		Message:    strings.TrimSpace(message),
	})

	if errors.Is(err, storage.ErrDuplicateKey) {
		return nil, ErrDuplicateApplication
	}

	if err != nil {
		return nil, fmt.Errorf("failed to submit application: %w", err)
	}

	s.events.Publish(ctx, events.ChangeEvent{
		Kind:       events.KindApplicationCreated,
		Entity:     "application",
		EntityID:   application.ID,
		Status:     string(application.Status),
		PropertyID: property.ID,
		TenantID:   principal.ID,
		LandlordID: property.LandlordID,
	})

	return application, nil
}

func (s *Service) ListForTenant(ctx context.Context) ([]*types.Application, error) {
	ctx, span := s.tracer.Start(ctx, "applications.Service.ListForTenant")
	defer span.End()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}

	return s.storage.ListApplications(ctx, types.ApplicationFilter{TenantID: principal.ID})
}

// ListForLandlord returns the applications on the caller's properties,
// optionally narrowed to one property.
func (s *Service) ListForLandlord(ctx context.Context, propertyID string) ([]*types.Application, error) {
	ctx, span := s.tracer.Start(ctx, "applications.Service.ListForLandlord")
	defer span.End()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}

	return s.storage.ListApplications(ctx, types.ApplicationFilter{LandlordID: principal.ID, PropertyID: propertyID})
}

// Review records the landlord's decision on a pending application.
//
// The decision and, for an approval, the occupancy binding are committed in
// one transaction holding row locks on the application and the property, so
// concurrent reviews on the same property are serialized and a decided
// application cannot be reviewed again. The rent obligation is seeded after
// the commit with the rent read inside the transaction; a failed insert does
// not undo the binding and is reported as a partial success.
func (s *Service) Review(ctx context.Context, applicationID string, decision types.ApplicationStatus) (*ReviewResult, error) {
	ctx, span := s.tracer.Start(ctx, "applications.Service.Review")
	defer span.End()

	if decision != types.ApplicationApproved && decision != types.ApplicationRejected {
		return nil, ErrInvalidDecision
	}

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}

	var (
		application *types.Application
		property    *types.Property
		amount      float64
	)

	now := s.now()

	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		a, err := s.storage.GetApplicationForUpdate(ctx, applicationID)
		if errors.Is(err, storage.ErrNotFound) {
			return ErrApplicationNotFound
		}

		if err != nil {
			return err
		}

		if a.Status.Terminal() {
			return ErrAlreadyDecided
		}

		p, err := s.storage.GetPropertyForUpdate(ctx, a.PropertyID)
		if errors.Is(err, storage.ErrNotFound) {
			return ErrPropertyNotFound
		}

		if err != nil {
			return err
		}

		if err := s.authorize(ctx, principal, p); err != nil {
			return err
		}

		if decision == types.ApplicationApproved && (p.Status != types.PropertyAvailable || p.Occupied()) {
			return ErrPropertyUnavailable
		}

		if err := s.storage.SetApplicationStatus(ctx, a.ID, decision, now); err != nil {
			return err
		}

		a.Status = decision
		a.UpdatedAt = now
		application = a

		if decision == types.ApplicationRejected {
			return nil
		}

		if err := s.storage.BindTenant(ctx, p.ID, a.TenantID, now); err != nil {
			return err
		}

		tenantID := a.TenantID
		p.TenantID = &tenantID
		p.Status = types.PropertyOccupied
		p.UpdatedAt = now
		property = p

		// the listed rent may have changed since the application was filed
		amount, err = s.storage.GetPropertyRent(ctx, p.ID)
		return err
	})

	if err != nil {
		s.countOutcome(decision, "failed")

		if isReviewError(err) {
			return nil, err
		}

		return nil, fmt.Errorf("failed to %s application: %w", verb(decision), err)
	}

	result := &ReviewResult{Application: application, Outcome: FullySucceeded}

	s.events.Publish(ctx, events.ChangeEvent{
		Kind:       events.KindApplicationDecided,
		Entity:     "application",
		EntityID:   application.ID,
		Status:     string(decision),
		PropertyID: application.PropertyID,
		TenantID:   application.TenantID,
		LandlordID: principal.ID,
	})

	if decision == types.ApplicationApproved {
		result.Property = property
		s.seed(ctx, principal, result, amount, now)
	}

	s.countOutcome(decision, string(result.Outcome))
	s.logger.Security().AdminAction(principal.ID, string(decision), "application", application.ID)

	return result, nil
}

// seed runs the post-commit steps of an approval.
func (s *Service) seed(ctx context.Context, principal authentication.Principal, result *ReviewResult, amount float64, now time.Time) {
	application, property := result.Application, result.Property

	s.events.Publish(ctx, events.ChangeEvent{
		Kind:       events.KindTenantBound,
		Entity:     "property",
		EntityID:   property.ID,
		Status:     string(property.Status),
		PropertyID: property.ID,
		TenantID:   application.TenantID,
		LandlordID: principal.ID,
	})

	if err := s.authz.AssignTenant(ctx, property.ID, application.TenantID); err != nil {
		s.logger.Errorf("failed to assign tenant %s to property %s: %v", application.TenantID, property.ID, err)
	}

	obligation, err := s.storage.CreateRentObligation(ctx, &types.RentObligation{
		TenantID:   application.TenantID,
		PropertyID: property.ID,
		Amount:     amount,
		DueDate:    rent.NextDueDate(now),
		Status:     types.RentPending,
	})

	if err != nil {
		s.logger.Errorf("application %s approved without a rent obligation: %v", application.ID, err)
		result.Outcome = PartiallySucceeded
		result.MissingLedgerEntry = true
		return
	}

	result.RentObligation = obligation

	s.events.Publish(ctx, events.ChangeEvent{
		Kind:       events.KindRentCreated,
		Entity:     "rent_payment",
		EntityID:   obligation.ID,
		Status:     string(obligation.Status),
		PropertyID: property.ID,
		TenantID:   application.TenantID,
		LandlordID: principal.ID,
	})
}

func (s *Service) authorize(ctx context.Context, principal authentication.Principal, property *types.Property) error {
	if property.LandlordID != principal.ID {
		s.logger.Security().AuthzFailure(principal.ID, "property:"+property.ID)
		return ErrForbidden
	}

	allowed, err := s.authz.CanReview(ctx, principal.ID, property.ID)
	if err != nil {
		return fmt.Errorf("failed to check review permission: %w", err)
	}

	if !allowed {
		s.logger.Security().AuthzFailure(principal.ID, "property:"+property.ID)
		return ErrForbidden
	}

	return nil
}

func (s *Service) countOutcome(decision types.ApplicationStatus, outcome string) {
	if err := s.monitor.IncrementReviewOutcome(map[string]string{"decision": string(decision), "outcome": outcome}); err != nil {
		s.logger.Debugf("failed to count review outcome: %v", err)
	}
}

func isReviewError(err error) bool {
	for _, target := range []error{ErrApplicationNotFound, ErrPropertyNotFound, ErrAlreadyDecided, ErrForbidden, ErrPropertyUnavailable} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func verb(decision types.ApplicationStatus) string {
	if decision == types.ApplicationApproved {
		return "approve"
	}
	return "reject"
}

func NewService(
	storage StorageInterface,
	tx TxRunnerInterface,
	authz AuthzInterface,
	publisher events.PublisherInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := new(Service)

	s.storage = storage
	s.tx = tx
	s.authz = authz
	s.events = publisher
	s.now = func() time.Time { return time.Now().UTC() }

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
