// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package rent

import (
	"context"
	"errors"
	"fmt"
	"slices"
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

const DefaultPaymentMethod = "credit_card"

var paymentMethods = []string{"credit_card", "debit_card", "bank_transfer"}

type Service struct {
	storage  StorageInterface
	tx       TxRunnerInterface
	profiles ProfileReaderInterface
	events   events.PublisherInterface

	now func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// ListForTenant returns the caller's obligations, newest due date first, with
// the landlord contact attached.
func (s *Service) ListForTenant(ctx context.Context) ([]*types.RentStatement, error) {
	ctx, span := s.tracer.Start(ctx, "rent.Service.ListForTenant")
	defer span.End()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}

	statements, err := s.storage.ListRentObligations(ctx, types.RentFilter{TenantID: principal.ID})
	if err != nil {
		return nil, fmt.Errorf("failed to list rent obligations: %w", err)
	}

	landlords := make([]string, 0, len(statements))
	for _, st := range statements {
		if st.LandlordID != "" && !slices.Contains(landlords, st.LandlordID) {
			landlords = append(landlords, st.LandlordID)
		}
	}

	profiles := map[string]*types.Profile{}
	if len(landlords) > 0 {
		profiles, err = s.profiles.GetProfiles(ctx, landlords)
		if err != nil {
			// contact details are decoration, the ledger is still returned
			s.logger.Warnf("failed to fetch landlord profiles: %v", err)
			profiles = map[string]*types.Profile{}
		}
	}

	now := s.now()
	for _, st := range statements {
		st.Landlord = types.ContactFromProfile(profiles[st.LandlordID])
		st.Overdue = st.Status == types.RentPending && st.DueDate.Before(now)
	}

	return statements, nil
}

// Pay settles a pending obligation of the caller. The row is locked for the
// duration of the check so a concurrent payment cannot settle it twice.
func (s *Service) Pay(ctx context.Context, obligationID, method string) (*types.RentObligation, error) {
	ctx, span := s.tracer.Start(ctx, "rent.Service.Pay")
	defer span.End()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}

	method = strings.TrimSpace(method)
	if method == "" {
		method = DefaultPaymentMethod
	}

	if !slices.Contains(paymentMethods, method) {
		return nil, ErrInvalidMethod
	}

	var obligation *types.RentObligation

	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		o, err := s.storage.GetRentObligationForUpdate(ctx, obligationID)
		if errors.Is(err, storage.ErrNotFound) {
			return ErrObligationNotFound
		}

		if err != nil {
			return err
		}

		if o.TenantID != principal.ID {
			return ErrForbidden
		}

		if o.Status == types.RentPaid {
			return ErrAlreadyPaid
		}

		at := s.now()
		txn := fmt.Sprintf("txn_%d", at.UnixMilli())

		if err := s.storage.MarkRentObligationPaid(ctx, o.ID, method, txn, at); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return ErrAlreadyPaid
			}
			return err
		}

		o.Status = types.RentPaid
		o.PaymentMethod = method
		o.TransactionID = txn
		o.PaidAt = &at
		obligation = o

		return nil
	})

	if err != nil {
		if errors.Is(err, ErrForbidden) {
			s.logger.Security().AuthzFailure(principal.ID, "rent:"+obligationID)
		}
		return nil, err
	}

	s.events.Publish(ctx, events.ChangeEvent{
		Kind:       events.KindRentPaid,
		Entity:     "rent_payment",
		EntityID:   obligation.ID,
		Status:     string(obligation.Status),
		PropertyID: obligation.PropertyID,
		TenantID:   obligation.TenantID,
	})

	return obligation, nil
}

func NewService(
	storage StorageInterface,
	tx TxRunnerInterface,
	profiles ProfileReaderInterface,
	publisher events.PublisherInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := new(Service)

	s.storage = storage
	s.tx = tx
	s.profiles = profiles
	s.events = publisher
	s.now = func() time.Time { return time.Now().UTC() }

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
