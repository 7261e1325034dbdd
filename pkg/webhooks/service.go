// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"errors"
	"fmt"

	"github.com/ory/hydra/v2/oauth2"

	"github.com/canonical/property-service/internal/kratos"
	"github.com/canonical/property-service/internal/logging"
	"github.com/canonical/property-service/internal/mail"
	"github.com/canonical/property-service/internal/monitoring"
	"github.com/canonical/property-service/internal/tracing"
	"github.com/canonical/property-service/internal/types"
)

const (
	roleClaim       = "role"
	propertiesClaim = "properties"
)

type Service struct {
	authz    AuthorizerInterface
	profiles ProfileReaderInterface
	mailer   MailerInterface
	emails   EmailValidatorInterface
	tracer   tracing.TracingInterface
	monitor  monitoring.MonitorInterface
	logger   logging.LoggerInterface
}

func NewService(
	authz AuthorizerInterface,
	profiles ProfileReaderInterface,
	mailer MailerInterface,
	emails EmailValidatorInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		authz:    authz,
		profiles: profiles,
		mailer:   mailer,
		emails:   emails,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// HandleRegistration records the platform role chosen at sign up so that
// role checks can be answered by the authorization model, then greets the new
// user. An address the validator marks undeliverable stops the sign up, an
// unreachable validator or mail provider never does.
func (s *Service) HandleRegistration(ctx context.Context, identity *types.Profile) error {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.HandleRegistration")
	defer span.End()

	if identity == nil || identity.ID == "" {
		return ErrMissingIdentity
	}

	s.logger.Debugf("handling registration for identity %s with role %s", identity.ID, identity.Role)

	if !identity.Role.Valid() {
		return ErrInvalidRole
	}

	verdict, err := s.emails.Validate(ctx, identity.Email)
	switch {
	case err != nil:
		s.logger.Warnf("email validation unavailable for identity %s: %v", identity.ID, err)
	case verdict != nil && !verdict.IsValid:
		return fmt.Errorf("%w: %s", ErrUndeliverableEmail, verdict.Status)
	}

	if err := s.authz.AssignRole(ctx, identity.ID, string(identity.Role)); err != nil {
		return fmt.Errorf("failed to assign role in authz: %w", err)
	}

	s.logger.Security().AdminAction(identity.ID, "assign_role", "role", string(identity.Role))

	if identity.Email == "" {
		return nil
	}

	welcome := mail.Welcome{Email: identity.Email, Name: identity.Name, Role: identity.Role}
	if err := s.mailer.SendWelcome(ctx, welcome); err != nil {
		s.logger.Warnf("welcome email for identity %s failed: %v", identity.ID, err)
	}

	return nil
}

// HandleTokenHook adds the role and the ids of the properties the subject can
// see to both tokens. A missing profile only drops the role claim.
func (s *Service) HandleTokenHook(ctx context.Context, req *oauth2.TokenHookRequest) (*TokenHookResponse, error) {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.HandleTokenHook")
	defer span.End()

	if req == nil || req.Session == nil || req.Session.DefaultSession == nil || req.Session.DefaultSession.Subject == "" {
		return nil, ErrMissingSubject
	}

	subject := req.Session.DefaultSession.Subject
	s.logger.Debugf("handling token hook for subject %s", subject)

	claims := make(map[string]interface{})

	profile, err := s.profiles.GetProfile(ctx, subject)
	switch {
	case errors.Is(err, kratos.ErrProfileNotFound):
		s.logger.Debugf("no profile for subject %s, issuing token without role", subject)
	case err != nil:
		return nil, fmt.Errorf("failed to get profile: %w", err)
	case profile.Role.Valid():
		claims[roleClaim] = string(profile.Role)
	}

	properties, err := s.authz.ListViewableProperties(ctx, subject)
	if err != nil {
		return nil, fmt.Errorf("failed to list viewable properties: %w", err)
	}

	if properties == nil {
		properties = []string{}
	}
	claims[propertiesClaim] = properties

	resp := new(TokenHookResponse)
	resp.Session.IDToken = claims
	resp.Session.AccessToken = claims

	return resp, nil
}
