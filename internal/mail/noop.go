// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"context"

	"github.com/canonical/property-service/internal/logging"
)

// NoopSender drops mail when no provider key is configured
type NoopSender struct {
	logger logging.LoggerInterface
}

func (s *NoopSender) SendWelcome(_ context.Context, w Welcome) error {
	s.logger.Debugf("mail disabled, not sending welcome email to %s", w.Email)
	return nil
}

func NewNoopSender(logger logging.LoggerInterface) *NoopSender {
	return &NoopSender{logger: logger}
}

// NoopValidator has no verdict on any address
type NoopValidator struct{}

func (NoopValidator) Validate(context.Context, string) (*Validation, error) {
	return nil, nil
}
