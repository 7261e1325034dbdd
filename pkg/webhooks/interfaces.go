// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"

	"github.com/ory/hydra/v2/oauth2"

	"github.com/canonical/property-service/internal/mail"
	"github.com/canonical/property-service/internal/types"
)

type ServiceInterface interface {
	HandleRegistration(context.Context, *types.Profile) error
	HandleTokenHook(context.Context, *oauth2.TokenHookRequest) (*TokenHookResponse, error)
}

type AuthorizerInterface interface {
	AssignRole(context.Context, string, string) error
	ListViewableProperties(context.Context, string) ([]string, error)
}

type ProfileReaderInterface interface {
	GetProfile(context.Context, string) (*types.Profile, error)
}

type MailerInterface interface {
	SendWelcome(context.Context, mail.Welcome) error
}

type EmailValidatorInterface interface {
	Validate(context.Context, string) (*mail.Validation, error)
}
