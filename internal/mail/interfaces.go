// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import "context"

type SenderInterface interface {
	SendWelcome(context.Context, Welcome) error
}

type ValidatorInterface interface {
	Validate(context.Context, string) (*Validation, error)
}
