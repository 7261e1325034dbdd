// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import "errors"

var (
	ErrMissingIdentity = errors.New("identity ID is empty")
	ErrInvalidRole     = errors.New("role must be landlord or tenant")
	ErrMissingSubject  = errors.New("token hook session has no subject")

	ErrUndeliverableEmail = errors.New("email address is not deliverable")
)
