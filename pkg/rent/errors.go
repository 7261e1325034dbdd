// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package rent

import "errors"

var (
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrObligationNotFound = errors.New("rent obligation not found")
	ErrForbidden          = errors.New("rent obligation belongs to another tenant")
	ErrAlreadyPaid        = errors.New("rent obligation already paid")
	ErrInvalidMethod      = errors.New("invalid payment method")
)
