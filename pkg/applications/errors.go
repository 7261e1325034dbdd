// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package applications

import "errors"

var (
	ErrUnauthenticated      = errors.New("unauthenticated")
	ErrInvalidDecision      = errors.New("invalid decision")
	ErrApplicationNotFound  = errors.New("application not found")
	ErrPropertyNotFound     = errors.New("property not found")
	ErrForbidden            = errors.New("not the landlord of this property")
	ErrAlreadyDecided       = errors.New("application already decided")
	ErrPropertyUnavailable  = errors.New("property is not available")
	ErrDuplicateApplication = errors.New("a pending application for this property already exists")
)
