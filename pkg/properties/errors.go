// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package properties

import "errors"

var (
	ErrUnauthenticated  = errors.New("unauthenticated")
	ErrForbidden        = errors.New("not the landlord of this property")
	ErrPropertyNotFound = errors.New("property not found")
	ErrInvalidProperty  = errors.New("invalid property")
	ErrPropertyOccupied = errors.New("property is occupied")
	ErrNoTenant         = errors.New("property has no tenant")
)
