// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package rent

import "time"

// NextDueDate is midnight of the first day of the calendar month after now,
// in the location of now. December rolls over into January of the next year.
func NextDueDate(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month()+1, 1, 0, 0, 0, 0, now.Location())
}
