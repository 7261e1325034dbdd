// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package rent

import (
	"testing"
	"time"
)

func TestNextDueDate(t *testing.T) {
	tests := []struct {
		name     string
		now      time.Time
		expected time.Time
	}{
		{
			name:     "mid month",
			now:      time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC),
			expected: time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "first day of month",
			now:      time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "end of january",
			now:      time.Date(2024, time.January, 31, 23, 59, 59, 0, time.UTC),
			expected: time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "december rolls over",
			now:      time.Date(2024, time.December, 20, 8, 0, 0, 0, time.UTC),
			expected: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "keeps location",
			now:      time.Date(2024, time.June, 30, 22, 0, 0, 0, time.FixedZone("CEST", 2*60*60)),
			expected: time.Date(2024, time.July, 1, 0, 0, 0, 0, time.FixedZone("CEST", 2*60*60)),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := NextDueDate(test.now)

			if !got.Equal(test.expected) {
				t.Errorf("expected %s, got %s", test.expected, got)
			}

			if got.Location().String() != test.now.Location().String() {
				t.Errorf("expected location %s, got %s", test.now.Location(), got.Location())
			}
		})
	}
}
