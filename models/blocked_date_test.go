// File: models/blocked_date_test.go
package models

import "testing"

func TestValidDateFormat(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"2026-09-15", true},
		{"2026-01-01", true},
		{"0001-12-31", true},
		// Shape gate only: digit positions, not calendar validity.
		{"2026-13-40", true},

		{"", false},
		{"2026-9-15", false},
		{"2026-09-5", false},
		{"20260915", false},
		{"2026/09/15", false},
		{"15-09-2026", false},
		{"2026-09-15T00:00:00Z", false},
		{" 2026-09-15", false},
		{"2026-09-15 ", false},
		{"abcd-ef-gh", false},
	}
	for _, tc := range cases {
		if got := ValidDateFormat(tc.in); got != tc.want {
			t.Errorf("ValidDateFormat(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestValidRecurringPattern(t *testing.T) {
	for _, p := range []string{RecurNone, RecurWeekly, RecurMonthly, RecurYearly} {
		if !ValidRecurringPattern(p) {
			t.Errorf("pattern %q should be valid", p)
		}
	}
	for _, p := range []string{"", "daily", "NONE", "Weekly"} {
		if ValidRecurringPattern(p) {
			t.Errorf("pattern %q should be invalid", p)
		}
	}
}
