package timeutil

import (
	"testing"
	"time"
)

func TestMatchDate(t *testing.T) {
	tests := map[string]bool{
		"2999-01-01":  true,
		"2025-12-31":  true,
		"2025-02-30":  true,
		"1999-10-10":  true,
		"2025-13-01":  false,
		"2025-00-10":  false,
		"2025-01-00":  false,
		"2025-01-32":  false,
		"2025-1-1":    false,
		"25-01-01":    false,
		"2025/01/01":  false,
		"":            false,
		"2025-01-01x": false,
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			if got := MatchDate(in); got != want {
				t.Fatalf("MatchDate(%q): expected %v, got %v", in, want, got)
			}
		})
	}
}

func TestParseDateCalendarInvalid(t *testing.T) {
	if _, err := ParseDate("2025-02-30", time.UTC); err == nil {
		t.Fatalf("expected error for February 30th")
	}
}

func TestAfterToday(t *testing.T) {
	now := time.Date(2026, time.October, 17, 23, 59, 0, 0, time.UTC)

	tomorrow, err := ParseDate("2026-10-18", time.UTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !AfterToday(tomorrow, now) {
		t.Fatalf("expected tomorrow to be after today")
	}

	today, err := ParseDate("2026-10-17", time.UTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if AfterToday(today, now) {
		t.Fatalf("expected today not to be after today")
	}
}
