// Package timeutil holds the calendar-date helpers used for deadlines.
package timeutil

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const (
	// LayoutISO is the only accepted deadline layout.
	LayoutISO = "2006-01-02"
)

var (
	// datePattern checks shape only; 2025-02-30 matches.
	datePattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])-(0[1-9]|[12]\d|3[01])$`)
)

// MatchDate reports whether s looks like YYYY-MM-DD with a month in 01..12 and a
// day in 01..31. It does not check that the day exists in that month.
func MatchDate(s string) bool {
	return datePattern.MatchString(s)
}

// ParseDate parses a YYYY-MM-DD string as midnight in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(LayoutISO, strings.TrimSpace(s), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

// Today truncates now to midnight in now's location.
func Today(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
}

// AfterToday reports whether the calendar date d is strictly later than the date of now.
func AfterToday(d time.Time, now time.Time) bool {
	return Today(d).After(Today(now))
}
