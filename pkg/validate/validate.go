// Package validate checks user input before it reaches the store.
//
// Every rejection is an *Error carrying the message shown to the user. The
// caller prints it and stops before anything is written.
package validate

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"tableflip.dev/resolution/pkg/entry"
	"tableflip.dev/resolution/pkg/timeutil"
)

// Kind separates bad input from commands issued in the wrong order.
type Kind int

const (
	KindValidation Kind = iota
	KindState
)

// Error is a recoverable, user-facing rejection.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches any *Error of the same kind and message, so sentinels work with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Message == e.Message
}

// ErrPositionNotSet is returned by remove when no edit selected a position.
var ErrPositionNotSet = &Error{
	Kind:    KindState,
	Message: "The position of the New Year's resolution is not set. Please use the position of the resolution.",
}

func invalid(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// IsUserError reports whether err is a validation or state rejection rather than a storage failure.
func IsUserError(err error) bool {
	var ve *Error
	return errors.As(err, &ve)
}

// Text rejects a blank description.
func Text(t string) error {
	if strings.TrimSpace(t) == "" {
		return invalid("The text of the New Year's resolution must not be empty.")
	}
	return nil
}

// Priority accepts 1..10 inclusive.
func Priority(p int) error {
	if p < entry.MinPriority || p > entry.MaxPriority {
		return invalid("The priority %d is not valid. Please use a priority between %d and %d.",
			p, entry.MinPriority, entry.MaxPriority)
	}
	return nil
}

// Deadline accepts a YYYY-MM-DD date strictly after the date of now.
func Deadline(d string, now time.Time) error {
	if !timeutil.MatchDate(d) {
		return invalid("The deadline %s is not valid. Please use the format yyyy-MM-dd.", d)
	}
	t, err := timeutil.ParseDate(d, now.Location())
	if err != nil {
		// Shape is fine but the day does not exist, e.g. 2025-02-30.
		return invalid("The deadline %s is not valid. Please use the format yyyy-MM-dd.", d)
	}
	if !timeutil.AfterToday(t, now) {
		return invalid("The deadline %s is not valid. Please use a date after today.", d)
	}
	return nil
}

// Position accepts 1..count inclusive.
func Position(pos, count int) error {
	if pos < 1 || pos > count {
		return invalid("The position %d is not valid. Please use a valid position.", pos)
	}
	return nil
}

// Snapshot accepts a key listed in keys.
func Snapshot(key string, keys []string) error {
	for _, k := range keys {
		if k == key {
			return nil
		}
	}
	return invalid("The snapshot %s does not exist. Use `resolution restore` to list the snapshots.", key)
}
