// Package entry holds the New Year's resolution record.
package entry

import (
	"fmt"
)

const (
	// DefaultPriority is used when no priority is given and when a priority is removed.
	DefaultPriority = 1
	MinPriority     = 1
	MaxPriority     = 10
)

// New returns an entry with the default priority and no deadline.
func New(text string) *Entry {
	return &Entry{
		Text:     text,
		Priority: DefaultPriority,
	}
}

// Entry is a single resolution. A nil Deadline means the entry has none.
type Entry struct {
	Text     string
	Priority int
	Deadline *string
}

func (e *Entry) HasDeadline() bool {
	return e.Deadline != nil
}

// SetDeadline sets the deadline to a copy of d.
func (e *Entry) SetDeadline(d string) {
	e.Deadline = &d
}

func (e *Entry) ClearDeadline() {
	e.Deadline = nil
}

// DeadlineOr returns the deadline, or fallback when absent.
func (e *Entry) DeadlineOr(fallback string) string {
	if e.Deadline == nil {
		return fallback
	}
	return *e.Deadline
}

// Clone returns a deep copy; the copy never shares its deadline with e.
func (e *Entry) Clone() *Entry {
	c := &Entry{
		Text:     e.Text,
		Priority: e.Priority,
	}
	if e.Deadline != nil {
		c.SetDeadline(*e.Deadline)
	}
	return c
}

// Equal compares all fields. An absent deadline only equals another absent deadline.
func (e *Entry) Equal(o *Entry) bool {
	if e == nil || o == nil {
		return e == o
	}
	if e.Text != o.Text || e.Priority != o.Priority {
		return false
	}
	if e.Deadline == nil || o.Deadline == nil {
		return e.Deadline == nil && o.Deadline == nil
	}
	return *e.Deadline == *o.Deadline
}

func (e *Entry) String() string {
	if e.Deadline == nil {
		return fmt.Sprintf("%s (priority %d)", e.Text, e.Priority)
	}
	return fmt.Sprintf("%s (priority %d, due %s)", e.Text, e.Priority, *e.Deadline)
}

// CloneAll deep copies a list of entries, keeping order.
func CloneAll(entries []*Entry) []*Entry {
	out := make([]*Entry, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Clone())
	}
	return out
}
