// Package create provides the runner logic for adding a resolution.
package create

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/resolution/pkg/entry"
	"tableflip.dev/resolution/pkg/printers"
	"tableflip.dev/resolution/pkg/store"
	"tableflip.dev/resolution/pkg/validate"
)

// Create appends a new resolution after validating priority and deadline.
type Create struct {
	Text     string
	Priority int
	Deadline *string

	Persistence store.Persistence
	Printer     printers.PrettyPrint
	Now         func() time.Time
}

// Build validates the input and returns the entry to store.
func (n *Create) Build() (*entry.Entry, error) {
	if err := validate.Text(n.Text); err != nil {
		return nil, err
	}
	if err := validate.Priority(n.Priority); err != nil {
		return nil, err
	}
	e := &entry.Entry{Text: n.Text, Priority: n.Priority}
	if n.Deadline != nil {
		if err := validate.Deadline(*n.Deadline, n.now()); err != nil {
			return nil, err
		}
		e.SetDeadline(*n.Deadline)
	}
	return e, nil
}

// Do validates, appends and reports the created resolution.
func (n *Create) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not create, no persistence")
	}

	e, err := n.Build()
	if err != nil {
		return err
	}
	if err := n.Persistence.AppendOne(ctx, e); err != nil {
		return err
	}

	n.Printer.Println("The following New Year's resolution has been created:")
	n.Printer.Fields(e)
	return nil
}

func (n *Create) now() time.Time {
	if n.Now == nil {
		return time.Now()
	}
	return n.Now()
}
