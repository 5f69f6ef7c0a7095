// Package remove provides the runner logic for clearing optional fields.
package remove

import (
	"context"
	"errors"

	"tableflip.dev/resolution/pkg/entry"
	"tableflip.dev/resolution/pkg/printers"
	"tableflip.dev/resolution/pkg/runner/edit"
	"tableflip.dev/resolution/pkg/store"
	"tableflip.dev/resolution/pkg/validate"
)

// Remove resets the priority and/or clears the deadline of the entry chosen by edit.
type Remove struct {
	Selection edit.Selection
	Priority  bool
	Deadline  bool

	Persistence store.Persistence
	Printer     printers.PrettyPrint
}

// Apply returns a new list with the requested fields cleared on the selected entry.
func Apply(all []*entry.Entry, sel edit.Selection, priority, deadline bool) ([]*entry.Entry, error) {
	if !sel.IsSet() {
		return nil, validate.ErrPositionNotSet
	}
	if err := validate.Position(sel.Position(), len(all)); err != nil {
		return nil, err
	}

	updated := entry.CloneAll(all)
	e := updated[sel.Position()-1]
	if priority {
		e.Priority = entry.DefaultPriority
	}
	if deadline {
		e.ClearDeadline()
	}
	return updated, nil
}

// Do clears the requested fields and reports which ones were removed.
func (n *Remove) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not remove, no persistence")
	}
	if !n.Selection.IsSet() {
		return validate.ErrPositionNotSet
	}
	if !n.Priority && !n.Deadline {
		n.Printer.Println("No properties have been removed from the New Year's resolution.")
		return nil
	}

	all, err := n.Persistence.LoadAll(ctx)
	if err != nil {
		return err
	}
	updated, err := Apply(all, n.Selection, n.Priority, n.Deadline)
	if err != nil {
		return err
	}
	if err := n.Persistence.SaveAll(ctx, updated); err != nil {
		return err
	}

	n.Printer.Println("The following properties have been removed from the New Year's resolution:")
	if n.Priority {
		n.Printer.Println(" - Set priority to default value (1)")
	}
	if n.Deadline {
		n.Printer.Println(" - Removed deadline")
	}
	return nil
}
