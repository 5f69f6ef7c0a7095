// Package edit provides the runner logic for changing a resolution in place.
package edit

import (
	"context"
	"errors"
	"strconv"

	"tableflip.dev/resolution/pkg/entry"
	"tableflip.dev/resolution/pkg/printers"
	"tableflip.dev/resolution/pkg/store"
	"tableflip.dev/resolution/pkg/validate"
)

// Selection is a validated position handed from edit to remove. The zero value
// means no position was selected.
type Selection struct {
	position int
}

func (s Selection) IsSet() bool {
	return s.position > 0
}

// Position returns the 1-based position, or 0 when unset.
func (s Selection) Position() int {
	return s.position
}

// Select validates position against the loaded list.
func Select(all []*entry.Entry, position int) (Selection, error) {
	if err := validate.Position(position, len(all)); err != nil {
		return Selection{}, err
	}
	return Selection{position: position}, nil
}

// SelectFrom loads the list and validates position against it.
func SelectFrom(ctx context.Context, p store.Persistence, position int) (Selection, error) {
	all, err := p.LoadAll(ctx)
	if err != nil {
		return Selection{}, err
	}
	return Select(all, position)
}

// Changes lists the fields to overwrite. Nil fields keep their value.
type Changes struct {
	Text     *string
	Priority *int
	Deadline *string
}

// Apply overwrites the supplied fields of the selected entry and returns the new
// list with copies of the entry before and after. The new values are not
// validated; a priority of 0 or 999 is stored as given.
func Apply(all []*entry.Entry, sel Selection, c Changes) ([]*entry.Entry, *entry.Entry, *entry.Entry, error) {
	if !sel.IsSet() {
		return nil, nil, nil, validate.ErrPositionNotSet
	}
	if err := validate.Position(sel.position, len(all)); err != nil {
		return nil, nil, nil, err
	}

	updated := entry.CloneAll(all)
	e := updated[sel.position-1]
	before := e.Clone()

	if c.Text != nil {
		e.Text = *c.Text
	}
	if c.Priority != nil {
		e.Priority = *c.Priority
	}
	if c.Deadline != nil {
		e.SetDeadline(*c.Deadline)
	}
	return updated, before, e.Clone(), nil
}

// Edit overwrites selected fields of the resolution at Position.
type Edit struct {
	Position int
	Changes  Changes

	Persistence store.Persistence
	Printer     printers.PrettyPrint
}

// Do loads, applies the changes, saves and reports old and new values.
func (n *Edit) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not edit, no persistence")
	}

	all, err := n.Persistence.LoadAll(ctx)
	if err != nil {
		return err
	}
	sel, err := Select(all, n.Position)
	if err != nil {
		return err
	}
	updated, before, after, err := Apply(all, sel, n.Changes)
	if err != nil {
		return err
	}
	if err := n.Persistence.SaveAll(ctx, updated); err != nil {
		return err
	}

	n.Printer.Println("The New Year's resolution has been updated with the following properties:")
	n.Printer.Change("Text", before.Text, after.Text)
	n.Printer.Change("Priority", strconv.Itoa(before.Priority), strconv.Itoa(after.Priority))
	n.Printer.Change("Deadline", before.DeadlineOr(printers.NoneLabel), after.DeadlineOr(printers.NoneLabel))
	return nil
}
