// Package erase provides the runner logic for removing a resolution.
package erase

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/resolution/pkg/entry"
	"tableflip.dev/resolution/pkg/printers"
	"tableflip.dev/resolution/pkg/store"
	"tableflip.dev/resolution/pkg/validate"
)

// Erase removes the resolution at Position. Later positions shift down by one.
type Erase struct {
	Position int

	Persistence store.Persistence
	Printer     printers.PrettyPrint
}

// Apply returns a new list without the entry at the 1-based position.
func Apply(all []*entry.Entry, position int) ([]*entry.Entry, error) {
	if err := validate.Position(position, len(all)); err != nil {
		return nil, err
	}
	kept := make([]*entry.Entry, 0, len(all)-1)
	for i, e := range all {
		if i != position-1 {
			kept = append(kept, e)
		}
	}
	return kept, nil
}

func (n *Erase) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not delete, no persistence")
	}

	all, err := n.Persistence.LoadAll(ctx)
	if err != nil {
		return err
	}
	kept, err := Apply(all, n.Position)
	if err != nil {
		return err
	}
	if err := n.Persistence.SaveAll(ctx, kept); err != nil {
		return err
	}

	n.Printer.Println(fmt.Sprintf("The New Year's resolution on position '%d' has been deleted.", n.Position))
	return nil
}
