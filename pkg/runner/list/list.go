// Package list provides the runner logic for printing resolutions.
package list

import (
	"context"
	"errors"
	"sort"

	"github.com/charmbracelet/log"

	"tableflip.dev/resolution/pkg/entry"
	"tableflip.dev/resolution/pkg/printers"
	"tableflip.dev/resolution/pkg/store"
)

const (
	title = "New Year's resolutions:"
	empty = "No New Year's resolutions have been added yet. Use command `resolution create` to add a new one."
)

// Item pairs an entry with its insertion-order position.
type Item struct {
	Position int
	Entry    *entry.Entry
}

// Arrange pairs every entry with its 1-based position and, when byPriority is
// set, orders by priority descending. Ties keep insertion order and positions
// are never renumbered.
func Arrange(all []*entry.Entry, byPriority bool) []Item {
	items := make([]Item, 0, len(all))
	for i, e := range all {
		items = append(items, Item{Position: i + 1, Entry: e})
	}
	if byPriority {
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Entry.Priority > items[j].Entry.Priority
		})
	}
	return items
}

// List prints every resolution. It never writes to the store.
type List struct {
	Numbered          bool
	OrderedByPriority bool
	// Watch keeps printing the list each time the file changes until ctx ends.
	Watch bool

	Persistence store.Persistence
	Printer     printers.PrettyPrint
}

func (n *List) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not list, no persistence")
	}
	if err := n.print(ctx); err != nil {
		return err
	}
	if !n.Watch {
		return nil
	}

	changes, err := store.Watch(ctx, n.Persistence.Path())
	if err != nil {
		return err
	}
	for range changes {
		n.Printer.Println("")
		if err := n.print(ctx); err != nil {
			// A reader can catch the file mid-rewrite; the next change reprints.
			log.Warn("list: reload", "err", err)
		}
	}
	return nil
}

func (n *List) print(ctx context.Context) error {
	all, err := n.Persistence.LoadAll(ctx)
	if err != nil {
		return err
	}
	if len(all) == 0 {
		n.Printer.Empty(empty)
		return nil
	}

	pp := n.Printer
	pp.Numbered = n.Numbered
	pp.Title(title)
	for _, item := range Arrange(all, n.OrderedByPriority) {
		pp.Resolution(item.Position, item.Entry)
	}
	return nil
}
