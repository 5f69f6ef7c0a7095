// Package restore lists snapshots and puts one back as the current list.
package restore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/resolution/pkg/printers"
	"tableflip.dev/resolution/pkg/store"
	"tableflip.dev/resolution/pkg/validate"
)

type Restore struct {
	// Key selects the snapshot to restore; empty lists them instead.
	Key string

	Snapshots   *store.Snapshots
	Persistence store.Persistence
	Printer     printers.PrettyPrint
}

func (n *Restore) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not restore, no persistence")
	}
	if n.Snapshots == nil {
		n.Printer.Println("Snapshots are disabled. Set backups.enabled to keep a copy before every change.")
		return nil
	}
	if n.Key == "" {
		return n.list()
	}

	if err := validate.Snapshot(n.Key, n.Snapshots.Keys()); err != nil {
		return err
	}
	data, err := n.Snapshots.Read(n.Key)
	if err != nil {
		return err
	}
	all, err := store.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("snapshot %s: %w", n.Key, err)
	}
	if err := n.Persistence.SaveAll(ctx, all); err != nil {
		return err
	}
	n.Printer.Println(fmt.Sprintf("Restored %d New Year's resolutions from snapshot '%s'.", len(all), n.Key))
	return nil
}

func (n *Restore) list() error {
	keys := n.Snapshots.Keys()
	if len(keys) == 0 {
		n.Printer.Empty("No snapshots have been taken yet.")
		return nil
	}

	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Snapshot"), bold.Sprint("Resolutions"))
	// Newest first.
	for i := len(keys) - 1; i >= 0; i-- {
		count := "unreadable"
		if data, err := n.Snapshots.Read(keys[i]); err == nil {
			if all, err := store.Decode(bytes.NewReader(data)); err == nil {
				count = strconv.Itoa(len(all))
			}
		}
		tbl.AddRow(keys[i], count)
	}
	n.Printer.Println(tbl.String())
	return nil
}
