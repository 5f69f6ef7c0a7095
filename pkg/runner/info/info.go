// Package info reports where resolutions are stored.
package info

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/resolution/pkg/printers"
	"tableflip.dev/resolution/pkg/store"
)

type Info struct {
	Config      store.Config
	Persistence store.Persistence
	Printer     printers.PrettyPrint
}

func (n *Info) Do(ctx context.Context) error {
	if n.Config == nil {
		return errors.New("can not report, no config")
	}
	if n.Persistence == nil {
		return errors.New("can not report, no persistence")
	}

	all, err := n.Persistence.LoadAll(ctx)
	if err != nil {
		return err
	}

	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "

	source := store.ConfigFile(n.Config)
	if source == "" {
		source = "none, using defaults"
	}
	if override := os.Getenv("RESOLUTION_CONFIG_PATH"); override != "" {
		tbl.AddRow(bold.Sprint("RESOLUTION_CONFIG_PATH"), override)
	}
	tbl.AddRow(bold.Sprint("Config file"), source)
	tbl.AddRow(bold.Sprint("File"), n.Persistence.Path())
	tbl.AddRow(bold.Sprint("Resolutions"), strconv.Itoa(len(all)))

	if n.Config.Backups() {
		snaps := store.NewSnapshots(n.Config.BackupPath(), n.Config.BackupKeep())
		tbl.AddRow(bold.Sprint("Snapshots"), fmt.Sprintf("%s (%d kept, limit %d)",
			snaps.Dir(), len(snaps.Keys()), n.Config.BackupKeep()))
	} else {
		tbl.AddRow(bold.Sprint("Snapshots"), "disabled")
	}
	tbl.RightAlign(0)

	n.Printer.Println(tbl.String())
	return nil
}
