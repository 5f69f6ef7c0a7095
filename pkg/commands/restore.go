package commands

import (
	"context"
	"errors"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/resolution/pkg/commands/options"
	"tableflip.dev/resolution/pkg/runner/restore"
	"tableflip.dev/resolution/pkg/store"
)

func addRestore(topLevel *cobra.Command) {
	var key string

	cmd := &cobra.Command{
		Use:   "restore [snapshot]",
		Short: "List snapshots or restore one",
		Long: base.Wrap80("Without an argument, lists the snapshots taken before each change. " +
			"With a snapshot key, replaces the current resolutions with that snapshot. " +
			"Snapshots are only taken when backups.enabled is set."),
		Example: `
resolution restore
resolution restore 20270101T101500.000000000Z
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) > 1 {
				return errors.New("expected at most one snapshot")
			}
			if len(args) == 1 {
				key = args[0]
			}
			return nil
		},
		ValidArgsFunction: snapshotCompletions,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			cfg, p, err := load(cmd)
			if err != nil {
				return err
			}

			s := restore.Restore{
				Key:         key,
				Persistence: p,
				Printer:     printer(cmd),
			}
			if cfg.Backups() {
				s.Snapshots = store.NewSnapshots(cfg.BackupPath(), cfg.BackupKeep())
			}
			err = s.Do(context.Background())
			return handle(cmd, err)
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
