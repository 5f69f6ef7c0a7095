package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/resolution/pkg/commands/options"
	"tableflip.dev/resolution/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about where resolutions and snapshots are stored.",
		Example: `
resolution info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			cfg, p, err := load(cmd)
			if err != nil {
				return err
			}
			s := info.Info{
				Config:      cfg,
				Persistence: p,
				Printer:     printer(cmd),
			}
			err = s.Do(context.Background())
			return handle(cmd, err)
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
