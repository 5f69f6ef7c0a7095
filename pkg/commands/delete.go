package commands

import (
	"context"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/resolution/pkg/commands/options"
	"tableflip.dev/resolution/pkg/runner/erase"
)

func addDelete(topLevel *cobra.Command) {
	po := &options.PositionOptions{}

	cmd := &cobra.Command{
		Use:     "delete <position>",
		Aliases: []string{"rm"},
		Short:   "Deletes an existing New Year's resolution",
		Long: base.Wrap80("Deletes an existing New Year's resolution by specifying its position. " +
			"Resolutions after it move up by one."),
		Example: `
resolution delete 2
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return po.ParsePosition(args)
		},
		ValidArgsFunction: positionCompletions,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			_, p, err := load(cmd)
			if err != nil {
				return err
			}

			s := erase.Erase{
				Position:    po.Position,
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
