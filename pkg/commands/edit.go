package commands

import (
	"context"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/resolution/pkg/commands/options"
	"tableflip.dev/resolution/pkg/runner/edit"
	"tableflip.dev/resolution/pkg/runner/remove"
)

func addEdit(topLevel *cobra.Command) {
	po := &options.PositionOptions{}
	eo := &options.EditOptions{}

	cmd := &cobra.Command{
		Use:   "edit <position>",
		Short: "Updates a New Year's resolution",
		Long: base.Wrap80("Updates a New Year's resolution. This will update an existing New Year's " +
			"resolution by editing properties as well as deleting optional ones with 'edit remove'. " +
			"New values are stored as given."),
		Example: `
resolution edit 2 --text "Learn Go" --priority 8
resolution edit 1 --deadline 2027-06-30
resolution edit remove 1 --deadline
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

			s := edit.Edit{
				Position: po.Position,
				Changes: edit.Changes{
					Text:     eo.GetText(cmd),
					Priority: eo.GetPriority(cmd),
					Deadline: eo.GetDeadline(cmd),
				},
				Persistence: p,
				Printer:     printer(cmd),
			}
			err = s.Do(context.Background())
			return handle(cmd, err)
		},
	}

	options.AddEditArgs(cmd, eo)
	options.AddOutputArg(cmd, oo)
	addRemove(cmd)
	topLevel.AddCommand(cmd)
}

func addRemove(editCmd *cobra.Command) {
	po := &options.PositionOptions{}
	ro := &options.RemoveOptions{}

	cmd := &cobra.Command{
		Use:   "remove <position>",
		Short: "Removes optional properties of a New Year's resolution",
		Long: base.Wrap80("Removes optional properties of an existing New Year's resolution " +
			"instead of updating their values. The priority goes back to 1."),
		Example: `
resolution edit remove 1 --priority --deadline
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) == 0 {
				// Reported as "position not set" once the command runs.
				return nil
			}
			return po.ParsePosition(args)
		},
		ValidArgsFunction: positionCompletions,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			_, p, err := load(cmd)
			if err != nil {
				return err
			}

			var sel edit.Selection
			if po.Set {
				sel, err = edit.SelectFrom(context.Background(), p, po.Position)
				if err != nil {
					return handle(cmd, err)
				}
			}

			s := remove.Remove{
				Selection:   sel,
				Priority:    ro.Priority,
				Deadline:    ro.Deadline,
				Persistence: p,
				Printer:     printer(cmd),
			}
			err = s.Do(context.Background())
			return handle(cmd, err)
		},
	}

	options.AddRemoveArgs(cmd, ro)
	options.AddOutputArg(cmd, oo)
	editCmd.AddCommand(cmd)
}
