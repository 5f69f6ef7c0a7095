package commands

import (
	"context"
	"errors"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/resolution/pkg/commands/options"
	"tableflip.dev/resolution/pkg/runner/create"
)

func addCreate(topLevel *cobra.Command) {
	co := &options.CreateOptions{}

	cmd := &cobra.Command{
		Use:     "create <text>",
		Aliases: []string{"add"},
		Short:   "Creates a New Year's resolution",
		Long: base.Wrap80("Creates a New Year's resolution. This will create a New Year's " +
			"resolution and add it to the existing ones."),
		Example: `
resolution create Learn Rust --priority 5 --deadline 2027-12-31
resolution create "Call grandma every week"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a description")
			}
			co.Text = strings.Join(args, " ")

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			_, p, err := load(cmd)
			if err != nil {
				return err
			}

			s := create.Create{
				Text:        co.Text,
				Priority:    co.Priority,
				Deadline:    co.GetDeadline(cmd),
				Persistence: p,
				Printer:     printer(cmd),
			}
			err = s.Do(context.Background())
			return handle(cmd, err)
		},
	}

	options.AddCreateArgs(cmd, co)
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
