package commands

import (
	"context"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/resolution/pkg/commands/options"
	"tableflip.dev/resolution/pkg/runner/list"
)

func addList(topLevel *cobra.Command) {
	lo := &options.ListOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Shows a list of all added New Year's resolutions",
		Long: base.Wrap80("Shows a list of New Year's resolutions which can be numbered and " +
			"ordered by their priority. Numbers always follow insertion order."),
		Example: `
resolution list
resolution list --numbered --orderedByPriority
resolution list -n --watch
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			_, p, err := load(cmd)
			if err != nil {
				return err
			}

			ctx := context.Background()
			if lo.Watch {
				var cancel context.CancelFunc
				ctx, cancel = interruptible()
				defer cancel()
			}

			s := list.List{
				Numbered:          lo.Numbered,
				OrderedByPriority: lo.OrderedByPriority,
				Watch:             lo.Watch,
				Persistence:       p,
				Printer:           printer(cmd),
			}
			err = s.Do(ctx)
			return handle(cmd, err)
		},
	}

	options.AddListArgs(cmd, lo)
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
