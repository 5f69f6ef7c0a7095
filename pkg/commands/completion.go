package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tableflip.dev/resolution/pkg/store"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(resolution completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(resolution completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

// positionCompletions offers every position with its text as the description.
func positionCompletions(cmd *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	_, p, err := load(cmd)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	all, err := p.LoadAll(context.Background())
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	ps := make([]string, 0, len(all))
	for i, e := range all {
		ps = append(ps, fmt.Sprintf("%d\t%s", i+1, e.Text))
	}
	return ps, cobra.ShellCompDirectiveNoFileComp
}

func snapshotCompletions(cmd *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	cfg, err := store.LoadConfig(cmd.Flags())
	if err != nil || !cfg.Backups() {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return store.NewSnapshots(cfg.BackupPath(), cfg.BackupKeep()).Keys(), cobra.ShellCompDirectiveNoFileComp
}
