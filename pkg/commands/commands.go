package commands

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/resolution/pkg/commands/options"
	"tableflip.dev/resolution/pkg/logging"
	"tableflip.dev/resolution/pkg/printers"
	"tableflip.dev/resolution/pkg/store"
	"tableflip.dev/resolution/pkg/validate"
)

var (
	oo = &options.OutputOptions{}
)

func New() *cobra.Command {
	ro := &options.RootOptions{}

	cmd := &cobra.Command{
		Use:   "resolution",
		Short: base.Wrap80("Manage your New Year's resolutions on the command line."),
		Long: base.Wrap80("Resolution is a command line tool that can be used to manage your " +
			"New Year's resolutions. You can create, edit, delete and list your New Year's resolutions."),
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logging.Setup(logging.Options{Verbose: ro.Verbose, Output: cmd.ErrOrStderr()})
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	options.AddRootArgs(cmd, ro)
	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addCreate(topLevel)
	addEdit(topLevel)
	addDelete(topLevel)
	addList(topLevel)
	addInfo(topLevel)
	addRestore(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
	addUpgrade(topLevel)
}

// load resolves config from flags, env and config file and opens the store.
func load(cmd *cobra.Command) (store.Config, store.Persistence, error) {
	cfg, err := store.LoadConfig(cmd.Flags())
	if err != nil {
		return nil, nil, err
	}
	p, err := store.Load(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, p, nil
}

func printer(cmd *cobra.Command) printers.PrettyPrint {
	return printers.PrettyPrint{Out: cmd.OutOrStdout()}
}

// handle prints validation and state errors as plain messages and lets the
// command finish normally. Storage errors are returned and end the process.
func handle(cmd *cobra.Command, err error) error {
	if err == nil {
		return nil
	}
	if validate.IsUserError(err) {
		pp := printer(cmd)
		pp.Problem(err.Error())
		return nil
	}
	oo.Out = cmd.OutOrStdout()
	return oo.HandleError(err)
}

// interruptible returns a context cancelled on Ctrl-C, for commands that keep running.
func interruptible() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}
