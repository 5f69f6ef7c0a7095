// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/resolution/pkg/store"
)

// RootOptions are persistent flags available to every command.
type RootOptions struct {
	File    string
	Verbose bool
}

// AddRootArgs wires the persistent flags on the top level command.
func AddRootArgs(cmd *cobra.Command, o *RootOptions) {
	cmd.PersistentFlags().StringVar(&o.File, "file", store.DefaultPath,
		"Path of the resolutions file. Overrides the path config key and RESOLUTION_PATH.")
	cmd.PersistentFlags().BoolVarP(&o.Verbose, "verbose", "v", false,
		"Log diagnostics to stderr.")
}
