package options

import (
	"github.com/spf13/cobra"
)

// ListOptions
type ListOptions struct {
	Numbered          bool
	OrderedByPriority bool
	Watch             bool
}

func AddListArgs(cmd *cobra.Command, o *ListOptions) {
	cmd.Flags().BoolVarP(&o.Numbered, "numbered", "n", false,
		"Numbers the New Year's resolutions according to their insertion order starting from 1.")
	cmd.Flags().BoolVarP(&o.OrderedByPriority, "orderedByPriority", "o", false,
		"Orders the New Year's resolutions by their priority.")
	cmd.Flags().BoolVarP(&o.Watch, "watch", "w", false,
		"Keep running and print the list again whenever the file changes.")
}
