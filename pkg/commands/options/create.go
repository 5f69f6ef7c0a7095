package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/resolution/pkg/entry"
)

// CreateOptions
type CreateOptions struct {
	Text     string
	Priority int
	Deadline string
}

func AddCreateArgs(cmd *cobra.Command, o *CreateOptions) {
	cmd.Flags().IntVarP(&o.Priority, "priority", "p", entry.DefaultPriority,
		"Priority of the New Year's resolution. Must be between 1 and 10.")
	cmd.Flags().StringVarP(&o.Deadline, "deadline", "d", "",
		`Sets a deadline in the yyyy-MM-dd format, example: --deadline="2027-12-31".`)
}

// GetDeadline returns nil unless --deadline was given.
func (o *CreateOptions) GetDeadline(cmd *cobra.Command) *string {
	if !cmd.Flags().Changed("deadline") {
		return nil
	}
	d := o.Deadline
	return &d
}
