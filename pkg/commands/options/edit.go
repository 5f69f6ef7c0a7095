package options

import (
	"github.com/spf13/cobra"
)

// EditOptions
type EditOptions struct {
	Text     string
	Priority int
	Deadline string
}

func AddEditArgs(cmd *cobra.Command, o *EditOptions) {
	cmd.Flags().StringVarP(&o.Text, "text", "t", "",
		"Description of the New Year's resolution.")
	cmd.Flags().IntVarP(&o.Priority, "priority", "p", 0,
		"Priority of the New Year's resolution.")
	cmd.Flags().StringVarP(&o.Deadline, "deadline", "d", "",
		"Sets a deadline for the New Year's resolution.")
}

// GetText returns nil unless --text was given; the other getters work the same way.
func (o *EditOptions) GetText(cmd *cobra.Command) *string {
	if !cmd.Flags().Changed("text") {
		return nil
	}
	t := o.Text
	return &t
}

func (o *EditOptions) GetPriority(cmd *cobra.Command) *int {
	if !cmd.Flags().Changed("priority") {
		return nil
	}
	p := o.Priority
	return &p
}

func (o *EditOptions) GetDeadline(cmd *cobra.Command) *string {
	if !cmd.Flags().Changed("deadline") {
		return nil
	}
	d := o.Deadline
	return &d
}

// RemoveOptions
type RemoveOptions struct {
	Priority bool
	Deadline bool
}

func AddRemoveArgs(cmd *cobra.Command, o *RemoveOptions) {
	cmd.Flags().BoolVarP(&o.Priority, "priority", "p", false,
		"Removes the priority and sets it to 1.")
	cmd.Flags().BoolVarP(&o.Deadline, "deadline", "d", false,
		"Removes the deadline.")
}
