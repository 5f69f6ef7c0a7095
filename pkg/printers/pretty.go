// Package printers renders reports. Nothing here reads or writes the store.
package printers

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/resolution/pkg/entry"
)

const (
	// NoneLabel stands in for an absent deadline in change reports.
	NoneLabel = "none"
)

type PrettyPrint struct {
	Out      io.Writer
	Numbered bool
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold)
	_, _ = t.Fprintln(pp.out(), title)
}

// Empty prints a faint notice, used when there is nothing to list.
func (pp *PrettyPrint) Empty(msg string) {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Fprintln(pp.out(), msg)
}

func (pp *PrettyPrint) Println(msg string) {
	_, _ = fmt.Fprintln(pp.out(), msg)
}

// Resolution prints one list line. position is the insertion-order position and is
// only shown when Numbered is set.
func (pp *PrettyPrint) Resolution(position int, e *entry.Entry) {
	_, _ = fmt.Fprintln(pp.out(), Line(position, e, pp.Numbered))
}

// Line renders " [pos] Text: t, Priority p, Deadline: d", or with " - " in place of
// the position when not numbered. The deadline part is left out when absent.
func Line(position int, e *entry.Entry, numbered bool) string {
	prefix := " -"
	if numbered {
		prefix = fmt.Sprintf(" [%d]", position)
	}
	line := fmt.Sprintf("%s Text: %s, Priority %d", prefix, e.Text, e.Priority)
	if e.HasDeadline() {
		line += ", Deadline: " + *e.Deadline
	}
	return line
}

// Fields prints the fields of e as a bullet list, skipping an absent deadline.
func (pp *PrettyPrint) Fields(e *entry.Entry) {
	_, _ = fmt.Fprintf(pp.out(), " - Text: %s\n", e.Text)
	_, _ = fmt.Fprintf(pp.out(), " - Priority: %d\n", e.Priority)
	if e.HasDeadline() {
		_, _ = fmt.Fprintf(pp.out(), " - Deadline: %s\n", *e.Deadline)
	}
}

// Change prints "Old X: a -> New X: b" or "Unchanged X: a".
func (pp *PrettyPrint) Change(property, before, after string) {
	if before != after {
		_, _ = fmt.Fprintf(pp.out(), " - Old %s: %s -> New %s: %s\n", property, before, property, after)
		return
	}
	_, _ = fmt.Fprintf(pp.out(), " - Unchanged %s: %s\n", property, before)
}

// Problem prints a rejected command's message.
func (pp *PrettyPrint) Problem(msg string) {
	r := color.New(color.FgRed)
	_, _ = r.Fprintln(pp.out(), msg)
}
