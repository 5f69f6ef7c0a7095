// Package logging configures the diagnostic logger. Reports meant for the user
// are printed by the runners, never through here.
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Options holds configuration for diagnostic logging.
type Options struct {
	Verbose bool
	Output  io.Writer
}

// Setup configures the package level charmbracelet logger used across the module.
func Setup(o Options) *log.Logger {
	out := o.Output
	if out == nil {
		out = os.Stderr
	}
	level := log.WarnLevel
	if o.Verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(out, log.Options{
		Level:           level,
		Formatter:       log.TextFormatter,
		ReportTimestamp: o.Verbose,
		Prefix:          "resolution",
	})
	log.SetDefault(logger)
	return logger
}
