package options

import (
	"errors"
	"fmt"
	"strconv"
)

// PositionOptions holds the 1-based position argument.
type PositionOptions struct {
	Position int
	Set      bool
}

// ParsePosition reads the position from the first argument.
func (o *PositionOptions) ParsePosition(args []string) error {
	if len(args) < 1 {
		return errors.New("requires a position")
	}
	if len(args) > 1 {
		return fmt.Errorf("expected a single position, got %d arguments", len(args))
	}
	p, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("position %q is not a number", args[0])
	}
	o.Position = p
	o.Set = true
	return nil
}
