package store

import "fmt"

// Error is a storage failure: the file or its directory could not be created,
// opened or written. It is fatal for the command that hit it.
type Error struct {
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("store: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ParseError is a malformed record in the backing file. One bad record fails the whole load.
type ParseError struct {
	Path string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("store: line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("store: %s:%d: %v", e.Path, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
