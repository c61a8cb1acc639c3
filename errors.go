package main

import (
	"fmt"
)

type MalformedDateError struct {
	Value string
}

func (e *MalformedDateError) Error() string {
	return fmt.Sprintf("malformed date %q, want DD.MM.YYYY", e.Value)
}

type MalformedIntegerError struct {
	Value string
}

func (e *MalformedIntegerError) Error() string {
	return fmt.Sprintf("malformed integer %q", e.Value)
}

// MalformedLineError is returned when a command line has the wrong number
// of fields for its command type.
type MalformedLineError struct {
	Line string
	Want int
	Got  int
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("malformed line %q: want %d fields, got %d", e.Line, e.Want, e.Got)
}

// ErrTruncatedInput means the input ended before the announced number of
// lines was read.
type ErrTruncatedInput struct {
	Want int
	Got  int
}

func (e *ErrTruncatedInput) Error() string {
	return fmt.Sprintf("input ended after %d of %d lines", e.Got, e.Want)
}
