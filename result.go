package comb

import (
	"errors"
	"fmt"
)

// ErrIncomplete is the generic match failure: the input did not match at the
// current offset and no more specific cause is known. Primitives and
// structural combinators report it directly; test for it with errors.Is.
var ErrIncomplete = errors.New("incomplete")

// ExpectError reports that a named construct was required but not found.
// It always wraps the causal failure, so a chain of Expect wrappers reads
// outside-in like a grammar stack trace.
type ExpectError struct {
	Message  string
	Position int
	Inner    error
}

func (e *ExpectError) Error() string {
	return fmt.Sprintf("expect %s at %d: %v", e.Message, e.Position, e.Inner)
}

func (e *ExpectError) Unwrap() error { return e.Inner }

// CustomError is a caller-defined diagnostic, optionally wrapping a cause.
// The engine never produces it on its own; grammar authors use it to attach
// positional detail that ErrIncomplete lacks.
type CustomError struct {
	Message  string
	Position int
	Inner    error
}

func (e *CustomError) Error() string {
	if e.Inner != nil {
		return fmt.Sprintf("%s at %d, %v", e.Message, e.Position, e.Inner)
	}
	return fmt.Sprintf("%s at %d", e.Message, e.Position)
}

func (e *CustomError) Unwrap() error { return e.Inner }
