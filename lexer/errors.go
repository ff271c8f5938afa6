package lexer

import (
	"errors"
	"fmt"
)

var (
	ErrUnrecognizedInput = errors.New("unrecognized input")
	ErrAmbiguousMatch    = errors.New("more than one grammar rule matched")
	ErrEmptyMatch        = errors.New("grammar rule matched an empty string")
	ErrEmptyGrammar      = errors.New("grammar has no rules")
	ErrDuplicateRule     = errors.New("duplicate grammar rule")
)

// Error is a lexical error annotated with the position where the lexer
// stopped.
type Error struct {
	Line int
	Col  int
	Err  error

	// Text holds a short excerpt of the input at the error position.
	Text string
}

func (e *Error) Error() string {
	if e.Text != "" {
		return fmt.Sprintf("%d:%d: %v near %q", e.Line, e.Col, e.Err, e.Text)
	}
	return fmt.Sprintf("%d:%d: %v", e.Line, e.Col, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
