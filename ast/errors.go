package ast

import (
	"errors"
	"fmt"
)

var (
	ErrUnmatchedParen  = errors.New("unmatched closing parenthesis")
	ErrUnclosedList    = errors.New("list is never closed")
	ErrArenaOverflow   = errors.New("arena slot out of planned capacity")
	ErrPlanMismatch    = errors.New("fill pass does not match sizing plan")
	ErrInvalidProperty = errors.New("element left unclassified")
	ErrNotLiteral      = errors.New("atom is not a literal")
	ErrLiteralRange    = errors.New("literal out of range")
)

// Error is an arena construction error at a source position.
type Error struct {
	Line int
	Col  int
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %v", e.Line, e.Col, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
