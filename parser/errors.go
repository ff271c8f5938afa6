package parser

import (
	"errors"
	"fmt"
)

var (
	ErrUnexpectedEOF   = errors.New("unexpected EOF")
	ErrUnexpectedToken = errors.New("unexpected token")

	ErrArity             = errors.New("wrong number of elements")
	ErrUnexpectedElement = errors.New("unexpected element")
)

// Error is a syntax error at a source position.
type Error struct {
	Line int
	Col  int
	Err  error

	Expected string
	Found    string
}

func (e *Error) Error() string {
	switch {
	case e.Expected != "" && e.Found != "":
		return fmt.Sprintf("%d:%d: %v: expected %s, found %q", e.Line, e.Col, e.Err, e.Expected, e.Found)
	case e.Expected != "":
		return fmt.Sprintf("%d:%d: %v: expected %s", e.Line, e.Col, e.Err, e.Expected)
	}
	return fmt.Sprintf("%d:%d: %v", e.Line, e.Col, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
