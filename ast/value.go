package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Valuer represents a decoded literal
type Valuer interface {
	Value() interface{}
}

type nodeValue struct {
	v interface{}
}

func newNodeValue(v interface{}) *nodeValue {
	return &nodeValue{v: v}
}

func (n *nodeValue) Value() interface{} {
	return n.v
}

// ParseLiteral decodes the text of a literal with the given property.
// Numbers that don't fit in 64 bits are rejected with ErrLiteralRange.
func ParseLiteral(prop AtomProperty, text string) (Valuer, error) {
	switch prop {
	case AtomInt:
		i64, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrLiteralRange, text)
		}
		return newNodeValue(i64), nil

	case AtomFloat:
		f64, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrLiteralRange, text)
		}
		return newNodeValue(f64), nil

	case AtomBool:
		return newNodeValue(text == "true"), nil

	case AtomString:
		return newNodeValue(strings.TrimSuffix(strings.TrimPrefix(text, `"`), `"`)), nil
	}

	return nil, fmt.Errorf("%w: %q (%s)", ErrNotLiteral, text, prop)
}

// Value decodes a classified literal atom.
func (a *Arena) Value(atom int) (Valuer, error) {
	return ParseLiteral(a.AtomProps[atom], a.AtomText(atom))
}

var _ = Valuer(&nodeValue{})
