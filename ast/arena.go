package ast

import (
	"fmt"

	"github.com/xiam/fnexpr/lexer"
)

// Element is a child reference, resolved against the list array or the atom
// array depending on its type.
type Element struct {
	Type  ElementType
	Index int
}

// List is a contiguous run of Count elements starting at Offset in the shared
// element array. Range spans the list's parentheses in the source.
type List struct {
	Offset int
	Count  int
	Range  lexer.StringRange
}

// Plan is the output of the sizing pass.
type Plan struct {
	Lists    int
	Elements int
	Atoms    int
	MaxDepth int

	// Counts holds the number of children of every list, in the order the
	// lists are opened.
	Counts []int
}

// Arena holds a whole syntax tree in flat arrays addressed by index. List 0
// is the global list, its children are the top-level forms.
type Arena struct {
	src []byte

	Lists     []List
	ListProps []ListProperty
	Elements  []Element
	Atoms     []lexer.StringRange
	AtomProps []AtomProperty
}

// NewArena allocates every array once, with the exact sizes given by the
// plan, and reserves each list's slice of the element array.
func NewArena(src []byte, plan Plan) *Arena {
	a := &Arena{
		src:       src,
		Lists:     make([]List, plan.Lists),
		ListProps: make([]ListProperty, plan.Lists),
		Elements:  make([]Element, plan.Elements),
		Atoms:     make([]lexer.StringRange, plan.Atoms),
		AtomProps: make([]AtomProperty, plan.Atoms),
	}

	offset := 0
	for i := range a.Lists {
		a.Lists[i].Offset = offset
		a.Lists[i].Count = plan.Counts[i]
		offset += plan.Counts[i]
	}
	if len(a.Lists) > 0 {
		a.Lists[0].Range = lexer.StringRange{Start: 0, End: len(src)}
	}
	return a
}

// Source returns the text the arena points into.
func (a *Arena) Source() []byte {
	return a.src
}

// Root returns the index of the global list.
func (a *Arena) Root() int {
	return 0
}

// Children returns the elements of the given list.
func (a *Arena) Children(list int) []Element {
	l := a.Lists[list]
	return a.Elements[l.Offset : l.Offset+l.Count : l.Offset+l.Count]
}

// AtomText returns the lexeme of the given atom.
func (a *Arena) AtomText(atom int) string {
	return a.Atoms[atom].Text(a.src)
}

// Span returns the source range covered by an element.
func (a *Arena) Span(e Element) lexer.StringRange {
	if e.Type == ElementAtom {
		return a.Atoms[e.Index]
	}
	return a.Lists[e.Index].Range
}

// Pos returns the line and column where an element starts.
func (a *Arena) Pos(e Element) (int, int) {
	return lexer.LineCol(a.src, a.Span(e).Start)
}

// Validate makes sure every list and every atom got a semantic role.
func (a *Arena) Validate() error {
	for i, prop := range a.ListProps {
		if prop == ListInvalid {
			line, col := a.Pos(Element{ElementList, i})
			return &Error{Line: line, Col: col, Err: fmt.Errorf("%w: list %d", ErrInvalidProperty, i)}
		}
	}
	for i, prop := range a.AtomProps {
		if prop == AtomInvalid {
			line, col := a.Pos(Element{ElementAtom, i})
			return &Error{Line: line, Col: col, Err: fmt.Errorf("%w: atom %d %q", ErrInvalidProperty, i, a.AtomText(i))}
		}
	}
	return nil
}
