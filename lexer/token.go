package lexer

import (
	"fmt"
)

// StringRange is a half-open [Start, End) byte range into the source. It is
// the only handle to the text of a lexeme.
type StringRange struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the range.
func (r StringRange) Len() int {
	return r.End - r.Start
}

// Text returns the slice of src covered by the range.
func (r StringRange) Text(src []byte) string {
	return string(src[r.Start:r.End])
}

func (r StringRange) String() string {
	return fmt.Sprintf("[%d %d)", r.Start, r.End)
}

// Token represents a known sequence of characters (lexical unit). Tokens do
// not own text, they point into the source they were read from.
type Token struct {
	StringRange

	tt TokenType

	line int
	col  int
}

// NewToken creates a lexical unit
func NewToken(tt TokenType, r StringRange, line int, col int) Token {
	return Token{
		StringRange: r,
		tt:          tt,
		line:        line,
		col:         col,
	}
}

// Type returns the type of the lexical unit
func (t Token) Type() TokenType {
	return t.tt
}

// Range returns the source range of the lexical unit
func (t Token) Range() StringRange {
	return t.StringRange
}

// Pos returns the line (1-based) and column (0-based) of the lexical unit
func (t Token) Pos() (int, int) {
	return t.line, t.col
}

// Is returns true if the token matches the given type
func (t Token) Is(tt TokenType) bool {
	return t.tt == tt
}

func (t Token) String() string {
	return fmt.Sprintf("(:%v %v [%d %d])", t.tt, t.StringRange, t.line, t.col)
}
