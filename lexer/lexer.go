package lexer

import (
	"bytes"
)

// Refiner maps the text of an atom to a more specific token type.
type Refiner interface {
	Refine(text string) (TokenType, error)
}

// Option configures a Lexer.
type Option func(*Lexer)

// WithGrammar replaces the default grammar.
func WithGrammar(g *Grammar) Option {
	return func(lx *Lexer) {
		lx.g = g
	}
}

// WithRefiner makes the lexer run every atom token through r, turning the
// coarse token stream into the full one (keywords, type names, literals and
// identifiers).
func WithRefiner(r Refiner) Option {
	return func(lx *Lexer) {
		lx.refiner = r
	}
}

// Lexer represents a lexical analyzer over an in-memory source.
type Lexer struct {
	g       *Grammar
	refiner Refiner

	src []byte

	offset    int
	lines     int
	lineStart int
}

// New initializes a Lexer object
func New(src []byte, opts ...Option) *Lexer {
	lx := &Lexer{
		g:   Atoms,
		src: src,
	}
	for _, opt := range opts {
		opt(lx)
	}
	return lx
}

// Source returns the input of the lexer.
func (lx *Lexer) Source() []byte {
	return lx.src
}

// Text returns the lexeme covered by the given token.
func (lx *Lexer) Text(tok Token) string {
	return tok.Text(lx.src)
}

// Pos returns the current line (1-based) and column (0-based).
func (lx *Lexer) Pos() (int, int) {
	return lx.lines + 1, lx.offset - lx.lineStart
}

// Reset rewinds the lexer to the start of the input. The compiled grammar is
// kept.
func (lx *Lexer) Reset() {
	lx.offset = 0
	lx.lines = 0
	lx.lineStart = 0
}

// Next reads the token at the current offset. At the end of the input it
// returns a TokenEOF token.
func (lx *Lexer) Next() (Token, error) {
	line, col := lx.Pos()

	if lx.offset >= len(lx.src) {
		return NewToken(TokenEOF, StringRange{lx.offset, lx.offset}, line, col), nil
	}

	tt, n, ok, err := lx.g.match(lx.src[lx.offset:])
	if err != nil {
		return Token{}, lx.errorf(err)
	}
	if !ok {
		return Token{}, lx.errorf(ErrUnrecognizedInput)
	}

	tok := NewToken(tt, StringRange{lx.offset, lx.offset + n}, line, col)
	lx.offset += n

	// Atoms must be followed by a separator, a parenthesis or the end of
	// the input.
	if tt == TokenAtom && lx.offset < len(lx.src) && !isDelimiter(lx.src[lx.offset]) {
		return Token{}, lx.errorf(ErrUnrecognizedInput)
	}
	if tt == TokenNewLine {
		lx.lines++
		lx.lineStart = lx.offset
	}

	if tt == TokenAtom && lx.refiner != nil {
		refined, err := lx.refiner.Refine(tok.Text(lx.src))
		if err != nil {
			return Token{}, &Error{Line: line, Col: col, Err: err, Text: tok.Text(lx.src)}
		}
		tok.tt = refined
	}

	log.Debugf("token: %v %q", tok, tok.Text(lx.src))
	return tok, nil
}

// NextSignificant reads tokens until one that is neither whitespace nor a
// newline is found, or the input ends.
func (lx *Lexer) NextSignificant() (Token, error) {
	for {
		tok, err := lx.Next()
		if err != nil {
			return Token{}, err
		}
		if tok.Type().IsSignificant() {
			return tok, nil
		}
	}
}

func (lx *Lexer) errorf(err error) *Error {
	line, col := lx.Pos()
	return &Error{
		Line: line,
		Col:  col,
		Err:  err,
		Text: excerpt(lx.src[lx.offset:]),
	}
}

func isDelimiter(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', '(', ')':
		return true
	}
	return false
}

func excerpt(in []byte) string {
	if i := bytes.IndexByte(in, '\n'); i >= 0 {
		in = in[:i]
	}
	if len(in) > 16 {
		in = in[:16]
	}
	return string(in)
}

// LineCol returns the line (1-based) and column (0-based) of the given offset
// in src.
func LineCol(src []byte, offset int) (int, int) {
	if offset > len(src) {
		offset = len(src)
	}
	head := src[:offset]
	line := bytes.Count(head, []byte{'\n'}) + 1
	col := offset - (bytes.LastIndexByte(head, '\n') + 1)
	return line, col
}

// Tokenize takes an array of bytes and returns all the tokens within it,
// whitespace included and TokenEOF excluded, or an error if a token can't be
// identified.
func Tokenize(in []byte, opts ...Option) ([]Token, error) {
	lx := New(in, opts...)

	tokens := []Token{}
	for {
		tok, err := lx.Next()
		if err != nil {
			return nil, err
		}
		if tok.Is(TokenEOF) {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}
