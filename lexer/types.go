package lexer

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid    TokenType = iota
	TokenOpenList             // Open parenthesis: "("
	TokenCloseList            // Close parenthesis: ")"
	TokenAtom                 // Anything between separators and parentheses
	TokenNewLine              // Newline: "\n"
	TokenWhitespace           // Space, tab or carriage return

	// Keywords
	TokenKeywordFn
	TokenKeywordIf
	TokenKeywordWhile
	TokenKeywordSet
	TokenKeywordReturn

	// Type names
	TokenTypeInt
	TokenTypeFloat
	TokenTypeString
	TokenTypeBool

	TokenIdentifier
	TokenBoolean // true, false
	TokenInteger // [+-]?[0-9]+
	TokenFloat   // [+-]?[0-9]+.[0-9]+
	TokenString  // "..."

	TokenEOF // End of file
)

var tokenNames = map[TokenType]string{
	TokenInvalid:       "invalid",
	TokenOpenList:      "open_list",
	TokenCloseList:     "close_list",
	TokenAtom:          "atom",
	TokenNewLine:       "newline",
	TokenWhitespace:    "whitespace",
	TokenKeywordFn:     "fn",
	TokenKeywordIf:     "if",
	TokenKeywordWhile:  "while",
	TokenKeywordSet:    "set",
	TokenKeywordReturn: "return",
	TokenTypeInt:       "int",
	TokenTypeFloat:     "float",
	TokenTypeString:    "string",
	TokenTypeBool:      "bool",
	TokenIdentifier:    "identifier",
	TokenBoolean:       "boolean",
	TokenInteger:       "integer",
	TokenFloat:         "float_literal",
	TokenString:        "string_literal",
	TokenEOF:           "EOF",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

// IsSignificant returns false for whitespace and newlines.
func (tt TokenType) IsSignificant() bool {
	return tt != TokenNewLine && tt != TokenWhitespace
}

// IsTypeName returns true for int, float, string and bool.
func (tt TokenType) IsTypeName() bool {
	return tt >= TokenTypeInt && tt <= TokenTypeBool
}

// IsLiteral returns true for boolean, integer, float and string literals.
func (tt TokenType) IsLiteral() bool {
	return tt >= TokenBoolean && tt <= TokenString
}

// IsAtom returns true for every type an atom can be refined into, and for
// the unrefined atom itself.
func (tt TokenType) IsAtom() bool {
	return tt == TokenAtom || (tt >= TokenKeywordFn && tt <= TokenString)
}
