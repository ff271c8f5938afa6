// Package classify re-classifies atoms into their semantic role: keyword,
// type name, literal or identifier.
package classify

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/xiam/fnexpr/lexer"
)

// ErrUnclassified is returned when no candidate pattern spans the whole atom.
var ErrUnclassified = errors.New("atom matches none of the expected patterns")

// Error reports an atom that could not be classified.
type Error struct {
	Text     string
	Expected []lexer.TokenType
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v: %q, expected one of %v", ErrUnclassified, e.Text, e.Expected)
}

func (e *Error) Unwrap() error {
	return ErrUnclassified
}

// Patterns is the table of atom shapes, one per token type.
var Patterns = map[lexer.TokenType]string{
	lexer.TokenKeywordFn:     `fn`,
	lexer.TokenKeywordIf:     `if`,
	lexer.TokenKeywordWhile:  `while`,
	lexer.TokenKeywordSet:    `set`,
	lexer.TokenKeywordReturn: `return`,

	lexer.TokenTypeInt:    `int`,
	lexer.TokenTypeFloat:  `float`,
	lexer.TokenTypeString: `string`,
	lexer.TokenTypeBool:   `bool`,

	lexer.TokenIdentifier: `[a-zA-Z!$%&*/:<=>?^_~][a-zA-Z!$%&*/:<=>?^_~0-9]*|[+]|[-]`,
	lexer.TokenBoolean:    `true|false`,
	lexer.TokenInteger:    `[+-]?[0-9]+`,
	lexer.TokenFloat:      `[+-]?[0-9]+[.][0-9]+`,
	lexer.TokenString:     `"[^"]*"`,
}

// Candidate orders used by the parsers.
var (
	Keywords = []lexer.TokenType{
		lexer.TokenKeywordFn,
		lexer.TokenKeywordIf,
		lexer.TokenKeywordWhile,
		lexer.TokenKeywordSet,
		lexer.TokenKeywordReturn,
	}

	TypeNames = []lexer.TokenType{
		lexer.TokenTypeBool,
		lexer.TokenTypeInt,
		lexer.TokenTypeFloat,
		lexer.TokenTypeString,
	}

	// SimpleArgument lists literals before identifiers, so "true" is a
	// boolean and not a variable.
	SimpleArgument = []lexer.TokenType{
		lexer.TokenBoolean,
		lexer.TokenFloat,
		lexer.TokenInteger,
		lexer.TokenString,
		lexer.TokenIdentifier,
	}

	// Tokens reserves keywords and type names before anything else.
	Tokens = concat(Keywords, TypeNames, SimpleArgument)
)

// Classifier holds the compiled, anchored atom patterns.
type Classifier struct {
	patterns map[lexer.TokenType]*regexp.Regexp
	order    []lexer.TokenType
}

var defaultClassifier = MustNew(Patterns)

// Default returns the classifier built from Patterns. Its default order is
// Tokens.
func Default() *Classifier {
	return defaultClassifier
}

// New compiles every pattern anchored at the start of the atom.
func New(patterns map[lexer.TokenType]string) (*Classifier, error) {
	c := &Classifier{
		patterns: make(map[lexer.TokenType]*regexp.Regexp, len(patterns)),
		order:    Tokens,
	}
	for tt, pattern := range patterns {
		re, err := regexp.Compile("^(?:" + pattern + ")")
		if err != nil {
			return nil, fmt.Errorf("pattern %v: %w", tt, err)
		}
		c.patterns[tt] = re
	}
	return c, nil
}

// MustNew is like New but panics on a malformed pattern.
func MustNew(patterns map[lexer.TokenType]string) *Classifier {
	c, err := New(patterns)
	if err != nil {
		panic(err)
	}
	return c
}

// Matches reports whether the pattern for tt spans the whole text.
func (c *Classifier) Matches(text string, tt lexer.TokenType) bool {
	re, ok := c.patterns[tt]
	if !ok {
		return false
	}
	loc := re.FindStringIndex(text)
	return loc != nil && loc[0] == 0 && loc[1] == len(text)
}

// Classify tries the candidates in order and returns the first one whose
// pattern consumes the entire text. A candidate that only matches a prefix
// does not count.
func (c *Classifier) Classify(text string, candidates ...lexer.TokenType) (lexer.TokenType, error) {
	for _, tt := range candidates {
		if c.Matches(text, tt) {
			return tt, nil
		}
	}
	return lexer.TokenInvalid, &Error{Text: text, Expected: candidates}
}

// Refine classifies an atom against the Tokens order. It satisfies
// lexer.Refiner.
func (c *Classifier) Refine(text string) (lexer.TokenType, error) {
	return c.Classify(text, c.order...)
}

var _ = lexer.Refiner(&Classifier{})

func concat(lists ...[]lexer.TokenType) []lexer.TokenType {
	out := []lexer.TokenType{}
	for _, list := range lists {
		out = append(out, list...)
	}
	return out
}
