package lexer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("fnexpr.lexer")

// Rule pairs a token type with the pattern fragment that recognizes it.
type Rule struct {
	Type    TokenType
	Pattern string
}

// Grammar is an ordered set of rules folded into a single anchored
// alternation. Each rule is wrapped in its own capturing group so the match
// can be traced back to exactly one rule. A Grammar is immutable once built.
type Grammar struct {
	rules  []Rule
	groups []int
	re     *regexp.Regexp
}

// AtomRules is the coarse lexical grammar: parentheses, atoms and
// separators. String literals are lexed as a single atom so they may contain
// spaces and parentheses.
var AtomRules = []Rule{
	{TokenOpenList, `[(]`},
	{TokenCloseList, `[)]`},
	{TokenAtom, `"[^"\n]*"|[a-zA-Z!$%&*/+\-.:<=>?^_~0-9]+`},
	{TokenNewLine, `\n`},
	{TokenWhitespace, `[ \t\r]+`},
}

// Atoms is the compiled coarse grammar used by default.
var Atoms = MustGrammar(AtomRules...)

// NewGrammar composes the given rules, in order, into one alternation that is
// matched against the start of the remaining input.
func NewGrammar(rules ...Rule) (*Grammar, error) {
	if len(rules) == 0 {
		return nil, ErrEmptyGrammar
	}

	seen := make(map[TokenType]bool, len(rules))
	alternatives := make([]string, 0, len(rules))
	for i, rule := range rules {
		if seen[rule.Type] {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateRule, rule.Type)
		}
		seen[rule.Type] = true

		if _, err := regexp.Compile(rule.Pattern); err != nil {
			return nil, fmt.Errorf("rule %v: %w", rule.Type, err)
		}
		alternatives = append(alternatives, fmt.Sprintf("(?P<%s>%s)", groupName(i), rule.Pattern))
	}

	pattern := "^(?:" + strings.Join(alternatives, "|") + ")"
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	log.Debugf("grammar: %s", pattern)

	g := &Grammar{
		rules:  append([]Rule(nil), rules...),
		groups: make([]int, len(rules)),
		re:     re,
	}
	for i := range rules {
		g.groups[i] = re.SubexpIndex(groupName(i))
	}
	return g, nil
}

// MustGrammar is like NewGrammar but panics if the rules can't be composed.
// It is meant for package level grammars.
func MustGrammar(rules ...Rule) *Grammar {
	g, err := NewGrammar(rules...)
	if err != nil {
		panic(err)
	}
	return g
}

// Pattern returns the composed alternation.
func (g *Grammar) Pattern() string {
	return g.re.String()
}

// Rules returns a copy of the rules the grammar was built from.
func (g *Grammar) Rules() []Rule {
	return append([]Rule(nil), g.rules...)
}

// match tries the alternation at the start of in. It returns the type of the
// only rule that matched and the length of the match, or ok=false if no rule
// matches.
func (g *Grammar) match(in []byte) (tt TokenType, n int, ok bool, err error) {
	loc := g.re.FindSubmatchIndex(in)
	if loc == nil {
		return TokenInvalid, 0, false, nil
	}

	found := -1
	for i, group := range g.groups {
		if loc[2*group] < 0 {
			continue
		}
		if found >= 0 {
			return TokenInvalid, 0, false, fmt.Errorf("%w: %v and %v", ErrAmbiguousMatch, g.rules[found].Type, g.rules[i].Type)
		}
		found = i
	}
	if found < 0 {
		return TokenInvalid, 0, false, ErrUnrecognizedInput
	}
	if loc[1] == 0 {
		return TokenInvalid, 0, false, fmt.Errorf("%w: %v", ErrEmptyMatch, g.rules[found].Type)
	}

	return g.rules[found].Type, loc[1], true, nil
}

func groupName(i int) string {
	return fmt.Sprintf("r%d", i)
}
