package ast

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xiam/fnexpr/lexer"
)

func build(t *testing.T, in string) *Arena {
	a, err := Build(lexer.New([]byte(in)))
	assert.NoError(t, err, in)
	return a
}

func TestMeasure(t *testing.T) {
	plan, err := Measure(lexer.New([]byte("(fn f ()\n  ((set x 5) (return x)))")))
	assert.NoError(t, err)

	assert.Equal(t, Plan{
		Lists:    6,
		Elements: 12,
		Atoms:    7,
		MaxDepth: 3,
		Counts:   []int{1, 4, 0, 2, 3, 2},
	}, plan)
}

func TestBuildLayout(t *testing.T) {
	a := build(t, "(fn f ()\n  ((set x 5) (return x)))")

	assert.Equal(t, []int{0, 1, 5, 5, 7, 10}, func() []int {
		offsets := []int{}
		for _, l := range a.Lists {
			offsets = append(offsets, l.Offset)
		}
		return offsets
	}())

	assert.Equal(t, []Element{
		{ElementList, 1},
		{ElementAtom, 0}, {ElementAtom, 1}, {ElementList, 2}, {ElementList, 3},
		{ElementList, 4}, {ElementList, 5},
		{ElementAtom, 2}, {ElementAtom, 3}, {ElementAtom, 4},
		{ElementAtom, 5}, {ElementAtom, 6},
	}, a.Elements)

	texts := []string{}
	for i := range a.Atoms {
		texts = append(texts, a.AtomText(i))
	}
	assert.Equal(t, []string{"fn", "f", "set", "x", "5", "return", "x"}, texts)

	assert.Equal(t, "()", a.Span(Element{ElementList, 2}).Text(a.Source()))
	assert.Equal(t, "(set x 5)", a.Span(Element{ElementList, 4}).Text(a.Source()))

	line, col := a.Pos(Element{ElementList, 4})
	assert.Equal(t, 2, line)
	assert.Equal(t, 3, col)
}

func TestBuildEncode(t *testing.T) {
	testCases := []struct {
		In  string
		Out string
	}{
		{``, ``},
		{`()`, `()`},
		{"(a\n\t b\n\n c)", `(a b c)`},
		{`(fn add ((a int) (b int)) ((return (+ a b))))`, `(fn add ((a int) (b int)) ((return (+ a b))))`},
		{`(a (b (c (d))) e) (f)`, `(a (b (c (d))) e) (f)`},
		{`(print "hello (world)" 1.5)`, `(print "hello (world)" 1.5)`},
	}

	for _, tc := range testCases {
		a := build(t, tc.In)
		assert.Equal(t, tc.Out, string(Encode(a)), tc.In)
	}
}

func TestBuildPreservesOrder(t *testing.T) {
	src := "(fn f ((n int)) ((while (< n 10) ((set n (+ n 1)) (print n \"x y\"))) (return n)))"
	a := build(t, src)

	kinds := func(tokens []lexer.Token) []lexer.TokenType {
		out := []lexer.TokenType{}
		depth := 0
		for _, tok := range tokens {
			switch tok.Type() {
			case lexer.TokenOpenList:
				if depth == 0 {
					out = append(out, tok.Type())
				}
				depth++
			case lexer.TokenCloseList:
				depth--
			case lexer.TokenAtom:
				if depth == 0 {
					out = append(out, tok.Type())
				}
			}
		}
		return out
	}

	for i := range a.Lists {
		spans := []string{}
		expected := []lexer.TokenType{}
		for _, e := range a.Children(i) {
			spans = append(spans, a.Span(e).Text(a.Source()))
			if e.Type == ElementList {
				expected = append(expected, lexer.TokenOpenList)
			} else {
				expected = append(expected, lexer.TokenAtom)
			}
		}

		tokens, err := lexer.Tokenize([]byte(strings.Join(spans, " ")))
		assert.NoError(t, err)
		assert.Equal(t, expected, kinds(tokens), "list %d", i)
	}
}

func TestBuildErrors(t *testing.T) {
	testCases := []struct {
		In   string
		Err  error
		Line int
		Col  int
	}{
		{`)`, ErrUnmatchedParen, 1, 0},
		{"(a)\n  (b))", ErrUnmatchedParen, 2, 5},
		{`(fn f () ((return 1))`, ErrUnclosedList, 1, 0},
		{"(a\n (b (c)", ErrUnclosedList, 2, 1},
	}

	for _, tc := range testCases {
		_, err := Build(lexer.New([]byte(tc.In)))
		assert.True(t, errors.Is(err, tc.Err), tc.In)

		var astErr *Error
		if assert.True(t, errors.As(err, &astErr), tc.In) {
			assert.Equal(t, tc.Line, astErr.Line, tc.In)
			assert.Equal(t, tc.Col, astErr.Col, tc.In)
		}
	}

	_, err := Build(lexer.New([]byte(`(a # b)`)))
	assert.True(t, errors.Is(err, lexer.ErrUnrecognizedInput))
}

func TestFillDetectsOverflow(t *testing.T) {
	src := []byte(`(a b)`)
	plan, err := Measure(lexer.New(src))
	assert.NoError(t, err)

	plan.Counts[1] = 1
	plan.Elements--
	a := NewArena(src, plan)

	err = a.fill(lexer.New(src), plan.MaxDepth)
	assert.True(t, errors.Is(err, ErrArenaOverflow))
}

func TestValidate(t *testing.T) {
	a := build(t, "(a\n b)")
	err := a.Validate()
	assert.True(t, errors.Is(err, ErrInvalidProperty))

	for i := range a.ListProps {
		a.ListProps[i] = ListCall
	}
	a.ListProps[0] = ListGlobal
	a.AtomProps[0] = AtomCallee

	var astErr *Error
	err = a.Validate()
	if assert.True(t, errors.As(err, &astErr)) {
		assert.Equal(t, 2, astErr.Line)
		assert.Equal(t, 1, astErr.Col)
	}

	a.AtomProps[1] = AtomVariable
	assert.NoError(t, a.Validate())
}

func TestValue(t *testing.T) {
	a := build(t, `(f 42 -1.5 true "hi there" x)`)
	a.AtomProps = []AtomProperty{AtomCallee, AtomInt, AtomFloat, AtomBool, AtomString, AtomVariable}

	testCases := []struct {
		Atom  int
		Value interface{}
	}{
		{1, int64(42)},
		{2, -1.5},
		{3, true},
		{4, "hi there"},
	}

	for _, tc := range testCases {
		v, err := a.Value(tc.Atom)
		assert.NoError(t, err)
		assert.Equal(t, tc.Value, v.Value())
	}

	_, err := a.Value(5)
	assert.True(t, errors.Is(err, ErrNotLiteral))
}

func TestParseLiteralRange(t *testing.T) {
	v, err := ParseLiteral(AtomInt, "-9223372036854775808")
	assert.NoError(t, err)
	assert.Equal(t, int64(-9223372036854775808), v.Value())

	for _, in := range []string{"9223372036854775808", "99999999999999999999"} {
		_, err := ParseLiteral(AtomInt, in)
		assert.True(t, errors.Is(err, ErrLiteralRange), in)
	}

	_, err = ParseLiteral(AtomFloat, "1"+strings.Repeat("0", 400)+".5")
	assert.True(t, errors.Is(err, ErrLiteralRange))

	_, err = ParseLiteral(AtomVariable, "x")
	assert.True(t, errors.Is(err, ErrNotLiteral))
}

func TestBuildWithPlan(t *testing.T) {
	src := []byte(`(fn f ((a int)) ((return a)))`)
	plan, err := Measure(lexer.New(src))
	assert.NoError(t, err)

	a, err := BuildWithPlan(lexer.New(src), plan)
	assert.NoError(t, err)
	b := build(t, string(src))
	assert.Equal(t, b.Lists, a.Lists)
	assert.Equal(t, b.Elements, a.Elements)
	assert.Equal(t, b.Atoms, a.Atoms)

	short := plan
	short.Counts = append([]int(nil), plan.Counts...)
	short.Counts[1]--
	_, err = BuildWithPlan(lexer.New(src), short)
	assert.True(t, errors.Is(err, ErrPlanMismatch), "%v", err)

	short.Elements--
	_, err = BuildWithPlan(lexer.New(src), short)
	assert.True(t, errors.Is(err, ErrArenaOverflow), "%v", err)

	_, err = BuildWithPlan(lexer.New(src), Plan{})
	assert.True(t, errors.Is(err, ErrPlanMismatch), "%v", err)

	shallow := plan
	shallow.MaxDepth--
	_, err = BuildWithPlan(lexer.New(src), shallow)
	assert.True(t, errors.Is(err, ErrArenaOverflow), "%v", err)
}
