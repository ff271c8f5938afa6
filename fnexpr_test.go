package fnexpr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xiam/fnexpr/ast"
	"github.com/xiam/fnexpr/lexer"
	"github.com/xiam/fnexpr/parser"
)

func TestCheckValid(t *testing.T) {
	testCases := []string{
		``,
		`(fn add ((a int) (b int)) ((return (+ a b))))`,
		`(fn f () ((set x 5) (return x)))`,
		`(fn f ((n int)) ((set n (- n 1)) (return n)))`,
		`(fn f ((c bool)) ((if c ((set r 1)) ((set r 2))) (return r)))`,
		`(fn f () ((set x 1) (set y (+ x 1)) (print x y "z")))`,
		"(fn a () ())\n(fn b () ((a)))",
	}

	for _, in := range testCases {
		report, err := Check([]byte(in))
		assert.NoError(t, err, in)
		assert.Empty(t, report.Diagnostics, in)
		assert.NoError(t, report.Err(), in)
	}
}

func TestCheckDiagnostics(t *testing.T) {
	testCases := []struct {
		In   string
		Err  error
		Name string
		Line int
		Col  int
	}{
		{"(fn f () ())\n(fn f () ())", ErrDuplicateFunction, "f", 2, 4},
		{`(fn f ((a int) (a bool)) ())`, ErrDuplicateParameter, "a", 1, 16},
		{`(fn f () ((return x)))`, ErrUndefined, "x", 1, 18},
		{`(fn f () ((set x x)))`, ErrUndefined, "x", 1, 17},
		{`(fn g () ()) (fn f () ((return g)))`, ErrUndefined, "g", 1, 31},
		{"(fn a () ((set x 1)))\n(fn b () ((return x)))", ErrUndefined, "x", 2, 18},
		{`(fn f () ((print (+ 1 y))))`, ErrUndefined, "y", 1, 22},
	}

	for _, tc := range testCases {
		report, err := Check([]byte(tc.In))
		assert.NoError(t, err, tc.In)

		if assert.Len(t, report.Diagnostics, 1, tc.In) {
			d := report.Diagnostics[0]
			assert.True(t, errors.Is(d, tc.Err), tc.In)
			assert.Equal(t, tc.Name, d.Name, tc.In)
			assert.Equal(t, tc.Line, d.Line, tc.In)
			assert.Equal(t, tc.Col, d.Col, tc.In)
		}
		assert.True(t, errors.Is(report.Err(), tc.Err), tc.In)
	}
}

func TestCheckCounts(t *testing.T) {
	report, err := Check([]byte(`(fn f ((a int)) ((set x a) (return x))) (fn g () ())`))
	assert.NoError(t, err)

	assert.Equal(t, 2, report.Counts.Functions)
	assert.Equal(t, 1, report.Counts.Parameters)
	assert.Equal(t, 1, report.Counts.Statements[parser.StatementSet])
	assert.Equal(t, 1, report.Counts.Statements[parser.StatementReturn])
}

func TestCheckSyntaxError(t *testing.T) {
	report, err := Check([]byte(`(fn f () ((return 1))`))
	assert.Nil(t, report)
	assert.True(t, errors.Is(err, parser.ErrUnexpectedEOF), "%v", err)
}

func TestBuild(t *testing.T) {
	a, err := Build([]byte(`(fn f () ((set x 5) (return x)))`))
	assert.NoError(t, err)
	assert.NoError(t, a.Validate())
	assert.Equal(t, ast.ListFunction, a.ListProps[1])
	assert.Equal(t, `(fn f () ((set x 5) (return x)))`, string(ast.Encode(a)))

	_, err = Build([]byte(`(fn f () ((return 1))`))
	assert.True(t, errors.Is(err, parser.ErrUnexpectedEOF), "%v", err)

	_, err = Build([]byte(`(fn f () ((if true ((return 1)))))`))
	assert.True(t, errors.Is(err, parser.ErrUnexpectedToken), "%v", err)

	_, err = Build([]byte(`(fn f () ((return 99999999999999999999)))`))
	assert.True(t, errors.Is(err, ast.ErrLiteralRange), "%v", err)

	_, err = Build([]byte(`(fn f () ((g "a"b)))`))
	assert.True(t, errors.Is(err, lexer.ErrUnrecognizedInput), "%v", err)
}

func TestBuildUsesCountedPlan(t *testing.T) {
	src := []byte(`(fn loop ((n int)) ((while (> n 0) ((set n (- n 1)))) (print "done" 1.5 true)))`)

	a, err := Build(src)
	assert.NoError(t, err)

	plan, err := ast.Measure(lexer.New(src))
	assert.NoError(t, err)
	assert.Len(t, a.Lists, plan.Lists)
	assert.Len(t, a.Elements, plan.Elements)
	assert.Len(t, a.Atoms, plan.Atoms)
	for i, l := range a.Lists {
		assert.Equal(t, plan.Counts[i], l.Count, "list %d", i)
	}
}

func TestParse(t *testing.T) {
	c := parser.NewCounter()
	assert.NoError(t, Parse([]byte(`(fn f () ((g 1 2)))`), c))
	assert.Equal(t, 1, c.Calls)
	assert.Equal(t, 2, c.Arguments)
}

func TestPosition(t *testing.T) {
	_, err := Check([]byte("(fn f ()\n  ((return 1 2)))"))
	line, col, text, ok := Position(err)
	assert.True(t, ok)
	assert.Equal(t, 2, line)
	assert.Equal(t, 13, col)
	assert.Equal(t, "2", text)

	_, err = Build([]byte("\n)"))
	line, col, _, ok = Position(err)
	assert.True(t, ok)
	assert.Equal(t, 2, line)
	assert.Equal(t, 0, col)

	report, err := Check([]byte(`(fn f () ((return y)))`))
	assert.NoError(t, err)
	line, col, text, ok = Position(report.Err())
	assert.True(t, ok)
	assert.Equal(t, 1, line)
	assert.Equal(t, 18, col)
	assert.Equal(t, "y", text)

	_, _, _, ok = Position(errors.New("plain"))
	assert.False(t, ok)
}
