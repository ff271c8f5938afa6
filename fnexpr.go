// Package fnexpr reads programs written in a small S-expression language made
// of typed function definitions. The packages below it do the work: lexer
// splits the input, classify gives atoms their role, parser runs the grammar
// and ast holds the flattened tree.
package fnexpr

import (
	"errors"

	"github.com/tliron/commonlog"
	"github.com/xiam/fnexpr/ast"
	"github.com/xiam/fnexpr/lexer"
	"github.com/xiam/fnexpr/parser"
)

var log = commonlog.GetLogger("fnexpr")

// Parse reads src once, front to back, and reports its structure to sink.
func Parse(src []byte, sink parser.Sink, opts ...parser.Option) error {
	return parser.Parse(src, sink, opts...)
}

// Build lays src out in an arena and gives every list and atom its role. The
// parse events are counted first, so the arena is allocated once with its
// final sizes and filled in a second read of the input.
func Build(src []byte) (*ast.Arena, error) {
	counter := parser.NewCounter()
	if err := parser.Parse(src, counter); err != nil {
		return nil, err
	}

	a, err := ast.BuildWithPlan(lexer.New(src), counter.Plan())
	if err != nil {
		return nil, err
	}
	if err := parser.Analyze(a, parser.NopSink{}); err != nil {
		return nil, err
	}
	return a, nil
}

// Report is the outcome of Check on a program that parsed.
type Report struct {
	Counts      *parser.Counter
	Diagnostics []*Diagnostic
}

// Err returns nil if the program is valid, or all of its diagnostics joined.
func (r *Report) Err() error {
	errs := make([]error, 0, len(r.Diagnostics))
	for _, d := range r.Diagnostics {
		errs = append(errs, d)
	}
	return errors.Join(errs...)
}

// Check parses src and validates its names. A syntax error is returned as
// err; problems found in a well-formed program go to the report.
func Check(src []byte) (*Report, error) {
	counter := parser.NewCounter()
	res := newResolver(src)

	if err := parser.Parse(src, parser.Tee(counter, res)); err != nil {
		return nil, err
	}

	log.Debugf("checked %d functions, %d diagnostics", counter.Functions, len(res.diagnostics))
	return &Report{
		Counts:      counter,
		Diagnostics: res.diagnostics,
	}, nil
}

// Position returns the line (1-based), the column (0-based) and the offending
// text of any error produced by this module. ok is false for errors that
// carry no position.
func Position(err error) (line int, col int, text string, ok bool) {
	var (
		lexErr    *lexer.Error
		parseErr  *parser.Error
		arenaErr  *ast.Error
		checkDiag *Diagnostic
	)
	switch {
	case errors.As(err, &checkDiag):
		return checkDiag.Line, checkDiag.Col, checkDiag.Name, true
	case errors.As(err, &parseErr):
		return parseErr.Line, parseErr.Col, parseErr.Found, true
	case errors.As(err, &lexErr):
		return lexErr.Line, lexErr.Col, lexErr.Text, true
	case errors.As(err, &arenaErr):
		return arenaErr.Line, arenaErr.Col, "", true
	}
	return 0, 0, "", false
}
