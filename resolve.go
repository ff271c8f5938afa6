package fnexpr

import (
	"errors"
	"fmt"

	"github.com/xiam/fnexpr/lexer"
	"github.com/xiam/fnexpr/parser"
)

var (
	ErrDuplicateFunction  = errors.New("function already defined")
	ErrDuplicateParameter = errors.New("duplicate parameter")
	ErrUndefined          = errors.New("undefined variable")
)

// Diagnostic is a validation error on a program that parsed correctly.
type Diagnostic struct {
	Line int
	Col  int
	Err  error
	Name string
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%d:%d: %v: %s", d.Line, d.Col, d.Err, d.Name)
}

func (d *Diagnostic) Unwrap() error {
	return d.Err
}

// resolver checks names as the parser reports them. Functions live in the
// global scope, parameters and variables in one scope per function. A name
// bound by set becomes visible once its statement ends.
type resolver struct {
	parser.NopSink

	src    []byte
	global *symbolTable
	scope  *symbolTable

	pending []lexer.StringRange

	diagnostics []*Diagnostic
}

func newResolver(src []byte) *resolver {
	global := newSymbolTable(nil)
	return &resolver{
		src:    src,
		global: global,
		scope:  global,
	}
}

func (r *resolver) report(at lexer.StringRange, err error) {
	line, col := lexer.LineCol(r.src, at.Start)
	d := &Diagnostic{Line: line, Col: col, Err: err, Name: at.Text(r.src)}
	log.Debugf("diagnostic: %v", d)
	r.diagnostics = append(r.diagnostics, d)
}

func (r *resolver) FunctionDefinitionBegin(name lexer.StringRange) {
	s := &symbol{t: symbolFunction, name: name.Text(r.src)}
	if err := r.global.Define(s); err != nil {
		r.report(name, ErrDuplicateFunction)
	}
	r.scope = newSymbolTable(r.global)
}

func (r *resolver) FunctionDefinitionEnd() {
	r.scope = r.global
}

func (r *resolver) Parameter(name lexer.StringRange, _ lexer.TokenType) {
	s := &symbol{t: symbolParameter, name: name.Text(r.src)}
	if err := r.scope.Define(s); err != nil {
		r.report(name, ErrDuplicateParameter)
	}
}

func (r *resolver) SetBegin(name lexer.StringRange) {
	r.pending = append(r.pending, name)
}

func (r *resolver) StatementEnd(kind parser.StatementKind) {
	if kind != parser.StatementSet || len(r.pending) == 0 {
		return
	}
	name := r.pending[len(r.pending)-1]
	r.pending = r.pending[:len(r.pending)-1]

	text := name.Text(r.src)
	if s, ok := r.scope.n[text]; ok && s.t == symbolParameter {
		return
	}
	r.scope.Set(&symbol{t: symbolVariable, name: text})
}

func (r *resolver) FunctionCallParameter(kind lexer.TokenType, value lexer.StringRange) {
	if kind != lexer.TokenIdentifier {
		return
	}
	s, ok := r.scope.Get(value.Text(r.src))
	if !ok || s.t == symbolFunction {
		r.report(value, ErrUndefined)
	}
}

var _ = parser.Sink(&resolver{})
