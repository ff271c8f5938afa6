package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/xiam/fnexpr/lexer"
)

// Printer writes an indented outline of the events it receives.
type Printer struct {
	w     io.Writer
	src   []byte
	level int
}

// NewPrinter returns a printer that resolves ranges against src.
func NewPrinter(w io.Writer, src []byte) *Printer {
	return &Printer{w: w, src: src}
}

func (p *Printer) line(format string, args ...interface{}) {
	fmt.Fprintf(p.w, "%s%s\n", strings.Repeat("  ", p.level), fmt.Sprintf(format, args...))
}

func (p *Printer) FunctionDefinitionBegin(name lexer.StringRange) {
	p.line("fn %s", name.Text(p.src))
	p.level++
}

func (p *Printer) FunctionDefinitionEnd() {
	p.level--
}

func (p *Printer) ParameterListBegin() {
	p.line("parameters")
	p.level++
}

func (p *Printer) Parameter(name lexer.StringRange, typeName lexer.TokenType) {
	p.line("%s %v", name.Text(p.src), typeName)
}

func (p *Printer) ParameterListEnd() {
	p.level--
}

func (p *Printer) StatementListBegin() {
	p.line("statements")
	p.level++
}

func (p *Printer) StatementListEnd() {
	p.level--
}

func (p *Printer) Statement(StatementKind) {}

func (p *Printer) IfBegin() {
	p.line("if")
	p.level++
}

func (p *Printer) WhileBegin() {
	p.line("while")
	p.level++
}

func (p *Printer) SetBegin(name lexer.StringRange) {
	p.line("set %s", name.Text(p.src))
	p.level++
}

func (p *Printer) ReturnBegin() {
	p.line("return")
	p.level++
}

func (p *Printer) StatementEnd(kind StatementKind) {
	if kind != StatementCall {
		p.level--
	}
}

func (p *Printer) FunctionCallBegin(name lexer.StringRange) {
	p.line("call %s", name.Text(p.src))
	p.level++
}

func (p *Printer) FunctionCallParameter(kind lexer.TokenType, value lexer.StringRange) {
	p.line("%v %s", kind, value.Text(p.src))
}

func (p *Printer) FunctionCallEnd() {
	p.level--
}

var _ = Sink(&Printer{})
