package parser

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xiam/fnexpr/lexer"
)

// recorder keeps every event as a line of text.
type recorder struct {
	src    []byte
	events []string
}

func (r *recorder) add(format string, args ...interface{}) {
	r.events = append(r.events, fmt.Sprintf(format, args...))
}

func (r *recorder) FunctionDefinitionBegin(name lexer.StringRange) {
	r.add("fn %s", name.Text(r.src))
}
func (r *recorder) FunctionDefinitionEnd() { r.add("end fn") }
func (r *recorder) ParameterListBegin()    { r.add("params") }
func (r *recorder) Parameter(name lexer.StringRange, typeName lexer.TokenType) {
	r.add("param %s %v", name.Text(r.src), typeName)
}
func (r *recorder) ParameterListEnd()            { r.add("end params") }
func (r *recorder) StatementListBegin()          { r.add("statements") }
func (r *recorder) StatementListEnd()            { r.add("end statements") }
func (r *recorder) Statement(kind StatementKind) { r.add("statement %v", kind) }
func (r *recorder) IfBegin()                     { r.add("if") }
func (r *recorder) WhileBegin()                  { r.add("while") }
func (r *recorder) SetBegin(name lexer.StringRange) {
	r.add("set %s", name.Text(r.src))
}
func (r *recorder) ReturnBegin()                    { r.add("return") }
func (r *recorder) StatementEnd(kind StatementKind) { r.add("end %v", kind) }
func (r *recorder) FunctionCallBegin(name lexer.StringRange) {
	r.add("call %s", name.Text(r.src))
}
func (r *recorder) FunctionCallParameter(kind lexer.TokenType, value lexer.StringRange) {
	r.add("arg %v %s", kind, value.Text(r.src))
}
func (r *recorder) FunctionCallEnd() { r.add("end call") }

func TestTee(t *testing.T) {
	src := []byte(`(fn f () ((g 1)))`)
	a, b := &recorder{src: src}, &recorder{src: src}

	err := Parse(src, Tee(a, NopSink{}, b))
	assert.NoError(t, err)
	assert.NotEmpty(t, a.events)
	assert.Equal(t, a.events, b.events)
}

func TestStatementKindString(t *testing.T) {
	assert.Equal(t, "if", StatementIf.String())
	assert.Equal(t, "call", StatementCall.String())
}
