package parser

import (
	"github.com/xiam/fnexpr/lexer"
)

// StatementKind identifies the form of a statement.
type StatementKind uint8

// Statement kinds
const (
	StatementIf StatementKind = iota
	StatementWhile
	StatementSet
	StatementReturn
	StatementCall
)

var statementKindName = map[StatementKind]string{
	StatementIf:     "if",
	StatementWhile:  "while",
	StatementSet:    "set",
	StatementReturn: "return",
	StatementCall:   "call",
}

func (k StatementKind) String() string {
	return statementKindName[k]
}

// Sink receives the structure of a program as a flat sequence of events.
// Events carry source ranges and kinds only; what gets built from them is up
// to the implementation.
//
// For every statement, Statement is followed by the begin event of its form
// (IfBegin, WhileBegin, SetBegin, ReturnBegin or, for a bare call,
// FunctionCallBegin) and closed by StatementEnd. FunctionCallParameter
// reports every atomic expression: call arguments as well as the operands of
// if, while, set and return.
type Sink interface {
	FunctionDefinitionBegin(name lexer.StringRange)
	FunctionDefinitionEnd()

	ParameterListBegin()
	Parameter(name lexer.StringRange, typeName lexer.TokenType)
	ParameterListEnd()

	StatementListBegin()
	StatementListEnd()

	Statement(kind StatementKind)
	IfBegin()
	WhileBegin()
	SetBegin(name lexer.StringRange)
	ReturnBegin()
	StatementEnd(kind StatementKind)

	FunctionCallBegin(name lexer.StringRange)
	FunctionCallParameter(kind lexer.TokenType, value lexer.StringRange)
	FunctionCallEnd()
}

// NopSink ignores every event. Embed it to implement only part of Sink.
type NopSink struct{}

func (NopSink) FunctionDefinitionBegin(lexer.StringRange)                {}
func (NopSink) FunctionDefinitionEnd()                                   {}
func (NopSink) ParameterListBegin()                                      {}
func (NopSink) Parameter(lexer.StringRange, lexer.TokenType)             {}
func (NopSink) ParameterListEnd()                                        {}
func (NopSink) StatementListBegin()                                      {}
func (NopSink) StatementListEnd()                                        {}
func (NopSink) Statement(StatementKind)                                  {}
func (NopSink) IfBegin()                                                 {}
func (NopSink) WhileBegin()                                              {}
func (NopSink) SetBegin(lexer.StringRange)                               {}
func (NopSink) ReturnBegin()                                             {}
func (NopSink) StatementEnd(StatementKind)                               {}
func (NopSink) FunctionCallBegin(lexer.StringRange)                      {}
func (NopSink) FunctionCallParameter(lexer.TokenType, lexer.StringRange) {}
func (NopSink) FunctionCallEnd()                                         {}

type tee []Sink

// Tee returns a sink that forwards every event to all the given sinks, in
// order.
func Tee(sinks ...Sink) Sink {
	return tee(sinks)
}

func (t tee) FunctionDefinitionBegin(name lexer.StringRange) {
	for _, s := range t {
		s.FunctionDefinitionBegin(name)
	}
}

func (t tee) FunctionDefinitionEnd() {
	for _, s := range t {
		s.FunctionDefinitionEnd()
	}
}

func (t tee) ParameterListBegin() {
	for _, s := range t {
		s.ParameterListBegin()
	}
}

func (t tee) Parameter(name lexer.StringRange, typeName lexer.TokenType) {
	for _, s := range t {
		s.Parameter(name, typeName)
	}
}

func (t tee) ParameterListEnd() {
	for _, s := range t {
		s.ParameterListEnd()
	}
}

func (t tee) StatementListBegin() {
	for _, s := range t {
		s.StatementListBegin()
	}
}

func (t tee) StatementListEnd() {
	for _, s := range t {
		s.StatementListEnd()
	}
}

func (t tee) Statement(kind StatementKind) {
	for _, s := range t {
		s.Statement(kind)
	}
}

func (t tee) IfBegin() {
	for _, s := range t {
		s.IfBegin()
	}
}

func (t tee) WhileBegin() {
	for _, s := range t {
		s.WhileBegin()
	}
}

func (t tee) SetBegin(name lexer.StringRange) {
	for _, s := range t {
		s.SetBegin(name)
	}
}

func (t tee) ReturnBegin() {
	for _, s := range t {
		s.ReturnBegin()
	}
}

func (t tee) StatementEnd(kind StatementKind) {
	for _, s := range t {
		s.StatementEnd(kind)
	}
}

func (t tee) FunctionCallBegin(name lexer.StringRange) {
	for _, s := range t {
		s.FunctionCallBegin(name)
	}
}

func (t tee) FunctionCallParameter(kind lexer.TokenType, value lexer.StringRange) {
	for _, s := range t {
		s.FunctionCallParameter(kind, value)
	}
}

func (t tee) FunctionCallEnd() {
	for _, s := range t {
		s.FunctionCallEnd()
	}
}

var (
	_ = Sink(NopSink{})
	_ = Sink(tee{})
)
