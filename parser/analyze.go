package parser

import (
	"fmt"

	"github.com/xiam/fnexpr/ast"
	"github.com/xiam/fnexpr/classify"
	"github.com/xiam/fnexpr/lexer"
)

var (
	literalProps = map[lexer.TokenType]ast.AtomProperty{
		lexer.TokenIdentifier: ast.AtomVariable,
		lexer.TokenBoolean:    ast.AtomBool,
		lexer.TokenInteger:    ast.AtomInt,
		lexer.TokenFloat:      ast.AtomFloat,
		lexer.TokenString:     ast.AtomString,
	}

	typeNameProps = map[lexer.TokenType]ast.AtomProperty{
		lexer.TokenTypeInt:    ast.AtomTypeInt,
		lexer.TokenTypeFloat:  ast.AtomTypeFloat,
		lexer.TokenTypeString: ast.AtomTypeString,
		lexer.TokenTypeBool:   ast.AtomTypeBool,
	}

	expressionTypes = []lexer.TokenType{
		lexer.TokenIdentifier,
		lexer.TokenBoolean,
		lexer.TokenInteger,
		lexer.TokenFloat,
		lexer.TokenString,
	}

	statementHeadTypes = []lexer.TokenType{
		lexer.TokenKeywordIf,
		lexer.TokenKeywordWhile,
		lexer.TokenKeywordSet,
		lexer.TokenKeywordReturn,
		lexer.TokenIdentifier,
	}
)

type analyzer struct {
	a    *ast.Arena
	c    *classify.Classifier
	sink Sink
}

// Analyze classifies every list and atom of an arena built from a program,
// following the same grammar as Parser, and sends the same events to sink.
// It fails if any element is left without a role.
func Analyze(a *ast.Arena, sink Sink) error {
	return AnalyzeWith(a, classify.Default(), sink)
}

// AnalyzeWith is like Analyze but uses the given classifier.
func AnalyzeWith(a *ast.Arena, c *classify.Classifier, sink Sink) error {
	an := &analyzer{a: a, c: c, sink: sink}

	a.ListProps[a.Root()] = ast.ListGlobal
	for _, e := range a.Children(a.Root()) {
		if err := an.function(e); err != nil {
			return err
		}
	}

	return a.Validate()
}

func (an *analyzer) errorAt(e ast.Element, err error, expected string, found string) error {
	line, col := an.a.Pos(e)
	return &Error{Line: line, Col: col, Err: err, Expected: expected, Found: found}
}

func (an *analyzer) text(e ast.Element) string {
	return an.a.Span(e).Text(an.a.Source())
}

// Arity wildcards for list.
const (
	anyArity = -1
	nonEmpty = -2
)

// list returns the children of e, which must be a list of n elements.
func (an *analyzer) list(e ast.Element, expected string, n int) ([]ast.Element, error) {
	if e.Type != ast.ElementList {
		return nil, an.errorAt(e, ErrUnexpectedElement, expected, an.text(e))
	}
	children := an.a.Children(e.Index)
	switch {
	case n == nonEmpty && len(children) == 0:
		return nil, an.errorAt(e, ErrArity, expected+" with at least 1 element", an.text(e))
	case n >= 0 && len(children) != n:
		return nil, an.errorAt(e, ErrArity, fmt.Sprintf("%s with %d elements", expected, n), an.text(e))
	}
	return children, nil
}

// atom classifies e against order and requires the result to be one of
// accept.
func (an *analyzer) atom(e ast.Element, expected string, order []lexer.TokenType, accept ...lexer.TokenType) (lexer.TokenType, error) {
	if e.Type != ast.ElementAtom {
		return lexer.TokenInvalid, an.errorAt(e, ErrUnexpectedElement, expected, an.text(e))
	}

	text := an.a.AtomText(e.Index)
	tt, err := an.c.Classify(text, order...)
	if err != nil {
		line, col := an.a.Pos(e)
		return lexer.TokenInvalid, &lexer.Error{Line: line, Col: col, Err: err, Text: text}
	}

	for _, ok := range accept {
		if tt == ok {
			return tt, nil
		}
	}
	return lexer.TokenInvalid, an.errorAt(e, ErrUnexpectedToken, expected, text)
}

func (an *analyzer) setAtom(e ast.Element, prop ast.AtomProperty) {
	an.a.AtomProps[e.Index] = prop
}

func (an *analyzer) setList(e ast.Element, prop ast.ListProperty) {
	an.a.ListProps[e.Index] = prop
}

func (an *analyzer) function(e ast.Element) error {
	children, err := an.list(e, "function definition", 4)
	if err != nil {
		return err
	}
	an.setList(e, ast.ListFunction)

	if _, err := an.atom(children[0], "`fn`", classify.Tokens, lexer.TokenKeywordFn); err != nil {
		return err
	}
	an.setAtom(children[0], ast.AtomKeywordFn)

	if _, err := an.atom(children[1], "function name", classify.Tokens, lexer.TokenIdentifier); err != nil {
		return err
	}
	an.setAtom(children[1], ast.AtomFunctionName)
	log.Debugf("function %s", an.text(children[1]))

	an.sink.FunctionDefinitionBegin(an.a.Span(children[1]))

	if err := an.parameterList(children[2]); err != nil {
		return err
	}
	if err := an.statementList(children[3]); err != nil {
		return err
	}

	an.sink.FunctionDefinitionEnd()
	return nil
}

func (an *analyzer) parameterList(e ast.Element) error {
	params, err := an.list(e, "parameter list", anyArity)
	if err != nil {
		return err
	}
	an.setList(e, ast.ListParamList)
	an.sink.ParameterListBegin()

	for _, param := range params {
		pair, err := an.list(param, "parameter", 2)
		if err != nil {
			return err
		}
		an.setList(param, ast.ListParam)

		if _, err := an.atom(pair[0], "parameter name", classify.Tokens, lexer.TokenIdentifier); err != nil {
			return err
		}
		an.setAtom(pair[0], ast.AtomParameter)

		typeName, err := an.atom(pair[1], "type name", classify.TypeNames, classify.TypeNames...)
		if err != nil {
			return err
		}
		an.setAtom(pair[1], typeNameProps[typeName])

		an.sink.Parameter(an.a.Span(pair[0]), typeName)
	}

	an.sink.ParameterListEnd()
	return nil
}

func (an *analyzer) statementList(e ast.Element) error {
	statements, err := an.list(e, "statement list", anyArity)
	if err != nil {
		return err
	}
	an.setList(e, ast.ListStatementList)
	an.sink.StatementListBegin()

	for _, statement := range statements {
		if err := an.statement(statement); err != nil {
			return err
		}
	}

	an.sink.StatementListEnd()
	return nil
}

func (an *analyzer) statement(e ast.Element) error {
	children, err := an.list(e, "statement", nonEmpty)
	if err != nil {
		return err
	}

	head, err := an.atom(children[0], "statement keyword or function name", classify.Tokens, statementHeadTypes...)
	if err != nil {
		return err
	}

	switch head {
	case lexer.TokenKeywordIf:
		if _, err := an.list(e, "if statement", 4); err != nil {
			return err
		}
		an.setList(e, ast.ListIf)
		an.setAtom(children[0], ast.AtomKeywordIf)

		an.sink.Statement(StatementIf)
		an.sink.IfBegin()
		if err := an.expression(children[1]); err != nil {
			return err
		}
		if err := an.statementList(children[2]); err != nil {
			return err
		}
		if err := an.statementList(children[3]); err != nil {
			return err
		}
		an.sink.StatementEnd(StatementIf)

	case lexer.TokenKeywordWhile:
		if _, err := an.list(e, "while statement", 3); err != nil {
			return err
		}
		an.setList(e, ast.ListWhile)
		an.setAtom(children[0], ast.AtomKeywordWhile)

		an.sink.Statement(StatementWhile)
		an.sink.WhileBegin()
		if err := an.expression(children[1]); err != nil {
			return err
		}
		if err := an.statementList(children[2]); err != nil {
			return err
		}
		an.sink.StatementEnd(StatementWhile)

	case lexer.TokenKeywordSet:
		if _, err := an.list(e, "set statement", 3); err != nil {
			return err
		}
		an.setList(e, ast.ListSet)
		an.setAtom(children[0], ast.AtomKeywordSet)

		an.sink.Statement(StatementSet)
		if _, err := an.atom(children[1], "variable name", classify.Tokens, lexer.TokenIdentifier); err != nil {
			return err
		}
		an.setAtom(children[1], ast.AtomVariable)
		an.sink.SetBegin(an.a.Span(children[1]))
		if err := an.expression(children[2]); err != nil {
			return err
		}
		an.sink.StatementEnd(StatementSet)

	case lexer.TokenKeywordReturn:
		if _, err := an.list(e, "return statement", 2); err != nil {
			return err
		}
		an.setList(e, ast.ListReturn)
		an.setAtom(children[0], ast.AtomKeywordReturn)

		an.sink.Statement(StatementReturn)
		an.sink.ReturnBegin()
		if err := an.expression(children[1]); err != nil {
			return err
		}
		an.sink.StatementEnd(StatementReturn)

	case lexer.TokenIdentifier:
		an.sink.Statement(StatementCall)
		if err := an.call(e, children); err != nil {
			return err
		}
		an.sink.StatementEnd(StatementCall)
	}

	return nil
}

func (an *analyzer) expression(e ast.Element) error {
	if e.Type == ast.ElementList {
		children, err := an.list(e, "function call", nonEmpty)
		if err != nil {
			return err
		}
		if _, err := an.atom(children[0], "function name", classify.Tokens, lexer.TokenIdentifier); err != nil {
			return err
		}
		return an.call(e, children)
	}

	tt, err := an.atom(e, "expression", classify.Tokens, expressionTypes...)
	if err != nil {
		return err
	}
	line, col := an.a.Pos(e)
	if err := checkLiteral(tt, an.a.AtomText(e.Index), line, col); err != nil {
		return err
	}
	an.setAtom(e, literalProps[tt])
	an.sink.FunctionCallParameter(tt, an.a.Span(e))
	return nil
}

// call expects the head of the list to be classified already.
func (an *analyzer) call(e ast.Element, children []ast.Element) error {
	an.setList(e, ast.ListCall)
	an.setAtom(children[0], ast.AtomCallee)

	an.sink.FunctionCallBegin(an.a.Span(children[0]))
	for _, arg := range children[1:] {
		if err := an.expression(arg); err != nil {
			return err
		}
	}
	an.sink.FunctionCallEnd()
	return nil
}
