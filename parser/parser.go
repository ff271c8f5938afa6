package parser

import (
	"github.com/tliron/commonlog"
	"github.com/xiam/fnexpr/ast"
	"github.com/xiam/fnexpr/classify"
	"github.com/xiam/fnexpr/lexer"
)

var log = commonlog.GetLogger("fnexpr.parser")

// Option configures a Parser.
type Option func(*Parser)

// WithGrammar sets the lexical grammar used to split the input.
func WithGrammar(g *lexer.Grammar) Option {
	return func(p *Parser) {
		p.grammar = g
	}
}

// WithClassifier sets the classifier that turns atoms into keywords, type
// names, literals and identifiers.
func WithClassifier(c *classify.Classifier) Option {
	return func(p *Parser) {
		p.classifier = c
	}
}

// Parser is a recursive-descent parser. It reads the input once, front to
// back, and reports what it finds to a Sink:
//
//	Program    := Function*
//	Function   := '(' 'fn' IDENT ParamList SL ')'
//	ParamList  := '(' ( '(' IDENT TypeName ')' )* ')'
//	SL         := '(' Statement* ')'
//	Statement  := '(' 'if' E SL SL ')' | '(' 'while' E SL ')'
//	            | '(' 'set' IDENT E ')' | '(' 'return' E ')'
//	            | '(' IDENT E* ')'
//	E          := IDENT | BOOLEAN | INTEGER | FLOAT | STRING | '(' IDENT E* ')'
type Parser struct {
	lx   *lexer.Lexer
	sink Sink

	grammar    *lexer.Grammar
	classifier *classify.Classifier
}

// New creates a parser for src that reports to sink.
func New(src []byte, sink Sink, opts ...Option) *Parser {
	p := &Parser{
		sink:       sink,
		grammar:    lexer.Atoms,
		classifier: classify.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.lx = lexer.New(src, lexer.WithGrammar(p.grammar), lexer.WithRefiner(p.classifier))
	return p
}

// Parse parses src and reports it to sink.
func Parse(src []byte, sink Sink, opts ...Option) error {
	return New(src, sink, opts...).Parse()
}

// Parse consumes the whole input. It stops at the first error; events already
// sent to the sink are not taken back.
func (p *Parser) Parse() error {
	p.lx.Reset()

	for {
		tok, err := p.next()
		if err != nil {
			return err
		}

		switch tok.Type() {
		case lexer.TokenEOF:
			return nil
		case lexer.TokenOpenList:
			if err := p.parseFunction(); err != nil {
				return err
			}
		default:
			return p.unexpected(tok, "`(`")
		}
	}
}

func (p *Parser) next() (lexer.Token, error) {
	return p.lx.NextSignificant()
}

func (p *Parser) expect(expected string, types ...lexer.TokenType) (lexer.Token, error) {
	tok, err := p.next()
	if err != nil {
		return tok, err
	}
	for _, tt := range types {
		if tok.Is(tt) {
			return tok, nil
		}
	}
	return tok, p.unexpected(tok, expected)
}

func (p *Parser) unexpected(tok lexer.Token, expected string) error {
	line, col := tok.Pos()
	if tok.Is(lexer.TokenEOF) {
		return &Error{Line: line, Col: col, Err: ErrUnexpectedEOF, Expected: expected}
	}
	return &Error{
		Line:     line,
		Col:      col,
		Err:      ErrUnexpectedToken,
		Expected: expected,
		Found:    p.lx.Text(tok),
	}
}

// parseFunction is called after the opening parenthesis.
func (p *Parser) parseFunction() error {
	if _, err := p.expect("`fn`", lexer.TokenKeywordFn); err != nil {
		return err
	}
	name, err := p.expect("function name", lexer.TokenIdentifier)
	if err != nil {
		return err
	}
	log.Debugf("function %s", p.lx.Text(name))

	p.sink.FunctionDefinitionBegin(name.Range())

	if err := p.parseParameterList(); err != nil {
		return err
	}
	if err := p.parseStatementList(); err != nil {
		return err
	}
	if _, err := p.expect("`)`", lexer.TokenCloseList); err != nil {
		return err
	}

	p.sink.FunctionDefinitionEnd()
	return nil
}

func (p *Parser) parseParameterList() error {
	if _, err := p.expect("parameter list", lexer.TokenOpenList); err != nil {
		return err
	}
	p.sink.ParameterListBegin()

	for {
		tok, err := p.next()
		if err != nil {
			return err
		}

		switch tok.Type() {
		case lexer.TokenCloseList:
			p.sink.ParameterListEnd()
			return nil

		case lexer.TokenOpenList:
			name, err := p.expect("parameter name", lexer.TokenIdentifier)
			if err != nil {
				return err
			}
			typeName, err := p.next()
			if err != nil {
				return err
			}
			if !typeName.Type().IsTypeName() {
				return p.unexpected(typeName, "type name")
			}
			if _, err := p.expect("`)`", lexer.TokenCloseList); err != nil {
				return err
			}
			p.sink.Parameter(name.Range(), typeName.Type())

		default:
			return p.unexpected(tok, "parameter or `)`")
		}
	}
}

func (p *Parser) parseStatementList() error {
	if _, err := p.expect("statement list", lexer.TokenOpenList); err != nil {
		return err
	}
	p.sink.StatementListBegin()

	for {
		tok, err := p.next()
		if err != nil {
			return err
		}

		switch tok.Type() {
		case lexer.TokenCloseList:
			p.sink.StatementListEnd()
			return nil

		case lexer.TokenOpenList:
			if err := p.parseStatement(); err != nil {
				return err
			}

		default:
			return p.unexpected(tok, "statement or `)`")
		}
	}
}

// parseStatement is called after the opening parenthesis. The first token
// decides the statement kind; anything that is not a keyword is a call.
func (p *Parser) parseStatement() error {
	head, err := p.next()
	if err != nil {
		return err
	}

	switch head.Type() {
	case lexer.TokenKeywordIf:
		p.sink.Statement(StatementIf)
		p.sink.IfBegin()
		if err := p.parseExpression(); err != nil {
			return err
		}
		if err := p.parseStatementList(); err != nil {
			return err
		}
		if err := p.parseStatementList(); err != nil {
			return err
		}
		return p.endStatement(StatementIf)

	case lexer.TokenKeywordWhile:
		p.sink.Statement(StatementWhile)
		p.sink.WhileBegin()
		if err := p.parseExpression(); err != nil {
			return err
		}
		if err := p.parseStatementList(); err != nil {
			return err
		}
		return p.endStatement(StatementWhile)

	case lexer.TokenKeywordSet:
		p.sink.Statement(StatementSet)
		name, err := p.expect("variable name", lexer.TokenIdentifier)
		if err != nil {
			return err
		}
		p.sink.SetBegin(name.Range())
		if err := p.parseExpression(); err != nil {
			return err
		}
		return p.endStatement(StatementSet)

	case lexer.TokenKeywordReturn:
		p.sink.Statement(StatementReturn)
		p.sink.ReturnBegin()
		if err := p.parseExpression(); err != nil {
			return err
		}
		return p.endStatement(StatementReturn)

	case lexer.TokenIdentifier:
		p.sink.Statement(StatementCall)
		if err := p.parseCall(head); err != nil {
			return err
		}
		p.sink.StatementEnd(StatementCall)
		return nil
	}

	return p.unexpected(head, "statement keyword or function name")
}

func (p *Parser) endStatement(kind StatementKind) error {
	if _, err := p.expect("`)`", lexer.TokenCloseList); err != nil {
		return err
	}
	p.sink.StatementEnd(kind)
	return nil
}

func (p *Parser) parseExpression() error {
	tok, err := p.next()
	if err != nil {
		return err
	}
	return p.parseExpressionAt(tok)
}

func (p *Parser) parseExpressionAt(tok lexer.Token) error {
	switch tt := tok.Type(); {
	case tt == lexer.TokenIdentifier || tt.IsLiteral():
		line, col := tok.Pos()
		if err := checkLiteral(tt, p.lx.Text(tok), line, col); err != nil {
			return err
		}
		p.sink.FunctionCallParameter(tt, tok.Range())
		return nil

	case tt == lexer.TokenOpenList:
		name, err := p.expect("function name", lexer.TokenIdentifier)
		if err != nil {
			return err
		}
		return p.parseCall(name)
	}

	return p.unexpected(tok, "expression")
}

// parseCall reads arguments until the closing parenthesis.
func (p *Parser) parseCall(name lexer.Token) error {
	p.sink.FunctionCallBegin(name.Range())

	for {
		tok, err := p.next()
		if err != nil {
			return err
		}
		if tok.Is(lexer.TokenCloseList) {
			p.sink.FunctionCallEnd()
			return nil
		}
		if err := p.parseExpressionAt(tok); err != nil {
			return err
		}
	}
}

// checkLiteral rejects number literals that can't be decoded.
func checkLiteral(tt lexer.TokenType, text string, line int, col int) error {
	if tt != lexer.TokenInteger && tt != lexer.TokenFloat {
		return nil
	}
	if _, err := ast.ParseLiteral(literalProps[tt], text); err != nil {
		return &Error{Line: line, Col: col, Err: err, Found: text}
	}
	return nil
}
