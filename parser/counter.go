package parser

import (
	"github.com/xiam/fnexpr/ast"
	"github.com/xiam/fnexpr/lexer"
)

// Counter is a sink that only counts. Besides per-construct totals it keeps
// the layout an arena needs for the same program, so the flattened tree can
// be allocated before it is filled.
type Counter struct {
	Functions      int
	Parameters     int
	StatementLists int
	Statements     map[StatementKind]int
	Calls          int
	Arguments      int

	counts   []int
	open     []int
	elements int
	atoms    int
	maxDepth int
}

// NewCounter returns a zeroed counter.
func NewCounter() *Counter {
	return &Counter{
		Statements: map[StatementKind]int{},
		counts:     []int{0},
		open:       []int{0},
	}
}

// Plan returns the arena layout of everything counted so far: the same plan
// ast.Measure computes for an input the parser accepted.
func (c *Counter) Plan() ast.Plan {
	return ast.Plan{
		Lists:    len(c.counts),
		Elements: c.elements,
		Atoms:    c.atoms,
		MaxDepth: c.maxDepth,
		Counts:   append([]int(nil), c.counts...),
	}
}

// begin accounts for a list that starts with the given number of atoms.
func (c *Counter) begin(atoms int) {
	c.counts[c.open[len(c.open)-1]]++
	c.elements += 1 + atoms
	c.atoms += atoms

	c.open = append(c.open, len(c.counts))
	c.counts = append(c.counts, atoms)
	if depth := len(c.open) - 1; depth > c.maxDepth {
		c.maxDepth = depth
	}
}

func (c *Counter) end() {
	c.open = c.open[:len(c.open)-1]
}

func (c *Counter) atom() {
	c.counts[c.open[len(c.open)-1]]++
	c.elements++
	c.atoms++
}

func (c *Counter) FunctionDefinitionBegin(lexer.StringRange) {
	c.Functions++
	c.begin(2)
}

func (c *Counter) FunctionDefinitionEnd() {
	c.end()
}

func (c *Counter) ParameterListBegin() {
	c.begin(0)
}

func (c *Counter) Parameter(lexer.StringRange, lexer.TokenType) {
	c.Parameters++
	c.begin(2)
	c.end()
}

func (c *Counter) ParameterListEnd() {
	c.end()
}

func (c *Counter) StatementListBegin() {
	c.StatementLists++
	c.begin(0)
}

func (c *Counter) StatementListEnd() {
	c.end()
}

func (c *Counter) Statement(kind StatementKind) {
	c.Statements[kind]++
	if kind != StatementCall {
		c.begin(1)
	}
}

func (c *Counter) IfBegin()     {}
func (c *Counter) WhileBegin()  {}
func (c *Counter) ReturnBegin() {}

func (c *Counter) SetBegin(lexer.StringRange) {
	c.atom()
}

func (c *Counter) StatementEnd(kind StatementKind) {
	if kind != StatementCall {
		c.end()
	}
}

func (c *Counter) FunctionCallBegin(lexer.StringRange) {
	c.Calls++
	c.begin(1)
}

func (c *Counter) FunctionCallParameter(lexer.TokenType, lexer.StringRange) {
	c.Arguments++
	c.atom()
}

func (c *Counter) FunctionCallEnd() {
	c.end()
}

var _ = Sink(&Counter{})
