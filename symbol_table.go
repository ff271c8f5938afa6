package fnexpr

import (
	"errors"
)

type symbolType uint8

const (
	symbolFunction symbolType = iota
	symbolParameter
	symbolVariable
)

var errSymbolExists = errors.New("symbol already defined")

type symbol struct {
	t    symbolType
	name string
}

// symbolTable is a scope. Lookups fall back to the parent scope.
type symbolTable struct {
	p *symbolTable
	n map[string]*symbol
}

func newSymbolTable(parent *symbolTable) *symbolTable {
	return &symbolTable{
		p: parent,
		n: make(map[string]*symbol),
	}
}

// Define adds a symbol to this scope. It fails if the name is already taken
// in this same scope; shadowing a parent is allowed.
func (st *symbolTable) Define(s *symbol) error {
	if _, ok := st.n[s.name]; ok {
		return errSymbolExists
	}
	st.n[s.name] = s
	return nil
}

// Set defines or replaces a symbol in this scope.
func (st *symbolTable) Set(s *symbol) {
	st.n[s.name] = s
}

func (st *symbolTable) Get(name string) (*symbol, bool) {
	if s, ok := st.n[name]; ok {
		return s, true
	}
	if st.p != nil {
		return st.p.Get(name)
	}
	return nil, false
}
