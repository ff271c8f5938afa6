package ast

import (
	"fmt"

	"github.com/tliron/commonlog"
	"github.com/xiam/fnexpr/lexer"
)

var log = commonlog.GetLogger("fnexpr.ast")

// Measure is the sizing pass: it reads the whole token stream once and counts
// lists, elements and atoms, the children of every list and the deepest
// nesting level. The lexer is rewound before reading.
func Measure(lx *lexer.Lexer) (Plan, error) {
	lx.Reset()

	plan := Plan{
		Lists:  1,
		Counts: []int{0},
	}

	open := []int{0}
	opened := []lexer.Token{}

	for {
		tok, err := lx.NextSignificant()
		if err != nil {
			return Plan{}, err
		}

		parent := open[len(open)-1]

		switch tt := tok.Type(); {
		case tt == lexer.TokenOpenList:
			plan.Counts[parent]++
			plan.Elements++

			open = append(open, plan.Lists)
			opened = append(opened, tok)
			plan.Counts = append(plan.Counts, 0)
			plan.Lists++

			if depth := len(open) - 1; depth > plan.MaxDepth {
				plan.MaxDepth = depth
			}

		case tt == lexer.TokenCloseList:
			if len(open) == 1 {
				return Plan{}, posError(tok, ErrUnmatchedParen)
			}
			open = open[:len(open)-1]
			opened = opened[:len(opened)-1]

		case tt == lexer.TokenEOF:
			if len(opened) > 0 {
				return Plan{}, posError(opened[len(opened)-1], ErrUnclosedList)
			}
			log.Debugf("plan: lists=%d elements=%d atoms=%d depth=%d", plan.Lists, plan.Elements, plan.Atoms, plan.MaxDepth)
			return plan, nil

		case tt.IsAtom():
			plan.Counts[parent]++
			plan.Elements++
			plan.Atoms++

		default:
			return Plan{}, posError(tok, fmt.Errorf("unexpected %v token", tt))
		}
	}
}

// Build lays out the token stream of lx in a new arena. It reads the input
// twice: once to size the arena and once to fill it. No array grows during
// the second pass.
func Build(lx *lexer.Lexer) (*Arena, error) {
	plan, err := Measure(lx)
	if err != nil {
		return nil, err
	}

	return BuildWithPlan(lx, plan)
}

// BuildWithPlan allocates the arena from a plan computed elsewhere, such as by
// a counting pass over the parse events, and fills it in a single read of the
// input. A plan that doesn't describe the input fails with ErrPlanMismatch or
// ErrArenaOverflow.
func BuildWithPlan(lx *lexer.Lexer, plan Plan) (*Arena, error) {
	if len(plan.Counts) != plan.Lists || plan.Lists == 0 {
		return nil, fmt.Errorf("%w: %d lists, %d counts", ErrPlanMismatch, plan.Lists, len(plan.Counts))
	}
	total := 0
	for _, n := range plan.Counts {
		total += n
	}
	if total != plan.Elements {
		return nil, fmt.Errorf("%w: %d elements, counts add up to %d", ErrPlanMismatch, plan.Elements, total)
	}

	a := NewArena(lx.Source(), plan)
	if err := a.fill(lx, plan.MaxDepth); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *Arena) fill(lx *lexer.Lexer, maxDepth int) error {
	lx.Reset()

	open := make([]int, maxDepth+1)
	running := make([]int, len(a.Lists))

	depth := 0
	nextList, nextAtom := 1, 0

	for {
		tok, err := lx.NextSignificant()
		if err != nil {
			return err
		}

		switch tt := tok.Type(); {
		case tt == lexer.TokenOpenList:
			if nextList >= len(a.Lists) || depth+1 >= len(open) {
				return posError(tok, ErrArenaOverflow)
			}
			if err := a.place(open[depth], running, Element{ElementList, nextList}); err != nil {
				return posError(tok, err)
			}
			a.Lists[nextList].Range.Start = tok.Start

			depth++
			open[depth] = nextList
			nextList++

		case tt == lexer.TokenCloseList:
			if depth == 0 {
				return posError(tok, ErrUnmatchedParen)
			}
			a.Lists[open[depth]].Range.End = tok.End
			depth--

		case tt == lexer.TokenEOF:
			return a.checkFilled(running, nextList, nextAtom)

		case tt.IsAtom():
			if nextAtom >= len(a.Atoms) {
				return posError(tok, ErrArenaOverflow)
			}
			if err := a.place(open[depth], running, Element{ElementAtom, nextAtom}); err != nil {
				return posError(tok, err)
			}
			a.Atoms[nextAtom] = tok.Range()
			nextAtom++

		default:
			return posError(tok, fmt.Errorf("unexpected %v token", tt))
		}
	}
}

// place writes e into the next free slot reserved for the given list.
func (a *Arena) place(list int, running []int, e Element) error {
	l := a.Lists[list]
	if running[list] >= l.Count {
		return fmt.Errorf("%w: list %d has %d slots", ErrArenaOverflow, list, l.Count)
	}
	a.Elements[l.Offset+running[list]] = e
	running[list]++
	return nil
}

func (a *Arena) checkFilled(running []int, lists, atoms int) error {
	if lists != len(a.Lists) || atoms != len(a.Atoms) {
		return fmt.Errorf("%w: filled %d lists and %d atoms, planned %d and %d", ErrPlanMismatch, lists, atoms, len(a.Lists), len(a.Atoms))
	}
	for i, n := range running {
		if n != a.Lists[i].Count {
			return fmt.Errorf("%w: list %d has %d of %d elements", ErrPlanMismatch, i, n, a.Lists[i].Count)
		}
	}
	return nil
}

func posError(tok lexer.Token, err error) *Error {
	line, col := tok.Pos()
	return &Error{Line: line, Col: col, Err: err}
}
