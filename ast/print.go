package ast

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Print displays a human-readable representation of the arena on standard
// output.
func Print(a *Arena) {
	Fprint(os.Stdout, a)
}

// Fprint writes every atom, then every list with its resolved children.
func Fprint(w io.Writer, a *Arena) {
	fmt.Fprintf(w, "Atoms:\n")
	for i := range a.Atoms {
		fmt.Fprintf(w, "\tAtom %d: %s (%s)\n", i, a.AtomText(i), a.AtomProps[i])
	}
	for i := range a.Lists {
		fmt.Fprintf(w, "List %d (%s):\n", i, a.ListProps[i])
		for _, e := range a.Children(i) {
			switch e.Type {
			case ElementAtom:
				fmt.Fprintf(w, "\tElement Atom %d: %s\n", e.Index, a.AtomText(e.Index))
			case ElementList:
				fmt.Fprintf(w, "\tElement List %d\n", e.Index)
			}
		}
	}
}

// Encode transforms the arena back into text, one space between elements.
func Encode(a *Arena) []byte {
	return []byte(encodeList(a, a.Root(), 0))
}

func encodeList(a *Arena, list int, level int) string {
	children := a.Children(list)
	nodes := make([]string, 0, len(children))
	for _, e := range children {
		switch e.Type {
		case ElementAtom:
			nodes = append(nodes, a.AtomText(e.Index))
		case ElementList:
			nodes = append(nodes, encodeList(a, e.Index, level+1))
		}
	}
	if level == 0 {
		return strings.Join(nodes, " ")
	}
	return fmt.Sprintf("(%s)", strings.Join(nodes, " "))
}
