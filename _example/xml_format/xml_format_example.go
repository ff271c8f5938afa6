package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/xiam/fnexpr"
	"github.com/xiam/fnexpr/ast"
)

func printTree(a *ast.Arena) {
	printIndentedTree(a, ast.Element{Type: ast.ElementList, Index: a.Root()}, 0)
}

func printIndentedTree(a *ast.Arena, e ast.Element, indentationLevel int) {
	indent := strings.Repeat("  ", indentationLevel)
	if e.Type == ast.ElementList {
		prop := a.ListProps[e.Index]
		fmt.Printf("%s<%s>\n", indent, prop)
		for _, child := range a.Children(e.Index) {
			printIndentedTree(a, child, indentationLevel+1)
		}
		fmt.Printf("%s</%s>\n", indent, prop)
		return
	}
	prop := a.AtomProps[e.Index]
	fmt.Printf("%s<%s>%s</%s>\n", indent, prop, a.AtomText(e.Index), prop)
}

func main() {
	input := `(fn main () ((set greeting "Hello world!") (print greeting 66 3.27)))`

	arena, err := fnexpr.Build([]byte(input))
	if err != nil {
		log.Fatal("fnexpr.Build:", err)
	}

	printTree(arena)
}
