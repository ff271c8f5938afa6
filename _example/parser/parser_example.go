package main

import (
	"log"
	"os"

	"github.com/xiam/fnexpr"
	"github.com/xiam/fnexpr/ast"
	"github.com/xiam/fnexpr/parser"
)

func main() {
	input := []byte(`(fn add ((a int) (b int)) ((return (+ a b))))`)

	if err := fnexpr.Parse(input, parser.NewPrinter(os.Stdout, input)); err != nil {
		log.Fatal("fnexpr.Parse:", err)
	}

	arena, err := fnexpr.Build(input)
	if err != nil {
		log.Fatal("fnexpr.Build:", err)
	}

	ast.Print(arena)
}
