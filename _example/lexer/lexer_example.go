package main

import (
	"fmt"
	"log"

	"github.com/xiam/fnexpr/classify"
	"github.com/xiam/fnexpr/lexer"
)

func main() {
	input := `
		(fn greet ((name string))
			((print "Hello" name 3.27)))
	`

	tokens, err := lexer.Tokenize([]byte(input), lexer.WithRefiner(classify.Default()))
	if err != nil {
		log.Fatal("lexer.Tokenize:", err)
	}

	for i, tok := range tokens {
		if !tok.Type().IsSignificant() {
			continue
		}
		line, col := tok.Pos()
		lexeme := tok.Text([]byte(input))
		tt := tok.Type().String()

		fmt.Printf("token[%d] (type: %v, line: %d, col: %d)\n\t-> %q\n\n", i, tt, line, col, lexeme)
	}
}
