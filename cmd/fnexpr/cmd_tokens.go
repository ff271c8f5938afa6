package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xiam/fnexpr/classify"
	"github.com/xiam/fnexpr/lexer"
)

func newTokensCmd() *cobra.Command {
	var (
		tokensAll    bool
		tokensRefine bool
	)

	cmd := &cobra.Command{
		Use:   "tokens <file>",
		Short: "List the tokens of a file",
		Long: `Print one token per line as line:col, kind and text.

Whitespace and newlines are skipped unless --all is given. With --refine,
atoms are reported with their full kind (keyword, type name, literal or
identifier) instead of "atom".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readSource(args[0])
			if err != nil {
				return err
			}

			opts := []lexer.Option{}
			if tokensRefine {
				opts = append(opts, lexer.WithRefiner(classify.Default()))
			}
			lx := lexer.New(source, opts...)

			out := cmd.OutOrStdout()
			for {
				tok, err := lx.Next()
				if err != nil {
					return fmt.Errorf("%s:%w", args[0], err)
				}
				if tok.Is(lexer.TokenEOF) {
					return nil
				}
				if !tokensAll && !tok.Type().IsSignificant() {
					continue
				}
				line, col := tok.Pos()
				fmt.Fprintf(out, "%d:%d\t%v\t%q\n", line, col, tok.Type(), lx.Text(tok))
			}
		},
	}

	cmd.Flags().BoolVarP(&tokensAll, "all", "a", false, "include whitespace and newlines")
	cmd.Flags().BoolVarP(&tokensRefine, "refine", "r", false, "classify atoms")

	return cmd
}
