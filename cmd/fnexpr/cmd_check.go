package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xiam/fnexpr"
	"github.com/xiam/fnexpr/parser"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Parse a program and validate its names",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readSource(args[0])
			if err != nil {
				return err
			}

			report, err := fnexpr.Check(source)
			if err != nil {
				return fmt.Errorf("%s:%w", args[0], err)
			}

			out := cmd.OutOrStdout()
			for _, d := range report.Diagnostics {
				fmt.Fprintf(out, "%s:%v\n", args[0], d)
			}
			if len(report.Diagnostics) > 0 {
				return fmt.Errorf("%s: %d problems found", args[0], len(report.Diagnostics))
			}

			c := report.Counts
			statements := 0
			for _, n := range c.Statements {
				statements += n
			}
			fmt.Fprintf(out, "%s: ok, %d functions, %d parameters, %d statements (%d if, %d while, %d set, %d return, %d call), %d calls\n",
				args[0], c.Functions, c.Parameters, statements,
				c.Statements[parser.StatementIf],
				c.Statements[parser.StatementWhile],
				c.Statements[parser.StatementSet],
				c.Statements[parser.StatementReturn],
				c.Statements[parser.StatementCall],
				c.Calls,
			)
			return nil
		},
	}
}
