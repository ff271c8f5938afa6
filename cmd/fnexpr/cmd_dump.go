package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/xiam/fnexpr"
	"github.com/xiam/fnexpr/ast"
)

func newDumpCmd() *cobra.Command {
	var dumpFormat string

	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Print the classified arena of a program",
		Long: `Lay the program out in an arena, give every list and atom its role and
print the result: all atoms first, then every list with its children.

--format json writes the same data as a JSON document, with literal
values decoded.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(cmd.OutOrStdout(), args[0], dumpFormat)
		},
	}

	cmd.Flags().StringVarP(&dumpFormat, "format", "f", "text", "output format: text or json")

	return cmd
}

func runDump(w io.Writer, filename string, format string) error {
	if format != "text" && format != "json" {
		return fmt.Errorf("unknown format %q", format)
	}

	source, err := readSource(filename)
	if err != nil {
		return err
	}

	arena, err := fnexpr.Build(source)
	if err != nil {
		return fmt.Errorf("%s:%w", filename, err)
	}

	if format == "json" {
		return ast.EncodeJSON(w, arena)
	}
	ast.Fprint(w, arena)
	return nil
}
