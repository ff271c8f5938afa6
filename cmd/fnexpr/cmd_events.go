package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xiam/fnexpr"
	"github.com/xiam/fnexpr/parser"
)

func newEventsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "events <file>",
		Short: "Print the parse events of a program as an outline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readSource(args[0])
			if err != nil {
				return err
			}
			if err := fnexpr.Parse(source, parser.NewPrinter(cmd.OutOrStdout(), source)); err != nil {
				return fmt.Errorf("%s:%w", args[0], err)
			}
			return nil
		},
	}
}
