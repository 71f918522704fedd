package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/comalice/fsmx/internal/production"
	"github.com/comalice/fsmx/modthree"
)

func newDotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dot",
		Short: "Print the mod-three machine as a Graphviz DOT graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			final := []modthree.Remainder{modthree.S0, modthree.S1, modthree.S2}
			_, err := fmt.Fprint(cmd.OutOrStdout(), production.ExportDOT(modthree.Machine.Name(), modthree.Table(), modthree.S0, final))
			return err
		},
	}
}
