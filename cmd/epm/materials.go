package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newMaterialsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "materials",
		Short: "List the registered materials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "SYMBOL\tNAME\tLATTICE\ta (Å)\tSPIN-ORBIT")
			for _, s := range a.reg.Symbols() {
				m, err := a.reg.Lookup(s)
				if err != nil {
					return err
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%.4f\t%t\n", m.Symbol, m.Name, m.Lattice, m.LatticeConstant, m.HasSpinOrbit())
			}

			return tw.Flush()
		},
	}
}
