package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newNodesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "nodes",
		Short: "List the nodes and flights of the network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.graph()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NODE\tPOSITION\tFLIGHTS")
			for _, n := range g.Nodes() {
				fmt.Fprintf(w, "%s\t(%g, %g)\t", n.ID, n.Position.X, n.Position.Y)
				sep := ""
				for to, weight := range g.Neighbors(n) {
					fmt.Fprintf(w, "%s%s:%d", sep, to.ID, weight)
					sep = " "
				}
				fmt.Fprintln(w)
			}

			return w.Flush()
		},
	}
}
