package main

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/skyroute/dijkstra"
	"github.com/katalvlaran/skyroute/observability"
	"github.com/spf13/cobra"
)

func newRouteCmd(a *app) *cobra.Command {
	var from, to string

	routeCmd := &cobra.Command{
		Use:   "route",
		Short: "Print the shortest route between two nodes and its cost",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.graph()
			if err != nil {
				return err
			}

			p, err := dijkstra.ShortestPath(g, from, to, dijkstra.WithLogger(observability.GetLogger().Named("dijkstra")))
			if errors.Is(err, dijkstra.ErrNotReachable) {
				fmt.Fprintf(cmd.OutOrStdout(), "no route from %s to %s\n", from, to)
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s (cost %d)\n", p, p.Cost())
			return nil
		},
	}

	routeCmd.Flags().StringVar(&from, "from", "", "source node (required)")
	routeCmd.Flags().StringVar(&to, "to", "", "destination node (required)")
	_ = routeCmd.MarkFlagRequired("from")
	_ = routeCmd.MarkFlagRequired("to")

	return routeCmd
}
