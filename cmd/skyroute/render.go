package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/skyroute/sim"
)

// renderFrame writes one text frame: the marker line, then every node with
// its score and flags. '*' marks route nodes, '!' highlighted ones.
func renderFrame(w io.Writer, snap sim.Snapshot) {
	fmt.Fprintf(w, "[tick %d] %s %s segment %d %.1f%% at (%.1f, %.1f)\n",
		snap.Ticks,
		strings.Join(snap.Route, " → "),
		snap.Marker.State,
		snap.Marker.Segment,
		snap.Marker.Progress*100,
		snap.Marker.Position.X, snap.Marker.Position.Y)

	for _, n := range snap.Nodes {
		flags := ""
		if n.OnRoute {
			flags += "*"
		}
		if n.Highlighted {
			flags += "!"
		}
		fmt.Fprintf(w, "  %-2s %-10s score %d\n", flags, n.ID, n.Score)
	}
}
