package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/skyroute/core"
)

// Walk is one simple source-to-destination route and its summed weight.
type Walk struct {
	Nodes []string
	Cost  int64
}

// Walks enumerates simple (cycle-free) walks from source to destination by
// depth-first search, stopping after limit walks (limit ≤ 0 means no limit).
//
// It is exponential in the worst case and intended for small graphs: as a
// brute-force oracle in tests, or to list alternatives next to the optimum.
// Walks does not touch the graph's path fields.
func Walks(g *core.Graph, source, destination string, limit int) ([]Walk, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	src, err := g.Node(source)
	if err != nil {
		return nil, fmt.Errorf("dijkstra: source: %w", err)
	}
	dst, err := g.Node(destination)
	if err != nil {
		return nil, fmt.Errorf("dijkstra: destination: %w", err)
	}

	var (
		out     []Walk
		stack   = []string{src.ID}
		onStack = map[*core.Node]bool{src: true}
	)

	var dfs func(u *core.Node, cost int64) bool
	dfs = func(u *core.Node, cost int64) bool {
		if u == dst {
			w := Walk{Nodes: make([]string, len(stack)), Cost: cost}
			copy(w.Nodes, stack)
			out = append(out, w)

			return limit <= 0 || len(out) < limit
		}
		for v, wt := range g.Neighbors(u) {
			if onStack[v] {
				continue
			}
			onStack[v] = true
			stack = append(stack, v.ID)
			more := dfs(v, cost+wt)
			stack = stack[:len(stack)-1]
			onStack[v] = false
			if !more {
				return false
			}
		}

		return true
	}
	dfs(src, 0)

	return out, nil
}
