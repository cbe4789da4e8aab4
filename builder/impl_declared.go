// SPDX-License-Identifier: MIT
//
// File: impl_declared.go
// Role: builds a graph from declared node and edge lists.
// Policy:
//   - All nodes are added before any edge, in declaration order.
//   - Structural problems in the declaration surface as ErrBadSpec; weight
//     and duplicate problems surface as the core sentinels.

package builder

import (
	"strings"

	"github.com/katalvlaran/skyroute/config"
	"github.com/katalvlaran/skyroute/core"
)

func buildDeclared(g *core.Graph, cfg builderConfig, nodes []config.NodeConfig, edges []config.EdgeConfig) error {
	if len(nodes) == 0 && g.NodeCount() == 0 {
		return wrapf(MethodDeclared, "no nodes", ErrBadSpec)
	}

	for i, n := range nodes {
		if strings.TrimSpace(n.Name) == "" {
			return wrapf(MethodDeclared, "node %d has a blank name", ErrBadSpec, i)
		}
		if _, err := g.AddNode(n.Name, core.Position{X: n.X, Y: n.Y}); err != nil {
			return wrapf(MethodDeclared, "AddNode(%s)", err, n.Name)
		}
	}

	for i, e := range edges {
		from, err := g.Node(e.From)
		if err != nil {
			return wrapf(MethodDeclared, "edge %d: unknown source %q", ErrBadSpec, i, e.From)
		}
		to, err := g.Node(e.To)
		if err != nil {
			return wrapf(MethodDeclared, "edge %d: unknown target %q", ErrBadSpec, i, e.To)
		}

		w := cfg.weightFn(from.Position, to.Position, e.Weight)
		if err = g.AddEdge(e.From, e.To, w); err != nil {
			return wrapf(MethodDeclared, "AddEdge(%s,%s)", err, e.From, e.To)
		}
	}

	if !cfg.bidirectional {
		return nil
	}

	for _, e := range edges {
		if g.HasEdge(e.To, e.From) {
			continue
		}
		w, _ := g.Weight(e.From, e.To)
		if err := g.AddEdge(e.To, e.From, w); err != nil {
			return wrapf(MethodDeclared, "reverse AddEdge(%s,%s)", err, e.To, e.From)
		}
	}

	return nil
}
