// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for skyroute/core.
//
// Purpose:
//   - Provide small, deterministic fixtures shared across core tests.
//   - Keep magic numbers out of test bodies.

package core_test

import (
	"testing"

	"github.com/katalvlaran/skyroute/core"
	"github.com/stretchr/testify/require"
)

// Common node IDs used across core tests.
const (
	NodeEmpty = ""

	NodeA = "A"
	NodeB = "B"
	NodeC = "C"
	NodeD = "D"
)

// Common weights used across core tests.
const (
	Weight0   = 0
	Weight60  = 60
	Weight100 = 100
	WeightNeg = -1
)

// buildTriangle returns the A(0,0) B(300,0) C(150,150) fixture with
// A→B 100, A→C 60, C→B 60 and an isolated node D.
func buildTriangle(t *testing.T) *core.Graph {
	t.Helper()

	g := core.NewGraph()
	_, err := g.AddNode(NodeA, core.Position{X: 0, Y: 0})
	require.NoError(t, err)
	_, err = g.AddNode(NodeB, core.Position{X: 300, Y: 0})
	require.NoError(t, err)
	_, err = g.AddNode(NodeC, core.Position{X: 150, Y: 150})
	require.NoError(t, err)
	_, err = g.AddNode(NodeD, core.Position{X: 500, Y: 500})
	require.NoError(t, err)

	require.NoError(t, g.AddEdge(NodeA, NodeB, Weight100))
	require.NoError(t, g.AddEdge(NodeA, NodeC, Weight60))
	require.NoError(t, g.AddEdge(NodeC, NodeB, Weight60))

	return g
}

// collectNeighbors drains a Neighbors sequence into parallel slices.
func collectNeighbors(g *core.Graph, n *core.Node) ([]string, []int64) {
	var ids []string
	var ws []int64
	for nb, w := range g.Neighbors(n) {
		ids = append(ids, nb.ID)
		ws = append(ws, w)
	}

	return ids, ws
}
