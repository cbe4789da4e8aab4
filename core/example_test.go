package core_test

import (
	"fmt"

	"github.com/katalvlaran/skyroute/core"
)

// ExampleGraph demonstrates building a small directed network and walking
// a node's neighbors.
func ExampleGraph() {
	// 1) Create an empty graph and place three nodes.
	g := core.NewGraph()
	a, _ := g.AddNode("A", core.Position{X: 0, Y: 0})
	g.AddNode("B", core.Position{X: 300, Y: 0})
	g.AddNode("C", core.Position{X: 150, Y: 150})

	// 2) Add directed, weighted edges.
	g.AddEdge("A", "B", 100)
	g.AddEdge("A", "C", 60)
	g.AddEdge("C", "B", 60)

	// 3) Inspect the graph.
	fmt.Println("nodes:", g.NodeCount(), "edges:", g.EdgeCount())
	fmt.Println("B→A exists?", g.HasEdge("B", "A"))
	for nb, w := range g.Neighbors(a) {
		fmt.Printf("A → %s (%d)\n", nb.ID, w)
	}

	// Output:
	// nodes: 3 edges: 3
	// B→A exists? false
	// A → B (100)
	// A → C (60)
}
