// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: Node and edge lifecycle, lookups and the lazy neighbor sequence.
// Determinism:
//   - Nodes() and Edges() enumerate in insertion order.
//   - Neighbors() yields edges in the order they were added.

package core

import (
	"fmt"
	"iter"
)

// AddNode inserts a new node called name at pos.
//
// Implementation:
//   - Stage 1: Validate name is non-empty (ErrEmptyNodeID).
//   - Stage 2: Reject an existing name (ErrDuplicateNode).
//   - Stage 3: Allocate the node with reset path fields and register it.
//
// Returns the stored *Node so callers can hand it to Neighbors without a
// second lookup.
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(name string, pos Position) (*Node, error) {
	if name == "" {
		return nil, ErrEmptyNodeID
	}
	if _, exists := g.nodes[name]; exists {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateNode, name)
	}

	n := &Node{
		ID:       name,
		Position: pos,
		dist:     Infinity,
		index:    make(map[string]int),
	}
	g.nodes[name] = n
	g.order = append(g.order, n)

	return n, nil
}

// AddEdge creates the directed edge from → to with the given weight.
// The reverse edge is never added implicitly.
//
// Implementation:
//   - Stage 1: Resolve both endpoints (ErrUnknownNode).
//   - Stage 2: Reject negative weights (ErrInvalidWeight) so that a search
//     never discovers one mid-run.
//   - Stage 3: Reject a second from → to edge (ErrDuplicateEdge); neighbor
//     keys are unique per source node.
//   - Stage 4: Append to the source node's adjacency.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) error {
	src, ok := g.nodes[from]
	if !ok {
		return fmt.Errorf("%w: %q (edge %s→%s)", ErrUnknownNode, from, from, to)
	}
	dst, ok := g.nodes[to]
	if !ok {
		return fmt.Errorf("%w: %q (edge %s→%s)", ErrUnknownNode, to, from, to)
	}
	if weight < 0 {
		return fmt.Errorf("%w: edge %s→%s weight=%d", ErrInvalidWeight, from, to, weight)
	}
	if _, dup := src.index[to]; dup {
		return fmt.Errorf("%w: %s→%s", ErrDuplicateEdge, from, to)
	}

	src.index[to] = len(src.out)
	src.out = append(src.out, &Edge{From: src, To: dst, Weight: weight})
	g.edges++

	return nil
}

// Node returns the node called name.
func (g *Graph) Node(name string) (*Node, error) {
	n, ok := g.nodes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, name)
	}

	return n, nil
}

// HasNode reports whether the graph contains a node called name.
func (g *Graph) HasNode(name string) bool {
	_, ok := g.nodes[name]
	return ok
}

// HasEdge reports whether the directed edge from → to exists.
func (g *Graph) HasEdge(from, to string) bool {
	src, ok := g.nodes[from]
	if !ok {
		return false
	}
	_, ok = src.index[to]

	return ok
}

// Weight returns the weight of the edge from → to.
// The boolean is false when the edge does not exist.
func (g *Graph) Weight(from, to string) (int64, bool) {
	src, ok := g.nodes[from]
	if !ok {
		return 0, false
	}
	i, ok := src.index[to]
	if !ok {
		return 0, false
	}

	return src.out[i].Weight, true
}

// Neighbors returns a lazy sequence of (neighbor, weight) pairs for the
// outgoing edges of n.
//
// The sequence is finite and may be ranged over any number of times; each
// iteration observes the adjacency as it is at that moment. Order is edge
// insertion order, which algorithms must not rely on for anything beyond
// reproducibility.
//
// Complexity: O(1) to create, O(d) to exhaust.
func (g *Graph) Neighbors(n *Node) iter.Seq2[*Node, int64] {
	return func(yield func(*Node, int64) bool) {
		if n == nil {
			return
		}
		for _, e := range n.out {
			if !yield(e.To, e.Weight) {
				return
			}
		}
	}
}

// Nodes returns all nodes in insertion order.
// The returned slice is a copy; the nodes themselves are shared.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, len(g.order))
	copy(out, g.order)

	return out
}

// Edges returns every edge, grouped by source node in node insertion order,
// then in edge insertion order.
// Complexity: O(V + E)
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, 0, g.edges)
	for _, n := range g.order {
		out = append(out, n.out...)
	}

	return out
}

// NodeCount returns |V|.
func (g *Graph) NodeCount() int { return len(g.order) }

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int { return g.edges }
