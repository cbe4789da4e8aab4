// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node, Edge, Position, Graph declarations, sentinel errors and the
// NewGraph constructor.
// Policy:
//   - Nodes are owned by exactly one Graph (the name → node catalog).
//   - A node's Position is fixed once added; moving markers live elsewhere.
//   - Path-finding fields (distance, predecessor) are written only through
//     the exported engine hooks in pathfields.go.

package core

import (
	"errors"
	"math"
)

// Sentinel errors for graph construction and lookup.
var (
	// ErrEmptyNodeID indicates that a node name is the empty string.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrDuplicateNode indicates AddNode was called with a name already present.
	ErrDuplicateNode = errors.New("core: duplicate node")

	// ErrUnknownNode indicates an operation referenced a node that is not in the graph.
	ErrUnknownNode = errors.New("core: unknown node")

	// ErrInvalidWeight indicates a negative edge weight.
	ErrInvalidWeight = errors.New("core: edge weight must be non-negative")

	// ErrDuplicateEdge indicates a second edge between the same ordered pair of nodes.
	ErrDuplicateEdge = errors.New("core: duplicate edge")
)

// Infinity is the tentative distance of a node not yet reached by a search.
const Infinity int64 = math.MaxInt64

// Position is a point on the 2-D plane the graph is laid out on.
type Position struct {
	X float64
	Y float64
}

// DistanceTo returns the Euclidean distance between p and q.
func (p Position) DistanceTo(q Position) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Equal reports whether p and q denote the same point.
func (p Position) Equal(q Position) bool {
	return p.X == q.X && p.Y == q.Y
}

// Node is a named, fixed point of the graph.
//
// ID and Position never change after AddNode. The distance and predecessor
// fields carry the state of the most recent shortest-path search and are reset
// by Graph.ResetPathFields.
type Node struct {
	// ID uniquely identifies this Node within its Graph.
	ID string

	// Position is the node's place on the map.
	Position Position

	dist int64 // tentative distance from the last search source
	prev *Node // predecessor on the best known path (not owned)

	// adjacency in insertion order; index maps neighbor ID → slot in out.
	out   []*Edge
	index map[string]int
}

// Distance returns the tentative distance recorded by the last search,
// or Infinity if the node was not reached.
func (n *Node) Distance() int64 { return n.dist }

// Predecessor returns the node preceding n on the best known path, or nil.
func (n *Node) Predecessor() *Node { return n.prev }

// OutDegree returns the number of outgoing edges of n.
func (n *Node) OutDegree() int { return len(n.out) }

// Edge is a directed, weighted connection between two nodes.
// Edges reference their endpoints; they never copy node state.
type Edge struct {
	From   *Node
	To     *Node
	Weight int64
}

// Graph is the owner of all nodes and their adjacency.
//
// Graph is not safe for concurrent mutation. The intended use is a
// build-then-query lifecycle driven from a single goroutine; hosts that
// deliver events from several goroutines serialise them (see package sim).
type Graph struct {
	nodes map[string]*Node // name → node
	order []*Node          // insertion order, for deterministic enumeration
	edges int
}

// NewGraph creates an empty graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[string]*Node),
	}
}
