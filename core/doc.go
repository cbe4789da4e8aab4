// Package core provides the in-memory graph model used by skyroute: named
// nodes with fixed positions, directed non-negative weighted edges, and the
// immutable Path produced by a shortest-path query.
//
// The Graph G = (V,E) is deliberately small and strict:
//
//   - Node names are unique (AddNode → ErrDuplicateNode).
//   - Edges are directed; AddEdge never mirrors them.
//   - Edge weights are validated at construction time (ErrInvalidWeight),
//     so Dijkstra's precondition can never fail mid-search.
//   - At most one edge per ordered pair (ErrDuplicateEdge).
//   - Nodes(), Edges() and Neighbors() enumerate in insertion order.
//
// Core Methods:
//
//	// Construction
//	AddNode(name string, pos Position) (*Node, error)  // O(1)
//	AddEdge(from, to string, weight int64) error       // O(1)
//
//	// Query
//	Node(name string) (*Node, error)                   // O(1)
//	Neighbors(n *Node) iter.Seq2[*Node, int64]          // lazy, re-iterable
//	Nodes() []*Node                                    // O(V)
//	Edges() []*Edge                                    // O(V+E)
//
//	// Search state
//	ResetPathFields()                                  // O(V)
//
// Nodes are places, not markers: a node's Position never changes once it is
// added. Anything that moves across the map (see package animator) keeps its
// own coordinates and refers to nodes by pointer.
//
// Errors:
//
//	ErrEmptyNodeID    - node name is "".
//	ErrDuplicateNode  - AddNode with an existing name.
//	ErrUnknownNode    - an endpoint or lookup name is not in the graph.
//	ErrInvalidWeight  - negative edge weight.
//	ErrDuplicateEdge  - second edge for the same ordered pair.
//	ErrPathShape      - NewPath with mismatched slices.
//
// Thread safety: none. Build and query from one goroutine, or serialise
// access externally.
package core
