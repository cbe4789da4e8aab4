// SPDX-License-Identifier: MIT
//
// File: pathfields.go
// Role: Per-node search state (tentative distance + predecessor).
// Policy:
//   - Only one search's state is valid per graph at a time.
//   - Every search starts by calling ResetPathFields.

package core

// ResetPathFields restores every node to distance Infinity with no
// predecessor. Call it before a new query; a failed query may leave stale
// values behind until then.
//
// Complexity: O(V)
func (g *Graph) ResetPathFields() {
	for _, n := range g.order {
		n.dist = Infinity
		n.prev = nil
	}
}

// SetTentative records a new best distance and predecessor for n.
// It is the write hook for shortest-path engines; renderers and other
// readers use Distance and Predecessor.
func (n *Node) SetTentative(dist int64, prev *Node) {
	n.dist = dist
	n.prev = prev
}
