// SPDX-License-Identifier: MIT
//
// File: path.go
// Role: Immutable result of one successful shortest-path query.

package core

import (
	"errors"
	"strings"
)

// ErrPathShape indicates NewPath received mismatched node and distance slices.
var ErrPathShape = errors.New("core: path nodes and distances differ in length")

// Path is an ordered sequence of node references from a source to a
// destination, together with the distance from the source of every node at
// the moment the path was produced.
//
// A Path does not own its nodes. Distances are copied, so later searches
// that reset the graph's path fields do not change a Path already returned.
type Path struct {
	nodes []*Node
	dist  []int64
}

// NewPath builds a Path from nodes and their distances from nodes[0].
// Both slices are copied.
func NewPath(nodes []*Node, dist []int64) (*Path, error) {
	if len(nodes) != len(dist) {
		return nil, ErrPathShape
	}
	p := &Path{
		nodes: make([]*Node, len(nodes)),
		dist:  make([]int64, len(dist)),
	}
	copy(p.nodes, nodes)
	copy(p.dist, dist)

	return p, nil
}

// Len returns the number of nodes on the path. A nil Path has length 0.
func (p *Path) Len() int {
	if p == nil {
		return 0
	}

	return len(p.nodes)
}

// Node returns the i-th node of the path.
func (p *Path) Node(i int) *Node { return p.nodes[i] }

// Nodes returns a copy of the node sequence.
func (p *Path) Nodes() []*Node {
	out := make([]*Node, len(p.nodes))
	copy(out, p.nodes)

	return out
}

// IDs returns the node names in path order.
func (p *Path) IDs() []string {
	if p == nil {
		return nil
	}
	out := make([]string, len(p.nodes))
	for i, n := range p.nodes {
		out[i] = n.ID
	}

	return out
}

// DistanceAt returns the distance of the i-th node from the path's source.
func (p *Path) DistanceAt(i int) int64 { return p.dist[i] }

// Source returns the first node.
func (p *Path) Source() *Node { return p.nodes[0] }

// Destination returns the last node.
func (p *Path) Destination() *Node { return p.nodes[len(p.nodes)-1] }

// Cost returns the destination's shortest-path distance, which equals the
// sum of the edge weights traversed along the path. Empty paths cost 0.
func (p *Path) Cost() int64 {
	if p.Len() == 0 {
		return 0
	}

	return p.dist[len(p.dist)-1]
}

// Length returns the Euclidean length of the polyline through the node
// positions.
func (p *Path) Length() float64 {
	var total float64
	for i := 1; i < p.Len(); i++ {
		total += p.nodes[i-1].Position.DistanceTo(p.nodes[i].Position)
	}

	return total
}

// String renders the path as "A → B → C".
func (p *Path) String() string {
	return strings.Join(p.IDs(), " → ")
}
