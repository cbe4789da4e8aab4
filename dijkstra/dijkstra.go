// Package dijkstra implements single-pair shortest paths over a core.Graph.
//
// It processes nodes in order of increasing tentative distance using a
// binary min-heap keyed by (distance, insertion sequence), relaxes outgoing
// edges, and stops as soon as the destination is extracted.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each node is finalized at most once.
//   - Each successful relaxation pushes one heap entry: up to E pushes.
//   - Space: O(V + E) worst case under lazy decrease-key.
//
// Notes on implementation choices:
//
//   - Lazy decrease-key: improved nodes are pushed again; a popped entry is
//     skipped when its node is already finalized or its key no longer
//     matches the node's tentative distance.
//   - Equal keys pop in insertion order, so results are reproducible.
//   - Distance and predecessor live on the nodes themselves; the graph is
//     reset at the start of every query.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/skyroute/core"
	"go.uber.org/zap"
)

// ShortestPath computes the minimum-cost path from source to destination.
//
// Returns:
//
//   - path: the node sequence source … destination with a copy of every
//     node's distance; path.Cost() is the destination's distance.
//   - err:  ErrNilGraph, a wrapped core.ErrUnknownNode for a missing
//     endpoint, or ErrNotReachable when the queue drains first.
//
// Side effect: every node's distance/predecessor is reset, then updated for
// the nodes the search reached. The fields stay readable until the next
// query resets them again.
//
// ShortestPath(g, s, s) returns the single-node path [s] with cost 0.
func ShortestPath(g *core.Graph, source, destination string, opts ...Option) (*core.Path, error) {
	// 1) Build Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
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

	// 3) Run the search.
	r := &runner{
		g:       g,
		options: cfg,
		dst:     dst,
		visited: make(map[*core.Node]bool, g.NodeCount()),
		pq:      make(nodePQ, 0, g.NodeCount()),
	}
	r.init(src)
	if !r.process() {
		cfg.Logger.Debug("destination not reachable",
			zap.String("source", source),
			zap.String("destination", destination),
			zap.Int("finalized", len(r.visited)))

		return nil, fmt.Errorf("%w: %s→%s", ErrNotReachable, source, destination)
	}

	// 4) Rebuild the path from predecessor links.
	return r.path()
}

// runner holds the mutable state for a single query.
type runner struct {
	g       *core.Graph
	options Options
	dst     *core.Node
	visited map[*core.Node]bool // finalized nodes
	pq      nodePQ
	seq     uint64 // insertion counter for stable tie-breaking
}

// init resets the graph's path fields and seeds the heap with the source.
func (r *runner) init(src *core.Node) {
	r.g.ResetPathFields()
	src.SetTentative(0, nil)

	heap.Init(&r.pq)
	r.push(src, 0)
}

// push inserts (n, dist) with the next insertion sequence number.
func (r *runner) push(n *core.Node, dist int64) {
	heap.Push(&r.pq, &nodeItem{node: n, dist: dist, seq: r.seq})
	r.seq++
}

// process is the main loop. It reports whether the destination was
// extracted (and therefore finalized).
//
// Loop termination conditions:
//
//   - The destination is popped: success.
//   - The heap becomes empty: destination unreachable.
func (r *runner) process() bool {
	log := r.options.Logger
	for r.pq.Len() > 0 {
		// 1) Pop the smallest (distance, seq) entry.
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.node

		// 2) Skip stale entries: already finalized, or superseded by a
		//    later push with a smaller key.
		if r.visited[u] || item.dist != u.Distance() {
			continue
		}

		// 3) u's distance is now final.
		r.visited[u] = true
		log.Debug("finalized", zap.String("node", u.ID), zap.Int64("dist", item.dist))

		if u == r.dst {
			return true
		}

		// 4) Relax outgoing edges.
		r.relax(u)
	}

	return false
}

// relax tries to improve the tentative distance of each neighbor of u.
// Assumes u's distance is finalized.
func (r *runner) relax(u *core.Node) {
	du := u.Distance()
	for v, w := range r.g.Neighbors(u) {
		// Closed edge.
		if w >= r.options.InfEdgeThreshold {
			continue
		}
		// Saturate instead of overflowing int64.
		if w > core.Infinity-du {
			continue
		}

		newDist := du + w
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strictly better only; equal-cost alternatives keep the first
		// predecessor found.
		if newDist >= v.Distance() {
			continue
		}

		v.SetTentative(newDist, u)
		r.push(v, newDist)
		r.options.Logger.Debug("relaxed",
			zap.String("from", u.ID),
			zap.String("to", v.ID),
			zap.Int64("dist", newDist))
	}
}

// path follows predecessor links from the destination back to the source
// and reverses the result.
func (r *runner) path() (*core.Path, error) {
	var nodes []*core.Node
	for n := r.dst; n != nil; n = n.Predecessor() {
		nodes = append(nodes, n)
	}

	dist := make([]int64, len(nodes))
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
	for i, n := range nodes {
		dist[i] = n.Distance()
	}

	return core.NewPath(nodes, dist)
}

// nodeItem is a heap entry: a node and the key it was pushed with.
type nodeItem struct {
	node *core.Node
	dist int64  // key at push time
	seq  uint64 // push order
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, seq).
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by insertion order.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap. x must be *nodeItem.
func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; heap.Pop has already moved the
// minimum there.
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
