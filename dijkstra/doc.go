// Package dijkstra provides the shortest-path engine of skyroute: classic
// Dijkstra over a core.Graph with non-negative edge weights, answering one
// source/destination query at a time.
//
// Overview:
//
//   - ShortestPath(g, source, destination) returns an immutable *core.Path
//     whose Cost() is the destination's final tentative distance, equal to
//     the summed weights of the traversed edges.
//   - The search terminates as soon as the destination is extracted from
//     the priority queue.
//   - A destination the queue never reaches yields ErrNotReachable, which
//     callers can tell apart from input errors with errors.Is.
//
// Key features:
//
//   - Deterministic tie-breaking: equal tentative distances are extracted in
//     queue insertion order.
//   - Lazy decrease-key with stale-entry skipping.
//   - MaxDistance and InfEdgeThreshold options (closed routes).
//   - Optional zap debug trace via WithLogger.
//   - Walks: brute-force enumeration of simple routes for small graphs.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:      nil graph.
//   - ErrNotReachable:  no directed route (or none within MaxDistance).
//   - core.ErrUnknownNode (wrapped): source or destination not in the graph.
//   - ErrBadMaxDistance / ErrBadInfThreshold: panics from option constructors.
//
// API reference:
//
//	func ShortestPath(
//	    g *core.Graph,
//	    source, destination string,
//	    opts ...Option,
//	) (*core.Path, error)
//
// Side effects:
//
//   - ShortestPath resets then writes each node's distance and predecessor.
//     Only the latest query's fields are meaningful; call
//     g.ResetPathFields() if you need the graph clean afterwards.
//
// Thread safety:
//
//   - Not thread-safe: a query mutates node fields. Serialise queries with
//     any other use of the same graph.
package dijkstra
