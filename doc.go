// Package skyroute plans the shortest route through a small weighted network
// of named places and flies a marker along it, tick by tick.
//
// What is inside?
//
//	• Graph model: named nodes at fixed 2-D positions, directed
//	  non-negative weighted edges
//	• Shortest paths: single-pair Dijkstra with a lazy binary heap
//	• Route animation: a marker moving a fixed distance per tick, with a
//	  completion event carrying the route cost
//	• Score decay: per-node scores that lose one point per tick
//
// Everything is organized under these subpackages:
//
//	core/          — Graph, Node, Edge, Position and the immutable Path
//	dijkstra/      — ShortestPath and its options
//	animator/      — the Idle → Advancing → Arrived route state machine
//	score/         — the decaying score table
//	builder/       — the demo airport network and configured networks
//	sim/           — Session: one lock around graph, animator and scores
//	scheduler/     — tick and scoring events for a Session
//	config/        — viper configuration, SKYROUTE_* overrides, .env
//	observability/ — the zap logger
//	cmd/skyroute/  — the command line: nodes, route, fly
//
// Quick ASCII example, the demo network (flights run left to right):
//
//	DELHI ──1100── BOMBAY
//	  │  ╲            │ ╲
//	1400  1250       710  1040
//	  │      ╲        │     ╲
//	BANGALORE ─500── HYDERABAD ─620── CHENNAI
//	     ╲________________290_______________╱
//
// The cheapest DELHI → CHENNAI route goes through BANGALORE at 1690.
//
//	go run github.com/katalvlaran/skyroute/cmd/skyroute fly --from DELHI --to CHENNAI
package skyroute
