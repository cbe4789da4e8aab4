// SPDX-License-Identifier: MIT

// Package sim hosts one route simulation: a graph, the route animator and
// the score tracker behind a single lock.
//
// The core packages are single-writer. Session is the place where events
// from several goroutines (a tick source, a scoring source, a renderer) are
// serialised:
//
//	s, _ := sim.NewSession(g, sim.WithStep(2))
//	_, _, err := s.Route("DELHI", "CHENNAI")
//	...
//	_ = s.Tick()          // from the tick source
//	_ = s.AddScore(n, 10) // from the scoring source
//	snap := s.Snapshot()  // from the renderer
//
// Snapshot returns plain values that share no memory with the session.
package sim
