// SPDX-License-Identifier: MIT
//
// File: session.go
// Role: the host-side owner of graph, animator and score tracker.
// Policy:
//   - One mutex serialises every mutation and every Snapshot.
//   - The graph is read-only after NewSession apart from path fields, which
//     only Route touches.

package sim

import (
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/google/uuid"
	"github.com/katalvlaran/skyroute/animator"
	"github.com/katalvlaran/skyroute/config"
	"github.com/katalvlaran/skyroute/core"
	"github.com/katalvlaran/skyroute/dijkstra"
	"github.com/katalvlaran/skyroute/score"
	"go.uber.org/zap"
)

// Session drives one route over one graph. It is safe for concurrent use.
type Session struct {
	mu sync.Mutex

	graph  *core.Graph
	anim   *animator.Animator
	scores *score.Tracker

	step      float64
	highlight config.HighlightConfig
	onArrive  func(animator.Arrival)
	log       *zap.Logger
}

// NewSession returns an idle session over g.
func NewSession(g *core.Graph, opts ...Option) (*Session, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	s := &Session{
		graph:  g,
		scores: score.NewTracker(),
		step:   DefaultStep,
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.anim = animator.New(
		animator.WithLogger(s.log.Named("animator")),
		animator.WithOnArrive(func(a animator.Arrival) {
			if s.onArrive != nil {
				s.onArrive(a)
			}
		}),
	)

	return s, nil
}

// Route computes the shortest path from source to destination and loads it
// into the animator, replacing any route in flight. On error the current
// route is kept.
func (s *Session) Route(source, destination string) (*core.Path, uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := dijkstra.ShortestPath(s.graph, source, destination, dijkstra.WithLogger(s.log.Named("dijkstra")))
	if err != nil {
		return nil, uuid.Nil, fmt.Errorf("sim: route %s→%s: %w", source, destination, err)
	}

	id, err := s.anim.Load(p)
	if err != nil {
		return nil, uuid.Nil, fmt.Errorf("sim: load route: %w", err)
	}
	s.log.Info("route planned",
		zap.Stringer("route", id),
		zap.Stringer("path", p),
		zap.Int64("cost", p.Cost()))

	return p, id, nil
}

// Tick advances the marker by the configured step and decays every score
// by one. Both happen under the same lock, so no Snapshot observes one
// without the other.
func (s *Session) Tick() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.anim.Tick(s.step); err != nil {
		return fmt.Errorf("sim: tick: %w", err)
	}
	s.scores.Tick()

	return nil
}

// AddScore credits amount points to node, which must exist in the graph.
func (s *Session) AddScore(node string, amount int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.graph.HasNode(node) {
		return fmt.Errorf("sim: add score: %w: %q", core.ErrUnknownNode, node)
	}
	if err := s.scores.Add(node, amount); err != nil {
		return fmt.Errorf("sim: add score to %s: %w", node, err)
	}
	s.log.Debug("score added", zap.String("node", node), zap.Int("amount", amount), zap.Int("total", s.scores.Of(node)))

	return nil
}

// RandomRouteNode picks a uniformly random node of the loaded route.
// It reports false while no route is loaded.
func (s *Session) RandomRouteNode(rng *rand.Rand) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.anim.Path()
	if p.Len() == 0 {
		return "", false
	}

	return p.Node(rng.IntN(p.Len())).ID, true
}

// Arrived reports whether the loaded route has been completed.
func (s *Session) Arrived() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.anim.Arrived()
}

// Arrival returns the completion event of the loaded route, if any.
func (s *Session) Arrival() (animator.Arrival, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.anim.Arrival()
}

// Reset drops the route and every score.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.anim.Reset()
	s.scores.Reset()
}

// Graph returns the session's graph. Callers must treat it as read-only.
func (s *Session) Graph() *core.Graph { return s.graph }

// Snapshot copies the full state for rendering.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	var snap Snapshot

	onRoute := make(map[string]bool)
	if p := s.anim.Path(); p.Len() > 0 {
		snap.Route = p.IDs()
		snap.Cost = p.Cost()
		snap.RouteID = s.anim.RouteID()
		for _, id := range snap.Route {
			onRoute[id] = true
		}
	}

	focus := core.Position{X: s.highlight.X, Y: s.highlight.Y}
	nodes := s.graph.Nodes()
	snap.Nodes = make([]NodeView, len(nodes))
	for i, n := range nodes {
		snap.Nodes[i] = NodeView{
			ID:          n.ID,
			Position:    n.Position,
			Score:       s.scores.Of(n.ID),
			Highlighted: n.Position.DistanceTo(focus) < s.highlight.Radius,
			OnRoute:     onRoute[n.ID],
		}
	}

	edges := s.graph.Edges()
	snap.Edges = make([]EdgeView, len(edges))
	for i, e := range edges {
		snap.Edges[i] = EdgeView{
			From:   e.From.ID,
			To:     e.To.ID,
			Weight: e.Weight,
			Mid: core.Position{
				X: (e.From.Position.X + e.To.Position.X) / 2,
				Y: (e.From.Position.Y + e.To.Position.Y) / 2,
			},
		}
	}

	snap.Marker = MarkerView{
		Position: s.anim.Marker(),
		State:    s.anim.State(),
		Segment:  s.anim.Segment(),
		Progress: s.anim.Progress(),
	}
	snap.Ticks = s.anim.Ticks()
	if a, ok := s.anim.Arrival(); ok {
		snap.Arrival = &a
	}

	return snap
}
