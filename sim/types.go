// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: snapshot views, sentinel errors and options of the simulation session.

package sim

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/katalvlaran/skyroute/animator"
	"github.com/katalvlaran/skyroute/config"
	"github.com/katalvlaran/skyroute/core"
	"go.uber.org/zap"
)

// ErrNilGraph indicates NewSession received a nil graph.
var ErrNilGraph = errors.New("sim: graph is nil")

// DefaultStep is the distance the marker covers per tick unless WithStep
// overrides it.
const DefaultStep = 2.0

// NodeView is one node as seen by a renderer.
type NodeView struct {
	ID          string
	Position    core.Position
	Score       int
	Highlighted bool // strictly within the highlight radius of the focus point
	OnRoute     bool
}

// EdgeView is one directed edge as seen by a renderer.
type EdgeView struct {
	From   string
	To     string
	Weight int64
	// Mid is the midpoint of the segment, where weight labels are drawn.
	Mid core.Position
}

// MarkerView is the moving marker.
type MarkerView struct {
	Position core.Position
	State    animator.State
	Segment  int
	Progress float64
}

// Snapshot is a consistent copy of the whole session state. It shares no
// memory with the session.
type Snapshot struct {
	Nodes   []NodeView
	Edges   []EdgeView
	Marker  MarkerView
	RouteID uuid.UUID
	Route   []string
	Cost    int64
	Ticks   int
	Arrival *animator.Arrival // nil until the current route arrives
}

// Option configures a Session at construction.
type Option func(*Session)

// WithStep sets the distance covered per Tick. Panics unless step is
// positive and finite.
func WithStep(step float64) Option {
	if !(step > 0) || math.IsInf(step, 0) {
		panic(fmt.Sprintf("sim: WithStep(%v): step must be positive and finite", step))
	}
	return func(s *Session) { s.step = step }
}

// WithHighlight flags nodes lying strictly within h.Radius of (h.X, h.Y).
// A zero radius highlights nothing. Panics on a negative radius.
func WithHighlight(h config.HighlightConfig) Option {
	if h.Radius < 0 {
		panic(fmt.Sprintf("sim: WithHighlight: negative radius %v", h.Radius))
	}
	return func(s *Session) { s.highlight = h }
}

// WithLogger sets the session logger; it is also handed to the animator and
// the shortest-path engine. Nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithOnArrive registers fn to be called once per arrived route. It runs
// while the session lock is held and must not call back into the Session.
func WithOnArrive(fn func(animator.Arrival)) Option {
	return func(s *Session) { s.onArrive = fn }
}
