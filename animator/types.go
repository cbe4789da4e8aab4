// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: States, events, errors and options of the route animator.

package animator

import (
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Sentinel errors returned by the Animator.
var (
	// ErrEmptyPath indicates Load received a nil path or one with no nodes.
	ErrEmptyPath = errors.New("animator: path is empty")

	// ErrInvalidStep indicates Tick received a step that is not a positive
	// finite distance.
	ErrInvalidStep = errors.New("animator: step must be positive and finite")
)

// State is the animator's lifecycle state.
type State int

const (
	// Idle means no path is loaded.
	Idle State = iota
	// Advancing means the marker is travelling along the current segment.
	Advancing
	// Arrived is terminal for the loaded path.
	Arrived
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Advancing:
		return "advancing"
	case Arrived:
		return "arrived"
	default:
		return "unknown"
	}
}

// Arrival is the completion event emitted once per loaded path when the
// marker reaches the destination.
type Arrival struct {
	RouteID uuid.UUID // identifies the Load call that produced this arrival
	From    string    // source node ID
	To      string    // destination node ID
	Cost    int64     // destination's shortest-path distance
	Ticks   int       // ticks spent advancing
}

// Option configures an Animator at construction.
type Option func(*Animator)

// WithOnArrive registers fn as the completion hook. It is called
// synchronously from inside Load or Tick, exactly once per path that
// arrives; abandoned paths never call it.
func WithOnArrive(fn func(Arrival)) Option {
	return func(a *Animator) { a.onArrive = fn }
}

// WithLogger sets the logger used for state transitions. Nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(a *Animator) {
		if l != nil {
			a.log = l
		}
	}
}

// snapEpsilon absorbs floating-point drift when deciding whether the
// remaining distance to a node fits in the step budget.
const snapEpsilon = 1e-9
