// SPDX-License-Identifier: MIT
//
// File: animator.go
// Role: Finite-state machine moving a marker along a core.Path.
// Policy:
//   - The marker owns its coordinates; graph nodes are never moved.
//   - Tick is a no-op outside Advancing.
//   - Arrival fires exactly once per loaded path.

package animator

import (
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/katalvlaran/skyroute/core"
	"go.uber.org/zap"
)

// Animator advances a marker along one path at a time.
//
// It is not safe for concurrent use; the host serialises Load, Tick and
// reads (see package sim).
type Animator struct {
	state State
	path  *core.Path
	pos   core.Position // marker position
	seg   int           // index of the node the current segment starts at
	cum   []float64     // cum[i] = Euclidean length from path[0] to path[i]
	ticks int

	routeID uuid.UUID
	arrival *Arrival

	onArrive func(Arrival)
	log      *zap.Logger
}

// New returns an Idle animator.
func New(opts ...Option) *Animator {
	a := &Animator{log: zap.NewNop()}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Load accepts p for animation and returns the route ID that the eventual
// Arrival will carry.
//
// Implementation:
//   - Stage 1: Reject nil/empty paths (ErrEmptyPath); state is unchanged.
//   - Stage 2: Discard any previous route without emitting an Arrival.
//   - Stage 3: Snap the marker onto p's first node at segment 0.
//   - Stage 4: A path with no length to cover (a single node, or nodes
//     that all share one position) arrives immediately.
func (a *Animator) Load(p *core.Path) (uuid.UUID, error) {
	if p.Len() == 0 {
		return uuid.Nil, ErrEmptyPath
	}

	if a.state == Advancing {
		a.log.Debug("route abandoned", zap.Stringer("route", a.routeID), zap.Int("segment", a.seg))
	}

	a.path = p
	a.pos = p.Source().Position
	a.seg = 0
	a.ticks = 0
	a.arrival = nil
	a.routeID = uuid.New()

	a.cum = make([]float64, p.Len())
	for i := 1; i < p.Len(); i++ {
		a.cum[i] = a.cum[i-1] + p.Node(i-1).Position.DistanceTo(p.Node(i).Position)
	}

	a.log.Debug("route loaded",
		zap.Stringer("route", a.routeID),
		zap.Stringer("path", p),
		zap.Float64("length", a.cum[len(a.cum)-1]))

	if a.cum[len(a.cum)-1] == 0 {
		a.arrive()
		return a.routeID, nil
	}
	a.state = Advancing

	return a.routeID, nil
}

// Tick moves the marker step units along the path.
//
// Outside Advancing it does nothing and returns nil. Within a tick the
// marker heads straight for the next node; when the remaining distance fits
// in what is left of step, it snaps exactly onto that node, the segment
// index advances, and the leftover carries into the next segment.
// Zero-length segments are crossed without moving. Reaching the last node
// transitions to Arrived and fires the completion hook.
func (a *Animator) Tick(step float64) error {
	if a.state != Advancing {
		return nil
	}
	if !(step > 0) || math.IsInf(step, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidStep, step)
	}

	a.ticks++
	budget := step
	for a.state == Advancing {
		target := a.path.Node(a.seg + 1).Position
		remaining := a.pos.DistanceTo(target)

		if remaining <= budget+snapEpsilon {
			a.pos = target
			a.seg++
			budget = math.Max(0, budget-remaining)
			if a.seg == a.path.Len()-1 {
				a.arrive()
			}
			continue
		}

		// remaining > budget ≥ 0, so remaining is non-zero here.
		ratio := budget / remaining
		a.pos = core.Position{
			X: a.pos.X + (target.X-a.pos.X)*ratio,
			Y: a.pos.Y + (target.Y-a.pos.Y)*ratio,
		}
		break
	}

	return nil
}

// arrive performs the Advancing → Arrived transition and fires the hook.
func (a *Animator) arrive() {
	a.state = Arrived
	a.seg = a.path.Len() - 1
	a.arrival = &Arrival{
		RouteID: a.routeID,
		From:    a.path.Source().ID,
		To:      a.path.Destination().ID,
		Cost:    a.path.Cost(),
		Ticks:   a.ticks,
	}
	a.log.Info("route arrived",
		zap.Stringer("route", a.routeID),
		zap.String("from", a.arrival.From),
		zap.String("to", a.arrival.To),
		zap.Int64("cost", a.arrival.Cost),
		zap.Int("ticks", a.ticks))

	if a.onArrive != nil {
		a.onArrive(*a.arrival)
	}
}

// Reset drops the current path and returns to Idle. No Arrival is emitted.
func (a *Animator) Reset() {
	*a = Animator{onArrive: a.onArrive, log: a.log}
}

// State returns the current lifecycle state.
func (a *Animator) State() State { return a.state }

// Arrived reports whether the loaded path has been completed.
func (a *Animator) Arrived() bool { return a.state == Arrived }

// Marker returns the marker's current position. It is the zero Position
// while Idle.
func (a *Animator) Marker() core.Position { return a.pos }

// Segment returns the index of the path node the current segment starts
// at; at arrival it is the index of the destination.
func (a *Animator) Segment() int { return a.seg }

// Path returns the loaded path, or nil while Idle.
func (a *Animator) Path() *core.Path { return a.path }

// RouteID returns the ID handed out by the last successful Load.
func (a *Animator) RouteID() uuid.UUID { return a.routeID }

// Ticks returns the number of ticks consumed by the current path.
func (a *Animator) Ticks() int { return a.ticks }

// Arrival returns the completion event of the current path, if any.
func (a *Animator) Arrival() (Arrival, bool) {
	if a.arrival == nil {
		return Arrival{}, false
	}

	return *a.arrival, true
}

// Progress returns the fraction of the path's Euclidean length covered,
// in [0, 1]. Paths of zero length report 0 until they arrive, then 1.
func (a *Animator) Progress() float64 {
	if a.state == Idle {
		return 0
	}
	if a.state == Arrived {
		return 1
	}
	total := a.cum[len(a.cum)-1]
	if total == 0 {
		return 0
	}
	done := a.cum[a.seg] + a.path.Node(a.seg).Position.DistanceTo(a.pos)

	return math.Min(1, done/total)
}
