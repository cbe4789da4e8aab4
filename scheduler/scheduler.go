// SPDX-License-Identifier: MIT
//
// File: scheduler.go
// Role: the reference event source driving a sim.Session.
// Policy:
//   - A single goroutine selects over the tick ticker and the score timer.
//   - The first score event fires after InitialDelay, then every Interval.
//   - Scores go to a random node of the current route; idle sessions get none.

package scheduler

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/skyroute/animator"
	"github.com/katalvlaran/skyroute/config"
	"github.com/katalvlaran/skyroute/sim"
	"go.uber.org/zap"
)

// ErrNilSession indicates New received a nil session.
var ErrNilSession = errors.New("scheduler: session is nil")

// Session is the part of *sim.Session the scheduler drives.
type Session interface {
	Tick() error
	AddScore(node string, amount int) error
	RandomRouteNode(rng *rand.Rand) (string, bool)
	Arrival() (animator.Arrival, bool)
}

var _ Session = (*sim.Session)(nil)

// Scheduler delivers tick and score events to one session.
type Scheduler struct {
	session Session

	tickInterval  time.Duration
	stopOnArrival bool
	scoring       config.ScoringConfig

	rng *rand.Rand
	log *zap.Logger
}

// Option configures a Scheduler at construction.
type Option func(*Scheduler)

// WithLogger sets the scheduler logger. Nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(s *Scheduler) {
		if l != nil {
			s.log = l
		}
	}
}

// WithRand replaces the seeded generator used to pick scored nodes.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("scheduler: WithRand(nil)")
	}
	return func(s *Scheduler) { s.rng = r }
}

// New returns a scheduler for session using the cadence in simCfg and the
// scoring policy in scoreCfg. Both are expected to have passed
// config.Validate.
func New(session Session, simCfg config.SimulationConfig, scoreCfg config.ScoringConfig, opts ...Option) (*Scheduler, error) {
	if session == nil {
		return nil, ErrNilSession
	}
	if simCfg.TickInterval <= 0 {
		return nil, fmt.Errorf("%w: tick interval %v", config.ErrInvalidConfig, simCfg.TickInterval)
	}
	if scoreCfg.Enabled && (scoreCfg.Interval <= 0 || scoreCfg.Amount <= 0 || scoreCfg.InitialDelay < 0) {
		return nil, fmt.Errorf("%w: scoring interval %v amount %d delay %v",
			config.ErrInvalidConfig, scoreCfg.Interval, scoreCfg.Amount, scoreCfg.InitialDelay)
	}

	seed := uint64(scoreCfg.Seed)
	s := &Scheduler{
		session:       session,
		tickInterval:  simCfg.TickInterval,
		stopOnArrival: simCfg.StopOnArrival,
		scoring:       scoreCfg,
		rng:           rand.New(rand.NewPCG(seed, seed)),
		log:           zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Run delivers events until ctx is done, a session call fails, or, with
// StopOnArrival set, the current route arrives. It returns nil on arrival
// and ctx.Err() on cancellation.
//
// An arrival is reported once per route ID, with its total cost.
func (s *Scheduler) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.tickInterval)
	defer ticker.Stop()

	if !s.scoring.Enabled {
		// A nil channel never fires.
		return s.loop(ctx, ticker.C, nil, nil)
	}

	timer := time.NewTimer(s.scoring.InitialDelay)
	defer timer.Stop()

	return s.loop(ctx, ticker.C, timer.C, func() { timer.Reset(s.scoring.Interval) })
}

func (s *Scheduler) loop(ctx context.Context, tickC, scoreC <-chan time.Time, rearm func()) error {
	s.log.Info("scheduler started",
		zap.Duration("tick_interval", s.tickInterval),
		zap.Bool("scoring", s.scoring.Enabled))

	var reported uuid.UUID
	if s.report(&reported) && s.stopOnArrival {
		return nil
	}

	for {
		select {
		case <-ctx.Done():
			s.log.Info("scheduler stopped", zap.Error(ctx.Err()))
			return ctx.Err()

		case <-tickC:
			if err := s.session.Tick(); err != nil {
				return fmt.Errorf("scheduler: %w", err)
			}
			if s.report(&reported) && s.stopOnArrival {
				return nil
			}

		case <-scoreC:
			if err := s.award(); err != nil {
				return err
			}
			rearm()
		}
	}
}

// award credits the configured amount to a random node of the current route.
func (s *Scheduler) award() error {
	node, ok := s.session.RandomRouteNode(s.rng)
	if !ok {
		s.log.Debug("score skipped: no route loaded")
		return nil
	}
	if err := s.session.AddScore(node, s.scoring.Amount); err != nil {
		return fmt.Errorf("scheduler: %w", err)
	}

	return nil
}

// report logs the current arrival if it has not been logged yet and
// reports whether the current route has arrived.
func (s *Scheduler) report(reported *uuid.UUID) bool {
	a, ok := s.session.Arrival()
	if !ok {
		return false
	}
	if a.RouteID != *reported {
		*reported = a.RouteID
		s.log.Info("total cost covered",
			zap.Stringer("route", a.RouteID),
			zap.String("from", a.From),
			zap.String("to", a.To),
			zap.Int64("cost", a.Cost),
			zap.Int("ticks", a.Ticks))
	}

	return true
}
