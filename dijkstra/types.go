// Package dijkstra defines the errors and configuration options of the
// single-pair shortest-path engine.
//
// Options:
//
//	– WithMaxDistance:      cap on distances to explore; nodes beyond are never reached.
//	– WithInfEdgeThreshold: edges with weight >= this threshold are impassable.
//	– WithLogger:           debug trace of extractions and relaxations.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrNotReachable    if the destination cannot be reached from the source.
//	– ErrBadMaxDistance  if MaxDistance < 0 (panic in the option constructor).
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0 (panic in the option constructor).
//
// Unknown endpoints are reported as core.ErrUnknownNode.
package dijkstra

import (
	"errors"

	"github.com/katalvlaran/skyroute/core"
	"go.uber.org/zap"
)

// Sentinel errors returned by ShortestPath.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to ShortestPath.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNotReachable indicates that the destination is not connected to the
	// source by directed edges (within MaxDistance, if set). It is an
	// expected query outcome, not a malformed-input error.
	ErrNotReachable = errors.New("dijkstra: destination not reachable from source")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or
	// negative, which would make every edge impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the behavior of ShortestPath.
//
// MaxDistance      – nodes whose distance would exceed this are not explored.
//
//	Must be ≥ 0. Default is core.Infinity (no cap).
//
// InfEdgeThreshold – edges with weight ≥ this threshold are skipped.
//
//	Must be > 0. Default is core.Infinity (no obstacles).
type Options struct {
	MaxDistance      int64       // Maximum distance to explore
	InfEdgeThreshold int64       // Weight threshold above which edges are non-traversable
	Logger           *zap.Logger // Debug trace sink; never nil after DefaultOptions
}

// Option represents a functional option for configuring ShortestPath.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold.
// A destination farther than max is reported as ErrNotReachable.
// Negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			// Option constructors are the one place invalid configuration panics.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold at or above which edges are
// considered closed (for example, a suspended route).
// Zero or negative values panic with ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// WithLogger routes the engine's debug trace to l. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns Options with no distance cap, no impassable edges
// and a no-op logger.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      core.Infinity,
		InfEdgeThreshold: core.Infinity,
		Logger:           zap.NewNop(),
	}
}
