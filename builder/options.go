// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: functional options resolved into builderConfig.
// Policy:
//   - Options are applied in order; later ones override earlier ones.
//   - Option constructors validate and panic on nil functions.

package builder

import (
	"math"

	"github.com/katalvlaran/skyroute/core"
)

// WeightFn derives the stored weight of an edge from its endpoints and the
// declared weight. The result must be non-negative; core rejects the rest.
type WeightFn func(from, to core.Position, declared int64) int64

// builderConfig is the resolved set of knobs shared by every Constructor.
type builderConfig struct {
	bidirectional bool
	weightFn      WeightFn
}

// BuilderOption mutates builderConfig before construction begins.
type BuilderOption func(*builderConfig)

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{weightFn: DeclaredWeight}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithBidirectional adds the reverse of every declared edge with the same
// weight. Reverse edges that are already declared are left untouched.
func WithBidirectional() BuilderOption {
	return func(c *builderConfig) { c.bidirectional = true }
}

// WithWeightFn replaces the weight policy. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) { c.weightFn = fn }
}

// DeclaredWeight keeps the declared weight. It is the default policy.
func DeclaredWeight(_, _ core.Position, declared int64) int64 { return declared }

// EuclideanWeight ignores the declared weight and uses the straight-line
// distance between the endpoints, rounded to the nearest integer.
func EuclideanWeight(from, to core.Position, _ int64) int64 {
	return int64(math.Round(from.DistanceTo(to)))
}
