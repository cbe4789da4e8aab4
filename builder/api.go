// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: public entry points of the builder package.
// Policy:
//   - One orchestrator: BuildGraph resolves options and runs constructors in order.
//   - Same inputs and options yield identical graphs, including node order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/skyroute/config"
	"github.com/katalvlaran/skyroute/core"
)

// Constructor mutates g using the resolved configuration. Constructors
// validate early and return sentinel errors; they never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates an empty graph and applies every constructor in order.
// The first failure is returned wrapped with "BuildGraph: "; the partially
// built graph is discarded.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w", MethodBuildGraph, i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", MethodBuildGraph, err)
		}
	}

	return g, nil
}

// Airports returns a constructor for the built-in five-airport network.
// See impl_airports.go for the data.
func Airports() Constructor {
	return buildAirports
}

// Declared returns a constructor that adds the given nodes and then the
// given edges. Edges may only reference nodes declared in the same call or
// already present in the graph.
func Declared(nodes []config.NodeConfig, edges []config.EdgeConfig) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		return buildDeclared(g, cfg, nodes, edges)
	}
}

// FromConfig builds the network described by gc, or the airport network
// when gc declares no nodes.
func FromConfig(gc config.GraphConfig, bopts ...BuilderOption) (*core.Graph, error) {
	if len(gc.Nodes) == 0 {
		if len(gc.Edges) != 0 {
			return nil, wrapf(MethodDeclared, "%d edges but no nodes", ErrBadSpec, len(gc.Edges))
		}
		return BuildGraph(bopts, Airports())
	}

	return BuildGraph(bopts, Declared(gc.Nodes, gc.Edges))
}
