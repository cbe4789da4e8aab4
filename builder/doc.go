// SPDX-License-Identifier: MIT

// Package builder assembles core.Graph instances: the built-in five-airport
// demo network, or a network declared in configuration.
//
// Construction is composable. BuildGraph resolves BuilderOption values into
// one configuration and applies Constructor functions in order:
//
//	g, err := builder.BuildGraph(
//		[]builder.BuilderOption{builder.WithBidirectional()},
//		builder.Airports(),
//	)
//
// FromConfig is the shortcut used by the command line: it builds the declared
// network from a config.GraphConfig, falling back to the airports when no
// nodes are declared.
//
// Errors are wrapped with the constructor name ("Declared: ...") and remain
// matchable with errors.Is against ErrBadSpec, ErrConstructFailed and the
// core sentinels (ErrDuplicateNode, ErrInvalidWeight, ErrDuplicateEdge).
package builder
