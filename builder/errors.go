// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: sentinel errors and method-context wrapping for the builder package.
// Policy:
//   - Callers branch with errors.Is against the sentinels below or the core
//     sentinels surfaced by AddNode/AddEdge.
//   - Option constructors panic on meaningless input; constructors never do.

package builder

import (
	"errors"
	"fmt"
)

// ErrBadSpec indicates a declared network that cannot be built: no nodes,
// a blank name, or an edge referring to an undeclared node.
var ErrBadSpec = errors.New("builder: invalid network spec")

// ErrConstructFailed indicates that BuildGraph received a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")

// Method tags prefix wrapped errors.
const (
	MethodBuildGraph = "BuildGraph"
	MethodAirports   = "Airports"
	MethodDeclared   = "Declared"
)

// wrapf attaches method context to err while keeping it visible to errors.Is.
func wrapf(method, format string, err error, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
