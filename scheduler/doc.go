// SPDX-License-Identifier: MIT

// Package scheduler drives a sim.Session in real time: a tick every
// TickInterval, and a score event for a random route node after
// InitialDelay and then every Interval.
//
// Run blocks until the context ends or, with StopOnArrival, the route
// arrives. Each arrival is logged once with its total cost.
package scheduler
