// SPDX-License-Identifier: MIT
//
// File: impl_airports.go
// Role: the built-in five-airport demo network.
// Policy:
//   - Flights are directed, from the earlier airport in the list to the later.
//   - Coordinates are screen positions; weights are route distances.

package builder

import (
	"github.com/katalvlaran/skyroute/config"
	"github.com/katalvlaran/skyroute/core"
)

// Airport names of the demo network.
const (
	Delhi     = "DELHI"
	Bombay    = "BOMBAY"
	Bangalore = "BANGALORE"
	Hyderabad = "HYDERABAD"
	Chennai   = "CHENNAI"
)

var airportNodes = []config.NodeConfig{
	{Name: Delhi, X: 50, Y: 50},
	{Name: Bombay, X: 200, Y: 100},
	{Name: Bangalore, X: 100, Y: 200},
	{Name: Hyderabad, X: 300, Y: 300},
	{Name: Chennai, X: 400, Y: 200},
}

var airportFlights = []config.EdgeConfig{
	{From: Delhi, To: Bombay, Weight: 1100},
	{From: Delhi, To: Bangalore, Weight: 1400},
	{From: Delhi, To: Hyderabad, Weight: 1250},
	{From: Delhi, To: Chennai, Weight: 1750},

	{From: Bombay, To: Bangalore, Weight: 830},
	{From: Bombay, To: Hyderabad, Weight: 710},
	{From: Bombay, To: Chennai, Weight: 1040},

	{From: Bangalore, To: Hyderabad, Weight: 500},
	{From: Bangalore, To: Chennai, Weight: 290},

	{From: Hyderabad, To: Chennai, Weight: 620},
}

// AirportNames lists the demo airports in declaration order.
func AirportNames() []string {
	names := make([]string, len(airportNodes))
	for i, n := range airportNodes {
		names[i] = n.Name
	}

	return names
}

func buildAirports(g *core.Graph, cfg builderConfig) error {
	if err := buildDeclared(g, cfg, airportNodes, airportFlights); err != nil {
		return wrapf(MethodAirports, "demo network", err)
	}

	return nil
}
