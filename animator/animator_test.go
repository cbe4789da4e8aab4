// SPDX-License-Identifier: MIT
// Package animator_test verifies the route animator state machine.

package animator_test

import (
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/katalvlaran/skyroute/animator"
	"github.com/katalvlaran/skyroute/core"
	"github.com/katalvlaran/skyroute/dijkstra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// waypoint is a fixture row: node ID, position and distance from source.
type waypoint struct {
	id   string
	x, y float64
	dist int64
}

// buildPath places the waypoints in a fresh graph and wraps them in a Path.
func buildPath(t *testing.T, wps ...waypoint) *core.Path {
	t.Helper()

	g := core.NewGraph()
	nodes := make([]*core.Node, 0, len(wps))
	dist := make([]int64, 0, len(wps))
	for _, w := range wps {
		n, err := g.AddNode(w.id, core.Position{X: w.x, Y: w.y})
		require.NoError(t, err)
		nodes = append(nodes, n)
		dist = append(dist, w.dist)
	}
	p, err := core.NewPath(nodes, dist)
	require.NoError(t, err)

	return p
}

// recorder collects Arrival events.
type recorder struct{ got []animator.Arrival }

func (r *recorder) hook(a animator.Arrival) { r.got = append(r.got, a) }

// tickUntilArrived ticks at most limit times and returns the tick count.
func tickUntilArrived(t *testing.T, a *animator.Animator, step float64, limit int) int {
	t.Helper()

	for i := 1; i <= limit; i++ {
		require.NoError(t, a.Tick(step))
		if a.Arrived() {
			return i
		}
	}
	t.Fatalf("not arrived after %d ticks (state=%s, marker=%v)", limit, a.State(), a.Marker())

	return -1
}

func TestAnimator_LoadRejectsEmpty(t *testing.T) {
	a := animator.New()

	_, err := a.Load(nil)
	require.ErrorIs(t, err, animator.ErrEmptyPath)

	empty, err := core.NewPath(nil, nil)
	require.NoError(t, err)
	_, err = a.Load(empty)
	require.ErrorIs(t, err, animator.ErrEmptyPath)

	assert.Equal(t, animator.Idle, a.State())
	assert.Nil(t, a.Path())
}

func TestAnimator_TickIdleIsNoop(t *testing.T) {
	a := animator.New()

	require.NoError(t, a.Tick(5))
	require.NoError(t, a.Tick(-1), "invalid step is ignored outside Advancing")
	assert.Equal(t, animator.Idle, a.State())
	assert.Equal(t, core.Position{}, a.Marker())
	assert.Zero(t, a.Progress())
	assert.Zero(t, a.Ticks())
}

func TestAnimator_SingleNodeArrivesOnLoad(t *testing.T) {
	rec := &recorder{}
	a := animator.New(animator.WithOnArrive(rec.hook))

	id, err := a.Load(buildPath(t, waypoint{"A", 5, 5, 0}))
	require.NoError(t, err)

	assert.Equal(t, animator.Arrived, a.State())
	assert.Equal(t, core.Position{X: 5, Y: 5}, a.Marker())
	require.Len(t, rec.got, 1)
	assert.Equal(t, animator.Arrival{RouteID: id, From: "A", To: "A", Cost: 0, Ticks: 0}, rec.got[0])

	require.NoError(t, a.Tick(1))
	assert.Len(t, rec.got, 1, "ticks after arrival must not re-emit")
}

// TestAnimator_StraightSegment walks 10 units with step 3: 3, 6, 9, snap.
func TestAnimator_StraightSegment(t *testing.T) {
	rec := &recorder{}
	a := animator.New(animator.WithOnArrive(rec.hook), animator.WithLogger(zaptest.NewLogger(t)))
	p := buildPath(t, waypoint{"A", 0, 0, 0}, waypoint{"B", 10, 0, 42})

	id, err := a.Load(p)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)
	assert.Equal(t, animator.Advancing, a.State())
	assert.Equal(t, core.Position{X: 0, Y: 0}, a.Marker())

	wantX := []float64{3, 6, 9, 10}
	for i, x := range wantX {
		require.NoError(t, a.Tick(3))
		assert.InDelta(t, x, a.Marker().X, 1e-9, "tick %d", i+1)
		assert.InDelta(t, 0, a.Marker().Y, 1e-9, "tick %d", i+1)
	}

	assert.True(t, a.Arrived())
	assert.Equal(t, 1, a.Segment())
	assert.Equal(t, 1.0, a.Progress())
	require.Len(t, rec.got, 1)
	assert.Equal(t, int64(42), rec.got[0].Cost)
	assert.Equal(t, 4, rec.got[0].Ticks)
	assert.Equal(t, id, rec.got[0].RouteID)

	arr, ok := a.Arrival()
	require.True(t, ok)
	assert.Equal(t, rec.got[0], arr)
}

// TestAnimator_DiagonalInterpolation: the marker moves along the unit vector.
func TestAnimator_DiagonalInterpolation(t *testing.T) {
	a := animator.New()
	_, err := a.Load(buildPath(t, waypoint{"A", 0, 0, 0}, waypoint{"B", 30, 40, 1}))
	require.NoError(t, err)

	require.NoError(t, a.Tick(5))
	assert.InDelta(t, 3, a.Marker().X, 1e-9)
	assert.InDelta(t, 4, a.Marker().Y, 1e-9)
	assert.InDelta(t, 0.1, a.Progress(), 1e-9)
	assert.Equal(t, 0, a.Segment())
}

// TestAnimator_CarryAcrossSegments: two 1.5-long segments with step 1
// arrive in ceil(3/1) = 3 ticks.
func TestAnimator_CarryAcrossSegments(t *testing.T) {
	a := animator.New()
	_, err := a.Load(buildPath(t,
		waypoint{"A", 0, 0, 0},
		waypoint{"B", 1.5, 0, 1},
		waypoint{"C", 3, 0, 2},
	))
	require.NoError(t, err)

	require.NoError(t, a.Tick(1))
	assert.InDelta(t, 1.0, a.Marker().X, 1e-9)
	assert.Equal(t, 0, a.Segment())

	require.NoError(t, a.Tick(1))
	assert.InDelta(t, 2.0, a.Marker().X, 1e-9)
	assert.Equal(t, 1, a.Segment(), "snapped onto B then carried 0.5 into B→C")

	require.NoError(t, a.Tick(1))
	assert.True(t, a.Arrived())
	assert.Equal(t, 3, a.Ticks())
}

// TestAnimator_ZeroLengthSegments: coincident nodes are crossed without
// dividing by zero.
func TestAnimator_ZeroLengthSegments(t *testing.T) {
	a := animator.New()
	_, err := a.Load(buildPath(t,
		waypoint{"A", 0, 0, 0},
		waypoint{"B", 0, 0, 5},
		waypoint{"C", 4, 0, 9},
		waypoint{"D", 4, 0, 9},
	))
	require.NoError(t, err)

	n := tickUntilArrived(t, a, 1, 10)
	assert.Equal(t, 4, n)
	assert.False(t, math.IsNaN(a.Marker().X))
	assert.Equal(t, core.Position{X: 4, Y: 0}, a.Marker())

}

// TestAnimator_CoincidentPathArrivesOnLoad: a multi-node path with zero
// Euclidean length needs ceil(0/step) = 0 ticks.
func TestAnimator_CoincidentPathArrivesOnLoad(t *testing.T) {
	rec := &recorder{}
	b := animator.New(animator.WithOnArrive(rec.hook))
	_, err := b.Load(buildPath(t, waypoint{"A", 1, 1, 0}, waypoint{"B", 1, 1, 3}, waypoint{"C", 1, 1, 7}))
	require.NoError(t, err)

	assert.True(t, b.Arrived())
	assert.Equal(t, 2, b.Segment())
	assert.Equal(t, 1.0, b.Progress())
	assert.Zero(t, b.Ticks())
	require.Len(t, rec.got, 1)
	assert.EqualValues(t, 7, rec.got[0].Cost)

	require.NoError(t, b.Tick(1))
	assert.Len(t, rec.got, 1, "no second arrival")
}

func TestAnimator_InvalidStep(t *testing.T) {
	a := animator.New()
	_, err := a.Load(buildPath(t, waypoint{"A", 0, 0, 0}, waypoint{"B", 10, 0, 1}))
	require.NoError(t, err)

	for _, step := range []float64{0, -2, math.NaN(), math.Inf(1)} {
		require.ErrorIs(t, a.Tick(step), animator.ErrInvalidStep, "step=%v", step)
	}
	assert.Equal(t, core.Position{}, a.Marker())
	assert.Zero(t, a.Ticks())
}

// TestAnimator_ReloadDiscardsRoute: loading mid-flight abandons the old path
// silently.
func TestAnimator_ReloadDiscardsRoute(t *testing.T) {
	rec := &recorder{}
	a := animator.New(animator.WithOnArrive(rec.hook))

	first, err := a.Load(buildPath(t, waypoint{"A", 0, 0, 0}, waypoint{"B", 100, 0, 7}))
	require.NoError(t, err)
	require.NoError(t, a.Tick(10))

	second, err := a.Load(buildPath(t, waypoint{"X", 50, 50, 0}, waypoint{"Y", 50, 52, 3}))
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
	assert.Equal(t, core.Position{X: 50, Y: 50}, a.Marker())
	assert.Zero(t, a.Ticks())

	require.NoError(t, a.Tick(2))
	require.Len(t, rec.got, 1)
	assert.Equal(t, second, rec.got[0].RouteID)
	assert.Equal(t, "X", rec.got[0].From)
	assert.Equal(t, int64(3), rec.got[0].Cost)
}

func TestAnimator_Reset(t *testing.T) {
	rec := &recorder{}
	a := animator.New(animator.WithOnArrive(rec.hook))
	_, err := a.Load(buildPath(t, waypoint{"A", 0, 0, 0}, waypoint{"B", 10, 0, 1}))
	require.NoError(t, err)

	a.Reset()
	assert.Equal(t, animator.Idle, a.State())
	_, ok := a.Arrival()
	assert.False(t, ok)

	// The hook survives a reset.
	_, err = a.Load(buildPath(t, waypoint{"A", 0, 0, 0}))
	require.NoError(t, err)
	assert.Len(t, rec.got, 1)
}

// TestAnimator_FollowsShortestPath is the end-to-end property: a path of
// Euclidean length L arrives within ceil(L/step) ticks, reports the
// destination's shortest-path distance, and leaves node positions intact.
func TestAnimator_FollowsShortestPath(t *testing.T) {
	g := core.NewGraph()
	g.AddNode("A", core.Position{X: 0, Y: 0})
	g.AddNode("B", core.Position{X: 300, Y: 0})
	g.AddNode("C", core.Position{X: 150, Y: 150})
	require.NoError(t, g.AddEdge("A", "B", 150))
	require.NoError(t, g.AddEdge("A", "C", 60))
	require.NoError(t, g.AddEdge("C", "B", 60))

	p, err := dijkstra.ShortestPath(g, "A", "B")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "C", "B"}, p.IDs())

	for _, step := range []float64{2, 7.5, 50, 1000} {
		rec := &recorder{}
		a := animator.New(animator.WithOnArrive(rec.hook))
		_, err := a.Load(p)
		require.NoError(t, err)

		limit := int(math.Ceil(p.Length() / step))
		n := tickUntilArrived(t, a, step, limit)
		assert.LessOrEqual(t, n, limit, "step=%v", step)

		require.Len(t, rec.got, 1)
		b, _ := g.Node("B")
		assert.Equal(t, b.Distance(), rec.got[0].Cost)
		assert.Equal(t, int64(120), rec.got[0].Cost)
	}

	c, _ := g.Node("C")
	assert.Equal(t, core.Position{X: 150, Y: 150}, c.Position, "nodes are places, not markers")
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "idle", animator.Idle.String())
	assert.Equal(t, "advancing", animator.Advancing.String())
	assert.Equal(t, "arrived", animator.Arrived.String())
	assert.Equal(t, "unknown", animator.State(9).String())
}
