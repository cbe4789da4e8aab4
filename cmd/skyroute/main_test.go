package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/skyroute/animator"
	"github.com/katalvlaran/skyroute/core"
	"github.com/katalvlaran/skyroute/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args in an empty working directory,
// so no stray skyroute.yaml or .env is picked up.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("SKYROUTE_LOGGER_LEVEL", "error")

	out := new(bytes.Buffer)
	cmd := newRootCmd()
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestNodesCmd(t *testing.T) {
	out, err := execute(t, "nodes")
	require.NoError(t, err)

	assert.Contains(t, out, "NODE")
	assert.Contains(t, out, "DELHI")
	assert.Contains(t, out, "(50, 50)")
	assert.Contains(t, out, "BANGALORE:290")
	assert.NotContains(t, out, "CHENNAI:", "no flights leave CHENNAI")
}

func TestRouteCmd(t *testing.T) {
	out, err := execute(t, "route", "--from", "DELHI", "--to", "CHENNAI")
	require.NoError(t, err)
	assert.Equal(t, "DELHI → BANGALORE → CHENNAI (cost 1690)\n", out)

	out, err = execute(t, "route", "--from", "CHENNAI", "--to", "DELHI")
	require.NoError(t, err)
	assert.Equal(t, "no route from CHENNAI to DELHI\n", out)

	_, err = execute(t, "route", "--from", "PARIS", "--to", "DELHI")
	assert.ErrorIs(t, err, core.ErrUnknownNode)

	_, err = execute(t, "route", "--from", "DELHI")
	assert.Error(t, err, "--to is required")
}

func TestRouteCmd_ConfigFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "net.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
graph:
  nodes:
    - {name: A, x: 0, y: 0}
    - {name: B, x: 300, y: 0}
    - {name: C, x: 150, y: 150}
  edges:
    - {from: A, to: B, weight: 100}
    - {from: A, to: C, weight: 60}
    - {from: C, to: B, weight: 60}
`), 0o600))

	out, err := execute(t, "--config", file, "route", "--from", "A", "--to", "B")
	require.NoError(t, err)
	assert.Equal(t, "A → B (cost 100)\n", out)
}

func TestFlyCmd(t *testing.T) {
	t.Setenv("SKYROUTE_SIMULATION_TICK_INTERVAL", "1ms")
	t.Setenv("SKYROUTE_SIMULATION_STEP", "50")
	t.Setenv("SKYROUTE_SIMULATION_FRAME_INTERVAL", "0s")
	t.Setenv("SKYROUTE_SCORING_ENABLED", "false")

	out, err := execute(t, "fly", "--from", "DELHI", "--to", "CHENNAI")
	require.NoError(t, err)
	assert.Contains(t, out, "arrived")
	assert.Contains(t, out, "Total cost covered: 1690\n")
}

func TestFlyCmd_BadConfig(t *testing.T) {
	t.Setenv("SKYROUTE_SIMULATION_STEP", "0")

	_, err := execute(t, "fly", "--from", "DELHI", "--to", "CHENNAI")
	assert.ErrorContains(t, err, "invalid configuration")
}

func TestRenderFrame(t *testing.T) {
	snap := sim.Snapshot{
		Nodes: []sim.NodeView{
			{ID: "A", Score: 10, OnRoute: true},
			{ID: "B", Highlighted: true},
		},
		Route:  []string{"A", "B"},
		Ticks:  3,
		Marker: sim.MarkerView{Position: core.Position{X: 6, Y: 0}, State: animator.Advancing, Progress: 0.02},
	}

	buf := new(bytes.Buffer)
	renderFrame(buf, snap)

	assert.Equal(t,
		"[tick 3] A → B advancing segment 0 2.0% at (6.0, 0.0)\n"+
			"  *  A          score 10\n"+
			"  !  B          score 0\n",
		buf.String())
}
