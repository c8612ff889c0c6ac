package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bplp/lpsolve"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestPresets(t *testing.T) {
	out, _, err := run(t, "presets")
	require.NoError(t, err)
	require.Equal(t, []string{"concave", "convex", "linear", "reference"}, strings.Fields(out))
}

func TestSolve_JSON(t *testing.T) {
	out, stderr, err := run(t, "solve", "--preset", "convex", "--grid", "5", "--json", "--verify")
	require.NoError(t, err)
	require.Contains(t, stderr, "msg=solved")

	var doc resultJSON
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Equal(t, "convex", doc.Scenario)
	require.Equal(t, 5, doc.GridSize)
	require.Equal(t, "indifference", doc.Mode)
	require.Equal(t, "solved", doc.Status)
	require.InDelta(t, 0.375, doc.Value, 1e-9)
	require.Len(t, doc.Mechanism, 5)
	for i := range doc.Mechanism {
		require.InDelta(t, 0.2, doc.Mechanism[i][i], 1e-9)
	}
}

func TestSolve_Text(t *testing.T) {
	out, _, err := run(t, "solve", "--preset", "concave", "--grid", "3", "--ic-mode", "obedience")
	require.NoError(t, err)
	require.Contains(t, out, "scenario  concave")
	require.Contains(t, out, "3 nodes, obedience IC")
	require.Contains(t, out, "value     0.707107")
	require.Contains(t, out, "0.500")
}

func TestSolve_ScenarioFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "linear.yaml")
	doc := "name: lin\npreset: linear\ngrid_size: 4\nquadrature: {rule: trapezoid}\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))
	t.Setenv("BPLP_GRID_SIZE", "6")
	t.Setenv("BPLP_LOG_LEVEL", "debug")

	out, stderr, err := run(t, "solve", "--scenario", path, "--json")
	require.NoError(t, err)
	require.Contains(t, stderr, "lp assembled")

	var res resultJSON
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Equal(t, "lin", res.Scenario)
	require.Equal(t, 6, res.GridSize, "environment overrides the file")
	require.InDelta(t, 0.5, res.Value, 1e-9)

	out, _, err = run(t, "solve", "--scenario", path, "--grid", "3", "--json")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Equal(t, 3, res.GridSize, "flag overrides the environment")
}

func TestSolve_Errors(t *testing.T) {
	_, _, err := run(t, "solve", "--ic-mode", "strict")
	require.Error(t, err)

	_, _, err = run(t, "solve", "--grid", "1")
	require.Error(t, err)

	_, _, err = run(t, "solve", "--preset", "quartic")
	require.Error(t, err)

	_, _, err = run(t, "solve", "--scenario", "x.yaml", "--preset", "convex")
	require.Error(t, err)

	_, _, err = run(t, "--log-level", "loud", "presets")
	require.Error(t, err)
}

func TestWriteText_Layout(t *testing.T) {
	var buf bytes.Buffer
	res := &lpsolve.MechanismResult{GridSize: 0, Mode: lpsolve.Indifference, Status: lpsolve.StatusSolved}
	require.NoError(t, writeText(&buf, "empty", res))
	require.Contains(t, buf.String(), "scenario  empty")
}
