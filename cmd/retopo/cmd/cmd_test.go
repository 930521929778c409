// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/retopo/report"
)

// run executes the root command with the given arguments
// and returns what it printed.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

// The commands share package level flag state, so they are
// exercised in one sequence.
func TestCommands(t *testing.T) {
	dir := t.TempDir()
	conf := filepath.Join(dir, "retopo.toml")
	require.NoError(t, os.WriteFile(conf, []byte("[analyze]\nsharp_corner_angle = 45\nsharp_edge_angle = 20\n"), 0666))

	out, err := run(t, "config", "--config", conf)
	require.NoError(t, err)
	assert.Contains(t, out, "sharp_corner_angle = 45")
	assert.Contains(t, out, "[report]")

	_, err = run(t, "--config", conf, "shape", "blob", "-o", filepath.Join(dir, "blob.obj"))
	assert.ErrorContains(t, err, `unknown kind "blob"`)

	cube := filepath.Join(dir, "cube.obj")
	_, err = run(t, "--config", conf, "shape", "cube", "-o", cube)
	require.NoError(t, err)
	assert.FileExists(t, cube)

	out, err = run(t, "--config", conf, "analyze", cube)
	require.NoError(t, err)
	assert.Contains(t, out, "Cube: 8 verts, 12 edges, 6 faces")

	out, err = run(t, "--config", conf, "analyze", cube, "--format", "json")
	require.NoError(t, err)
	var r report.Report
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, report.Counts{Verts: 8, Edges: 12, Faces: 6}, r.Counts)
	assert.Equal(t, float32(45), r.Options.SharpCornerAngle)
	assert.Equal(t, 8, r.Valence.Total())
	assert.Empty(t, r.Boundary)

	out, err = run(t, "--config", conf, "analyze", cube, "--format", "json", "--edge-angle", "0", "--corner-angle", "0")
	require.NoError(t, err)
	var zr report.Report
	require.NoError(t, json.Unmarshal([]byte(out), &zr))
	assert.Equal(t, float32(0), zr.Options.SharpEdgeAngle)
	assert.Equal(t, float32(0), zr.Options.SharpCornerAngle)
	assert.Len(t, zr.SharpEdges, 12)
	assert.Empty(t, zr.SharpCorners)

	grid := filepath.Join(dir, "grid.obj")
	_, err = run(t, "--config", conf, "shape", "grid", "--segments", "4", "-o", grid)
	require.NoError(t, err)

	_, err = run(t, "--config", conf, "loops", grid)
	assert.ErrorContains(t, err, "no seed edges")

	out, err = run(t, "--config", conf, "loops", grid, "--seed", "0")
	require.NoError(t, err)
	assert.Equal(t, "0: open 0 []\n", out)

	out, err = run(t, "--config", conf, "loops", grid, "--seed", "0", "--rings")
	require.NoError(t, err)
	assert.Contains(t, out, "0: open 5 [0 2 ")

	_, err = run(t, "--config", conf, "loops", grid, "--seed", "1000")
	assert.ErrorContains(t, err, "1000")

	_, err = run(t, "--config", conf, "analyze", cube, "--order", "spiral")
	assert.ErrorContains(t, err, "CornerOrder")
}
