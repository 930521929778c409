// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/retopo/base/errors"
)

func TestDefault(t *testing.T) {
	c := Default()
	assert.NoError(t, c.Validate())
	assert.Equal(t, float32(60), c.Analyze.SharpCornerAngle)
	assert.Equal(t, "text", c.Report.Format)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		edit func(c *Config)
		msg  string
	}{
		{func(c *Config) { c.Analyze.SharpCornerAngle = 181 }, "Config.Analyze.SharpCornerAngle: must not exceed 180"},
		{func(c *Config) { c.Analyze.SharpEdgeAngle = -1 }, "Config.Analyze.SharpEdgeAngle: must be at least 0"},
		{func(c *Config) { c.Analyze.CornerOrder = "spiral" }, "Config.Analyze.CornerOrder: must be one of: storage angular"},
		{func(c *Config) { c.Analyze.Seeds = []int{3, -2} }, "Config.Analyze.Seeds[1]: must be at least 0"},
		{func(c *Config) { c.Report.Format = "xml" }, "Config.Report.Format: must be one of: text json yaml toml"},
		{func(c *Config) { c.Import.WeldTolerance = -0.1 }, "Config.Import.WeldTolerance: must be at least 0"},
	}
	for _, test := range tests {
		c := Default()
		test.edit(c)
		assert.EqualError(t, c.Validate(), test.msg)
	}
}

func TestOpenSave(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "retopo.toml")
	require.NoError(t, os.WriteFile(file, []byte(`
[analyze]
sharp_edge_angle = 45.0
seeds = [1, 7]
follow_rings = true

[report]
format = "json"
`), 0666))
	c, err := Open(file)
	require.NoError(t, err)
	assert.Equal(t, float32(45), c.Analyze.SharpEdgeAngle)
	assert.Equal(t, float32(60), c.Analyze.SharpCornerAngle)
	assert.Equal(t, []int{1, 7}, c.Analyze.Seeds)
	assert.True(t, c.Analyze.FollowRings)
	assert.Equal(t, "json", c.Report.Format)
	assert.Equal(t, 200, c.Watch.DebounceMS)

	saved := filepath.Join(dir, "saved.toml")
	require.NoError(t, c.Save(saved))
	c2, err := Open(saved)
	require.NoError(t, err)
	assert.Equal(t, c, c2)

	require.NoError(t, os.WriteFile(file, []byte("[analyze]\nsharp_corner_angle = 200.0\n"), 0666))
	_, err = Open(file)
	assert.ErrorContains(t, err, "must not exceed 180")

	require.NoError(t, os.WriteFile(file, []byte("[analyze\n"), 0666))
	_, err = Open(file)
	assert.Error(t, err)

	_, err = Open(filepath.Join(dir, "missing.toml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestMerge(t *testing.T) {
	c := Default()
	err := c.Merge(&Config{
		Analyze: Analyze{SharpEdgeAngle: 15, Seeds: []int{4}},
		Report:  Report{Format: "yaml"},
	})
	require.NoError(t, err)
	assert.Equal(t, float32(15), c.Analyze.SharpEdgeAngle)
	assert.Equal(t, float32(60), c.Analyze.SharpCornerAngle)
	assert.Equal(t, "storage", c.Analyze.CornerOrder)
	assert.Equal(t, []int{4}, c.Analyze.Seeds)
	assert.Equal(t, "yaml", c.Report.Format)
	assert.Equal(t, 20, c.Report.MaxList)

	err = Default().Merge(&Config{Analyze: Analyze{SharpCornerAngle: 500}})
	assert.ErrorContains(t, err, "SharpCornerAngle")
}
