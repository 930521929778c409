// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"cogentcore.org/retopo/mesh"
	"cogentcore.org/retopo/shape"
	"cogentcore.org/retopo/topo"
)

func TestAnalyzeCube(t *testing.T) {
	r, err := Analyze(shape.Cube(3), DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "Cube", r.Name)
	assert.Equal(t, Counts{Verts: 8, Edges: 12, Faces: 6}, r.Counts)
	assert.Equal(t, topo.ValenceCounts{Pole: 8}, r.Valence)
	assert.Equal(t, []Bin{{Value: 3, Count: 8}}, r.ValenceHistogram)
	assert.Equal(t, []Bin{{Value: 4, Count: 6}}, r.ArityHistogram)
	assert.Equal(t, []mesh.VertexIndex{0, 1, 2, 3, 4, 5, 6, 7}, r.Poles)
	assert.Empty(t, r.Ngons)
	assert.Empty(t, r.NonQuads)
	assert.Empty(t, r.SharpCorners)
	assert.Len(t, r.SharpEdges, 12)
	assert.Empty(t, r.Boundary)
	assert.Empty(t, r.Loops)
	assert.Equal(t, float32(-1.5), r.Bounds.Min.X)
}

func TestAnalyzeLoops(t *testing.T) {
	cy := &shape.Cylinder{Segments: 8, Rings: 2, BottomRadius: 1, TopRadius: 1, Height: 2, Caps: shape.CapTriFan}
	m, err := cy.Mesh()
	require.NoError(t, err)
	opts := DefaultOptions()
	opts.Seeds = []mesh.EdgeIndex{0, 1, 8}
	r, err := Analyze(m, opts)
	require.NoError(t, err)
	require.Len(t, r.Loops, 2)
	assert.Equal(t, mesh.EdgeIndex(0), r.Loops[0].Seed)
	assert.Equal(t, mesh.EdgeIndex(8), r.Loops[1].Seed)
	for _, l := range r.Loops {
		assert.True(t, l.Closed)
		assert.Len(t, l.Edges, 8)
	}
	assert.Len(t, r.Triangles, 16)
	assert.Equal(t, r.Triangles, r.NonQuads)
}

func TestAnalyzeInvalid(t *testing.T) {
	m := shape.Cube(1)
	m.Edges[0].Faces = append(m.Edges[0].Faces, 42)
	_, err := Analyze(m, DefaultOptions())
	assert.ErrorIs(t, err, topo.ErrInvalidMesh)
	assert.ErrorIs(t, err, mesh.ErrInvalid)

	r, err := Analyze(mesh.New(), DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, Counts{}, r.Counts)
	var b bytes.Buffer
	assert.NoError(t, r.Write(&b, JSON, 0))
}

func TestWrite(t *testing.T) {
	br, err := (&shape.Barrel{Segments: 8, EndRadius: 1, MidRadius: 1.5, Height: 2}).Mesh()
	require.NoError(t, err)
	opts := DefaultOptions()
	opts.CornerOrder = topo.AngularOrder
	r, err := Analyze(br, opts)
	require.NoError(t, err)
	require.Len(t, r.Ngons, 2)

	var b bytes.Buffer
	require.NoError(t, r.Write(&b, JSON, 0))
	var rj Report
	require.NoError(t, json.Unmarshal(b.Bytes(), &rj))
	assert.Equal(t, *r, rj)
	assert.Contains(t, b.String(), `"cornerOrder": "angular"`)

	b.Reset()
	require.NoError(t, r.Write(&b, YAML, 0))
	var ry map[string]any
	require.NoError(t, yaml.Unmarshal(b.Bytes(), &ry))
	assert.Equal(t, "Barrel", ry["name"])
	assert.Len(t, ry["ngons"], 2)

	b.Reset()
	require.NoError(t, r.Write(&b, TOML, 0))
	var rt map[string]any
	require.NoError(t, toml.Unmarshal(b.Bytes(), &rt))
	assert.Equal(t, "Barrel", rt["name"])
	assert.Len(t, rt["non_quads"], 2)

	b.Reset()
	require.NoError(t, r.Write(&b, Text, 3))
	txt := b.String()
	assert.True(t, strings.HasPrefix(txt, "Barrel: 24 verts, 40 edges, 18 faces\n"), txt)
	assert.Contains(t, txt, "n-gons")
	assert.Contains(t, txt, "poles")
	assert.Regexp(t, `\(\d+ more\)`, txt)

	assert.Error(t, r.Write(&b, Format(9), 0))
}

func TestFormat(t *testing.T) {
	for _, f := range []Format{Text, JSON, YAML, TOML} {
		got, err := FormatFromString(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
	_, err := FormatFromString("xml")
	assert.Error(t, err)
}
