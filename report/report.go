// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report runs the topology analyses of package topo over a mesh
// and renders the results as text, JSON, YAML or TOML.
package report

import (
	"cmp"
	"fmt"
	"maps"
	"slices"

	"cogentcore.org/retopo/math32"
	"cogentcore.org/retopo/mesh"
	"cogentcore.org/retopo/topo"
)

// Options are the thresholds and options for [Analyze].
type Options struct {
	// SharpCornerAngle is the threshold in degrees for
	// [topo.SelectSharpCornersOrdered].
	SharpCornerAngle float32 `json:"sharpCornerAngle" yaml:"sharpCornerAngle" toml:"sharp_corner_angle"`

	// SharpEdgeAngle is the threshold in degrees for
	// [topo.SelectSharpEdgesByNormal].
	SharpEdgeAngle float32 `json:"sharpEdgeAngle" yaml:"sharpEdgeAngle" toml:"sharp_edge_angle"`

	// CornerOrder is the pairing order for sharp corners.
	CornerOrder topo.CornerOrder `json:"cornerOrder" yaml:"cornerOrder" toml:"corner_order"`

	// Seeds are the seed edges of the edge loops to discover.
	Seeds []mesh.EdgeIndex `json:"seeds,omitempty" yaml:"seeds,omitempty" toml:"seeds,omitempty"`

	// FollowRings discovers edge rings instead of edge loops.
	FollowRings bool `json:"followRings" yaml:"followRings" toml:"follow_rings"`
}

// DefaultOptions returns the default analysis options.
func DefaultOptions() Options {
	return Options{SharpCornerAngle: 60, SharpEdgeAngle: 30}
}

// Counts are the element counts of a mesh.
type Counts struct {
	Verts int `json:"verts" yaml:"verts" toml:"verts"`
	Edges int `json:"edges" yaml:"edges" toml:"edges"`
	Faces int `json:"faces" yaml:"faces" toml:"faces"`
}

// Bin is one bin of a histogram.
type Bin struct {
	Value int `json:"value" yaml:"value" toml:"value"`
	Count int `json:"count" yaml:"count" toml:"count"`
}

// Loop is a discovered edge loop or ring.
type Loop struct {
	Seed   mesh.EdgeIndex   `json:"seed" yaml:"seed" toml:"seed"`
	Closed bool             `json:"closed" yaml:"closed" toml:"closed"`
	Edges  []mesh.EdgeIndex `json:"edges" yaml:"edges" toml:"edges"`
}

// Report is the result of [Analyze]. All index lists are sorted.
type Report struct {
	Name    string      `json:"name" yaml:"name" toml:"name"`
	Options Options     `json:"options" yaml:"options" toml:"options"`
	Counts  Counts      `json:"counts" yaml:"counts" toml:"counts"`
	Bounds  math32.Box3 `json:"bounds" yaml:"bounds" toml:"bounds"`

	Valence          topo.ValenceCounts `json:"valence" yaml:"valence" toml:"valence"`
	ValenceHistogram []Bin              `json:"valenceHistogram" yaml:"valenceHistogram" toml:"valence_histogram"`
	ArityHistogram   []Bin              `json:"arityHistogram" yaml:"arityHistogram" toml:"arity_histogram"`

	Poles []mesh.VertexIndex `json:"poles" yaml:"poles" toml:"poles"`
	Loose []mesh.VertexIndex `json:"loose" yaml:"loose" toml:"loose"`

	Ngons     []mesh.FaceIndex `json:"ngons" yaml:"ngons" toml:"ngons"`
	NonQuads  []mesh.FaceIndex `json:"nonQuads" yaml:"nonQuads" toml:"non_quads"`
	Triangles []mesh.FaceIndex `json:"triangles" yaml:"triangles" toml:"triangles"`

	SharpCorners []mesh.EdgeIndex `json:"sharpCorners" yaml:"sharpCorners" toml:"sharp_corners"`
	SharpEdges   []mesh.EdgeIndex `json:"sharpEdges" yaml:"sharpEdges" toml:"sharp_edges"`
	Boundary     []mesh.EdgeIndex `json:"boundary" yaml:"boundary" toml:"boundary"`
	NonManifold  []mesh.EdgeIndex `json:"nonManifold" yaml:"nonManifold" toml:"non_manifold"`
	Wire         []mesh.EdgeIndex `json:"wire" yaml:"wire" toml:"wire"`

	Loops []Loop `json:"loops,omitempty" yaml:"loops,omitempty" toml:"loops,omitempty"`
}

// Analyze runs every topology analysis over the mesh. It returns an error
// wrapping [topo.ErrInvalidMesh] if the mesh fails [mesh.Mesh.Validate].
func Analyze(m *mesh.Mesh, opts Options) (*Report, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("report.Analyze: %w: %w", topo.ErrInvalidMesh, err)
	}
	classes, err := topo.ClassifyVerticesByValence(m)
	if err != nil {
		return nil, err
	}
	r := &Report{
		Name:             m.Name,
		Options:          opts,
		Counts:           Counts{Verts: m.NumVerts(), Edges: m.NumEdges(), Faces: m.NumFaces()},
		Valence:          topo.CountValences(classes),
		ValenceHistogram: histogram(topo.ValenceHistogram(m)),
		ArityHistogram:   histogram(topo.ArityHistogram(m)),
		Poles:            sorted(topo.SelectPoles(m)),
		Loose:            sorted(topo.SelectLooseVertices(m)),
		Ngons:            sorted(topo.SelectNgonFaces(m)),
		NonQuads:         sorted(topo.SelectNonQuadFaces(m)),
		Triangles:        sorted(topo.SelectTriangles(m)),
		SharpCorners:     sorted(topo.SelectSharpCornersOrdered(m, opts.SharpCornerAngle, opts.CornerOrder)),
		SharpEdges:       sorted(topo.SelectSharpEdgesByNormal(m, opts.SharpEdgeAngle)),
		Boundary:         sorted(topo.SelectBoundaryEdges(m)),
		NonManifold:      sorted(topo.SelectNonManifoldEdges(m)),
		Wire:             sorted(topo.SelectWireEdges(m)),
	}
	if m.NumVerts() > 0 {
		r.Bounds = m.Bounds()
	}
	if len(opts.Seeds) > 0 {
		loops, err := topo.EdgeLoops(m, opts.Seeds, opts.FollowRings)
		if err != nil {
			return nil, err
		}
		// a seed on a loop already reported adds nothing new
		done := topo.Set[mesh.EdgeIndex]{}
		for i, l := range loops {
			seed := opts.Seeds[i]
			if done.Has(seed) {
				continue
			}
			done.Add(l...)
			r.Loops = append(r.Loops, Loop{Seed: seed, Closed: topo.IsClosedLoop(m, l, opts.FollowRings), Edges: l})
		}
	}
	return r, nil
}

// sorted returns the elements of the set in increasing order,
// as an empty (not nil) slice for an empty set.
func sorted[T cmp.Ordered](s topo.Set[T]) []T {
	if s.Len() == 0 {
		return []T{}
	}
	return s.Sorted()
}

func histogram(hist map[int]int) []Bin {
	bins := make([]Bin, 0, len(hist))
	for _, v := range slices.Sorted(maps.Keys(hist)) {
		bins = append(bins, Bin{Value: v, Count: hist[v]})
	}
	return bins
}
