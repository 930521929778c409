// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package topo

import (
	"fmt"

	"cogentcore.org/retopo/mesh"
)

// ValenceClass classifies a vertex by its valence, the number of its
// link edges, from the point of view of quad-dominant topology.
type ValenceClass int32

const (
	// Regular is a vertex with valence 4, as in the interior of a quad grid.
	Regular ValenceClass = iota

	// Pole is a vertex with valence 3 or more than 4,
	// where edge flow converges (3) or spreads (5+).
	Pole

	// IrregularLow is a vertex with valence below 3:
	// loose (0), dangling (1) or on a wire or boundary corner (2).
	IrregularLow
)

func (vc ValenceClass) String() string {
	switch vc {
	case Regular:
		return "regular"
	case Pole:
		return "pole"
	case IrregularLow:
		return "irregular-low"
	}
	return fmt.Sprintf("ValenceClass(%d)", int32(vc))
}

// ClassifyValence returns the [ValenceClass] for the given valence.
func ClassifyValence(valence int) ValenceClass {
	switch {
	case valence == 4:
		return Regular
	case valence == 3 || valence > 4:
		return Pole
	}
	return IrregularLow
}

// ClassifyVerticesByValence returns the [ValenceClass] of every vertex
// of the mesh. It returns an error wrapping [ErrInvalidMesh] if the link
// edges of any vertex are malformed.
func ClassifyVerticesByValence(m *mesh.Mesh) (map[mesh.VertexIndex]ValenceClass, error) {
	classes := make(map[mesh.VertexIndex]ValenceClass, m.NumVerts())
	for i := range m.Verts {
		v := mesh.VertexIndex(i)
		if err := checkLinkEdges(m, v); err != nil {
			return nil, err
		}
		classes[v] = ClassifyValence(m.Valence(v))
	}
	return classes, nil
}

// ValenceCounts holds the number of vertices in each [ValenceClass].
type ValenceCounts struct {
	Regular      int `json:"regular" yaml:"regular" toml:"regular"`
	Pole         int `json:"pole" yaml:"pole" toml:"pole"`
	IrregularLow int `json:"irregularLow" yaml:"irregularLow" toml:"irregular_low"`
}

// Total returns the total number of vertices counted.
func (vc ValenceCounts) Total() int {
	return vc.Regular + vc.Pole + vc.IrregularLow
}

// CountValences returns the number of vertices in each class.
func CountValences(classes map[mesh.VertexIndex]ValenceClass) ValenceCounts {
	var vc ValenceCounts
	for _, c := range classes {
		switch c {
		case Regular:
			vc.Regular++
		case Pole:
			vc.Pole++
		default:
			vc.IrregularLow++
		}
	}
	return vc
}

// ValenceHistogram returns the number of vertices of each valence.
func ValenceHistogram(m *mesh.Mesh) map[int]int {
	hist := map[int]int{}
	for i := range m.Verts {
		hist[m.Verts[i].Valence()]++
	}
	return hist
}

// SelectPoles returns the vertices whose valence is 3 or more than 4.
func SelectPoles(m *mesh.Mesh) Set[mesh.VertexIndex] {
	poles := Set[mesh.VertexIndex]{}
	for i := range m.Verts {
		if ClassifyValence(m.Verts[i].Valence()) == Pole {
			poles.Add(mesh.VertexIndex(i))
		}
	}
	return poles
}

// SelectLooseVertices returns the vertices that have no link edges.
func SelectLooseVertices(m *mesh.Mesh) Set[mesh.VertexIndex] {
	loose := Set[mesh.VertexIndex]{}
	for i := range m.Verts {
		if m.Verts[i].IsLoose() {
			loose.Add(mesh.VertexIndex(i))
		}
	}
	return loose
}

// checkLinkEdges returns an error wrapping [ErrInvalidMesh] if any link
// edge of vertex v is out of range or does not contain v.
func checkLinkEdges(m *mesh.Mesh, v mesh.VertexIndex) error {
	for _, e := range m.Verts[v].Edges {
		if !m.ValidEdge(e) {
			return fmt.Errorf("%w: vertex %d: link edge %d out of range", ErrInvalidMesh, v, e)
		}
		if !m.Edges[e].HasVertex(v) {
			return fmt.Errorf("%w: vertex %d: link edge %d does not contain it", ErrInvalidMesh, v, e)
		}
	}
	return nil
}
