// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package topo

import (
	"fmt"
	"log/slog"

	"cogentcore.org/retopo/mesh"
)

// CornerOrder determines how the link edges of a vertex are paired
// when looking for sharp corners.
type CornerOrder int32

const (
	// StorageOrder pairs link edges in the order they are stored
	// on the vertex, which need not be their angular order.
	StorageOrder CornerOrder = iota

	// AngularOrder pairs link edges sorted by their angular position
	// around the vertex normal (see [SortedLinkEdges]), so that each
	// pair is a true corner between neighboring edges.
	AngularOrder
)

func (co CornerOrder) String() string {
	switch co {
	case StorageOrder:
		return "storage"
	case AngularOrder:
		return "angular"
	}
	return fmt.Sprintf("CornerOrder(%d)", int32(co))
}

// MarshalText encodes the order as its name.
func (co CornerOrder) MarshalText() ([]byte, error) {
	return []byte(co.String()), nil
}

// UnmarshalText decodes the order from its name.
func (co *CornerOrder) UnmarshalText(text []byte) error {
	o, err := CornerOrderFromString(string(text))
	if err != nil {
		return err
	}
	*co = o
	return nil
}

// CornerOrderFromString returns the [CornerOrder] with the given name.
func CornerOrderFromString(s string) (CornerOrder, error) {
	switch s {
	case "storage":
		return StorageOrder, nil
	case "angular":
		return AngularOrder, nil
	}
	return StorageOrder, fmt.Errorf("topo: unknown corner order %q", s)
}

// SelectSharpCorners returns the edges that form a corner with an angle
// at or below threshold degrees. For every vertex, each link edge is
// paired with the next one in storage order, the last wrapping around to
// the first, and both edges of a pair are selected when the angle between
// them at the vertex is at most the threshold.
// It is [SelectSharpCornersOrdered] with [StorageOrder].
func SelectSharpCorners(m *mesh.Mesh, threshold float32) Set[mesh.EdgeIndex] {
	return SelectSharpCornersOrdered(m, threshold, StorageOrder)
}

// SelectSharpCornersOrdered is [SelectSharpCorners] with the given
// pairing order for the link edges of each vertex.
//
// A vertex with a degenerate (zero-length) link edge contributes
// nothing to the result, and neither does a vertex with malformed
// adjacency; the rest of the mesh is still scanned.
// Vertices with fewer than two link edges have no corners.
func SelectSharpCornersOrdered(m *mesh.Mesh, threshold float32, order CornerOrder) Set[mesh.EdgeIndex] {
	sharp := Set[mesh.EdgeIndex]{}
	var marked []mesh.EdgeIndex
	for i := range m.Verts {
		v := mesh.VertexIndex(i)
		if len(m.Verts[i].Edges) < 2 {
			continue
		}
		if err := checkLinkEdges(m, v); err != nil {
			slog.Debug("topo.SelectSharpCorners: skipping vertex", "vertex", v, "err", err)
			continue
		}
		es := m.Verts[i].Edges
		if order == AngularOrder {
			es = SortedLinkEdges(m, v)
		}
		marked = marked[:0]
		n := len(es)
		ok := true
		for j := range n {
			e1, e2 := es[j], es[(j+1)%n]
			ang, err := AngleAtSharedVertex(m, e1, e2)
			if err != nil {
				slog.Debug("topo.SelectSharpCorners: skipping vertex", "vertex", v, "err", err)
				ok = false
				break
			}
			if ang <= threshold {
				marked = append(marked, e1, e2)
			}
		}
		if ok {
			sharp.Add(marked...)
		}
	}
	return sharp
}

// SelectSharpEdgesByNormal returns the interior edges (those with exactly
// two link faces) where the angle between the normals of the two faces
// is at least threshold degrees. These are the candidates for marking
// as seams or sharp creases. Boundary and non-manifold edges are never
// selected, and neither are edges next to a degenerate face.
func SelectSharpEdgesByNormal(m *mesh.Mesh, threshold float32) Set[mesh.EdgeIndex] {
	sharp := Set[mesh.EdgeIndex]{}
	for i := range m.Edges {
		ed := &m.Edges[i]
		if len(ed.Faces) != 2 {
			continue
		}
		ang, err := DihedralAngle(m, mesh.EdgeIndex(i))
		if err != nil {
			slog.Debug("topo.SelectSharpEdgesByNormal: skipping edge", "edge", i, "err", err)
			continue
		}
		if ang >= threshold {
			sharp.Add(mesh.EdgeIndex(i))
		}
	}
	return sharp
}

// DihedralAngle returns the angle in degrees between the normals of the
// two link faces of the interior edge e: 0 for coplanar faces, growing
// as the surface folds. It returns an error wrapping [ErrInvalidMesh]
// if e does not have exactly two valid link faces, and one wrapping
// [ErrDegenerateGeometry] if either face has no normal.
func DihedralAngle(m *mesh.Mesh, e mesh.EdgeIndex) (float32, error) {
	if err := checkEdge(m, e); err != nil {
		return 0, err
	}
	ed := &m.Edges[e]
	if len(ed.Faces) != 2 {
		return 0, fmt.Errorf("%w: edge %d has %d link faces, not 2", ErrInvalidMesh, e, len(ed.Faces))
	}
	f1, f2 := ed.Faces[0], ed.Faces[1]
	if !m.ValidFace(f1) || !m.ValidFace(f2) {
		return 0, fmt.Errorf("%w: edge %d: link face out of range: %v", ErrInvalidMesh, e, ed.Faces)
	}
	ang, err := AngleBetween(m.Faces[f1].Normal, m.Faces[f2].Normal)
	if err != nil {
		return 0, fmt.Errorf("faces %d and %d of edge %d: %w", f1, f2, e, err)
	}
	return ang, nil
}

// SelectBoundaryEdges returns the edges with exactly one link face.
func SelectBoundaryEdges(m *mesh.Mesh) Set[mesh.EdgeIndex] {
	return selectEdges(m, func(ed *mesh.Edge) bool { return len(ed.Faces) == 1 })
}

// SelectWireEdges returns the edges with no link faces.
func SelectWireEdges(m *mesh.Mesh) Set[mesh.EdgeIndex] {
	return selectEdges(m, func(ed *mesh.Edge) bool { return len(ed.Faces) == 0 })
}

// SelectNonManifoldEdges returns the edges with more than two link faces.
func SelectNonManifoldEdges(m *mesh.Mesh) Set[mesh.EdgeIndex] {
	return selectEdges(m, func(ed *mesh.Edge) bool { return !ed.IsManifold() })
}

func selectEdges(m *mesh.Mesh, fun func(ed *mesh.Edge) bool) Set[mesh.EdgeIndex] {
	sel := Set[mesh.EdgeIndex]{}
	for i := range m.Edges {
		if fun(&m.Edges[i]) {
			sel.Add(mesh.EdgeIndex(i))
		}
	}
	return sel
}
