// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package topo

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"cogentcore.org/retopo/math32"
	"cogentcore.org/retopo/mesh"
)

// AngleBetween returns the angle between the two direction vectors,
// in degrees in the range [0, 180]. It returns an error wrapping
// [ErrDegenerateGeometry] if either vector has zero length or is not
// finite.
//
// The angle is computed in float64 from the lengths of the cross and
// dot products, which gives exactly 0 and 180 for parallel and
// anti-parallel vectors and stays accurate for nearly parallel ones.
func AngleBetween(a, b math32.Vector3) (float32, error) {
	ax, ay, az := float64(a.X), float64(a.Y), float64(a.Z)
	bx, by, bz := float64(b.X), float64(b.Y), float64(b.Z)
	for _, c := range []float64{ax, ay, az, bx, by, bz} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return 0, fmt.Errorf("%w: non-finite vector in angle between %v and %v", ErrDegenerateGeometry, a, b)
		}
	}
	if ax*ax+ay*ay+az*az == 0 || bx*bx+by*by+bz*bz == 0 {
		return 0, fmt.Errorf("%w: zero-length vector in angle between %v and %v", ErrDegenerateGeometry, a, b)
	}
	cx, cy, cz := ay*bz-az*by, az*bx-ax*bz, ax*by-ay*bx
	dot := ax*bx + ay*by + az*bz
	rad := math.Atan2(math.Sqrt(cx*cx+cy*cy+cz*cz), dot)
	return float32(rad * 180 / math.Pi), nil
}

// AngleAtSharedVertex returns the corner angle, in degrees, between edges
// e1 and e2 at the one vertex they share: the angle between the vectors
// from that vertex to the other endpoint of each edge. It returns an
// error wrapping [ErrNotAdjacent] if the edges share zero vertices or
// are the same edge, [ErrDegenerateGeometry] if either edge has zero
// length, and [ErrInvalidMesh] if either edge index is out of range.
func AngleAtSharedVertex(m *mesh.Mesh, e1, e2 mesh.EdgeIndex) (float32, error) {
	for _, e := range []mesh.EdgeIndex{e1, e2} {
		if err := checkEdge(m, e); err != nil {
			return 0, err
		}
	}
	shared := m.SharedVertices(e1, e2)
	if len(shared) != 1 {
		return 0, fmt.Errorf("%w: edges %d and %d share %d vertices", ErrNotAdjacent, e1, e2, len(shared))
	}
	v := shared[0]
	ang, err := AngleBetween(m.EdgeVector(e1, v), m.EdgeVector(e2, v))
	if err != nil {
		return 0, fmt.Errorf("corner of edges %d and %d at vertex %d: %w", e1, e2, v, err)
	}
	return ang, nil
}

// VertexNormal returns the unit average of the normals of the faces
// around vertex v. For vertices without faces, or whose face normals
// cancel out, it returns the normal of the best-fit plane through the
// link edge directions, which is zero if they are collinear.
func VertexNormal(m *mesh.Mesh, v mesh.VertexIndex) math32.Vector3 {
	var nv math32.Vector3
	for _, f := range m.LinkFaces(v) {
		nv.SetAdd(m.Faces[f].Normal)
	}
	if nv.LengthSquared() > 0 {
		return nv.Normal()
	}
	es := m.Verts[v].Edges
	n := len(es)
	var ref math32.Vector3
	for i := range n {
		c := m.EdgeVector(es[i], v).Cross(m.EdgeVector(es[(i+1)%n], v))
		if c.Dot(ref) < 0 {
			c = c.Negate()
		}
		nv.SetAdd(c)
		if ref.IsZero() {
			ref = c
		}
	}
	return nv.Normal()
}

// SortedLinkEdges returns the link edges of vertex v sorted
// counter-clockwise by their angular position around the vertex
// normal (see [VertexNormal]), starting from the first link edge.
// If the vertex has no usable normal, the storage order is returned.
func SortedLinkEdges(m *mesh.Mesh, v mesh.VertexIndex) []mesh.EdgeIndex {
	es := slices.Clone(m.Verts[v].Edges)
	if len(es) < 3 {
		return es
	}
	nrm := VertexNormal(m, v)
	if nrm.IsZero() {
		return es
	}
	u := m.EdgeVector(es[0], v).ProjectOnPlane(nrm)
	if u.LengthSquared() == 0 {
		u = nrm.Perpendicular()
	}
	u = u.Normal()
	w := nrm.Cross(u)
	angle := func(e mesh.EdgeIndex) float32 {
		d := m.EdgeVector(e, v)
		a := math32.Atan2(d.Dot(w), d.Dot(u))
		if a < 0 {
			a += 2 * math32.Pi
		}
		return a
	}
	angles := make(map[mesh.EdgeIndex]float32, len(es))
	for _, e := range es {
		angles[e] = angle(e)
	}
	angles[es[0]] = 0
	slices.SortStableFunc(es, func(a, b mesh.EdgeIndex) int {
		return cmp.Compare(angles[a], angles[b])
	})
	return es
}

// checkEdge returns an error wrapping [ErrInvalidMesh] if edge e
// or its endpoints are out of range.
func checkEdge(m *mesh.Mesh, e mesh.EdgeIndex) error {
	if !m.ValidEdge(e) {
		return fmt.Errorf("%w: edge %d out of range [0, %d)", ErrInvalidMesh, e, m.NumEdges())
	}
	ed := &m.Edges[e]
	if !m.ValidVertex(ed.Verts[0]) || !m.ValidVertex(ed.Verts[1]) {
		return fmt.Errorf("%w: edge %d: endpoint out of range: %v", ErrInvalidMesh, e, ed.Verts)
	}
	return nil
}
