// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shape generates procedural primitive meshes (cubes, grids,
// circles, cylinders, cones, barrels and others) as [mesh.Mesh] values
// with consistent outward-facing face winding.
package shape

import (
	"fmt"
	"slices"

	"cogentcore.org/retopo/math32"
	"cogentcore.org/retopo/mesh"
)

// AddRing adds a closed ring of the given number of segments and radius,
// centered on the Z axis at height z, to the mesh. The vertices go
// counter-clockwise when viewed from +Z, starting on the +X axis, and
// consecutive vertices are joined by edges. It returns the new vertices.
func AddRing(m *mesh.Mesh, segments int, radius, z float32) ([]mesh.VertexIndex, error) {
	if segments < 3 {
		return nil, fmt.Errorf("shape.AddRing: need at least 3 segments, got %d", segments)
	}
	verts := make([]mesh.VertexIndex, segments)
	for i := range segments {
		theta := 2 * math32.Pi * float32(i) / float32(segments)
		verts[i] = m.AddVertex(math32.Vec3(radius*math32.Cos(theta), radius*math32.Sin(theta), z))
	}
	_, err := m.AddEdgeChain(true, verts...)
	return verts, err
}

// BridgeLoops joins two closed vertex rings of the same length with a
// band of quads: quad i uses a[i], a[i+1], b[i+1], b[i]. For rings that
// go counter-clockwise around the Z axis with b above a, the quads face
// outward. It returns the new faces.
func BridgeLoops(m *mesh.Mesh, a, b []mesh.VertexIndex) ([]mesh.FaceIndex, error) {
	n := len(a)
	if n != len(b) {
		return nil, fmt.Errorf("shape.BridgeLoops: loops have different lengths %d and %d", n, len(b))
	}
	if n < 3 {
		return nil, fmt.Errorf("shape.BridgeLoops: loops need at least 3 vertices, got %d", n)
	}
	faces := make([]mesh.FaceIndex, n)
	for i := range n {
		j := (i + 1) % n
		f, err := m.AddFace(a[i], a[j], b[j], b[i])
		if err != nil {
			return faces[:i], err
		}
		faces[i] = f
	}
	return faces, nil
}

// fan adds triangles joining every edge of the closed ring to the apex
// vertex. If up is true the triangles wind counter-clockwise when viewed
// from +Z, and otherwise from -Z.
func fan(m *mesh.Mesh, ring []mesh.VertexIndex, apex mesh.VertexIndex, up bool) error {
	n := len(ring)
	for i := range n {
		j := (i + 1) % n
		var err error
		if up {
			_, err = m.AddFace(apex, ring[i], ring[j])
		} else {
			_, err = m.AddFace(apex, ring[j], ring[i])
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// reversed returns a reversed copy of the given vertex ring.
func reversed(ring []mesh.VertexIndex) []mesh.VertexIndex {
	rv := slices.Clone(ring)
	slices.Reverse(rv)
	return rv
}
