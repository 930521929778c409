// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"fmt"

	"cogentcore.org/retopo/base/errors"
	"cogentcore.org/retopo/math32"
	"cogentcore.org/retopo/mesh"
)

// Cube returns a cube of the given edge size centered on the origin,
// made of 8 vertices and 6 quads.
func Cube(size float32) *mesh.Mesh {
	m := mesh.New("Cube")
	h := size / 2
	for i := range 8 {
		x, y, z := -h, -h, -h
		if i&1 != 0 {
			x = h
		}
		if i&2 != 0 {
			y = h
		}
		if i&4 != 0 {
			z = h
		}
		m.AddVertex(math32.Vec3(x, y, z))
	}
	quads := [6][4]mesh.VertexIndex{
		{0, 2, 3, 1}, // -Z
		{4, 5, 7, 6}, // +Z
		{0, 1, 5, 4}, // -Y
		{2, 6, 7, 3}, // +Y
		{0, 4, 6, 2}, // -X
		{1, 3, 7, 5}, // +X
	}
	for _, q := range quads {
		errors.Must(m.AddFace(q[:]...))
	}
	return m
}

// Tetrahedron returns a regular tetrahedron centered on the origin whose
// vertices lie on the corners of a cube of the given edge size.
func Tetrahedron(size float32) *mesh.Mesh {
	m := mesh.New("Tetrahedron")
	h := size / 2
	m.AddVertices(
		math32.Vec3(h, h, h),
		math32.Vec3(h, -h, -h),
		math32.Vec3(-h, h, -h),
		math32.Vec3(-h, -h, h),
	)
	tris := [4][3]mesh.VertexIndex{{0, 1, 2}, {0, 3, 1}, {0, 2, 3}, {1, 3, 2}}
	for _, t := range tris {
		errors.Must(m.AddFace(t[:]...))
	}
	return m
}

// Grid returns a flat grid in the XY plane centered on the origin,
// with the given number of quads along X and Y, spanning size units
// along each axis. All quads face +Z.
func Grid(xSegments, ySegments int, size float32) (*mesh.Mesh, error) {
	if xSegments < 1 || ySegments < 1 {
		return nil, fmt.Errorf("shape.Grid: need at least 1 segment per axis, got %dx%d", xSegments, ySegments)
	}
	m := mesh.New("Grid")
	nx := xSegments + 1
	h := size / 2
	for j := range ySegments + 1 {
		y := -h + size*float32(j)/float32(ySegments)
		for i := range nx {
			x := -h + size*float32(i)/float32(xSegments)
			m.AddVertex(math32.Vec3(x, y, 0))
		}
	}
	vi := func(i, j int) mesh.VertexIndex { return mesh.VertexIndex(j*nx + i) }
	for j := range ySegments {
		for i := range xSegments {
			if _, err := m.AddFace(vi(i, j), vi(i+1, j), vi(i+1, j+1), vi(i, j+1)); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}

// Circle returns a ring of the given number of segments and radius in
// the XY plane. If fill is true, the ring is closed by one n-gon
// facing +Z; otherwise the mesh has only vertices and edges.
func Circle(segments int, radius float32, fill bool) (*mesh.Mesh, error) {
	m := mesh.New("Circle")
	ring, err := AddRing(m, segments, radius, 0)
	if err != nil {
		return nil, err
	}
	if fill {
		if _, err := m.AddFace(ring...); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// LoopStack returns numLoops unconnected edge rings of the given number of
// segments and radius, stacked levelHeight apart along +Z starting at z = 0.
func LoopStack(numLoops, segments int, radius, levelHeight float32) (*mesh.Mesh, error) {
	if numLoops < 1 {
		return nil, fmt.Errorf("shape.LoopStack: need at least 1 loop, got %d", numLoops)
	}
	m := mesh.New("LoopStack")
	for i := range numLoops {
		if _, err := AddRing(m, segments, radius, levelHeight*float32(i)); err != nil {
			return nil, err
		}
	}
	return m, nil
}
