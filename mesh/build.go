// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"fmt"

	"cogentcore.org/retopo/base/errors"
	"cogentcore.org/retopo/math32"
)

// ErrInvalid is wrapped by all errors about malformed mesh input or
// inconsistent adjacency.
var ErrInvalid = errors.New("invalid mesh")

// AddVertex adds a new loose vertex at the given position
// and returns its index.
func (m *Mesh) AddVertex(pos math32.Vector3) VertexIndex {
	vi := VertexIndex(len(m.Verts))
	m.Verts = append(m.Verts, Vertex{Index: vi, Pos: pos})
	return vi
}

// AddVertices adds a new loose vertex for each position and returns
// the new indexes in the same order.
func (m *Mesh) AddVertices(pos ...math32.Vector3) []VertexIndex {
	vs := make([]VertexIndex, len(pos))
	for i, p := range pos {
		vs[i] = m.AddVertex(p)
	}
	return vs
}

// AddEdge returns the edge joining vertices a and b, adding it
// if it does not already exist. The new edge is appended to the
// link edges of both vertices.
func (m *Mesh) AddEdge(a, b VertexIndex) (EdgeIndex, error) {
	if !m.ValidVertex(a) || !m.ValidVertex(b) {
		return NoEdge, fmt.Errorf("%w: edge %d-%d: vertex out of range [0, %d)", ErrInvalid, a, b, len(m.Verts))
	}
	if a == b {
		return NoEdge, fmt.Errorf("%w: edge %d-%d: endpoints must be distinct", ErrInvalid, a, b)
	}
	if e := m.EdgeBetween(a, b); e != NoEdge {
		return e, nil
	}
	ei := EdgeIndex(len(m.Edges))
	m.Edges = append(m.Edges, Edge{Index: ei, Verts: [2]VertexIndex{a, b}})
	m.edgeMap[keyFor(a, b)] = ei
	m.Verts[a].Edges = append(m.Verts[a].Edges, ei)
	m.Verts[b].Edges = append(m.Verts[b].Edges, ei)
	return ei, nil
}

// AddEdgeChain adds edges joining each consecutive pair of the given
// vertices, and the last back to the first if closed is true.
// It returns the edges in chain order.
func (m *Mesh) AddEdgeChain(closed bool, verts ...VertexIndex) ([]EdgeIndex, error) {
	n := len(verts)
	ne := n - 1
	if closed {
		ne = n
	}
	if ne < 1 {
		return nil, nil
	}
	es := make([]EdgeIndex, 0, ne)
	for i := range ne {
		e, err := m.AddEdge(verts[i], verts[(i+1)%n])
		if err != nil {
			return es, err
		}
		es = append(es, e)
	}
	return es, nil
}

// AddFace adds a new face with the given boundary loop of at least
// three distinct vertices, in counter-clockwise order. Missing edges
// of the loop are added, and the face is linked into every edge of
// its ring. It is an error to add a face with the same vertex ring
// as an existing face.
func (m *Mesh) AddFace(verts ...VertexIndex) (FaceIndex, error) {
	n := len(verts)
	if n < 3 {
		return NoFace, fmt.Errorf("%w: face needs at least 3 vertices, got %d", ErrInvalid, n)
	}
	seen := make(map[VertexIndex]bool, n)
	for _, v := range verts {
		if !m.ValidVertex(v) {
			return NoFace, fmt.Errorf("%w: face vertex %d out of range [0, %d)", ErrInvalid, v, len(m.Verts))
		}
		if seen[v] {
			return NoFace, fmt.Errorf("%w: face repeats vertex %d", ErrInvalid, v)
		}
		seen[v] = true
	}
	if f := m.faceWithVerts(verts); f != NoFace {
		return NoFace, fmt.Errorf("%w: face %v already exists as face %d", ErrInvalid, verts, f)
	}
	fi := FaceIndex(len(m.Faces))
	face := Face{Index: fi, Verts: append([]VertexIndex(nil), verts...), Edges: make([]EdgeIndex, n)}
	for i := range n {
		e, err := m.AddEdge(verts[i], verts[(i+1)%n])
		if err != nil {
			return NoFace, err
		}
		face.Edges[i] = e
	}
	for _, e := range face.Edges {
		m.Edges[e].Faces = append(m.Edges[e].Faces, fi)
	}
	face.Normal = math32.PolygonNormal(m.Positions(face.Verts))
	m.Faces = append(m.Faces, face)
	return fi, nil
}

// faceWithVerts returns an existing face using exactly the given
// vertices, or [NoFace].
func (m *Mesh) faceWithVerts(verts []VertexIndex) FaceIndex {
	e := m.EdgeBetween(verts[0], verts[1])
	if e == NoEdge {
		return NoFace
	}
outer:
	for _, f := range m.Edges[e].Faces {
		fc := &m.Faces[f]
		if len(fc.Verts) != len(verts) {
			continue
		}
		for _, v := range verts {
			if !fc.HasVertex(v) {
				continue outer
			}
		}
		return f
	}
	return NoFace
}

// RecalcNormals recomputes the normal of every face from
// the current vertex positions.
func (m *Mesh) RecalcNormals() {
	for i := range m.Faces {
		f := &m.Faces[i]
		f.Normal = math32.PolygonNormal(m.Positions(f.Verts))
	}
}

// FaceCenter returns the average position of the vertices of face f.
func (m *Mesh) FaceCenter(f FaceIndex) math32.Vector3 {
	return math32.PolygonCenter(m.Positions(m.Faces[f].Verts))
}

// Translate moves the given vertices (all vertices if none are given)
// by the given offset.
func (m *Mesh) Translate(offset math32.Vector3, verts ...VertexIndex) {
	m.eachVertex(verts, func(v *Vertex) {
		v.Pos = v.Pos.Add(offset)
	})
}

// Scale scales the given vertices (all vertices if none are given)
// component-wise by the given factors about the origin, and then
// recomputes face normals.
func (m *Mesh) Scale(factor math32.Vector3, verts ...VertexIndex) {
	m.eachVertex(verts, func(v *Vertex) {
		v.Pos = v.Pos.Mul(factor)
	})
	m.RecalcNormals()
}

func (m *Mesh) eachVertex(verts []VertexIndex, fun func(v *Vertex)) {
	if len(verts) == 0 {
		for i := range m.Verts {
			fun(&m.Verts[i])
		}
		return
	}
	for _, v := range verts {
		fun(&m.Verts[v])
	}
}
