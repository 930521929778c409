// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh provides an editable polygon mesh with winged-edge
// adjacency: vertices know their link edges, edges know their
// link faces, and faces know their ordered vertex and edge rings.
// Adjacency is derived as elements are added, so that it always
// matches the current topology of the mesh.
//
// Elements are identified by their index into the owning mesh.
// Indexes are stable because elements are never removed.
package mesh

import (
	"fmt"
	"slices"

	"cogentcore.org/retopo/math32"
)

// VertexIndex identifies a [Vertex] within its [Mesh].
type VertexIndex int

// EdgeIndex identifies an [Edge] within its [Mesh].
type EdgeIndex int

// FaceIndex identifies a [Face] within its [Mesh].
type FaceIndex int

// Sentinel indexes for missing elements.
const (
	NoVertex VertexIndex = -1
	NoEdge   EdgeIndex   = -1
	NoFace   FaceIndex   = -1
)

// Vertex is a point of the mesh.
type Vertex struct {
	// Index is the index of this vertex in [Mesh.Verts].
	Index VertexIndex

	// Pos is the position of the vertex.
	Pos math32.Vector3

	// Edges are the link edges incident to this vertex,
	// in the order in which they were added.
	Edges []EdgeIndex
}

// Valence returns the number of link edges of the vertex.
func (v *Vertex) Valence() int {
	return len(v.Edges)
}

// IsLoose returns whether the vertex has no link edges.
func (v *Vertex) IsLoose() bool {
	return len(v.Edges) == 0
}

// Edge joins two distinct vertices.
type Edge struct {
	// Index is the index of this edge in [Mesh.Edges].
	Index EdgeIndex

	// Verts are the two endpoints of the edge.
	Verts [2]VertexIndex

	// Faces are the link faces that use this edge.
	Faces []FaceIndex
}

// IsBoundary returns whether the edge has fewer than two link faces.
func (e *Edge) IsBoundary() bool {
	return len(e.Faces) < 2
}

// IsInterior returns whether the edge has exactly two link faces.
func (e *Edge) IsInterior() bool {
	return len(e.Faces) == 2
}

// IsManifold returns whether the edge has at most two link faces.
func (e *Edge) IsManifold() bool {
	return len(e.Faces) <= 2
}

// HasVertex returns whether v is one of the endpoints of the edge.
func (e *Edge) HasVertex(v VertexIndex) bool {
	return e.Verts[0] == v || e.Verts[1] == v
}

// OtherVertex returns the endpoint of the edge that is not v,
// or [NoVertex] if v is not an endpoint.
func (e *Edge) OtherVertex(v VertexIndex) VertexIndex {
	switch v {
	case e.Verts[0]:
		return e.Verts[1]
	case e.Verts[1]:
		return e.Verts[0]
	}
	return NoVertex
}

// HasFace returns whether f is one of the link faces of the edge.
func (e *Edge) HasFace(f FaceIndex) bool {
	return slices.Contains(e.Faces, f)
}

// Face is a polygon bounded by a closed ring of at least three vertices.
type Face struct {
	// Index is the index of this face in [Mesh.Faces].
	Index FaceIndex

	// Verts is the boundary loop of the face, in counter-clockwise order
	// when viewed from the side the normal points to.
	Verts []VertexIndex

	// Edges is the edge ring of the face: Edges[i] joins
	// Verts[i] and Verts[(i+1)%len(Verts)].
	Edges []EdgeIndex

	// Normal is the unit normal of the face, derived from the vertex
	// positions. It is the zero vector for degenerate faces.
	Normal math32.Vector3
}

// Arity returns the number of vertices of the face.
func (f *Face) Arity() int {
	return len(f.Verts)
}

// IsQuad returns whether the face has exactly four vertices.
func (f *Face) IsQuad() bool {
	return len(f.Verts) == 4
}

// IsNgon returns whether the face has more than four vertices.
func (f *Face) IsNgon() bool {
	return len(f.Verts) > 4
}

// EdgePosition returns the position of the given edge in the
// edge ring of the face, or -1 if the face does not use it.
func (f *Face) EdgePosition(e EdgeIndex) int {
	return slices.Index(f.Edges, e)
}

// HasVertex returns whether v is on the boundary loop of the face.
func (f *Face) HasVertex(v VertexIndex) bool {
	return slices.Contains(f.Verts, v)
}

// edgeKey is an unordered vertex pair.
type edgeKey struct {
	a, b VertexIndex
}

func keyFor(a, b VertexIndex) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{a, b}
}

// Mesh owns a set of vertices, edges and faces together with their
// adjacency. The zero value is not usable; use [New].
//
// A Mesh is not safe for concurrent use while it is being modified.
type Mesh struct {
	// Name is an optional name for the mesh, such as the object name
	// read from a file.
	Name string

	Verts []Vertex
	Edges []Edge
	Faces []Face

	// edgeMap looks up edges by their unordered endpoint pair.
	edgeMap map[edgeKey]EdgeIndex
}

// New returns a new empty mesh with the given optional name.
func New(name ...string) *Mesh {
	m := &Mesh{edgeMap: map[edgeKey]EdgeIndex{}}
	if len(name) > 0 {
		m.Name = name[0]
	}
	return m
}

// NumVerts returns the number of vertices.
func (m *Mesh) NumVerts() int { return len(m.Verts) }

// NumEdges returns the number of edges.
func (m *Mesh) NumEdges() int { return len(m.Edges) }

// NumFaces returns the number of faces.
func (m *Mesh) NumFaces() int { return len(m.Faces) }

// Vertex returns the vertex at the given index.
// It panics if the index is out of range.
func (m *Mesh) Vertex(v VertexIndex) *Vertex {
	return &m.Verts[v]
}

// Edge returns the edge at the given index.
// It panics if the index is out of range.
func (m *Mesh) Edge(e EdgeIndex) *Edge {
	return &m.Edges[e]
}

// Face returns the face at the given index.
// It panics if the index is out of range.
func (m *Mesh) Face(f FaceIndex) *Face {
	return &m.Faces[f]
}

// ValidVertex returns whether v is a vertex index of this mesh.
func (m *Mesh) ValidVertex(v VertexIndex) bool {
	return v >= 0 && int(v) < len(m.Verts)
}

// ValidEdge returns whether e is an edge index of this mesh.
func (m *Mesh) ValidEdge(e EdgeIndex) bool {
	return e >= 0 && int(e) < len(m.Edges)
}

// ValidFace returns whether f is a face index of this mesh.
func (m *Mesh) ValidFace(f FaceIndex) bool {
	return f >= 0 && int(f) < len(m.Faces)
}

// Valence returns the number of link edges of vertex v.
func (m *Mesh) Valence(v VertexIndex) int {
	return len(m.Verts[v].Edges)
}

// EdgeBetween returns the edge joining a and b, or [NoEdge].
func (m *Mesh) EdgeBetween(a, b VertexIndex) EdgeIndex {
	if m.edgeMap == nil {
		m.rebuildEdgeMap()
	}
	if e, ok := m.edgeMap[keyFor(a, b)]; ok {
		return e
	}
	return NoEdge
}

// SharedVertices returns the endpoints that edges e1 and e2 have in common:
// zero, one or (for the same edge) two vertices.
func (m *Mesh) SharedVertices(e1, e2 EdgeIndex) []VertexIndex {
	ed1, ed2 := &m.Edges[e1], &m.Edges[e2]
	var shared []VertexIndex
	for _, v := range ed1.Verts {
		if ed2.HasVertex(v) {
			shared = append(shared, v)
		}
	}
	return shared
}

// LinkFaces returns the faces that use vertex v, in the order of
// its link edges, without duplicates.
func (m *Mesh) LinkFaces(v VertexIndex) []FaceIndex {
	var faces []FaceIndex
	seen := map[FaceIndex]bool{}
	for _, e := range m.Verts[v].Edges {
		for _, f := range m.Edges[e].Faces {
			if !seen[f] {
				seen[f] = true
				faces = append(faces, f)
			}
		}
	}
	return faces
}

// EdgesShareFace returns whether edges e1 and e2 are both
// used by at least one common face.
func (m *Mesh) EdgesShareFace(e1, e2 EdgeIndex) bool {
	for _, f := range m.Edges[e1].Faces {
		if m.Edges[e2].HasFace(f) {
			return true
		}
	}
	return false
}

// EdgeVector returns the vector from vertex from to the other
// endpoint of edge e.
func (m *Mesh) EdgeVector(e EdgeIndex, from VertexIndex) math32.Vector3 {
	to := m.Edges[e].OtherVertex(from)
	return m.Verts[to].Pos.Sub(m.Verts[from].Pos)
}

// Positions returns the positions of the given vertices.
func (m *Mesh) Positions(verts []VertexIndex) []math32.Vector3 {
	ps := make([]math32.Vector3, len(verts))
	for i, v := range verts {
		ps[i] = m.Verts[v].Pos
	}
	return ps
}

// Bounds returns the bounding box of all vertex positions.
// It is empty for a mesh with no vertices.
func (m *Mesh) Bounds() math32.Box3 {
	bb := math32.B3Empty()
	for i := range m.Verts {
		bb.ExpandByPoint(m.Verts[i].Pos)
	}
	return bb
}

// Clone returns a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	nm := New(m.Name)
	nm.Verts = make([]Vertex, len(m.Verts))
	for i, v := range m.Verts {
		v.Edges = append([]EdgeIndex(nil), v.Edges...)
		nm.Verts[i] = v
	}
	nm.Edges = make([]Edge, len(m.Edges))
	for i, e := range m.Edges {
		e.Faces = append([]FaceIndex(nil), e.Faces...)
		nm.Edges[i] = e
	}
	nm.Faces = make([]Face, len(m.Faces))
	for i, f := range m.Faces {
		f.Verts = append([]VertexIndex(nil), f.Verts...)
		f.Edges = append([]EdgeIndex(nil), f.Edges...)
		nm.Faces[i] = f
	}
	nm.rebuildEdgeMap()
	return nm
}

func (m *Mesh) String() string {
	return fmt.Sprintf("Mesh %q: %d verts, %d edges, %d faces", m.Name, len(m.Verts), len(m.Edges), len(m.Faces))
}

func (m *Mesh) rebuildEdgeMap() {
	m.edgeMap = make(map[edgeKey]EdgeIndex, len(m.Edges))
	for i := range m.Edges {
		ed := &m.Edges[i]
		m.edgeMap[keyFor(ed.Verts[0], ed.Verts[1])] = EdgeIndex(i)
	}
}
