// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package topo

import (
	"fmt"
	"slices"

	"cogentcore.org/retopo/mesh"
)

// DiscoverEdgeLoop returns the edge loop through the seed edge, or the
// edge ring through it if followRings is true.
//
// An edge loop is a chain of edges joined end to end. At each vertex of
// valence 4 the walk continues through the one link edge that shares no
// face with the edge it came in on, which is the edge across from it in
// a quad grid. The walk stops at a vertex of any other valence, at a
// non-manifold edge, or where that continuing edge is not unique.
//
// An edge ring is the dual: a sequence of edges on opposite sides of
// consecutive quads. The walk crosses each quad to the opposite edge and
// then moves on to the other face of that edge, stopping at a non-quad
// face and after a boundary or non-manifold edge.
//
// If the walk returns to the seed, the result is closed and starts with
// the seed. Otherwise both directions are walked and the result runs from
// one end to the other, with the seed in between. The result is empty if
// the seed cannot be extended in either direction. The same seed on the
// same mesh always gives the same result.
//
// It returns an error wrapping [ErrInvalidMesh] if the seed is out of
// range or the adjacency found along the walk is malformed.
func DiscoverEdgeLoop(m *mesh.Mesh, seed mesh.EdgeIndex, followRings bool) ([]mesh.EdgeIndex, error) {
	if err := checkEdge(m, seed); err != nil {
		return nil, err
	}
	if followRings {
		return edgeRing(m, seed)
	}
	return edgeLoop(m, seed)
}

// IsClosedLoop returns whether the edges returned by [DiscoverEdgeLoop]
// form a closed loop or ring, where the last edge continues into the first.
// The followRings value must match the one used to discover the edges.
func IsClosedLoop(m *mesh.Mesh, edges []mesh.EdgeIndex, followRings bool) bool {
	if len(edges) < 2 {
		return false
	}
	first, last := edges[0], edges[len(edges)-1]
	if followRings {
		for _, f := range m.Edges[last].Faces {
			fc := &m.Faces[f]
			if fc.IsQuad() && m.Edges[first].HasFace(f) {
				p := fc.EdgePosition(last)
				if fc.Edges[(p+2)%4] == first {
					return true
				}
			}
		}
		return false
	}
	for _, v := range m.SharedVertices(first, last) {
		if n, err := nextLoopEdge(m, last, v); err == nil && n == first {
			return true
		}
	}
	return false
}

// EdgeLoops returns one loop (or ring, if followRings is true) for each
// of the seed edges, in seed order, as given by [DiscoverEdgeLoop]. A seed
// that cannot be extended gives a loop of just that seed. Seeds on the
// same loop each give their own copy of it.
func EdgeLoops(m *mesh.Mesh, seeds []mesh.EdgeIndex, followRings bool) ([][]mesh.EdgeIndex, error) {
	loops := make([][]mesh.EdgeIndex, 0, len(seeds))
	for _, s := range seeds {
		loop, err := DiscoverEdgeLoop(m, s, followRings)
		if err != nil {
			return nil, err
		}
		if len(loop) == 0 {
			loop = []mesh.EdgeIndex{s}
		}
		loops = append(loops, loop)
	}
	return loops, nil
}

// SelectEdgeLoops returns the union of the seed edges and the loops
// (or rings, if followRings is true) through each of them.
func SelectEdgeLoops(m *mesh.Mesh, seeds []mesh.EdgeIndex, followRings bool) (Set[mesh.EdgeIndex], error) {
	loops, err := EdgeLoops(m, seeds, followRings)
	if err != nil {
		return nil, err
	}
	sel := Set[mesh.EdgeIndex]{}
	for _, l := range loops {
		sel.Add(l...)
	}
	return sel, nil
}

// edgeLoop walks forward from the second endpoint of the seed, and then
// back from the first endpoint if the forward walk did not close.
func edgeLoop(m *mesh.Mesh, seed mesh.EdgeIndex) ([]mesh.EdgeIndex, error) {
	visited := SetOf(seed)
	ed := &m.Edges[seed]
	fwd, closed, err := walkLoop(m, seed, ed.Verts[1], visited)
	if err != nil {
		return nil, err
	}
	if closed {
		return append([]mesh.EdgeIndex{seed}, fwd...), nil
	}
	back, _, err := walkLoop(m, seed, ed.Verts[0], visited)
	if err != nil {
		return nil, err
	}
	return joinWalks(seed, back, fwd), nil
}

// walkLoop follows the loop from the seed edge out through vertex v,
// returning the edges after the seed and whether the walk came back
// around to the seed.
func walkLoop(m *mesh.Mesh, seed mesh.EdgeIndex, v mesh.VertexIndex, visited Set[mesh.EdgeIndex]) ([]mesh.EdgeIndex, bool, error) {
	var edges []mesh.EdgeIndex
	e := seed
	for {
		n, err := nextLoopEdge(m, e, v)
		if err != nil {
			return nil, false, err
		}
		switch {
		case n == mesh.NoEdge:
			return edges, false, nil
		case n == seed:
			return edges, true, nil
		case visited.Has(n):
			return edges, false, nil
		}
		visited.Add(n)
		edges = append(edges, n)
		v = m.Edges[n].OtherVertex(v)
		e = n
	}
}

// nextLoopEdge returns the edge that continues the loop entering vertex v
// through edge e, or [mesh.NoEdge] if the loop ends at v.
func nextLoopEdge(m *mesh.Mesh, e mesh.EdgeIndex, v mesh.VertexIndex) (mesh.EdgeIndex, error) {
	if err := checkLinkEdges(m, v); err != nil {
		return mesh.NoEdge, err
	}
	if m.Valence(v) != 4 || !m.Edges[e].IsManifold() {
		return mesh.NoEdge, nil
	}
	next := mesh.NoEdge
	for _, c := range m.Verts[v].Edges {
		if c == e || m.EdgesShareFace(e, c) {
			continue
		}
		if next != mesh.NoEdge {
			return mesh.NoEdge, nil // ambiguous
		}
		next = c
	}
	return next, nil
}

// edgeRing walks across the first link face of the seed, and then across
// the second one if the first walk did not close.
func edgeRing(m *mesh.Mesh, seed mesh.EdgeIndex) ([]mesh.EdgeIndex, error) {
	faces := m.Edges[seed].Faces
	if len(faces) == 0 || len(faces) > 2 {
		return nil, nil
	}
	visited := SetOf(seed)
	fwd, closed, err := walkRing(m, seed, faces[0], visited)
	if err != nil {
		return nil, err
	}
	if closed {
		return append([]mesh.EdgeIndex{seed}, fwd...), nil
	}
	var back []mesh.EdgeIndex
	if len(faces) == 2 {
		back, _, err = walkRing(m, seed, faces[1], visited)
		if err != nil {
			return nil, err
		}
	}
	return joinWalks(seed, back, fwd), nil
}

// walkRing follows the ring from the seed edge across face f.
func walkRing(m *mesh.Mesh, seed mesh.EdgeIndex, f mesh.FaceIndex, visited Set[mesh.EdgeIndex]) ([]mesh.EdgeIndex, bool, error) {
	var edges []mesh.EdgeIndex
	e := seed
	for {
		if !m.ValidFace(f) {
			return nil, false, fmt.Errorf("%w: edge %d: link face %d out of range", ErrInvalidMesh, e, f)
		}
		fc := &m.Faces[f]
		if !fc.IsQuad() {
			return edges, false, nil
		}
		p := fc.EdgePosition(e)
		if p < 0 {
			return nil, false, fmt.Errorf("%w: edge %d: link face %d does not use it", ErrInvalidMesh, e, f)
		}
		n := fc.Edges[(p+2)%4]
		switch {
		case n == seed:
			return edges, true, nil
		case visited.Has(n):
			return edges, false, nil
		}
		visited.Add(n)
		edges = append(edges, n)
		nf := m.Edges[n].Faces
		if len(nf) != 2 {
			return edges, false, nil
		}
		f = nf[0]
		if f == fc.Index {
			f = nf[1]
		}
		e = n
	}
}

// joinWalks returns the walk from the far end of back, through the seed,
// to the far end of fwd, or nil if neither walk went anywhere.
func joinWalks(seed mesh.EdgeIndex, back, fwd []mesh.EdgeIndex) []mesh.EdgeIndex {
	if len(back) == 0 && len(fwd) == 0 {
		return nil
	}
	loop := make([]mesh.EdgeIndex, 0, len(back)+1+len(fwd))
	loop = append(loop, back...)
	slices.Reverse(loop)
	loop = append(loop, seed)
	return append(loop, fwd...)
}
