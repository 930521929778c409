// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package topo

import "cogentcore.org/retopo/mesh"

// SelectNgonFaces returns the faces with more than four vertices.
func SelectNgonFaces(m *mesh.Mesh) Set[mesh.FaceIndex] {
	return selectFaces(m, func(f *mesh.Face) bool { return f.Arity() > 4 })
}

// SelectNonQuadFaces returns the faces that do not have exactly four
// vertices: the triangles and the n-gons.
func SelectNonQuadFaces(m *mesh.Mesh) Set[mesh.FaceIndex] {
	return selectFaces(m, func(f *mesh.Face) bool { return f.Arity() != 4 })
}

// SelectTriangles returns the faces with exactly three vertices.
func SelectTriangles(m *mesh.Mesh) Set[mesh.FaceIndex] {
	return selectFaces(m, func(f *mesh.Face) bool { return f.Arity() == 3 })
}

func selectFaces(m *mesh.Mesh, fun func(f *mesh.Face) bool) Set[mesh.FaceIndex] {
	sel := Set[mesh.FaceIndex]{}
	for i := range m.Faces {
		if fun(&m.Faces[i]) {
			sel.Add(mesh.FaceIndex(i))
		}
	}
	return sel
}

// ArityHistogram returns the number of faces of each arity.
func ArityHistogram(m *mesh.Mesh) map[int]int {
	hist := map[int]int{}
	for i := range m.Faces {
		hist[m.Faces[i].Arity()]++
	}
	return hist
}
