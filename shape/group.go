// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"cogentcore.org/retopo/base/errors"
	"cogentcore.org/retopo/mesh"
)

// Join returns a new mesh containing copies of all the given meshes,
// with the vertices, edges and faces of each mesh offset past those
// of the meshes before it. The element order within each mesh,
// including link edge order, is preserved.
func Join(name string, meshes ...*mesh.Mesh) *mesh.Mesh {
	jm := mesh.New(name)
	for _, sm := range meshes {
		vo := mesh.VertexIndex(jm.NumVerts())
		for i := range sm.Verts {
			jm.AddVertex(sm.Verts[i].Pos)
		}
		// edges first, in order, so that link edge order is kept
		for i := range sm.Edges {
			ed := &sm.Edges[i]
			errors.Must(jm.AddEdge(ed.Verts[0]+vo, ed.Verts[1]+vo))
		}
		for i := range sm.Faces {
			fc := &sm.Faces[i]
			verts := make([]mesh.VertexIndex, len(fc.Verts))
			for j, v := range fc.Verts {
				verts[j] = v + vo
			}
			errors.Must(jm.AddFace(verts...))
		}
	}
	return jm
}
