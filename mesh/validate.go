// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"fmt"
	"slices"

	"cogentcore.org/retopo/base/errors"
)

// Validate checks that the adjacency of the mesh is consistent with
// its topology, returning all problems found joined into one error
// wrapping [ErrInvalid], or nil if the mesh is consistent.
// Meshes built only through the Add methods are always consistent;
// Validate is for meshes whose exported fields were set directly.
func (m *Mesh) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}
	for i := range m.Verts {
		vt := &m.Verts[i]
		if vt.Index != VertexIndex(i) {
			bad("vertex %d has index %d", i, vt.Index)
		}
		for _, e := range vt.Edges {
			if !m.ValidEdge(e) {
				bad("vertex %d: link edge %d out of range", i, e)
				continue
			}
			if !m.Edges[e].HasVertex(VertexIndex(i)) {
				bad("vertex %d: link edge %d does not contain it", i, e)
			}
		}
	}
	for i := range m.Edges {
		ed := &m.Edges[i]
		ei := EdgeIndex(i)
		if ed.Index != ei {
			bad("edge %d has index %d", i, ed.Index)
		}
		if !m.ValidVertex(ed.Verts[0]) || !m.ValidVertex(ed.Verts[1]) {
			bad("edge %d: endpoint out of range: %v", i, ed.Verts)
			continue
		}
		if ed.Verts[0] == ed.Verts[1] {
			bad("edge %d: endpoints are not distinct", i)
		}
		for _, v := range ed.Verts {
			if !slices.Contains(m.Verts[v].Edges, ei) {
				bad("edge %d: missing from link edges of vertex %d", i, v)
			}
		}
		for _, f := range ed.Faces {
			if !m.ValidFace(f) {
				bad("edge %d: link face %d out of range", i, f)
				continue
			}
			if m.Faces[f].EdgePosition(ei) < 0 {
				bad("edge %d: link face %d does not use it", i, f)
			}
		}
	}
	for i := range m.Faces {
		fc := &m.Faces[i]
		if fc.Index != FaceIndex(i) {
			bad("face %d has index %d", i, fc.Index)
		}
		n := len(fc.Verts)
		if n < 3 {
			bad("face %d: %d vertices, need at least 3", i, n)
			continue
		}
		if len(fc.Edges) != n {
			bad("face %d: %d vertices but %d edges", i, n, len(fc.Edges))
			continue
		}
		for j, e := range fc.Edges {
			if !m.ValidEdge(e) {
				bad("face %d: edge %d out of range", i, e)
				continue
			}
			ed := &m.Edges[e]
			a, b := fc.Verts[j], fc.Verts[(j+1)%n]
			if !ed.HasVertex(a) || !ed.HasVertex(b) {
				bad("face %d: edge %d does not join vertices %d and %d", i, e, a, b)
			}
			if !ed.HasFace(FaceIndex(i)) {
				bad("face %d: missing from link faces of edge %d", i, e)
			}
		}
	}
	return errors.Join(errs...)
}
