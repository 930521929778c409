// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package topo

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"cogentcore.org/retopo/math32"
	"cogentcore.org/retopo/shape"
)

func genVector() gopter.Gen {
	return gopter.CombineGens(
		gen.Float32Range(-100, 100),
		gen.Float32Range(-100, 100),
		gen.Float32Range(-100, 100),
	).Map(func(vs []any) math32.Vector3 {
		return math32.Vec3(vs[0].(float32), vs[1].(float32), vs[2].(float32))
	}).SuchThat(func(v math32.Vector3) bool {
		return v.Length() > 1e-3
	})
}

func TestAngleProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("angle of a vector with itself is 0", prop.ForAll(
		func(v math32.Vector3) bool {
			a, err := AngleBetween(v, v)
			return err == nil && a == 0
		},
		genVector(),
	))

	properties.Property("angle of a vector with its negation is 180", prop.ForAll(
		func(v math32.Vector3) bool {
			a, err := AngleBetween(v, v.Negate())
			return err == nil && a == 180
		},
		genVector(),
	))

	properties.Property("angle is symmetric and in [0, 180]", prop.ForAll(
		func(a, b math32.Vector3) bool {
			ab, err1 := AngleBetween(a, b)
			ba, err2 := AngleBetween(b, a)
			return err1 == nil && err2 == nil && ab == ba && ab >= 0 && ab <= 180
		},
		genVector(), genVector(),
	))

	properties.Property("dihedral angle matches the fold angle", prop.ForAll(
		func(fold float32) bool {
			m, shared := hinge(fold)
			a, err := DihedralAngle(m, shared)
			return err == nil && math32.Abs(a-fold) < 0.01
		},
		gen.Float32Range(0, 170),
	))

	properties.TestingRun(t)
}

func TestMeshProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 30
	properties := gopter.NewProperties(parameters)

	genCylinder := gopter.CombineGens(
		gen.IntRange(3, 16),
		gen.IntRange(2, 5),
		gen.OneConstOf(shape.CapNone, shape.CapNgon, shape.CapTriFan),
	).Map(func(vs []any) *shape.Cylinder {
		return &shape.Cylinder{Segments: vs[0].(int), Rings: vs[1].(int), BottomRadius: 1, TopRadius: 1, Height: 2, Caps: vs[2].(shape.Caps)}
	})

	properties.Property("valence classes cover every vertex", prop.ForAll(
		func(cy *shape.Cylinder) bool {
			m, err := cy.Mesh()
			if err != nil {
				return false
			}
			classes, err := ClassifyVerticesByValence(m)
			return err == nil && len(classes) == m.NumVerts() && CountValences(classes).Total() == m.NumVerts()
		},
		genCylinder,
	))

	properties.Property("n-gons are the non-quads that are not triangles", prop.ForAll(
		func(cy *shape.Cylinder) bool {
			m, err := cy.Mesh()
			if err != nil {
				return false
			}
			ngons, nonQuads, tris := SelectNgonFaces(m), SelectNonQuadFaces(m), SelectTriangles(m)
			for f := range ngons {
				if !nonQuads.Has(f) || tris.Has(f) {
					return false
				}
			}
			return nonQuads.Len() == ngons.Len()+tris.Len()
		},
		genCylinder,
	))

	properties.Property("ring edge loops are closed and restartable", prop.ForAll(
		func(segments, rings int) bool {
			cy := &shape.Cylinder{Segments: segments, Rings: rings, BottomRadius: 1, TopRadius: 1, Height: 2, Caps: shape.CapTriFan}
			m, err := cy.Mesh()
			if err != nil {
				return false
			}
			ring, vertical := ringEdges(m)
			for _, seed := range ring {
				loop, err := DiscoverEdgeLoop(m, seed, false)
				if err != nil || len(loop) != segments || !IsClosedLoop(m, loop, false) {
					return false
				}
				again, err := DiscoverEdgeLoop(m, loop[len(loop)-1], false)
				if err != nil || !SetOf(loop...).Equal(SetOf(again...)) {
					return false
				}
			}
			for _, seed := range vertical {
				loop, err := DiscoverEdgeLoop(m, seed, true)
				if err != nil || len(loop) != segments || !IsClosedLoop(m, loop, true) {
					return false
				}
			}
			return true
		},
		gen.IntRange(3, 12), gen.IntRange(2, 4),
	))

	properties.TestingRun(t)
}
