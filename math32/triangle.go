// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

// Triangle represents a triangle made of three vertices.
type Triangle struct {
	A Vector3
	B Vector3
	C Vector3
}

// NewTriangle returns a new Triangle object.
func NewTriangle(a, b, c Vector3) Triangle {
	return Triangle{a, b, c}
}

// Normal returns the triangle's normal, using counter-clockwise
// winding of a, b, c. Degenerate triangles return the zero vector.
func Normal(a, b, c Vector3) Vector3 {
	nv := b.Sub(a).Cross(c.Sub(a))
	lenSq := nv.LengthSquared()
	if lenSq > 0 {
		return nv.MulScalar(1 / Sqrt(lenSq))
	}
	return Vector3{}
}

// PolygonNormal returns the unit normal of the planar or near-planar
// polygon with the given counter-clockwise points, using Newell's method,
// which is robust to concave and slightly non-planar polygons.
// Degenerate polygons return the zero vector.
func PolygonNormal(points []Vector3) Vector3 {
	var nv Vector3
	n := len(points)
	for i, cur := range points {
		nxt := points[(i+1)%n]
		nv.X += (cur.Y - nxt.Y) * (cur.Z + nxt.Z)
		nv.Y += (cur.Z - nxt.Z) * (cur.X + nxt.X)
		nv.Z += (cur.X - nxt.X) * (cur.Y + nxt.Y)
	}
	lenSq := nv.LengthSquared()
	if lenSq > 0 {
		return nv.MulScalar(1 / Sqrt(lenSq))
	}
	return Vector3{}
}

// PolygonCenter returns the average of the given points.
func PolygonCenter(points []Vector3) Vector3 {
	var c Vector3
	if len(points) == 0 {
		return c
	}
	for _, p := range points {
		c.SetAdd(p)
	}
	return c.DivScalar(float32(len(points)))
}

// Set sets the triangle's three vertices.
func (t *Triangle) Set(a, b, c Vector3) {
	t.A = a
	t.B = b
	t.C = c
}

// Area returns the triangle's area.
func (t *Triangle) Area() float32 {
	v0 := t.C.Sub(t.B)
	v1 := t.A.Sub(t.B)
	return v0.Cross(v1).Length() * 0.5
}

// Midpoint returns the triangle's midpoint.
func (t *Triangle) Midpoint() Vector3 {
	return t.A.Add(t.B).Add(t.C).MulScalar(float32(1) / 3)
}

// Normal returns the triangle's normal.
func (t *Triangle) Normal() Vector3 {
	return Normal(t.A, t.B, t.C)
}
