// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector3(t *testing.T) {
	assert.Equal(t, Vector3{5, 10, -2}, Vec3(5, 10, -2))
	assert.Equal(t, Vector3{20, 20, 20}, Vector3Scalar(20))

	v := Vector3{}
	assert.True(t, v.IsZero())
	v.Set(-1, 7, 3)
	assert.Equal(t, Vector3{-1, 7, 3}, v)
	assert.False(t, v.IsZero())

	v.SetScalar(8.12)
	assert.Equal(t, Vector3{8.12, 8.12, 8.12}, v)

	s := []float32{0, 1, 2, 3, 4}
	v.FromSlice(s, 2)
	assert.Equal(t, Vector3{2, 3, 4}, v)
	out := make([]float32, 4)
	v.ToSlice(out, 1)
	assert.Equal(t, []float32{0, 2, 3, 4}, out)
}

func TestVector3Ops(t *testing.T) {
	a, b := Vec3(1, 2, 3), Vec3(4, -5, 6)
	assert.Equal(t, Vec3(5, -3, 9), a.Add(b))
	assert.Equal(t, Vec3(-3, 7, -3), a.Sub(b))
	assert.Equal(t, Vec3(4, -10, 18), a.Mul(b))
	assert.Equal(t, Vec3(2, 4, 6), a.MulScalar(2))
	assert.Equal(t, Vec3(0.5, 1, 1.5), a.DivScalar(2))
	assert.Equal(t, Vec3(-1, -2, -3), a.Negate())
	assert.Equal(t, float32(12), a.Dot(b))
	assert.Equal(t, Vec3(27, 6, -13), a.Cross(b))
	assert.Equal(t, float32(14), a.LengthSquared())
	assert.Equal(t, float32(5), Vec3(3, 4, 0).Length())
	nv := Vec3(3, 4, 0).Normal()
	assert.InDelta(t, 0.6, nv.X, 1e-6)
	assert.InDelta(t, 0.8, nv.Y, 1e-6)
	assert.Equal(t, Vector3{}, Vector3{}.Normal())
	assert.Equal(t, float32(5), Vec3(1, 1, 1).DistanceTo(Vec3(4, 5, 1)))
	assert.Equal(t, Vec3(2.5, -1.5, 4.5), a.Lerp(b, 0.5))

	mn := a
	mn.SetMin(b)
	assert.Equal(t, Vec3(1, -5, 3), mn)
	mx := a
	mx.SetMax(b)
	assert.Equal(t, Vec3(4, 2, 6), mx)

	assert.InDelta(t, Pi/2, Vec3(1, 0, 0).AngleTo(Vec3(0, 3, 0)), 1e-6)
	assert.InDelta(t, Pi, Vec3(1, 0, 0).AngleTo(Vec3(-2, 0, 0)), 1e-6)

	n := Vec3(0, 0, 1)
	assert.Equal(t, Vec3(1, 2, 0), a.ProjectOnPlane(n))
	for _, v := range []Vector3{Vec3(1, 0, 0), Vec3(0, 1, 0), Vec3(0, 0, 1), Vec3(1, 2, 3)} {
		p := v.Perpendicular()
		assert.InDelta(t, 0, p.Dot(v), 1e-6, v)
		assert.InDelta(t, 1, p.Length(), 1e-6, v)
	}
}

func TestBox3(t *testing.T) {
	bb := B3Empty()
	assert.True(t, bb.IsEmpty())
	bb.ExpandByPoints([]Vector3{Vec3(1, -1, 0), Vec3(-2, 3, 4)})
	assert.False(t, bb.IsEmpty())
	assert.Equal(t, B3(-2, -1, 0, 1, 3, 4), bb)
	assert.Equal(t, Vec3(3, 4, 4), bb.Size())
	assert.Equal(t, Vec3(-0.5, 1, 2), bb.Center())
	assert.True(t, bb.ContainsPoint(Vec3(0, 0, 1)))
	assert.False(t, bb.ContainsPoint(Vec3(0, 0, 5)))
	assert.Equal(t, B3(-1, 0, 1, 2, 4, 5), bb.Translate(Vec3(1, 1, 1)))
}

func TestTriangle(t *testing.T) {
	tr := NewTriangle(Vec3(0, 0, 0), Vec3(2, 0, 0), Vec3(0, 2, 0))
	assert.Equal(t, float32(2), tr.Area())
	assert.Equal(t, Vec3(0, 0, 1), tr.Normal())
	assert.InDelta(t, 2.0/3, tr.Midpoint().X, 1e-6)
	assert.Equal(t, Vector3{}, Normal(Vec3(0, 0, 0), Vec3(1, 1, 1), Vec3(2, 2, 2)))

	square := []Vector3{Vec3(0, 0, 0), Vec3(1, 0, 0), Vec3(1, 1, 0), Vec3(0, 1, 0)}
	assert.Equal(t, Vec3(0, 0, 1), PolygonNormal(square))
	assert.Equal(t, Vec3(0.5, 0.5, 0), PolygonCenter(square))
	assert.Equal(t, Vector3{}, PolygonCenter(nil))
}

func TestMath(t *testing.T) {
	assert.Equal(t, float32(3), Clamp(float32(5), 0, 3))
	assert.Equal(t, 0, Clamp(-2, 0, 3))
	assert.Equal(t, float32(7.5), Lerp(5, 10, 0.5))
	assert.InDelta(t, 90, RadToDeg(DegToRad(90)), 1e-5)
	assert.True(t, IsNaN(float32(Infinity-Infinity)))
}
