// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"fmt"

	"cogentcore.org/retopo/math32"
	"cogentcore.org/retopo/mesh"
)

// Caps specifies how the open ends of a [Cylinder] are closed.
type Caps int32

const (
	// CapNone leaves the ends open.
	CapNone Caps = iota

	// CapNgon closes each end with a single n-gon.
	CapNgon

	// CapTriFan closes each end with a fan of triangles
	// around a center vertex.
	CapTriFan
)

func (c Caps) String() string {
	switch c {
	case CapNone:
		return "none"
	case CapNgon:
		return "ngon"
	case CapTriFan:
		return "trifan"
	}
	return fmt.Sprintf("Caps(%d)", int32(c))
}

// CapsFromString returns the [Caps] value with the given name.
func CapsFromString(s string) (Caps, error) {
	for c := CapNone; c <= CapTriFan; c++ {
		if c.String() == s {
			return c, nil
		}
	}
	return CapNone, fmt.Errorf("shape: unknown caps %q", s)
}

// Cylinder is a generalized cylinder along the Z axis, centered on the
// origin. A radius of zero at either end makes that end a single apex
// vertex, so that a cone is a Cylinder with TopRadius 0.
type Cylinder struct {
	// Segments is the number of vertices around each ring, at least 3.
	Segments int

	// Rings is the number of vertex rings from bottom to top, at least 2.
	// Intermediate ring radii are interpolated between the end radii.
	Rings int

	// BottomRadius is the radius of the bottom ring at z = -Height/2.
	BottomRadius float32

	// TopRadius is the radius of the top ring at z = +Height/2.
	TopRadius float32

	// Height is the distance between the bottom and top rings.
	Height float32

	// Caps specifies how ends with a non-zero radius are closed.
	Caps Caps
}

// NewCylinder returns a [Cylinder] with the given number of segments,
// radius and height, two rings, and n-gon caps.
func NewCylinder(segments int, radius, height float32) *Cylinder {
	return &Cylinder{Segments: segments, Rings: 2, BottomRadius: radius, TopRadius: radius, Height: height, Caps: CapNgon}
}

// NewCone returns a cone [Cylinder] with the given number of segments,
// base radius and height, and an n-gon base cap.
func NewCone(segments int, radius, height float32) *Cylinder {
	return &Cylinder{Segments: segments, Rings: 2, BottomRadius: radius, Height: height, Caps: CapNgon}
}

// Mesh generates the cylinder mesh.
func (cy *Cylinder) Mesh() (*mesh.Mesh, error) {
	if cy.Segments < 3 {
		return nil, fmt.Errorf("shape.Cylinder: need at least 3 segments, got %d", cy.Segments)
	}
	if cy.Rings < 2 {
		return nil, fmt.Errorf("shape.Cylinder: need at least 2 rings, got %d", cy.Rings)
	}
	if cy.BottomRadius == 0 && cy.TopRadius == 0 {
		return nil, fmt.Errorf("shape.Cylinder: bottom and top radius are both zero")
	}
	name := "Cylinder"
	if cy.BottomRadius == 0 || cy.TopRadius == 0 {
		name = "Cone"
	}
	m := mesh.New(name)
	h := cy.Height / 2
	last := cy.Rings - 1

	// rings[k] holds the vertex ring at level k, which is a single
	// apex vertex for a zero radius end.
	rings := make([][]mesh.VertexIndex, cy.Rings)
	for k := range cy.Rings {
		t := float32(k) / float32(last)
		z := math32.Lerp(-h, h, t)
		r := math32.Lerp(cy.BottomRadius, cy.TopRadius, t)
		if r == 0 {
			rings[k] = []mesh.VertexIndex{m.AddVertex(math32.Vec3(0, 0, z))}
			continue
		}
		ring, err := AddRing(m, cy.Segments, r, z)
		if err != nil {
			return nil, err
		}
		rings[k] = ring
	}

	for k := range last {
		lo, hi := rings[k], rings[k+1]
		var err error
		switch {
		case len(lo) == 1:
			err = fan(m, reversed(hi), lo[0], true)
		case len(hi) == 1:
			err = sideFan(m, lo, hi[0])
		default:
			_, err = BridgeLoops(m, lo, hi)
		}
		if err != nil {
			return nil, err
		}
	}

	if err := cy.cap(m, rings[0], -h, false); err != nil {
		return nil, err
	}
	if err := cy.cap(m, rings[last], h, true); err != nil {
		return nil, err
	}
	return m, nil
}

// sideFan joins the ring to an apex above it with outward triangles.
func sideFan(m *mesh.Mesh, ring []mesh.VertexIndex, apex mesh.VertexIndex) error {
	n := len(ring)
	for i := range n {
		if _, err := m.AddFace(ring[i], ring[(i+1)%n], apex); err != nil {
			return err
		}
	}
	return nil
}

// cap closes the given end ring according to [Cylinder.Caps].
// Apex ends are already closed.
func (cy *Cylinder) cap(m *mesh.Mesh, ring []mesh.VertexIndex, z float32, top bool) error {
	if len(ring) == 1 {
		return nil
	}
	switch cy.Caps {
	case CapNgon:
		if !top {
			ring = reversed(ring)
		}
		_, err := m.AddFace(ring...)
		return err
	case CapTriFan:
		center := m.AddVertex(math32.Vec3(0, 0, z))
		return fan(m, ring, center, top)
	}
	return nil
}

// Barrel is a closed barrel shape along the Z axis centered on the
// origin: three rings (bottom, middle and top) bridged by quads,
// with n-gon end caps.
type Barrel struct {
	// Segments is the number of vertices around each ring, at least 3.
	Segments int

	// EndRadius is the radius of the top and bottom rings.
	EndRadius float32

	// MidRadius is the radius of the middle ring at z = 0.
	MidRadius float32

	// Height is the distance between the bottom and top rings.
	Height float32
}

// Mesh generates the barrel mesh.
func (br *Barrel) Mesh() (*mesh.Mesh, error) {
	m := mesh.New("Barrel")
	h := br.Height / 2
	bottom, err := AddRing(m, br.Segments, br.EndRadius, -h)
	if err != nil {
		return nil, err
	}
	mid, err := AddRing(m, br.Segments, br.MidRadius, 0)
	if err != nil {
		return nil, err
	}
	top, err := AddRing(m, br.Segments, br.EndRadius, h)
	if err != nil {
		return nil, err
	}
	if _, err := m.AddFace(top...); err != nil {
		return nil, err
	}
	if _, err := m.AddFace(reversed(bottom)...); err != nil {
		return nil, err
	}
	if _, err := BridgeLoops(m, bottom, mid); err != nil {
		return nil, err
	}
	if _, err := BridgeLoops(m, mid, top); err != nil {
		return nil, err
	}
	return m, nil
}
