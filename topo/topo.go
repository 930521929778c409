// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package topo analyzes the topology of a [mesh.Mesh] for retopology
// work: it classifies vertices by valence (poles), finds sharp corners
// and sharp edges, finds n-gons and other non-quad faces, and walks
// edge loops and edge rings from seed edges.
//
// All functions are read-only passes over the given mesh and return
// new values owned by the caller. The mesh must not be modified while
// a call is in progress, and any later modification invalidates the
// results.
package topo

import (
	"cmp"
	"maps"
	"slices"

	"cogentcore.org/retopo/base/errors"
)

var (
	// ErrInvalidMesh is returned when the adjacency of the mesh is
	// malformed, such as a link edge that does not contain its vertex.
	ErrInvalidMesh = errors.New("invalid mesh")

	// ErrDegenerateGeometry is returned when an angle is requested for a
	// zero-length (or non-finite) direction, which has no defined angle.
	ErrDegenerateGeometry = errors.New("degenerate geometry")

	// ErrNotAdjacent is returned when an angle is requested at the shared
	// vertex of two edges that do not share exactly one vertex.
	ErrNotAdjacent = errors.New("edges not adjacent")
)

// Set is a set of mesh element indexes.
type Set[T cmp.Ordered] map[T]struct{}

// Add adds the given elements to the set.
func (s Set[T]) Add(elems ...T) {
	for _, e := range elems {
		s[e] = struct{}{}
	}
}

// Has returns whether the element is in the set.
func (s Set[T]) Has(e T) bool {
	_, ok := s[e]
	return ok
}

// Len returns the number of elements in the set.
func (s Set[T]) Len() int {
	return len(s)
}

// Sorted returns the elements of the set in increasing order.
func (s Set[T]) Sorted() []T {
	return slices.Sorted(maps.Keys(s))
}

// Equal returns whether the two sets have the same elements.
func (s Set[T]) Equal(o Set[T]) bool {
	if len(s) != len(o) {
		return false
	}
	for e := range s {
		if !o.Has(e) {
			return false
		}
	}
	return true
}

// SetOf returns a new set with the given elements.
func SetOf[T cmp.Ordered](elems ...T) Set[T] {
	s := Set[T]{}
	s.Add(elems...)
	return s
}
