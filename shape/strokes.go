// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"fmt"
	"log/slog"

	"cogentcore.org/retopo/math32"
	"cogentcore.org/retopo/mesh"
)

// GridFromStrokes builds a retopology grid from a sequence of strokes,
// each a polyline of sampled points, such as strokes drawn over the
// surface of a sculpt. Every stroke is resampled to numLines points
// taken at a fixed stride, the points of each stroke are chained by
// edges, and consecutive strokes are bridged point to point with quads.
// Strokes with fewer than numLines points are skipped.
func GridFromStrokes(strokes [][]math32.Vector3, numLines int) (*mesh.Mesh, error) {
	if numLines < 2 {
		return nil, fmt.Errorf("shape.GridFromStrokes: need at least 2 grid lines, got %d", numLines)
	}
	m := mesh.New("Grid")
	var prev []mesh.VertexIndex
	for si, s := range strokes {
		if len(s) < numLines {
			slog.Debug("shape.GridFromStrokes: skipping short stroke", "stroke", si, "points", len(s), "lines", numLines)
			continue
		}
		stride := len(s) / numLines
		cur := make([]mesh.VertexIndex, 0, numLines)
		for i := 0; i < len(s) && len(cur) < numLines; i += stride {
			cur = append(cur, m.AddVertex(s[i]))
		}
		if _, err := m.AddEdgeChain(false, cur...); err != nil {
			return nil, err
		}
		if prev != nil {
			if err := bridgeStrokes(m, prev, cur); err != nil {
				return nil, err
			}
		}
		prev = cur
	}
	return m, nil
}

// bridgeStrokes joins two resampled strokes with a strip of quads.
func bridgeStrokes(m *mesh.Mesh, a, b []mesh.VertexIndex) error {
	n := min(len(a), len(b))
	for j := range n - 1 {
		if _, err := m.AddFace(a[j], a[j+1], b[j+1], b[j]); err != nil {
			return err
		}
	}
	return nil
}
