// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshio

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"cogentcore.org/retopo/base/errors"
	"cogentcore.org/retopo/math32"
	"cogentcore.org/retopo/mesh"
)

const (
	stlHeaderSize   = 80
	stlTriangleSize = 50
)

// DecodeSTL decodes an STL mesh, in binary or ASCII form, from the reader.
// Triangle corners closer than weldTolerance are welded into one vertex
// (see [Options.WeldTolerance]). Triangles that collapse when welded, or
// that repeat an earlier triangle, are skipped.
func DecodeSTL(r io.Reader, weldTolerance float32) (*mesh.Mesh, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var name string
	var tris [][3]math32.Vector3
	if isBinarySTL(b) {
		name, tris, err = readBinarySTL(b)
	} else if isASCIISTL(b) {
		name, tris, err = readASCIISTL(b)
	} else {
		err = errors.New("not an STL file")
	}
	if err != nil {
		return nil, fmt.Errorf("meshio.DecodeSTL: %w", err)
	}
	m := mesh.New(name)
	w := newWelder(m, weldTolerance)
	skipped := 0
	for _, t := range tris {
		if _, err := m.AddFace(w.vertex(t[0]), w.vertex(t[1]), w.vertex(t[2])); err != nil {
			skipped++
			slog.Debug("meshio.DecodeSTL: skipping triangle", "err", err)
		}
	}
	if skipped > 0 {
		slog.Warn("meshio.DecodeSTL: skipped degenerate or duplicate triangles", "count", skipped)
	}
	return m, nil
}

func isBinarySTL(b []byte) bool {
	if len(b) < stlHeaderSize+4 {
		return false
	}
	n := binary.LittleEndian.Uint32(b[stlHeaderSize:])
	return uint64(len(b)) == stlHeaderSize+4+uint64(n)*stlTriangleSize
}

func readBinarySTL(b []byte) (string, [][3]math32.Vector3, error) {
	name := strings.TrimSpace(string(bytes.TrimRight(b[:stlHeaderSize], "\x00")))
	name, _ = strings.CutPrefix(name, "solid ")
	n := binary.LittleEndian.Uint32(b[stlHeaderSize:])
	tris := make([][3]math32.Vector3, n)
	off := stlHeaderSize + 4
	f32 := func() float32 {
		v := math.Float32frombits(binary.LittleEndian.Uint32(b[off:]))
		off += 4
		return v
	}
	for i := range tris {
		off += 12 // normal
		for j := range 3 {
			tris[i][j] = math32.Vec3(f32(), f32(), f32())
		}
		off += 2 // attribute byte count
	}
	return name, tris, nil
}

func readASCIISTL(b []byte) (string, [][3]math32.Vector3, error) {
	var name string
	var tris [][3]math32.Vector3
	var cur []math32.Vector3
	sc := bufio.NewScanner(bytes.NewReader(b))
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "solid":
			if len(fields) > 1 {
				name = strings.Join(fields[1:], " ")
			}
		case "outer":
			cur = cur[:0]
		case "vertex":
			if len(fields) < 4 {
				return "", nil, fmt.Errorf("line %d: vertex with fewer than 3 coordinates", line)
			}
			var xyz [3]float32
			for i, f := range fields[1:4] {
				val, err := strconv.ParseFloat(f, 32)
				if err != nil {
					return "", nil, fmt.Errorf("line %d: %w", line, err)
				}
				xyz[i] = float32(val)
			}
			cur = append(cur, math32.Vec3(xyz[0], xyz[1], xyz[2]))
		case "endloop":
			if len(cur) != 3 {
				return "", nil, fmt.Errorf("line %d: facet with %d vertices, need 3", line, len(cur))
			}
			tris = append(tris, [3]math32.Vector3{cur[0], cur[1], cur[2]})
		}
	}
	return name, tris, sc.Err()
}

// welder merges positions into shared vertices of a mesh.
type welder struct {
	m     *mesh.Mesh
	tol   float32
	verts map[[3]int64]mesh.VertexIndex
}

func newWelder(m *mesh.Mesh, tol float32) *welder {
	return &welder{m: m, tol: tol, verts: map[[3]int64]mesh.VertexIndex{}}
}

// vertex returns the vertex for the given position, adding it
// if no vertex is in the same weld cell.
func (w *welder) vertex(p math32.Vector3) mesh.VertexIndex {
	k := w.key(p)
	if v, ok := w.verts[k]; ok {
		return v
	}
	v := w.m.AddVertex(p)
	w.verts[k] = v
	return v
}

// key returns the weld cell of the position: the position itself for
// exact welding, or else the position rounded to a grid of the tolerance.
func (w *welder) key(p math32.Vector3) [3]int64 {
	if w.tol <= 0 {
		return [3]int64{int64(math.Float32bits(p.X + 0)), int64(math.Float32bits(p.Y + 0)), int64(math.Float32bits(p.Z + 0))}
	}
	g := p.DivScalar(w.tol).Round()
	return [3]int64{int64(g.X), int64(g.Y), int64(g.Z)}
}

// EncodeSTL encodes the mesh to the writer in the binary STL format.
// Faces with more than three vertices are split into triangle fans.
func EncodeSTL(w io.Writer, m *mesh.Mesh) error {
	var ntri uint32
	for i := range m.Faces {
		ntri += uint32(m.Faces[i].Arity() - 2)
	}
	bw := bufio.NewWriter(w)
	var header [stlHeaderSize]byte
	copy(header[:], "solid "+m.Name)
	bw.Write(header[:])
	binary.Write(bw, binary.LittleEndian, ntri)
	for i := range m.Faces {
		f := &m.Faces[i]
		p := m.Positions(f.Verts)
		for j := 2; j < len(p); j++ {
			tri := [12]float32{f.Normal.X, f.Normal.Y, f.Normal.Z}
			p[0].ToSlice(tri[:], 3)
			p[j-1].ToSlice(tri[:], 6)
			p[j].ToSlice(tri[:], 9)
			binary.Write(bw, binary.LittleEndian, tri)
			binary.Write(bw, binary.LittleEndian, uint16(0))
		}
	}
	return bw.Flush()
}
