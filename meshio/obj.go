// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshio

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"cogentcore.org/retopo/base/errors"
	"cogentcore.org/retopo/math32"
	"cogentcore.org/retopo/mesh"
)

// objDecoder holds the state of an OBJ decode.
type objDecoder struct {
	m        *mesh.Mesh
	line     int
	warned   map[string]bool
	skipped  int
	objNames []string
}

// DecodeOBJ decodes a Wavefront OBJ mesh from the reader.
// Vertex positions (v), faces (f) and polylines (l) are read; all
// objects and groups in the file are merged into one mesh, named after
// the first object. Negative indexes count back from the last vertex.
// Faces that are invalid as mesh faces, such as those that repeat a
// vertex, are skipped with a warning.
func DecodeOBJ(r io.Reader) (*mesh.Mesh, error) {
	dec := &objDecoder{m: mesh.New(), warned: map[string]bool{}}
	bufin := bufio.NewReader(r)
	for {
		dec.line++
		line, err := bufin.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		if perr := dec.parseLine(line); perr != nil {
			return nil, fmt.Errorf("meshio.DecodeOBJ: line %d: %w", dec.line, perr)
		}
		if err == io.EOF {
			break
		}
	}
	if dec.skipped > 0 {
		slog.Warn("meshio.DecodeOBJ: skipped invalid faces", "count", dec.skipped)
	}
	if len(dec.objNames) > 1 {
		slog.Info("meshio.DecodeOBJ: merged objects into one mesh", "objects", dec.objNames)
	}
	return dec.m, nil
}

func (dec *objDecoder) parseLine(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return nil
	}
	switch fields[0] {
	case "v":
		return dec.parseVertex(fields[1:])
	case "f":
		return dec.parseFace(fields[1:])
	case "l":
		return dec.parseLineElem(fields[1:])
	case "o":
		if len(fields) < 2 {
			return errors.New("object line (o) with no name")
		}
		if dec.m.Name == "" {
			dec.m.Name = fields[1]
		}
		dec.objNames = append(dec.objNames, fields[1])
	case "vt", "vn", "vp", "g", "s", "usemtl", "mtllib":
	default:
		if !dec.warned[fields[0]] {
			dec.warned[fields[0]] = true
			slog.Warn("meshio.DecodeOBJ: statement not supported", "statement", fields[0], "line", dec.line)
		}
	}
	return nil
}

// parseVertex parses a vertex position:
// v <x> <y> <z> [w]
func (dec *objDecoder) parseVertex(fields []string) error {
	if len(fields) < 3 {
		return errors.New("vertex (v) with fewer than 3 coordinates")
	}
	var xyz [3]float32
	for i, f := range fields[:3] {
		val, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return err
		}
		xyz[i] = float32(val)
	}
	dec.m.AddVertex(math32.Vec3(xyz[0], xyz[1], xyz[2]))
	return nil
}

// parseFace parses a face:
// f v1[/vt1][/vn1] v2[/vt2][/vn2] v3[/vt3][/vn3] ...
func (dec *objDecoder) parseFace(fields []string) error {
	if len(fields) < 3 {
		return errors.New("face (f) with fewer than 3 vertices")
	}
	verts, err := dec.parseIndexes(fields)
	if err != nil {
		return err
	}
	if _, err := dec.m.AddFace(verts...); err != nil {
		if errors.Is(err, mesh.ErrInvalid) {
			dec.skipped++
			slog.Debug("meshio.DecodeOBJ: skipping face", "line", dec.line, "err", err)
			return nil
		}
		return err
	}
	return nil
}

// parseLineElem parses a polyline:
// l v1[/vt1] v2[/vt2] ...
func (dec *objDecoder) parseLineElem(fields []string) error {
	if len(fields) < 2 {
		return errors.New("line (l) with fewer than 2 vertices")
	}
	verts, err := dec.parseIndexes(fields)
	if err != nil {
		return err
	}
	for i := 1; i < len(verts); i++ {
		if verts[i-1] == verts[i] {
			continue
		}
		if _, err := dec.m.AddEdge(verts[i-1], verts[i]); err != nil {
			return err
		}
	}
	return nil
}

// parseIndexes returns the vertex indexes of the given face or line
// fields, ignoring any texture and normal indexes.
func (dec *objDecoder) parseIndexes(fields []string) ([]mesh.VertexIndex, error) {
	nv := dec.m.NumVerts()
	verts := make([]mesh.VertexIndex, len(fields))
	for i, f := range fields {
		vs, _, _ := strings.Cut(f, "/")
		val, err := strconv.Atoi(vs)
		if err != nil {
			return nil, err
		}
		switch {
		case val > 0:
			val--
		case val < 0:
			val += nv
		default:
			return nil, errors.New("vertex index 0")
		}
		if val < 0 || val >= nv {
			return nil, fmt.Errorf("vertex index %s out of range with %d vertices", vs, nv)
		}
		verts[i] = mesh.VertexIndex(val)
	}
	return verts, nil
}

// EncodeOBJ encodes the mesh to the writer in the Wavefront OBJ format.
// Faces are written with their vertex loops, and edges that are not
// part of any face are written as lines (l).
func EncodeOBJ(w io.Writer, m *mesh.Mesh) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# %d vertices, %d edges, %d faces\n", m.NumVerts(), m.NumEdges(), m.NumFaces())
	if m.Name != "" {
		fmt.Fprintf(bw, "o %s\n", m.Name)
	}
	for i := range m.Verts {
		p := m.Verts[i].Pos
		fmt.Fprintf(bw, "v %s %s %s\n", fmtFloat(p.X), fmtFloat(p.Y), fmtFloat(p.Z))
	}
	for i := range m.Faces {
		bw.WriteString("f")
		for _, v := range m.Faces[i].Verts {
			fmt.Fprintf(bw, " %d", v+1)
		}
		bw.WriteString("\n")
	}
	for i := range m.Edges {
		ed := &m.Edges[i]
		if len(ed.Faces) == 0 {
			fmt.Fprintf(bw, "l %d %d\n", ed.Verts[0]+1, ed.Verts[1]+1)
		}
	}
	return bw.Flush()
}

func fmtFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}
