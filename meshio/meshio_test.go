// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshio

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/retopo/math32"
	"cogentcore.org/retopo/mesh"
	"cogentcore.org/retopo/shape"
)

func assertCounts(t *testing.T, m *mesh.Mesh, verts, edges, faces int) {
	t.Helper()
	assert.Equal(t, verts, m.NumVerts(), "verts")
	assert.Equal(t, edges, m.NumEdges(), "edges")
	assert.Equal(t, faces, m.NumFaces(), "faces")
	assert.NoError(t, m.Validate())
}

func TestOBJRoundTrip(t *testing.T) {
	cy, err := shape.NewCylinder(8, 1, 2).Mesh()
	require.NoError(t, err)
	circle, err := shape.Circle(6, 1, false)
	require.NoError(t, err)
	circle.AddVertex(math32.Vec3(3, 3, 3))
	for _, m := range []*mesh.Mesh{shape.Cube(2), shape.Tetrahedron(1), cy, circle} {
		var b bytes.Buffer
		require.NoError(t, EncodeOBJ(&b, m))
		got, err := DecodeOBJ(&b)
		require.NoError(t, err)
		assert.Equal(t, m.Name, got.Name)
		assertCounts(t, got, m.NumVerts(), m.NumEdges(), m.NumFaces())
		for i := range m.Verts {
			assert.Equal(t, m.Verts[i].Pos, got.Verts[i].Pos)
		}
		for i := range m.Faces {
			assert.Equal(t, m.Faces[i].Verts, got.Faces[i].Verts)
		}
	}
}

const objQuads = `# two quads
o Quads
v 0 0 0
v 1 0 0
v 2 0 0
v 0 1 0
v 1 1 0
v 2 1 0
vt 0 0
vn 0 0 1
usemtl mat
s off
f 1/1/1 2/1/1 5/1/1 4/1/1
f -5//1 -4//1 -1//1 -2//1
l 3 6
l 6 1
curv 0 1 1 2
`

func TestDecodeOBJ(t *testing.T) {
	m, err := DecodeOBJ(strings.NewReader(objQuads))
	require.NoError(t, err)
	assert.Equal(t, "Quads", m.Name)
	assertCounts(t, m, 6, 8, 2)
	assert.Equal(t, []mesh.VertexIndex{1, 2, 5, 4}, m.Faces[1].Verts)
	assert.Equal(t, 1, len(m.Edges[m.EdgeBetween(2, 5)].Faces))
	assert.Empty(t, m.Edges[m.EdgeBetween(5, 0)].Faces)
}

func TestDecodeOBJSkip(t *testing.T) {
	m, err := DecodeOBJ(strings.NewReader("v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 2\nf 1 2 3\nf 3 1 2\n"))
	require.NoError(t, err)
	assertCounts(t, m, 3, 3, 1)
}

func TestDecodeOBJErrors(t *testing.T) {
	tests := []struct {
		obj  string
		line int
	}{
		{"v 0 0 0\nv 1 0 0\nv 0 1 0\nf 0 1 2\n", 4},
		{"v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 4\n", 4},
		{"v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 -4\n", 4},
		{"v 0 0\n", 1},
		{"v 0 zero 0\n", 1},
		{"v 0 0 0\nv 1 0 0\n\nf 1 2\n", 4},
		{"v 0 0 0\nl 1\n", 2},
		{"o\n", 1},
	}
	for _, test := range tests {
		_, err := DecodeOBJ(strings.NewReader(test.obj))
		if assert.Error(t, err, test.obj) {
			assert.Contains(t, err.Error(), fmt.Sprintf("line %d:", test.line))
		}
	}
}

// asciiSTL returns an ASCII STL file with the given triangles.
func asciiSTL(name string, tris ...[3]math32.Vector3) string {
	var b strings.Builder
	fmt.Fprintf(&b, "solid %s\n", name)
	for _, t := range tris {
		b.WriteString("  facet normal 0 0 0\n    outer loop\n")
		for _, p := range t {
			fmt.Fprintf(&b, "      vertex %g %g %g\n", p.X, p.Y, p.Z)
		}
		b.WriteString("    endloop\n  endfacet\n")
	}
	fmt.Fprintf(&b, "endsolid %s\n", name)
	return b.String()
}

func tetraTriangles(d math32.Vector3) [][3]math32.Vector3 {
	a, b, c := math32.Vec3(0, 0, 0), math32.Vec3(1, 0, 0), math32.Vec3(0, 1, 0)
	return [][3]math32.Vector3{{a, c, b}, {a, b, d}, {a, d, c}, {b, c, d}}
}

func TestDecodeSTLASCII(t *testing.T) {
	tris := tetraTriangles(math32.Vec3(0, 0, 1))
	m, err := DecodeSTL(strings.NewReader(asciiSTL("tet", tris...)), 0)
	require.NoError(t, err)
	assert.Equal(t, "tet", m.Name)
	assertCounts(t, m, 4, 6, 4)

	// a corner that is slightly off only welds with a tolerance
	tris[3][2] = math32.Vec3(0, 0, 1.00001)
	m, err = DecodeSTL(strings.NewReader(asciiSTL("tet", tris...)), 0)
	require.NoError(t, err)
	assertCounts(t, m, 5, 9, 4)
	m, err = DecodeSTL(strings.NewReader(asciiSTL("tet", tris...)), 1e-3)
	require.NoError(t, err)
	assertCounts(t, m, 4, 6, 4)

	_, err = DecodeSTL(strings.NewReader("solid bad\nfacet normal 0 0 0\nouter loop\nvertex 0 0 0\nvertex 1 0 0\nendloop\nendfacet\nendsolid\n"), 0)
	assert.ErrorContains(t, err, "line 6")
	_, err = DecodeSTL(strings.NewReader("not a mesh"), 0)
	assert.Error(t, err)
}

func TestSTLRoundTrip(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, EncodeSTL(&b, shape.Tetrahedron(2)))
	assert.Equal(t, 84+4*50, b.Len())
	m, err := DecodeSTL(&b, 0)
	require.NoError(t, err)
	assert.Equal(t, "Tetrahedron", m.Name)
	assertCounts(t, m, 4, 6, 4)

	b.Reset()
	require.NoError(t, EncodeSTL(&b, shape.Cube(2)))
	m, err = DecodeSTL(&b, 0)
	require.NoError(t, err)
	assertCounts(t, m, 8, 18, 12)
}

func TestSniff(t *testing.T) {
	assert.Equal(t, OBJ, Sniff([]byte(objQuads)))
	assert.Equal(t, STL, Sniff([]byte(asciiSTL("tet", tetraTriangles(math32.Vec3(0, 0, 1))...))))
	var b bytes.Buffer
	require.NoError(t, EncodeSTL(&b, shape.Cube(1)))
	assert.Equal(t, STL, Sniff(b.Bytes()))
	assert.Equal(t, Unknown, Sniff([]byte("hello world\n")))
	assert.Equal(t, Unknown, Sniff([]byte("# only a comment\n")))
	assert.Equal(t, Unknown, Sniff(nil))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, OBJ, FormatFromPath("a/b/Suzanne.OBJ"))
	assert.Equal(t, STL, FormatFromPath("part.stl"))
	assert.Equal(t, Unknown, FormatFromPath("part.ply"))
	assert.Equal(t, "obj", OBJ.String())
	assert.Equal(t, "unknown", Unknown.String())
}

func TestOpenSave(t *testing.T) {
	dir := t.TempDir()
	cube := shape.Cube(2)

	fobj := filepath.Join(dir, "cube.obj")
	require.NoError(t, Save(fobj, cube))
	m, err := Open(fobj, nil)
	require.NoError(t, err)
	assert.Equal(t, "Cube", m.Name)
	assertCounts(t, m, 8, 12, 6)

	fstl := filepath.Join(dir, "cube.stl")
	require.NoError(t, Save(fstl, cube))
	m, err = Open(fstl, &Options{Name: "box"})
	require.NoError(t, err)
	assert.Equal(t, "box", m.Name)
	assertCounts(t, m, 8, 18, 12)

	// unknown extensions are sniffed, and the file name is the fallback name
	fdat := filepath.Join(dir, "part.dat")
	require.NoError(t, os.WriteFile(fdat, []byte("v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"), 0666))
	m, err = Open(fdat, nil)
	require.NoError(t, err)
	assert.Equal(t, "part", m.Name)
	assertCounts(t, m, 3, 3, 1)

	require.NoError(t, os.WriteFile(fdat, []byte("hello"), 0666))
	_, err = Open(fdat, nil)
	assert.Error(t, err)
	_, err = Open(filepath.Join(dir, "missing.obj"), nil)
	assert.Error(t, err)
	assert.Error(t, Save(filepath.Join(dir, "cube.ply"), cube))
}
