// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package meshio reads and writes [mesh.Mesh] values in the Wavefront OBJ
// and STL file formats. Not all features of either format are supported:
// only the geometry and topology are kept, and materials, texture
// coordinates and normals are ignored.
package meshio

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"

	"cogentcore.org/retopo/mesh"
)

// Format is a supported mesh file format.
type Format int32

const (
	// Unknown is an unrecognized format.
	Unknown Format = iota

	// OBJ is the Wavefront OBJ text format.
	OBJ

	// STL is the stereolithography format, in binary or ASCII form.
	STL
)

func (f Format) String() string {
	switch f {
	case OBJ:
		return "obj"
	case STL:
		return "stl"
	}
	return "unknown"
}

// FormatFromPath returns the format for the extension of the given
// file path, or [Unknown].
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".obj":
		return OBJ
	case ".stl":
		return STL
	}
	return Unknown
}

// Options are options for decoding meshes.
type Options struct {
	// Name is the name of the decoded mesh. If empty, the name from
	// the file is used, or else the base name of the file.
	Name string

	// WeldTolerance is the distance within which STL vertices are merged
	// into one. STL files store each triangle separately, so vertices
	// must be welded to recover the topology. If it is 0, only vertices
	// at exactly the same position are merged.
	WeldTolerance float32
}

// Decode decodes a mesh in the given format from the reader.
// If the format is [Unknown], it is detected from the content.
func Decode(r io.Reader, format Format, opts *Options) (*mesh.Mesh, error) {
	if opts == nil {
		opts = &Options{}
	}
	if format == Unknown {
		b, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		format = Sniff(b)
		if format == Unknown {
			return nil, fmt.Errorf("meshio.Decode: unrecognized mesh format")
		}
		r = bytes.NewReader(b)
	}
	var m *mesh.Mesh
	var err error
	switch format {
	case OBJ:
		m, err = DecodeOBJ(r)
	case STL:
		m, err = DecodeSTL(r, opts.WeldTolerance)
	default:
		return nil, fmt.Errorf("meshio.Decode: unsupported format %v", format)
	}
	if err != nil {
		return nil, err
	}
	if opts.Name != "" {
		m.Name = opts.Name
	}
	return m, nil
}

// Open decodes the mesh in the given file, which may start with ~ for the
// home directory. The format is given by the file extension, or else
// detected from the content.
func Open(path string, opts *Options) (*mesh.Mesh, error) {
	fpath, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(fpath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	m, err := Decode(f, FormatFromPath(fpath), opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if m.Name == "" {
		m.Name = strings.TrimSuffix(filepath.Base(fpath), filepath.Ext(fpath))
	}
	return m, nil
}

// Encode encodes the mesh in the given format to the writer.
func Encode(w io.Writer, m *mesh.Mesh, format Format) error {
	switch format {
	case OBJ:
		return EncodeOBJ(w, m)
	case STL:
		return EncodeSTL(w, m)
	}
	return fmt.Errorf("meshio.Encode: unsupported format %v", format)
}

// Save encodes the mesh to the given file, in the format
// given by its extension.
func Save(path string, m *mesh.Mesh) error {
	fpath, err := homedir.Expand(path)
	if err != nil {
		return err
	}
	format := FormatFromPath(fpath)
	if format == Unknown {
		return fmt.Errorf("meshio.Save: unknown mesh file extension %q", filepath.Ext(fpath))
	}
	f, err := os.Create(fpath)
	if err != nil {
		return err
	}
	if err := Encode(f, m, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
