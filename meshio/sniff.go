// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshio

import (
	"bufio"
	"bytes"
	"strings"

	"github.com/h2non/filetype"
)

var (
	objType = filetype.NewType("obj", "model/obj")
	stlType = filetype.NewType("stl", "model/stl")
)

func init() {
	filetype.AddMatcher(objType, isOBJ)
	filetype.AddMatcher(stlType, isSTL)
}

// Sniff returns the format of the given file content, or [Unknown].
func Sniff(b []byte) Format {
	kind, err := filetype.Match(b)
	if err != nil {
		return Unknown
	}
	switch kind {
	case objType:
		return OBJ
	case stlType:
		return STL
	}
	return Unknown
}

// sniffLimit is the number of bytes examined for text formats.
const sniffLimit = 4096

// isOBJ returns whether the content starts with known OBJ statements
// up to its first vertex.
func isOBJ(b []byte) bool {
	if len(b) > sniffLimit {
		b = b[:sniffLimit]
	}
	sc := bufio.NewScanner(bytes.NewReader(b))
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		switch fields[0] {
		case "v":
			return true
		case "vt", "vn", "vp", "o", "g", "s", "usemtl", "mtllib":
		default:
			return false
		}
	}
	return false
}

// isSTL returns whether the content is a binary STL file whose size
// matches its triangle count, or an ASCII STL file.
func isSTL(b []byte) bool {
	return isBinarySTL(b) || isASCIISTL(b)
}

func isASCIISTL(b []byte) bool {
	if len(b) > sniffLimit {
		b = b[:sniffLimit]
	}
	b = bytes.TrimLeft(b, " \t\r\n")
	return bytes.HasPrefix(b, []byte("solid")) && (bytes.Contains(b, []byte("facet")) || bytes.Contains(b, []byte("endsolid")))
}
