// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"cogentcore.org/retopo/mesh"
	"cogentcore.org/retopo/meshio"
	"cogentcore.org/retopo/shape"
)

// shapeFlags are the parameters of the shape command.
type shapeFlags struct {
	output   string
	segments int
	rings    int
	size     float32
	radius   float32
	height   float32
	caps     string
	loops    int
}

var shapeOpts = shapeFlags{}

// shapeKinds are the names of the shapes that can be generated.
var shapeKinds = []string{"cube", "tetra", "grid", "circle", "disk", "cylinder", "cone", "barrel", "loopstack"}

var shapeCmd = &cobra.Command{
	Use:   "shape <kind>",
	Short: "Generate a primitive mesh file",
	Long: `Shape generates a primitive mesh and saves it as an OBJ or STL file,
according to the extension of the output file. The kind is one of:
` + strings.Join(shapeKinds, ", ") + `.

Examples:
  retopo shape cube -o cube.obj
  retopo shape cylinder --segments 16 --rings 4 --caps trifan -o cyl.obj`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: shapeKinds,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := shapeOpts.generate(args[0])
		if err != nil {
			return err
		}
		if err := meshio.Save(shapeOpts.output, m); err != nil {
			return err
		}
		slog.Info("saved", "file", shapeOpts.output, "mesh", m.String())
		return nil
	},
}

func init() {
	fs := shapeCmd.Flags()
	fs.StringVarP(&shapeOpts.output, "output", "o", "shape.obj", "the output file (.obj or .stl)")
	fs.IntVar(&shapeOpts.segments, "segments", 8, "the number of segments around rings, or along each side of grids")
	fs.IntVar(&shapeOpts.rings, "rings", 2, "the number of vertex rings of cylinders and cones")
	fs.Float32Var(&shapeOpts.size, "size", 1, "the edge size of cubes, tetrahedra and grids")
	fs.Float32Var(&shapeOpts.radius, "radius", 0.5, "the radius of round shapes")
	fs.Float32Var(&shapeOpts.height, "height", 1, "the height of cylinders, cones and barrels, and the spacing of loop stacks")
	fs.StringVar(&shapeOpts.caps, "caps", "ngon", "how the ends of cylinders and cones are closed (none, ngon or trifan)")
	fs.IntVar(&shapeOpts.loops, "loops", 3, "the number of loops of a loop stack")
	rootCmd.AddCommand(shapeCmd)
}

// generate generates the mesh of the given kind.
func (sf *shapeFlags) generate(kind string) (*mesh.Mesh, error) {
	switch kind {
	case "cube":
		return shape.Cube(sf.size), nil
	case "tetra":
		return shape.Tetrahedron(sf.size), nil
	case "grid":
		return shape.Grid(sf.segments, sf.segments, sf.size)
	case "circle", "disk":
		return shape.Circle(sf.segments, sf.radius, kind == "disk")
	case "cylinder", "cone":
		caps, err := shape.CapsFromString(sf.caps)
		if err != nil {
			return nil, err
		}
		cy := shape.NewCylinder(sf.segments, sf.radius, sf.height)
		if kind == "cone" {
			cy = shape.NewCone(sf.segments, sf.radius, sf.height)
		}
		cy.Rings = sf.rings
		cy.Caps = caps
		return cy.Mesh()
	case "barrel":
		br := &shape.Barrel{Segments: sf.segments, EndRadius: sf.radius, MidRadius: sf.radius * 1.25, Height: sf.height}
		return br.Mesh()
	case "loopstack":
		return shape.LoopStack(sf.loops, sf.segments, sf.radius, sf.height)
	}
	return nil, fmt.Errorf("shape: unknown kind %q; must be one of: %s", kind, strings.Join(shapeKinds, ", "))
}
