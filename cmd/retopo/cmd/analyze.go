// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"io"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"cogentcore.org/retopo/config"
	"cogentcore.org/retopo/meshio"
	"cogentcore.org/retopo/report"
)

// overrides holds the config values given as flags.
var overrides = config.Config{}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Report on the topology of a mesh file",
	Long: `Analyze reads an OBJ or STL mesh file and reports its element counts,
valence classes and histograms, poles, loose vertices, n-gons, triangles,
sharp corners and edges, boundary, wire and non-manifold edges, and the
edge loops or rings grown from any seed edges.

Examples:
  retopo analyze model.obj
  retopo analyze model.stl --weld 0.0001 --format json
  retopo analyze model.obj --seed 12 --seed 40 --rings`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := applyFlags(cmd.Flags()); err != nil {
			return err
		}
		return analyzeFile(cmd.OutOrStdout(), args[0])
	},
}

func init() {
	addAnalyzeFlags(analyzeCmd.Flags())
	rootCmd.AddCommand(analyzeCmd)
}

// addAnalyzeFlags adds the flags that override the analysis,
// import and report config.
func addAnalyzeFlags(fs *pflag.FlagSet) {
	a := &overrides.Analyze
	fs.Float32Var(&a.SharpCornerAngle, "corner-angle", 0, "corners at or below this angle in degrees are sharp")
	fs.Float32Var(&a.SharpEdgeAngle, "edge-angle", 0, "edges whose face normals differ by at least this angle in degrees are sharp")
	fs.StringVar(&a.CornerOrder, "order", "", "the pairing order of corner edges (storage or angular)")
	fs.IntSliceVar(&a.Seeds, "seed", nil, "a seed edge of an edge loop to discover (repeatable)")
	fs.BoolVar(&a.FollowRings, "rings", false, "discover edge rings instead of edge loops")
	fs.Float32Var(&overrides.Import.WeldTolerance, "weld", 0, "the distance within which STL vertices are welded")
	fs.StringVarP(&overrides.Report.Format, "format", "f", "", "the report format (text, json, yaml or toml)")
	fs.IntVar(&overrides.Report.MaxList, "max-list", 0, "the maximum number of indexes listed per selection; 0 lists all")
}

// applyFlags merges the flags that were set into the loaded config.
// Merging skips zero values, so every flag that was set is then
// applied directly, which lets a flag override the config with zero.
func applyFlags(fs *pflag.FlagSet) error {
	if err := cfg.Merge(&overrides); err != nil {
		return err
	}
	a, oa := &cfg.Analyze, &overrides.Analyze
	fs.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "corner-angle":
			a.SharpCornerAngle = oa.SharpCornerAngle
		case "edge-angle":
			a.SharpEdgeAngle = oa.SharpEdgeAngle
		case "order":
			a.CornerOrder = oa.CornerOrder
		case "seed":
			a.Seeds = slices.Clone(oa.Seeds)
		case "rings":
			a.FollowRings = oa.FollowRings
		case "weld":
			cfg.Import.WeldTolerance = overrides.Import.WeldTolerance
		case "format":
			cfg.Report.Format = overrides.Report.Format
		case "max-list":
			cfg.Report.MaxList = overrides.Report.MaxList
		}
	})
	return cfg.Validate()
}

// analyzeFile analyzes the given mesh file with the current config
// and writes the report.
func analyzeFile(w io.Writer, path string) error {
	m, err := meshio.Open(path, &meshio.Options{WeldTolerance: cfg.Import.WeldTolerance})
	if err != nil {
		return err
	}
	slog.Info("opened", "file", path, "mesh", m.String())
	opts, err := analyzeOptions(&cfg.Analyze)
	if err != nil {
		return err
	}
	r, err := report.Analyze(m, opts)
	if err != nil {
		return err
	}
	format, err := report.FormatFromString(cfg.Report.Format)
	if err != nil {
		return err
	}
	return r.Write(w, format, cfg.Report.MaxList)
}
