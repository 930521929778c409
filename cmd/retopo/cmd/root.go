// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd contains the command definitions of the retopo tool.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"cogentcore.org/retopo/base/logx"
	"cogentcore.org/retopo/config"
	"cogentcore.org/retopo/mesh"
	"cogentcore.org/retopo/report"
	"cogentcore.org/retopo/topo"
)

var (
	configFile  string
	verbose     bool
	veryVerbose bool
	quiet       bool

	// cfg is the config loaded before every command runs.
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "retopo",
	Short: "Analyze the topology of polygon meshes",
	Long: `retopo reads polygon meshes from OBJ and STL files and reports on
their topology: vertex valences and poles, n-gons and triangles, sharp
corners and edges, boundary and non-manifold edges, and edge loops
and rings grown from seed edges.

Defaults for all thresholds are read from ` + config.DefaultFile + `
if it exists, and can be overridden with flags.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logx.UserLevel = logx.LevelFromFlags(veryVerbose, verbose, quiet)
		logx.SetDefaultLogger()
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		c, err := config.Open(configFile)
		if err != nil {
			return err
		}
		cfg = c
		slog.Debug("config loaded", "file", configFile)
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", config.DefaultFile, "the TOML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print info messages")
	rootCmd.PersistentFlags().BoolVar(&veryVerbose, "vv", false, "print debug messages")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "print only errors")
}

// analyzeOptions returns the report options for the given analysis config.
func analyzeOptions(c *config.Analyze) (report.Options, error) {
	order, err := topo.CornerOrderFromString(c.CornerOrder)
	if err != nil {
		return report.Options{}, err
	}
	opts := report.Options{
		SharpCornerAngle: c.SharpCornerAngle,
		SharpEdgeAngle:   c.SharpEdgeAngle,
		CornerOrder:      order,
		FollowRings:      c.FollowRings,
	}
	for _, s := range c.Seeds {
		opts.Seeds = append(opts.Seeds, mesh.EdgeIndex(s))
	}
	return opts, nil
}
