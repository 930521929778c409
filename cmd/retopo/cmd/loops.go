// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"cogentcore.org/retopo/mesh"
	"cogentcore.org/retopo/meshio"
	"cogentcore.org/retopo/topo"
)

var (
	loopSeeds []int
	loopRings bool
	loopWeld  float32
)

var loopsCmd = &cobra.Command{
	Use:   "loops <file>",
	Short: "Print the edge loops or rings through seed edges",
	Long: `Loops prints the edges of the edge loop (or, with --rings, the edge
ring) through each seed edge, one line per seed. Each line starts with
the seed, followed by "closed" or "open" and the edge indexes in walk
order. A seed that cannot be extended prints no edges.

Examples:
  retopo loops model.obj --seed 3
  retopo loops model.obj --seed 3 --seed 17 --rings`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		weld := cfg.Import.WeldTolerance
		if cmd.Flags().Changed("weld") {
			weld = loopWeld
		}
		m, err := meshio.Open(args[0], &meshio.Options{WeldTolerance: weld})
		if err != nil {
			return err
		}
		rings := cfg.Analyze.FollowRings
		if cmd.Flags().Changed("rings") {
			rings = loopRings
		}
		seeds := loopSeeds
		if len(seeds) == 0 {
			seeds = cfg.Analyze.Seeds
		}
		if len(seeds) == 0 {
			return fmt.Errorf("loops: no seed edges given")
		}
		if err := m.Validate(); err != nil {
			return fmt.Errorf("loops: %w: %w", topo.ErrInvalidMesh, err)
		}
		w := cmd.OutOrStdout()
		for _, s := range seeds {
			seed := mesh.EdgeIndex(s)
			l, err := topo.DiscoverEdgeLoop(m, seed, rings)
			if err != nil {
				return err
			}
			kind := "open"
			if len(l) > 0 && topo.IsClosedLoop(m, l, rings) {
				kind = "closed"
			}
			es := make([]string, len(l))
			for i, e := range l {
				es[i] = fmt.Sprint(e)
			}
			fmt.Fprintf(w, "%d: %s %d [%s]\n", seed, kind, len(l), strings.Join(es, " "))
		}
		return nil
	},
}

func init() {
	loopsCmd.Flags().IntSliceVar(&loopSeeds, "seed", nil, "a seed edge (repeatable); defaults to the configured seeds")
	loopsCmd.Flags().BoolVar(&loopRings, "rings", false, "discover edge rings instead of edge loops")
	loopsCmd.Flags().Float32Var(&loopWeld, "weld", 0, "the distance within which STL vertices are welded")
	rootCmd.AddCommand(loopsCmd)
}
