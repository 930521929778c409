// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"cogentcore.org/retopo/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Analyze a mesh file again every time it is saved",
	Long: `Watch analyzes a mesh file like analyze, and then again every time
the file is saved, until interrupted. It accepts the same flags as analyze.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := applyFlags(cmd.Flags()); err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		w := cmd.OutOrStdout()
		debounce := time.Duration(cfg.Watch.DebounceMS) * time.Millisecond
		return watch.File(ctx, args[0], debounce, func() error {
			fmt.Fprintf(w, "--- %s\n", time.Now().Format(time.TimeOnly))
			return analyzeFile(w, args[0])
		})
	},
}

func init() {
	addAnalyzeFlags(watchCmd.Flags())
	rootCmd.AddCommand(watchCmd)
}
