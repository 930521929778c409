// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"log/slog"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

var configSave bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the current config",
	Long: `Config prints the config loaded from the config file, with defaults for
any missing values, in TOML. With --save, it writes the config back to the
config file, which creates a default config file if there is none.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if configSave {
			if err := cfg.Save(configFile); err != nil {
				return err
			}
			slog.Info("saved config", "file", configFile)
		}
		return toml.NewEncoder(cmd.OutOrStdout()).Encode(cfg)
	},
}

func init() {
	configCmd.Flags().BoolVar(&configSave, "save", false, "save the config to the config file")
	rootCmd.AddCommand(configCmd)
}
