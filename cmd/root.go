/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for stylesort.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/stylesort/cmd/check"
	sortcmd "bennypowers.dev/stylesort/cmd/sort"
	"bennypowers.dev/stylesort/cmd/version"
	"bennypowers.dev/stylesort/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "stylesort",
	Short: "Sort CSS-in-JS stylesheets",
	Long: `stylesort reorders the statements inside styled-components and css tagged
template literals: interpolations first, then declarations alphabetically,
vendor-prefixed declarations, and nested blocks, recursively.

Settings are read from .config/stylesort.{yaml,yml,json}. Flags and
STYLESORT_* environment variables override the config file.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetVerbose(viper.GetBool("verbose"))
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("indent", "", "Indentation unit (auto, tab, 2, 4)")
	flags.String("parser", "", "How script files are scanned (regex, ast)")
	flags.Bool("strict", false, "Reject a final statement without a semicolon")
	flags.Int("max-depth", 0, "Maximum nested block depth")
	flags.StringSlice("tag", nil, "Additional stylesheet tag identifier (repeatable)")
	flags.BoolP("verbose", "v", false, "Log debug output")

	for _, name := range []string{"indent", "parser", "strict", "max-depth", "tag", "verbose"} {
		_ = viper.BindPFlag(name, flags.Lookup(name))
	}

	viper.SetEnvPrefix("stylesort")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd.AddCommand(sortcmd.Cmd)
	rootCmd.AddCommand(check.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
