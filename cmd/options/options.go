/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package options merges the config file with command line flags for
// the sort and check commands.
package options

import (
	"fmt"

	"github.com/spf13/viper"

	"bennypowers.dev/stylesort/config"
	"bennypowers.dev/stylesort/embedded"
	"bennypowers.dev/stylesort/fs"
	"bennypowers.dev/stylesort/internal/logger"
)

// Stdin is the file argument that reads source from standard input.
const Stdin = "-"

// Run holds everything a command needs to process its files.
type Run struct {
	Files    []string
	Embedded embedded.Options
}

// Load reads .config/stylesort.* under rootDir, applies flag overrides
// bound through viper, and resolves the file list from args or the config.
func Load(filesystem fs.FileSystem, rootDir string, args []string) (*Run, error) {
	cfg, err := config.Load(filesystem, rootDir)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	if cfg == nil {
		cfg = config.Default()
	}

	applyFlags(cfg)

	opts, err := cfg.EmbeddedOptions(logger.Zap())
	if err != nil {
		return nil, err
	}

	var files []string
	if len(args) > 0 {
		files, err = config.ExpandPatterns(filesystem, rootDir, args)
	} else {
		files, err = cfg.ExpandFiles(filesystem, rootDir)
	}
	if err != nil {
		return nil, fmt.Errorf("error expanding files: %w", err)
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no files specified and no files found in config")
	}

	return &Run{Files: files, Embedded: opts}, nil
}

// applyFlags overrides config values with flags or STYLESORT_* variables that were set.
func applyFlags(cfg *config.Config) {
	if v := viper.GetString("indent"); v != "" {
		cfg.Indent = v
	}
	if v := viper.GetString("parser"); v != "" {
		cfg.Parser = v
	}
	if viper.GetBool("strict") {
		cfg.Strict = true
	}
	if v := viper.GetInt("max-depth"); v != 0 {
		cfg.MaxDepth = v
	}
	cfg.Tags = append(cfg.Tags, viper.GetStringSlice("tag")...)
}
