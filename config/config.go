/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for stylesort.
package config

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"bennypowers.dev/stylesort/embedded"
	"bennypowers.dev/stylesort/indent"
	"bennypowers.dev/stylesort/sorter"
)

// Config represents the stylesort configuration.
type Config struct {
	// Indent is the indentation unit: "auto", "tab", "2" or "4".
	Indent string `yaml:"indent" json:"indent"`

	// Files lists source files or globs to sort when none are given on the command line.
	Files []string `yaml:"files" json:"files"`

	// Parser selects how script files are scanned: "regex" or "ast".
	Parser string `yaml:"parser" json:"parser"`

	// Strict rejects rule bodies whose last statement lacks a semicolon.
	Strict bool `yaml:"strict" json:"strict"`

	// MaxDepth bounds nested block depth. Zero means sorter.DefaultMaxDepth.
	MaxDepth int `yaml:"maxDepth" json:"maxDepth"`

	// Tags are extra bare identifiers treated as stylesheet tags.
	Tags []string `yaml:"tags" json:"tags"`
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		Indent:   indent.Auto,
		Parser:   string(embedded.ParserRegex),
		MaxDepth: sorter.DefaultMaxDepth,
	}
}

// EmbeddedOptions converts the config into options for the embedded package.
func (c *Config) EmbeddedOptions(log *zap.Logger) (embedded.Options, error) {
	parser, err := embedded.ParseParser(c.Parser)
	if err != nil {
		return embedded.Options{}, err
	}

	opts := embedded.Options{
		Sorter: sorter.Options{
			MaxDepth: c.MaxDepth,
			Strict:   c.Strict,
		},
		Parser: parser,
		Tags:   c.Tags,
		Logger: log,
	}

	if c.Indent == "" || strings.EqualFold(c.Indent, indent.Auto) {
		opts.DetectIndent = true
	} else {
		unit, err := indent.Parse(c.Indent)
		if err != nil {
			return embedded.Options{}, err
		}
		opts.Sorter.Indent = unit
	}

	if c.MaxDepth < 0 {
		return embedded.Options{}, fmt.Errorf("maxDepth must not be negative, got %d", c.MaxDepth)
	}

	return opts, nil
}
