/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package sort provides the sort command for stylesort.
package sort

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"bennypowers.dev/stylesort/cmd/options"
	"bennypowers.dev/stylesort/embedded"
	"bennypowers.dev/stylesort/fs"
	"bennypowers.dev/stylesort/internal/logger"
)

// Cmd is the sort cobra command.
var Cmd = &cobra.Command{
	Use:   "sort [files...]",
	Short: "Sort embedded stylesheets",
	Long: `Sort the stylesheets embedded in JavaScript, TypeScript and HTML files.

Sorted sources are printed to stdout unless --write is given.
A stylesheet that cannot be parsed is left as written and reported.

Examples:
  # Rewrite files in place
  stylesort sort --write src/**/*.js

  # Read from stdin
  cat button.tsx | stylesort sort --stdin-path button.tsx -

  # Use files from .config/stylesort.yaml
  stylesort sort -w`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().BoolP("write", "w", false, "Write results to the source files")
	Cmd.Flags().String("stdin-path", "stdin.js", "Path used to pick the scanner for stdin")
}

func run(cmd *cobra.Command, args []string) error {
	write, _ := cmd.Flags().GetBool("write")
	stdinPath, _ := cmd.Flags().GetString("stdin-path")

	filesystem := fs.NewOSFileSystem()
	r, err := options.Load(filesystem, ".", args)
	if err != nil {
		return err
	}

	return Files(filesystem, r, Config{
		Write:     write,
		StdinPath: stdinPath,
		Stdin:     cmd.InOrStdin(),
		Stdout:    cmd.OutOrStdout(),
	})
}

// Config controls where Files reads and writes.
type Config struct {
	Write     bool
	StdinPath string
	Stdin     io.Reader
	Stdout    io.Writer
}

// Files sorts every file in r. Unsupported files are skipped with a warning.
// Errors from individual files are combined and do not stop the others.
func Files(filesystem fs.FileSystem, r *options.Run, c Config) error {
	var errs error
	for _, file := range r.Files {
		if file == options.Stdin {
			errs = multierr.Append(errs, sortStdin(r.Embedded, c))
			continue
		}

		if !embedded.Supported(file) {
			logger.Warn("skipping %s: unsupported file type", file)
			continue
		}

		result, err := embedded.SortFile(filesystem, file, r.Embedded)
		if err != nil {
			logger.Warn("%v", err)
			errs = multierr.Append(errs, err)
		}
		if result == nil {
			continue
		}

		if !c.Write {
			if _, err := io.WriteString(c.Stdout, result.Sorted); err != nil {
				return err
			}
			continue
		}

		if result.Changed() {
			if err := result.Write(filesystem); err != nil {
				errs = multierr.Append(errs, err)
				continue
			}
			logger.Info("sorted %s", file)
		} else {
			logger.Debug("unchanged %s", file)
		}
	}
	return errs
}

func sortStdin(opts embedded.Options, c Config) error {
	if c.Stdin == nil {
		return errors.New("stdin: no input")
	}
	data, err := io.ReadAll(c.Stdin)
	if err != nil {
		return fmt.Errorf("error reading stdin: %w", err)
	}

	opts.Locator = opts.LocatorFor(c.StdinPath)
	sorted, sortErr := embedded.SortEmbeddedStyles(string(data), opts)
	if sortErr != nil {
		logger.Warn("stdin: %v", sortErr)
		sortErr = fmt.Errorf("stdin: %w", sortErr)
	}

	if _, err := io.WriteString(c.Stdout, sorted); err != nil {
		return err
	}
	return sortErr
}
