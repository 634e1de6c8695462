/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package check provides the check command for stylesort.
package check

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"bennypowers.dev/stylesort/cmd/options"
	"bennypowers.dev/stylesort/embedded"
	"bennypowers.dev/stylesort/fs"
	"bennypowers.dev/stylesort/internal/logger"
)

// Cmd is the check cobra command.
var Cmd = &cobra.Command{
	Use:   "check [files...]",
	Short: "Report files whose stylesheets are not sorted",
	Long: `List every file whose embedded stylesheets would change when sorted.
Exits with an error when any file is unsorted or cannot be parsed.`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	filesystem := fs.NewOSFileSystem()
	r, err := options.Load(filesystem, ".", args)
	if err != nil {
		return err
	}
	return Files(filesystem, r, cmd.OutOrStdout())
}

// Files prints the path of each unsorted file in r to out.
func Files(filesystem fs.FileSystem, r *options.Run, out io.Writer) error {
	var (
		errs     error
		unsorted int
	)

	for _, file := range r.Files {
		if file == options.Stdin || !embedded.Supported(file) {
			logger.Warn("skipping %s", file)
			continue
		}

		result, err := embedded.SortFile(filesystem, file, r.Embedded)
		if err != nil {
			errs = multierr.Append(errs, err)
		}
		if result == nil || !result.Changed() {
			continue
		}

		unsorted++
		fmt.Fprintln(out, file)
	}

	if unsorted > 0 {
		errs = multierr.Append(errs, fmt.Errorf("%d of %d files not sorted", unsorted, len(r.Files)))
	}
	return errs
}
