/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package embedded

import (
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"bennypowers.dev/stylesort/fs"
)

type sourceKind int

const (
	unsupportedSource sourceKind = iota
	javascriptSource
	typescriptSource
	htmlSource
)

var sourceKinds = map[string]sourceKind{
	".js":   javascriptSource,
	".jsx":  javascriptSource,
	".mjs":  javascriptSource,
	".cjs":  javascriptSource,
	".ts":   typescriptSource,
	".tsx":  typescriptSource,
	".mts":  typescriptSource,
	".cts":  typescriptSource,
	".html": htmlSource,
	".htm":  htmlSource,
}

func kindOf(path string) sourceKind {
	return sourceKinds[strings.ToLower(filepath.Ext(path))]
}

// Supported reports whether path is a file type that may contain embedded stylesheets.
func Supported(path string) bool {
	return kindOf(path) != unsupportedSource
}

// LocatorFor returns the locator used for the file at path.
//
// HTML files are always scanned through their syntax tree. TypeScript files
// use the regex locator even with ParserAST, since no TypeScript grammar is
// available.
func (o Options) LocatorFor(path string) Locator {
	if o.Locator != nil {
		return o.Locator
	}
	switch kindOf(path) {
	case htmlSource:
		return NewHTMLLocator(o.Tags)
	case typescriptSource:
		if o.Parser == ParserAST {
			o.logger().Debug("no TypeScript grammar, using regex locator", zap.String("path", path))
		}
		return NewRegexLocator(o.Tags)
	default:
		return o.locator()
	}
}

// Result is the outcome of sorting one file.
type Result struct {
	Path     string
	Original string
	Sorted   string
}

// Changed reports whether sorting changed the file.
func (r *Result) Changed() bool {
	return r.Original != r.Sorted
}

// SortFile reads path from filesystem and sorts its embedded stylesheets.
// On a partial failure both the Result and the error are returned.
func SortFile(filesystem fs.FileSystem, path string, opts Options) (*Result, error) {
	if !Supported(path) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, path)
	}

	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}

	original := string(data)
	sorted, err := rewrite(original, opts, opts.LocatorFor(path))
	result := &Result{Path: path, Original: original, Sorted: sorted}
	if err != nil {
		return result, fmt.Errorf("%s: %w", path, err)
	}
	return result, nil
}

// Write stores the sorted text back to the file, keeping its permissions.
// Unchanged files are not written.
func (r *Result) Write(filesystem fs.FileSystem) error {
	if !r.Changed() {
		return nil
	}

	perm := fs.DefaultFileMode
	if info, err := filesystem.Stat(r.Path); err == nil {
		perm = info.Mode().Perm()
	}

	if err := filesystem.WriteFile(r.Path, []byte(r.Sorted), perm); err != nil {
		return fmt.Errorf("error writing %s: %w", r.Path, err)
	}
	return nil
}
