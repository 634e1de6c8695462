/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package embedded finds stylesheets embedded in JavaScript template literals
// and rewrites them with their rules sorted.
package embedded

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"bennypowers.dev/stylesort/indent"
	"bennypowers.dev/stylesort/sorter"
)

// Sentinel errors for embedded stylesheet rewriting.
var (
	// ErrSyntaxTree indicates the source could not be parsed into a syntax tree.
	ErrSyntaxTree = errors.New("syntax tree unavailable")

	// ErrUnsupported indicates a file type that cannot contain embedded stylesheets.
	ErrUnsupported = errors.New("unsupported file type")

	// ErrInvalidParser indicates an unknown Parser name.
	ErrInvalidParser = errors.New("invalid parser")
)

// Parser selects how script sources are scanned for stylesheets.
type Parser string

const (
	// ParserRegex matches tag expressions textually.
	ParserRegex Parser = "regex"

	// ParserAST walks a tree-sitter syntax tree.
	ParserAST Parser = "ast"
)

// ParseParser converts a configuration name into a Parser. Empty means ParserRegex.
func ParseParser(name string) (Parser, error) {
	switch Parser(strings.ToLower(strings.TrimSpace(name))) {
	case "", ParserRegex:
		return ParserRegex, nil
	case ParserAST:
		return ParserAST, nil
	default:
		return "", fmt.Errorf("%w: %q (expected regex or ast)", ErrInvalidParser, name)
	}
}

// Options configures embedded stylesheet rewriting.
type Options struct {
	// Sorter configures each stylesheet body.
	Sorter sorter.Options

	// DetectIndent replaces Sorter.Indent with the unit detected in each source.
	DetectIndent bool

	// Parser selects the locator for script sources.
	Parser Parser

	// Tags are extra bare identifiers accepted as stylesheet tags.
	Tags []string

	// Locator overrides Parser when set.
	Locator Locator

	// Logger receives debug output. Nil means no logging.
	Logger *zap.Logger
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

func (o Options) locator() Locator {
	if o.Locator != nil {
		return o.Locator
	}
	if o.Parser == ParserAST {
		return NewScriptLocator(o.Tags)
	}
	return NewRegexLocator(o.Tags)
}

// BodyError reports a stylesheet that was left unsorted.
type BodyError struct {
	Tag  string
	Line int
	Err  error
}

func (e *BodyError) Error() string {
	return fmt.Sprintf("line %d: %s stylesheet: %v", e.Line, e.Tag, e.Err)
}

func (e *BodyError) Unwrap() error {
	return e.Err
}

// SortEmbeddedStyles replaces every embedded stylesheet body in source with
// its sorted form and leaves all other text untouched.
//
// A body that fails to sort is kept as written; its *BodyError is combined
// with any others in the returned error, and the remaining bodies are still
// sorted. The returned string is always usable.
func SortEmbeddedStyles(source string, opts Options) (string, error) {
	return rewrite(source, opts, opts.locator())
}

func rewrite(source string, opts Options, loc Locator) (string, error) {
	log := opts.logger()

	spans, err := loc.Locate([]byte(source))
	if err != nil {
		return source, err
	}
	if len(spans) == 0 {
		return source, nil
	}

	sortOpts := opts.Sorter
	if opts.DetectIndent {
		sortOpts.Indent = indent.Detect(source)
	}

	var (
		b    strings.Builder
		errs error
		last int
	)
	b.Grow(len(source))

	for _, sp := range spans {
		sorted, err := sorter.SortCSS(source[sp.Start:sp.End], 0, sortOpts)
		if err != nil {
			line := lineAt(source, sp.Start)
			var pe *sorter.ParseError
			if errors.As(err, &pe) {
				line = lineAt(source, sp.Start+pe.Offset)
			}
			errs = multierr.Append(errs, &BodyError{Tag: sp.Tag, Line: line, Err: err})
			log.Debug("stylesheet left unsorted",
				zap.String("tag", sp.Tag),
				zap.Int("line", line),
				zap.Error(err))
			continue
		}

		b.WriteString(source[last:sp.Start])
		b.WriteByte('\n')
		b.WriteString(sorted)
		last = sp.End
	}
	b.WriteString(source[last:])

	log.Debug("sorted embedded stylesheets",
		zap.Int("found", len(spans)),
		zap.Int("failed", len(multierr.Errors(errs))))

	return b.String(), errs
}

// lineAt returns the 1-based line number of offset in s.
func lineAt(s string, offset int) int {
	if offset > len(s) {
		offset = len(s)
	}
	return strings.Count(s[:offset], "\n") + 1
}
