/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package sorter orders and re-indents the rules of an embedded stylesheet body.
//
// A body is split into top-level statements by Tokenize, ordered by Sort
// (category first, then text) and printed by Format. Nested blocks are sorted
// inside-out: the tokenizer sorts each block's body before the enclosing body
// treats the whole block as one statement.
package sorter

import (
	"fmt"

	"bennypowers.dev/stylesort/indent"
)

// DefaultMaxDepth bounds how deeply nested blocks are followed.
const DefaultMaxDepth = 32

// Options configures one formatting pass. The same Options are used for every
// nested block reached from a SortCSS call.
type Options struct {
	// Indent is repeated once per nesting level. Zero value is indent.Tab.
	Indent indent.Unit

	// MaxDepth is the deepest nested block accepted. Zero value is DefaultMaxDepth.
	MaxDepth int

	// Strict rejects text after the last `;` instead of keeping it as a statement.
	Strict bool
}

func (o Options) normalize() (Options, error) {
	if o.Indent == "" {
		o.Indent = indent.Tab
	}
	if !o.Indent.Valid() {
		return o, fmt.Errorf("%w: %q", indent.ErrInvalidUnit, string(o.Indent))
	}
	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	return o, nil
}

// SortCSS sorts the statements of body and formats them one level deeper than level.
func SortCSS(body string, level int, opts Options) (string, error) {
	opts, err := opts.normalize()
	if err != nil {
		return "", err
	}
	return sortCSS(body, level, opts)
}

func sortCSS(body string, level int, opts Options) (string, error) {
	return sortBody(body, level, opts, false)
}

// sortBody formats body like sortCSS. With ordered set the statements keep
// their source order; nested blocks are still sorted.
func sortBody(body string, level int, opts Options, ordered bool) (string, error) {
	stmts, err := tokenize(body, level, opts)
	if err != nil {
		return "", err
	}
	if !ordered {
		Sort(stmts)
	}
	return Format(stmts, level+1, opts.Indent), nil
}
