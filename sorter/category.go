/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package sorter

import "regexp"

// Category is the primary sort key of a statement.
// Declaration order is sort order; Unmatched must stay last.
type Category int

const (
	Expression      Category = iota // ${mixin};
	Declaration                     // color: red;
	VendorPrefixed                  // -webkit-appearance: none;
	AmpersandBlock                  // && { ... }
	AmpersandPseudo                 // &:hover { ... }
	NestedSelector                  // .child { ... }
	MediaQuery                      // @media (...) { ... }
	Unmatched
)

func (c Category) String() string {
	switch c {
	case Expression:
		return "expression"
	case Declaration:
		return "declaration"
	case VendorPrefixed:
		return "vendor-prefixed"
	case AmpersandBlock:
		return "ampersand-block"
	case AmpersandPseudo:
		return "ampersand-pseudo"
	case NestedSelector:
		return "nested-selector"
	case MediaQuery:
		return "media-query"
	default:
		return "unmatched"
	}
}

// opensBlock reports whether statements of this category are block openers,
// which the formatter always separates from what precedes them.
func (c Category) opensBlock() bool {
	return c == AmpersandBlock || c == NestedSelector || c == MediaQuery
}

// Shape restricts a Rule to flat statements, nested blocks, or both.
type Shape int

const (
	AnyShape Shape = iota
	FlatOnly
	BlockOnly
)

func (s Shape) admits(st Statement) bool {
	switch s {
	case FlatOnly:
		return !st.Block
	case BlockOnly:
		return st.Block
	default:
		return true
	}
}

// Rule assigns Category to statements whose comment-stripped text matches Pattern.
type Rule struct {
	Category Category
	Pattern  *regexp.Regexp
	Shape    Shape
}

// Rules is the classification policy, evaluated in order; the first match wins.
var Rules = []Rule{
	{Expression, regexp.MustCompile(`(?s)^\$\{.*\}`), FlatOnly},
	{Declaration, regexp.MustCompile(`^[a-z]`), FlatOnly},
	{VendorPrefixed, regexp.MustCompile(`^-`), FlatOnly},
	{AmpersandBlock, regexp.MustCompile(`^&+\s*\{`), BlockOnly},
	{AmpersandPseudo, regexp.MustCompile(`^&::?[a-z]`), AnyShape},
	{NestedSelector, regexp.MustCompile(`^&*\s*(?:[.#*\[>+~:a-zA-Z]|\$\{)`), BlockOnly},
	{MediaQuery, regexp.MustCompile(`^@(?:media|supports|container)\b`), AnyShape},
}

var (
	// commentPattern matches a /* ... */ comment.
	commentPattern = regexp.MustCompile(`(?s)/\*.*?\*/`)

	// lineCommentPattern matches a // comment led by whitespace, `;` or a brace.
	lineCommentPattern = regexp.MustCompile(`(?m)(^|[\s;{}])//.*$`)

	// keyframesPattern matches a keyframes selector, whose steps run in source order.
	keyframesPattern = regexp.MustCompile(`^@(?:-[a-z]+-)?keyframes\b`)
)
