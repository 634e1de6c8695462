/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package sorter

import (
	"cmp"
	"slices"
	"strings"
)

// Statement is one top-level declaration, at-rule or nested block of a rule body.
type Statement struct {
	// Text is the trimmed source of the statement, comments included.
	// For a nested block it is the already sorted and indented block.
	Text string

	// Level is the nesting level of the body the statement was read from.
	Level int

	// Block is true when the statement is a nested `selector { ... }` block.
	Block bool
}

// Bare returns the statement text with /* */ and // comments removed and
// surrounding space trimmed.
func (s Statement) Bare() string {
	text := s.Text
	if strings.Contains(text, "/*") {
		text = commentPattern.ReplaceAllString(text, "")
	}
	if strings.Contains(text, "//") {
		text = lineCommentPattern.ReplaceAllString(text, "$1")
	}
	if text == s.Text {
		return text
	}
	return strings.TrimSpace(text)
}

// Classify returns the category of the first rule in Rules matching st.
func Classify(st Statement) Category {
	return classifyBare(st, st.Bare())
}

func classifyBare(st Statement, bare string) Category {
	for _, rule := range Rules {
		if rule.Shape.admits(st) && rule.Pattern.MatchString(bare) {
			return rule.Category
		}
	}
	return Unmatched
}

// Compare orders statements by category, then by comment-stripped text.
// Unmatched statements compare equal to each other so they keep source order.
func Compare(a, b Statement) int {
	ab, bb := a.Bare(), b.Bare()
	return compareKeys(classifyBare(a, ab), ab, classifyBare(b, bb), bb)
}

func compareKeys(ac Category, ab string, bc Category, bb string) int {
	if c := cmp.Compare(ac, bc); c != 0 || ac == Unmatched {
		return c
	}
	return strings.Compare(ab, bb)
}

type ranked struct {
	stmt     Statement
	category Category
	bare     string
}

// Sort stably orders stmts in place by Compare.
func Sort(stmts []Statement) {
	keys := make([]ranked, len(stmts))
	for i, st := range stmts {
		bare := st.Bare()
		keys[i] = ranked{stmt: st, category: classifyBare(st, bare), bare: bare}
	}

	slices.SortStableFunc(keys, func(a, b ranked) int {
		return compareKeys(a.category, a.bare, b.category, b.bare)
	})

	for i, k := range keys {
		stmts[i] = k.stmt
	}
}
