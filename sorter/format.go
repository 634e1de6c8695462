/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package sorter

import (
	"strings"

	"bennypowers.dev/stylesort/indent"
)

// Format prints stmts one per line at the given indentation level,
// with a blank line between groups.
func Format(stmts []Statement, level int, unit indent.Unit) string {
	prefix := unit.Repeat(level)

	var b strings.Builder
	var prev Category
	for i, st := range stmts {
		cat := Classify(st)
		if i > 0 && startsGroup(prev, cat, st.Block) {
			b.WriteByte('\n')
		}
		b.WriteString(prefix)
		b.WriteString(st.Text)
		b.WriteByte('\n')
		prev = cat
	}
	return b.String()
}

// startsGroup reports whether a blank line goes before a statement of category cur
// that follows one of category prev.
func startsGroup(prev, cur Category, block bool) bool {
	switch {
	case block || cur.opensBlock():
		return true
	case prev == Expression && cur != Expression:
		return true
	case cur == VendorPrefixed && prev != VendorPrefixed:
		return true
	default:
		return false
	}
}
