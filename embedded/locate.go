/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package embedded

import (
	"regexp"
	"strings"
)

// Span locates one embedded stylesheet body in a source file.
type Span struct {
	// Tag is the expression before the opening backtick, e.g. "styled.div".
	Tag string

	// Start is the offset of the first byte after the opening backtick.
	Start int

	// End is the offset of the closing backtick.
	End int
}

// Locator finds embedded stylesheet bodies in source text.
// Spans are returned in source order and never overlap.
type Locator interface {
	Locate(source []byte) ([]Span, error)
}

// DefaultTags are the bare identifiers recognized as stylesheet tags,
// in addition to styled.x and styled(x) forms.
var DefaultTags = []string{"css", "createGlobalStyle", "injectGlobal"}

func identifierAlternation(extra []string) string {
	names := make([]string, 0, len(DefaultTags)+len(extra))
	for _, name := range append(append([]string{}, DefaultTags...), extra...) {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, regexp.QuoteMeta(name))
		}
	}
	return strings.Join(names, "|")
}

// RegexLocator matches a tag expression immediately followed by a
// backtick-delimited body that contains no backticks.
type RegexLocator struct {
	pattern *regexp.Regexp
}

// NewRegexLocator returns a RegexLocator accepting DefaultTags plus extra bare tags.
func NewRegexLocator(extra []string) *RegexLocator {
	return &RegexLocator{
		pattern: regexp.MustCompile(
			"(" +
				`\bstyled\.[^\x60\n]+?` +
				`|\bstyled\([^\x60\n]+?\)` +
				`|\b(?:` + identifierAlternation(extra) + `)` +
				")`([^`]+)`",
		),
	}
}

// Locate implements Locator.
func (l *RegexLocator) Locate(source []byte) ([]Span, error) {
	matches := l.pattern.FindAllSubmatchIndex(source, -1)
	spans := make([]Span, 0, len(matches))
	for _, m := range matches {
		spans = append(spans, Span{
			Tag:   string(source[m[2]:m[3]]),
			Start: m[4],
			End:   m[5],
		})
	}
	return spans, nil
}

// tagMatcher reports whether a tag expression found by a syntax tree is a stylesheet tag.
func tagMatcher(extra []string) *regexp.Regexp {
	return regexp.MustCompile(`(?s)^(?:styled\..+|styled\(.+\)(?:\..+)?|(?:` + identifierAlternation(extra) + `))$`)
}
