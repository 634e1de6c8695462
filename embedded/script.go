/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package embedded

import (
	"fmt"
	"regexp"
	"slices"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_html "github.com/tree-sitter/tree-sitter-html/bindings/go"
	tree_sitter_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
)

var (
	javascriptLanguage = tree_sitter.NewLanguage(tree_sitter_javascript.Language())
	htmlLanguage       = tree_sitter.NewLanguage(tree_sitter_html.Language())
)

// taggedTemplateQuery captures tagged template literals.
const taggedTemplateQuery = `
(call_expression
  function: (_) @tag
  arguments: (template_string) @template)
`

// scriptElementQuery captures the contents of <script> elements.
const scriptElementQuery = `
(script_element
  (raw_text) @script)
`

// ScriptLocator finds tagged template literals in a JavaScript syntax tree.
// Unlike RegexLocator it accepts bodies whose interpolations contain
// backticks; templates nested inside another stylesheet are left to the
// enclosing one.
type ScriptLocator struct {
	tags *regexp.Regexp
}

// NewScriptLocator returns a ScriptLocator accepting DefaultTags plus extra bare tags.
func NewScriptLocator(extra []string) *ScriptLocator {
	return &ScriptLocator{tags: tagMatcher(extra)}
}

// Locate implements Locator.
func (l *ScriptLocator) Locate(source []byte) ([]Span, error) {
	var spans []Span
	err := eachCapture(javascriptLanguage, taggedTemplateQuery, source, func(captures map[string]*tree_sitter.Node) {
		tag, template := captures["tag"], captures["template"]
		if tag == nil || template == nil {
			return
		}

		name := tag.Utf8Text(source)
		if !l.tags.MatchString(name) {
			return
		}

		start, end := int(template.StartByte())+1, int(template.EndByte())-1
		if end <= start {
			return
		}
		spans = append(spans, Span{Tag: name, Start: start, End: end})
	})
	if err != nil {
		return nil, err
	}
	return outermost(spans), nil
}

// HTMLLocator finds stylesheets in the inline <script> elements of an HTML document.
type HTMLLocator struct {
	Script *ScriptLocator
}

// NewHTMLLocator returns an HTMLLocator accepting DefaultTags plus extra bare tags.
func NewHTMLLocator(extra []string) *HTMLLocator {
	return &HTMLLocator{Script: NewScriptLocator(extra)}
}

// Locate implements Locator.
func (l *HTMLLocator) Locate(source []byte) ([]Span, error) {
	type block struct{ start, end int }
	var scripts []block
	err := eachCapture(htmlLanguage, scriptElementQuery, source, func(captures map[string]*tree_sitter.Node) {
		if n := captures["script"]; n != nil {
			scripts = append(scripts, block{int(n.StartByte()), int(n.EndByte())})
		}
	})
	if err != nil {
		return nil, err
	}

	var spans []Span
	for _, s := range scripts {
		found, err := l.Script.Locate(source[s.start:s.end])
		if err != nil {
			return nil, err
		}
		for _, sp := range found {
			sp.Start += s.start
			sp.End += s.start
			spans = append(spans, sp)
		}
	}
	return spans, nil
}

// eachCapture runs query over source and calls fn with the captures of each match, keyed by name.
func eachCapture(lang *tree_sitter.Language, query string, source []byte, fn func(map[string]*tree_sitter.Node)) error {
	parser := tree_sitter.NewParser()
	defer parser.Close()

	if err := parser.SetLanguage(lang); err != nil {
		return fmt.Errorf("%w: %w", ErrSyntaxTree, err)
	}

	tree := parser.Parse(source, nil)
	if tree == nil {
		return fmt.Errorf("%w: parser returned no tree", ErrSyntaxTree)
	}
	defer tree.Close()

	q, qerr := tree_sitter.NewQuery(lang, query)
	if qerr != nil {
		return fmt.Errorf("%w: %s", ErrSyntaxTree, qerr.Error())
	}
	defer q.Close()

	cursor := tree_sitter.NewQueryCursor()
	defer cursor.Close()

	names := q.CaptureNames()
	matches := cursor.Matches(q, tree.RootNode(), source)
	for match := matches.Next(); match != nil; match = matches.Next() {
		captures := make(map[string]*tree_sitter.Node, len(match.Captures))
		for _, c := range match.Captures {
			node := c.Node
			captures[names[c.Index]] = &node
		}
		fn(captures)
	}
	return nil
}

// outermost sorts spans by position and drops spans contained in an earlier one.
func outermost(spans []Span) []Span {
	slices.SortFunc(spans, func(a, b Span) int { return a.Start - b.Start })

	kept := spans[:0]
	for _, sp := range spans {
		if n := len(kept); n > 0 && sp.Start < kept[n-1].End {
			continue
		}
		kept = append(kept, sp)
	}
	return kept
}
