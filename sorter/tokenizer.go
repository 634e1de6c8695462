/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package sorter

import "strings"

type markerKind int

const (
	expressionMarker markerKind = iota // ${
	nestedMarker                       // {
)

// marker records an open brace on the tokenizer's stack.
type marker struct {
	kind markerKind
	open int // offset of `$` or `{`
	body int // offset of the first byte after the opening brace
}

type tokenizer struct {
	src     string
	level   int
	opts    Options
	stack   []marker
	stmts   []Statement
	from    int // start of the statement being accumulated
	comment int // offset of the last top-level `//` comment, or -1
}

// Tokenize splits a rule body into its top-level statements.
//
// Interpolations and nested blocks are opaque to the top-level split. Each
// nested block is sorted recursively at level+1 as soon as it closes and is
// returned as a single block Statement.
func Tokenize(body string, level int, opts Options) ([]Statement, error) {
	opts, err := opts.normalize()
	if err != nil {
		return nil, err
	}
	return tokenize(body, level, opts)
}

func tokenize(body string, level int, opts Options) ([]Statement, error) {
	if level > opts.MaxDepth {
		return nil, &ParseError{Err: ErrMaxDepth, Level: level}
	}
	t := &tokenizer{src: body, level: level, opts: opts, comment: -1}
	if err := t.run(); err != nil {
		return nil, err
	}
	return t.stmts, nil
}

func (t *tokenizer) run() error {
	src := t.src
	for i := 0; i < len(src); {
		c := src[i]
		next := byteAt(src, i+1)

		switch {
		case c == '/' && next == '*':
			end, err := t.skipComment(i)
			if err != nil {
				return err
			}
			i = end

		case c == '/' && next == '/' && (t.inExpression() || lineCommentAt(src, i)):
			if len(t.stack) == 0 {
				t.comment = i
			}
			i = skipLine(src, i)

		case c == '"' || c == '\'':
			end, err := t.skipString(i)
			if err != nil {
				return err
			}
			i = end

		case c == '`' && t.inExpression():
			end, err := t.skipTemplate(i)
			if err != nil {
				return err
			}
			i = end

		case c == '$' && next == '{':
			t.stack = append(t.stack, marker{kind: expressionMarker, open: i, body: i + 2})
			i += 2

		case c == '{':
			t.stack = append(t.stack, marker{kind: nestedMarker, open: i, body: i + 1})
			i++

		case c == '}':
			if err := t.closeMarker(i); err != nil {
				return err
			}
			i++

		case c == ';' && len(t.stack) == 0:
			end := trailingComment(src, i+1)
			t.emit(src[t.from:end])
			t.from = end
			i = end

		default:
			i++
		}
	}

	if len(t.stack) > 0 {
		outer := t.stack[0]
		if outer.kind == expressionMarker {
			return t.errorAt(ErrUnterminatedExpression, outer.open)
		}
		return t.errorAt(ErrUnbalancedBlock, outer.open)
	}

	return t.finishTail()
}

func (t *tokenizer) inExpression() bool {
	for _, m := range t.stack {
		if m.kind == expressionMarker {
			return true
		}
	}
	return false
}

// closeMarker pops the marker closed by the `}` at offset i.
func (t *tokenizer) closeMarker(i int) error {
	if len(t.stack) == 0 {
		return t.errorAt(ErrUnbalancedBlock, i)
	}

	m := t.stack[len(t.stack)-1]
	t.stack = t.stack[:len(t.stack)-1]
	if len(t.stack) > 0 || m.kind == expressionMarker {
		return nil
	}

	selector := strings.Join(strings.Fields(t.src[t.from:m.open]), " ")

	inner, err := sortBody(t.src[m.body:i], t.level+1, t.opts, keyframesPattern.MatchString(selector))
	if err != nil {
		return shift(err, m.body)
	}

	var b strings.Builder
	if selector != "" {
		b.WriteString(selector)
		b.WriteByte(' ')
	}
	b.WriteString("{\n")
	b.WriteString(inner)
	b.WriteString(t.opts.Indent.Repeat(t.level + 1))
	b.WriteByte('}')

	t.stmts = append(t.stmts, Statement{Text: b.String(), Level: t.level, Block: true})
	t.from = i + 1
	return nil
}

func (t *tokenizer) emit(text string) {
	text = strings.TrimSpace(text)
	if text == "" || text == ";" {
		return
	}
	t.stmts = append(t.stmts, Statement{Text: text, Level: t.level})
}

// finishTail keeps text left after the last `;` or `}` as a final statement,
// terminated with a `;` so it stays valid wherever it is sorted to.
// In strict mode that is an error, unless the tail is only comments.
func (t *tokenizer) finishTail() error {
	tail := strings.TrimSpace(t.src[t.from:])
	if tail == "" {
		return nil
	}
	if (Statement{Text: tail}).Bare() == "" {
		t.emit(tail)
		return nil
	}
	if t.opts.Strict {
		lead := len(t.src[t.from:]) - len(strings.TrimLeft(t.src[t.from:], " \t\r\n"))
		return t.errorAt(ErrUnterminatedStatement, t.from+lead)
	}
	t.emit(t.terminated())
	return nil
}

// terminated returns the tail with `;` after its last code, ahead of a
// `//` comment on its final line.
func (t *tokenizer) terminated() string {
	end := len(strings.TrimRight(t.src, " \t\r\n"))
	at := end
	if c := t.comment; c >= t.from && !strings.Contains(t.src[c:end], "\n") {
		at = c
	}
	code := t.from + len(strings.TrimRight(t.src[t.from:at], " \t\r\n"))
	return t.src[t.from:code] + ";" + t.src[code:end]
}

// skipComment returns the offset just past the `*/` closing the comment at i.
func (t *tokenizer) skipComment(i int) (int, error) {
	end := strings.Index(t.src[i+2:], "*/")
	if end < 0 {
		return 0, t.errorAt(ErrUnterminatedComment, i)
	}
	return i + 2 + end + 2, nil
}

// skipString returns the offset just past the quoted string starting at i.
func (t *tokenizer) skipString(i int) (int, error) {
	quote := t.src[i]
	for j := i + 1; j < len(t.src); j++ {
		switch t.src[j] {
		case '\\':
			j++
		case quote:
			return j + 1, nil
		}
	}
	return 0, t.errorAt(ErrUnterminatedString, i)
}

// skipTemplate returns the offset just past the template literal starting at i,
// including any ${} substitutions inside it.
func (t *tokenizer) skipTemplate(i int) (int, error) {
	for j := i + 1; j < len(t.src); {
		switch {
		case t.src[j] == '\\':
			j += 2
		case t.src[j] == '`':
			return j + 1, nil
		case t.src[j] == '$' && byteAt(t.src, j+1) == '{':
			end, err := t.skipBraces(j + 2)
			if err != nil {
				return 0, err
			}
			j = end
		default:
			j++
		}
	}
	return 0, t.errorAt(ErrUnterminatedString, i)
}

// skipBraces returns the offset just past the `}` balancing an already consumed `{`.
// It is only used inside template literals, where the marker stack does not apply.
func (t *tokenizer) skipBraces(i int) (int, error) {
	depth := 1
	for j := i; j < len(t.src); {
		c := t.src[j]
		next := byteAt(t.src, j+1)

		switch {
		case c == '/' && next == '*':
			end, err := t.skipComment(j)
			if err != nil {
				return 0, err
			}
			j = end
		case c == '/' && next == '/':
			j = skipLine(t.src, j)
		case c == '"' || c == '\'':
			end, err := t.skipString(j)
			if err != nil {
				return 0, err
			}
			j = end
		case c == '`':
			end, err := t.skipTemplate(j)
			if err != nil {
				return 0, err
			}
			j = end
		case c == '{':
			depth++
			j++
		case c == '}':
			depth--
			j++
			if depth == 0 {
				return j, nil
			}
		default:
			j++
		}
	}
	return 0, t.errorAt(ErrUnterminatedExpression, i-2)
}

func (t *tokenizer) errorAt(err error, offset int) error {
	return &ParseError{Err: err, Offset: offset, Level: t.level}
}

func byteAt(s string, i int) byte {
	if i < len(s) {
		return s[i]
	}
	return 0
}

// lineCommentAt reports whether the `//` at i starts a line comment in CSS
// text: it must follow whitespace, `;` or a brace, which leaves `url(//host)`
// and `http://` alone.
func lineCommentAt(s string, i int) bool {
	return i == 0 || strings.IndexByte(" \t\r\n;{}", s[i-1]) >= 0
}

// trailingComment returns the end of a `//` comment that follows a `;` on the
// same line starting at i, or i when there is none.
func trailingComment(s string, i int) int {
	j := i
	for j < len(s) && (s[j] == ' ' || s[j] == '\t') {
		j++
	}
	if strings.HasPrefix(s[j:], "//") && lineCommentAt(s, j) {
		if nl := strings.IndexByte(s[j:], '\n'); nl >= 0 {
			return j + nl
		}
		return len(s)
	}
	return i
}

// skipLine returns the offset just past the newline ending the line containing i.
func skipLine(s string, i int) int {
	if nl := strings.IndexByte(s[i:], '\n'); nl >= 0 {
		return i + nl + 1
	}
	return len(s)
}
