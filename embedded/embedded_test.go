/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package embedded

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"bennypowers.dev/stylesort/sorter"
	"bennypowers.dev/stylesort/testutil"
)

func TestSortEmbeddedStyles(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		opts     Options
		expected string
	}{
		{
			name:     "empty file",
			source:   "",
			expected: "",
		},
		{
			name:     "single line without stylesheet",
			source:   "const x = 5",
			expected: "const x = 5",
		},
		{
			name:     "css tag",
			source:   "const Icon = css`\n\tdisplay: flex;\n\ttransition: all 0.2s;\n\tcolor: red;\n`;\n",
			expected: "const Icon = css`\n\tcolor: red;\n\tdisplay: flex;\n\ttransition: all 0.2s;\n`;\n",
		},
		{
			name:     "styled member",
			source:   "const A = styled.div`b: 1; a: 2;`",
			expected: "const A = styled.div`\n\ta: 2;\n\tb: 1;\n`",
		},
		{
			name:     "styled call",
			source:   "const A = styled(Button)`b: 1; a: 2;`",
			expected: "const A = styled(Button)`\n\ta: 2;\n\tb: 1;\n`",
		},
		{
			name:     "styled attrs",
			source:   "const A = styled.a.attrs({ href: '#' })`b: 1; a: 2;`",
			expected: "const A = styled.a.attrs({ href: '#' })`\n\ta: 2;\n\tb: 1;\n`",
		},
		{
			name:     "global style",
			source:   "const G = createGlobalStyle`body { b: 1; a: 2; }`",
			expected: "const G = createGlobalStyle`\n\tbody {\n\t\ta: 2;\n\t\tb: 1;\n\t}\n`",
		},
		{
			name:     "keyframes in global style keep step order",
			source:   "const G = createGlobalStyle`@keyframes spin { to { a: 3; } from { b: 1; a: 2; } }`",
			expected: "const G = createGlobalStyle`\n\t@keyframes spin {\n\t\tto {\n\t\t\ta: 3;\n\t\t}\n\n\t\tfrom {\n\t\t\ta: 2;\n\t\t\tb: 1;\n\t\t}\n\t}\n`",
		},
		{
			name:     "other tags untouched",
			source:   "const h = html`<p>b: 1; a: 2;</p>`; const m = mycss`b: 1; a: 2;`;",
			expected: "const h = html`<p>b: 1; a: 2;</p>`; const m = mycss`b: 1; a: 2;`;",
		},
		{
			name:     "extra tag",
			source:   "const s = sx`b: 1; a: 2;`",
			opts:     Options{Tags: []string{"sx"}},
			expected: "const s = sx`\n\ta: 2;\n\tb: 1;\n`",
		},
		{
			name:     "configured indentation",
			source:   "const A = css`b: 1; a: 2;`",
			opts:     Options{Sorter: sorter.Options{Indent: "    "}},
			expected: "const A = css`\n    a: 2;\n    b: 1;\n`",
		},
		{
			name:     "detected indentation",
			source:   "function f() {\n  return css`\n    b: 1;\n    a: 2;\n  `;\n}\n",
			opts:     Options{DetectIndent: true},
			expected: "function f() {\n  return css`\n  a: 2;\n  b: 1;\n`;\n}\n",
		},
		{
			name:     "ast parser",
			source:   "const A = styled.div`b: 1; a: 2;`",
			opts:     Options{Parser: ParserAST},
			expected: "const A = styled.div`\n\ta: 2;\n\tb: 1;\n`",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SortEmbeddedStyles(tt.source, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSortEmbeddedStyles_FailureIsLocal(t *testing.T) {
	source := "const A = css`\n  color: red;\n}\n`;\nconst B = css`\n  b: 1;\n  a: 2;\n`;\n"

	core, logs := observer.New(zap.DebugLevel)
	got, err := SortEmbeddedStyles(source, Options{Logger: zap.New(core)})

	assert.Equal(t, "const A = css`\n  color: red;\n}\n`;\nconst B = css`\n\ta: 2;\n\tb: 1;\n`;\n", got)
	require.Error(t, err)

	errs := multierr.Errors(err)
	require.Len(t, errs, 1)

	var bodyErr *BodyError
	require.True(t, errors.As(errs[0], &bodyErr))
	assert.Equal(t, 3, bodyErr.Line)
	assert.Equal(t, "css", bodyErr.Tag)
	assert.ErrorIs(t, err, sorter.ErrUnbalancedBlock)

	assert.Equal(t, 1, logs.FilterMessage("stylesheet left unsorted").Len())
}

func TestSortEmbeddedStyles_SeveralFailures(t *testing.T) {
	source := "a = css`x: ${y;`\nb = css`/* open`\nc = css`b: 1; a: 2;`"

	got, err := SortEmbeddedStyles(source, Options{})
	assert.Equal(t, "a = css`x: ${y;`\nb = css`/* open`\nc = css`\n\ta: 2;\n\tb: 1;\n`", got)
	assert.Len(t, multierr.Errors(err), 2)
	assert.ErrorIs(t, err, sorter.ErrUnterminatedExpression)
	assert.ErrorIs(t, err, sorter.ErrUnterminatedComment)
}

func TestSortEmbeddedStyles_Idempotent(t *testing.T) {
	source := string(testutil.LoadFixtureFile(t, "fixtures/embedded/components.js"))

	once, err := SortEmbeddedStyles(source, Options{})
	require.NoError(t, err)
	twice, err := SortEmbeddedStyles(once, Options{})
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestSortEmbeddedStyles_Golden(t *testing.T) {
	source := string(testutil.LoadFixtureFile(t, "fixtures/embedded/components.js"))

	for _, parser := range []Parser{ParserRegex, ParserAST} {
		t.Run(string(parser), func(t *testing.T) {
			got, err := SortEmbeddedStyles(source, Options{Parser: parser})
			require.NoError(t, err)
			testutil.CheckGolden(t, "golden/embedded/components.js", []byte(got))
		})
	}
}

func TestParseParser(t *testing.T) {
	tests := []struct {
		name     string
		expected Parser
		wantErr  bool
	}{
		{"", ParserRegex, false},
		{"regex", ParserRegex, false},
		{"AST", ParserAST, false},
		{"babel", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseParser(tt.name)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidParser)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
