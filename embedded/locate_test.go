/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package embedded

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bodies(source string, spans []Span) []string {
	out := make([]string, 0, len(spans))
	for _, sp := range spans {
		out = append(out, source[sp.Start:sp.End])
	}
	return out
}

func tags(spans []Span) []string {
	out := make([]string, 0, len(spans))
	for _, sp := range spans {
		out = append(out, sp.Tag)
	}
	return out
}

func TestRegexLocator(t *testing.T) {
	source := "const A = styled.div`a: 1;`;\n" +
		"const B = styled(Link)`b: 2;`;\n" +
		"const C = css`c: 3;`;\n" +
		"const D = html`<p></p>`;\n" +
		"const E = css``;\n"

	spans, err := NewRegexLocator(nil).Locate([]byte(source))
	require.NoError(t, err)

	assert.Equal(t, []string{"styled.div", "styled(Link)", "css"}, tags(spans))
	assert.Equal(t, []string{"a: 1;", "b: 2;", "c: 3;"}, bodies(source, spans))
}

func TestScriptLocator(t *testing.T) {
	t.Run("tagged templates", func(t *testing.T) {
		source := "const A = styled.div`a: 1;`;\n" +
			"const B = styled(Link).attrs({ x: 1 })`b: 2;`;\n" +
			"const C = css`c: 3;`;\n" +
			"const D = html`<p></p>`;\n" +
			"const E = sx`e: 5;`;\n"

		spans, err := NewScriptLocator([]string{"sx"}).Locate([]byte(source))
		require.NoError(t, err)

		assert.Equal(t, []string{"styled.div", "styled(Link).attrs({ x: 1 })", "css", "sx"}, tags(spans))
		assert.Equal(t, []string{"a: 1;", "b: 2;", "c: 3;", "e: 5;"}, bodies(source, spans))
	})

	t.Run("nested templates stay inside the outer body", func(t *testing.T) {
		source := "const A = styled.div`\n  ${p => p.on && css`b: 1;`};\n  a: 2;\n`;\n"

		spans, err := NewScriptLocator(nil).Locate([]byte(source))
		require.NoError(t, err)
		require.Len(t, spans, 1)
		assert.Equal(t, "styled.div", spans[0].Tag)
		assert.Equal(t, "\n  ${p => p.on && css`b: 1;`};\n  a: 2;\n", source[spans[0].Start:spans[0].End])
	})

	t.Run("plain template literals ignored", func(t *testing.T) {
		spans, err := NewScriptLocator(nil).Locate([]byte("const s = `color: red;`;"))
		require.NoError(t, err)
		assert.Empty(t, spans)
	})
}

func TestSortEmbeddedStyles_NestedTemplateWithAST(t *testing.T) {
	source := "const A = styled.div`\n  ${p => p.on && css`\n    b: 1;\n    a: 2;\n  `};\n  display: flex;\n  color: red;\n`;\n"

	got, err := SortEmbeddedStyles(source, Options{Parser: ParserAST})
	require.NoError(t, err)
	assert.Equal(t,
		"const A = styled.div`\n"+
			"\t${p => p.on && css`\n    b: 1;\n    a: 2;\n  `};\n"+
			"\n"+
			"\tcolor: red;\n"+
			"\tdisplay: flex;\n"+
			"`;\n",
		got)
}

func TestHTMLLocator(t *testing.T) {
	source := "<!doctype html>\n<html>\n<body>\n<p>css`not: code;`</p>\n<script type=\"module\">\nconst A = css`b: 1; a: 2;`;\n</script>\n</body>\n</html>\n"

	spans, err := NewHTMLLocator(nil).Locate([]byte(source))
	require.NoError(t, err)
	require.Len(t, spans, 1)
	assert.Equal(t, "b: 1; a: 2;", source[spans[0].Start:spans[0].End])

	got, err := SortEmbeddedStyles(source, Options{Locator: NewHTMLLocator(nil)})
	require.NoError(t, err)
	assert.Contains(t, got, "const A = css`\n\ta: 2;\n\tb: 1;\n`;")
	assert.Contains(t, got, "<p>css`not: code;`</p>")
}

func TestOutermost(t *testing.T) {
	spans := []Span{
		{Tag: "inner", Start: 10, End: 20},
		{Tag: "outer", Start: 5, End: 40},
		{Tag: "after", Start: 50, End: 60},
	}
	assert.Equal(t, []string{"outer", "after"}, tags(outermost(spans)))
}
