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

	"bennypowers.dev/stylesort/internal/mapfs"
	"bennypowers.dev/stylesort/testutil"
)

func TestSupported(t *testing.T) {
	tests := []struct {
		path     string
		expected bool
	}{
		{"a.js", true},
		{"a.JSX", true},
		{"a.mjs", true},
		{"a.ts", true},
		{"a.tsx", true},
		{"index.html", true},
		{"style.css", false},
		{"README.md", false},
		{"Makefile", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, Supported(tt.path))
		})
	}
}

func TestLocatorFor(t *testing.T) {
	ast := Options{Parser: ParserAST}
	assert.IsType(t, &ScriptLocator{}, ast.LocatorFor("a.jsx"))
	assert.IsType(t, &RegexLocator{}, ast.LocatorFor("a.tsx"))
	assert.IsType(t, &HTMLLocator{}, ast.LocatorFor("a.html"))

	regex := Options{}
	assert.IsType(t, &RegexLocator{}, regex.LocatorFor("a.js"))
	assert.IsType(t, &HTMLLocator{}, regex.LocatorFor("a.htm"))
}

func TestSortFile(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/embedded", "/project")

	result, err := SortFile(mfs, "/project/components.js", Options{})
	require.NoError(t, err)
	assert.True(t, result.Changed())
	assert.Equal(t, "/project/components.js", result.Path)

	require.NoError(t, result.Write(mfs))
	assert.Equal(t, []string{"/project/components.js"}, mfs.Writes())

	written, err := mfs.ReadFile("/project/components.js")
	require.NoError(t, err)
	testutil.CheckGolden(t, "golden/embedded/components.js", written)

	again, err := SortFile(mfs, "/project/components.js", Options{})
	require.NoError(t, err)
	assert.False(t, again.Changed())
	require.NoError(t, again.Write(mfs))
	assert.Len(t, mfs.Writes(), 1, "unchanged file should not be written")
}

func TestSortFile_Errors(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/style.css", "a { b: 1; }", 0644)
	mfs.AddFile("/project/broken.ts", "const A = css`a: 1; }`;\nconst B = css`b: 1; a: 2;`;\n", 0644)

	_, err := SortFile(mfs, "/project/style.css", Options{})
	assert.ErrorIs(t, err, ErrUnsupported)

	_, err = SortFile(mfs, "/project/missing.js", Options{})
	assert.Error(t, err)

	result, err := SortFile(mfs, "/project/broken.ts", Options{})
	require.Error(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "const A = css`a: 1; }`;\nconst B = css`\n\ta: 2;\n\tb: 1;\n`;\n", result.Sorted)
}
