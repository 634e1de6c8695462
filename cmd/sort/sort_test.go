/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package sort

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/stylesort/cmd/options"
	"bennypowers.dev/stylesort/embedded"
	"bennypowers.dev/stylesort/internal/logger"
	"bennypowers.dev/stylesort/internal/mapfs"
	"bennypowers.dev/stylesort/sorter"
)

const (
	unsortedJS = "const A = css`b: 1; a: 2;`;\n"
	sortedJS   = "const A = css`\n\ta: 2;\n\tb: 1;\n`;\n"
)

func quiet(t *testing.T) {
	t.Helper()
	logger.SetOutput(io.Discard)
	t.Cleanup(func() { logger.SetOutput(os.Stderr) })
}

func newFS() *mapfs.MapFileSystem {
	mfs := mapfs.New()
	mfs.AddFile("/project/a.js", unsortedJS, 0644)
	mfs.AddFile("/project/plain.js", "export const x = 1;\n", 0644)
	mfs.AddFile("/project/style.css", "a { b: 1; }\n", 0644)
	return mfs
}

func TestFiles_Stdout(t *testing.T) {
	quiet(t)
	mfs := newFS()

	var out bytes.Buffer
	r := &options.Run{Files: []string{"/project/a.js", "/project/style.css", "/project/plain.js"}}
	err := Files(mfs, r, Config{Stdout: &out})
	require.NoError(t, err)

	assert.Equal(t, sortedJS+"export const x = 1;\n", out.String())
	assert.Empty(t, mfs.Writes())
}

func TestFiles_Write(t *testing.T) {
	quiet(t)
	mfs := newFS()

	r := &options.Run{Files: []string{"/project/a.js", "/project/plain.js"}}
	err := Files(mfs, r, Config{Write: true})
	require.NoError(t, err)

	assert.Equal(t, []string{"/project/a.js"}, mfs.Writes())
	got, err := mfs.ReadFile("/project/a.js")
	require.NoError(t, err)
	assert.Equal(t, sortedJS, string(got))
}

func TestFiles_Stdin(t *testing.T) {
	quiet(t)

	var out bytes.Buffer
	r := &options.Run{
		Files:    []string{options.Stdin},
		Embedded: embedded.Options{Sorter: sorter.Options{Indent: "  "}},
	}
	err := Files(mapfs.New(), r, Config{
		StdinPath: "button.tsx",
		Stdin:     strings.NewReader(unsortedJS),
		Stdout:    &out,
	})
	require.NoError(t, err)
	assert.Equal(t, "const A = css`\n  a: 2;\n  b: 1;\n`;\n", out.String())
}

func TestFiles_ErrorsDoNotStopOtherFiles(t *testing.T) {
	quiet(t)
	mfs := newFS()
	mfs.AddFile("/project/broken.js", "const B = css`a: 1; }`;\n", 0644)

	r := &options.Run{Files: []string{"/project/broken.js", "/project/missing.js", "/project/a.js"}}
	err := Files(mfs, r, Config{Write: true})

	require.Error(t, err)
	assert.ErrorIs(t, err, sorter.ErrUnbalancedBlock)
	assert.Contains(t, err.Error(), "missing.js")
	assert.Equal(t, []string{"/project/a.js"}, mfs.Writes())
}
