/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package fs provides the filesystem abstraction stylesort reads and writes source files through.
package fs

import (
	"io/fs"
	"os"
)

// DefaultFileMode is used when writing a file whose mode cannot be read.
const DefaultFileMode fs.FileMode = 0644

// FileSystem provides the file operations used for sorting and config loading.
// It embeds fs.FS so it can be walked with fs.WalkDir.
type FileSystem interface {
	fs.FS

	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	Stat(name string) (fs.FileInfo, error)
	Exists(path string) bool
}

// OSFileSystem implements FileSystem using the standard os package.
type OSFileSystem struct{}

// NewOSFileSystem creates a new filesystem that uses the standard os package.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

func (f *OSFileSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

func (f *OSFileSystem) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(name, data, perm)
}

func (f *OSFileSystem) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

// Exists returns true if the path exists.
func (f *OSFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Open opens the named file for reading. Unlike os.DirFS it accepts
// absolute and relative OS paths.
func (f *OSFileSystem) Open(name string) (fs.File, error) {
	return os.Open(name)
}
