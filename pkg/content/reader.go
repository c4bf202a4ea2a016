// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package content

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate -header ../../license_prefix.txt

import (
	"os"
	"path"
	"path/filepath"
)

// Reader gives access to the pages of a documentation content tree.
// File names are slash separated and relative to the tree root.
//
//counterfeiter:generate . Reader
type Reader interface {
	// Exists reports whether file is a regular file of the tree
	Exists(file string) (bool, error)
	// Read returns the file content
	Read(file string) ([]byte, error)
}

// DirReader reads content from a local directory
type DirReader struct {
	Root string
}

// Exists implements Reader.Exists
func (d *DirReader) Exists(file string) (bool, error) {
	stat, err := os.Stat(d.resolve(file))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return !stat.IsDir(), nil
}

// Read implements Reader.Read
func (d *DirReader) Read(file string) ([]byte, error) {
	return os.ReadFile(d.resolve(file))
}

// resolve maps file into Root. Cleaning the rooted name keeps ".."
// segments from leaving the tree.
func (d *DirReader) resolve(file string) string {
	return filepath.Join(d.Root, filepath.FromSlash(path.Clean("/"+file)))
}
