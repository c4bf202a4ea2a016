// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package writers

import (
	"bytes"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"
	"time"
)

// DryRunWriter records the files a command would write and prints the
// projected file hierarchy instead of writing them
type DryRunWriter struct {
	Writer io.Writer
	Root   string
	files  []*file
	t1     time.Time
}

type file struct {
	path string
	size int
}

// NewDryRunWriter creates DryRunWriter flushing to w
func NewDryRunWriter(w io.Writer, root string) *DryRunWriter {
	return &DryRunWriter{
		Writer: w,
		Root:   root,
		files:  []*file{},
		t1:     time.Now(),
	}
}

// Write implements Writer.Write
func (d *DryRunWriter) Write(name, p string, content []byte) error {
	if len(name) == 0 {
		return fmt.Errorf("file name is empty for path %s", p)
	}
	d.files = append(d.files, &file{
		path: path.Join(d.Root, p, name),
		size: len(content),
	})
	return nil
}

// Flush formats and writes the dry-run result to the
// underlying writer
func (d *DryRunWriter) Flush() error {
	var b bytes.Buffer
	sort.Slice(d.files, func(i, j int) bool { return d.files[i].path < d.files[j].path })
	format(d.files, &b)
	b.WriteString(fmt.Sprintf("\nBuild finished in %f seconds\n", time.Since(d.t1).Seconds()))
	_, err := d.Writer.Write(b.Bytes())
	return err
}

// format prints files as an indented tree, e.g.
//
//	site
//	  .vuepress
//	    config.js (512 bytes)
func format(files []*file, b *bytes.Buffer) {
	seen := map[string]bool{}
	for _, f := range files {
		dd := strings.Split(strings.TrimPrefix(f.path, "/"), "/")
		for i, s := range dd {
			p := strings.Join(dd[:i+1], "/")
			if seen[p] {
				continue
			}
			seen[p] = true
			b.WriteString(strings.Repeat("  ", i))
			b.WriteString(s)
			if i == len(dd)-1 {
				b.WriteString(fmt.Sprintf(" (%d bytes)", f.size))
			}
			b.WriteString("\n")
		}
	}
}
