// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package writers

import (
	"fmt"
	"os"
	"path/filepath"

	"k8s.io/klog/v2"
)

// FSWriter is implementation of Writer interface for writing files to the file system
type FSWriter struct {
	Root string
}

// Write writes content to Root/path/name, creating missing directories
func (f *FSWriter) Write(name, path string, content []byte) error {
	if len(name) == 0 {
		return fmt.Errorf("file name is empty for path %s", path)
	}
	p := filepath.Join(f.Root, path)
	if err := os.MkdirAll(p, os.ModePerm); err != nil {
		return err
	}
	filePath := filepath.Join(p, name)
	if err := os.WriteFile(filePath, content, 0644); err != nil {
		return fmt.Errorf("error writing %s: %v", filePath, err)
	}
	klog.V(2).Infof("written %s", filePath)
	return nil
}
