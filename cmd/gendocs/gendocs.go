// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package gendocs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
	"k8s.io/klog/v2"
)

const (
	genDocsMarkdown genDocsFormat = iota
	genDocsManPages
)

type genDocsFormat int

func newGenDocsFormat(formatString string) (genDocsFormat, error) {
	switch formatString {
	case "md":
		return genDocsMarkdown, nil
	case "man":
		return genDocsManPages, nil
	}
	return 0, fmt.Errorf("unknown format '%s'. Must be one of %v", formatString, []string{"md", "man"})
}

// NewGenCmdDocs generates the sitecfg commands reference
// documentation as Markdown or man pages
func NewGenCmdDocs() *cobra.Command {
	var formatString, destination string
	command := &cobra.Command{
		Use:   "gen-cmd-docs",
		Short: "Generates commands reference documentation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			format, err := newGenDocsFormat(formatString)
			if err != nil {
				return err
			}
			root := cmd.Root()
			root.DisableAutoGenTag = true
			destination = filepath.Clean(destination)
			if err := os.MkdirAll(destination, os.ModePerm); err != nil {
				return err
			}
			klog.V(2).Infof("writing commands reference to %s", destination)
			if format == genDocsManPages {
				header := &doc.GenManHeader{
					Title:   "SITECFG",
					Manual:  "Sitecfg Command Reference",
					Section: "1",
				}
				return doc.GenManTree(root, header, destination)
			}
			return doc.GenMarkdownTree(root, destination)
		},
	}
	command.Flags().StringVarP(&formatString, "format", "f", "md",
		"Specifies the generated documentation format. Must be one of: `md` (for markdown) or `man` (for man pages).")
	command.Flags().StringVarP(&destination, "destination", "d", "",
		"Path to directory where the documentation will be generated. If it does not exist, it will be created. Required flag.")
	_ = command.MarkFlagRequired("destination")
	return command
}
