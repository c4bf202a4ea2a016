// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package content

import (
	"fmt"
	"path"
	"strings"

	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// GitHub Flavored Markdown & front matter, as pages are authored
	extensions = []goldmark.Extender{
		extension.GFM,
		meta.Meta,
	}
	gmParser = goldmark.New(goldmark.WithExtensions(extensions...))
)

// pageTitle returns the title a page declares for itself: the front
// matter title, or else the text of its first level 1 heading. An empty
// title means the page declares none.
func pageTitle(source []byte) (string, TitleSource, error) {
	context := parser.NewContext()
	doc := gmParser.Parser().Parse(text.NewReader(source), parser.WithContext(context))
	fm, err := meta.TryGet(context)
	if err != nil {
		return "", "", fmt.Errorf("invalid front matter: %w", err)
	}
	if t, ok := fm["title"]; ok && t != nil {
		if title := strings.TrimSpace(fmt.Sprint(t)); len(title) > 0 {
			return title, FrontMatterTitle, nil
		}
	}
	var heading string
	err = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok && h.Level == 1 {
			heading = strings.TrimSpace(string(h.Text(source)))
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return "", "", err
	}
	if len(heading) > 0 {
		return heading, HeadingTitle, nil
	}
	return "", "", nil
}

// pathTitle derives a title from the last segment of a sidebar path,
// e.g. /TDD-Tutorial/ -> TDD Tutorial
func pathTitle(p string) string {
	name := path.Base(strings.TrimSuffix(p, "/"))
	if name == "/" || name == "." || len(name) == 0 {
		return "Home"
	}
	name = strings.TrimSuffix(name, ".html")
	name = strings.TrimSuffix(name, ".md")
	name = strings.ReplaceAll(name, "_", " ")
	name = strings.ReplaceAll(name, "-", " ")
	return cases.Title(language.English, cases.NoLower).String(name)
}
