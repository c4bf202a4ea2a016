// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package content

import (
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/perjor/sitecfg/pkg/site"
	"k8s.io/klog/v2"
)

// TitleSource tells where the title of a resolved page comes from
type TitleSource string

const (
	// SidebarTitle is an explicit title from a [path, title] sidebar entry
	SidebarTitle TitleSource = "sidebar"
	// FrontMatterTitle is the title property of the page front matter
	FrontMatterTitle TitleSource = "frontmatter"
	// HeadingTitle is the first level 1 heading of the page
	HeadingTitle TitleSource = "heading"
	// PathTitle is derived from the sidebar path
	PathTitle TitleSource = "path"
)

// Page is a sidebar entry resolved against the content tree
type Page struct {
	// Path is the sidebar path
	Path string
	// File is the page file, relative to the content root
	File        string
	Title       string
	TitleSource TitleSource
	// LastUpdated is the time of the last commit touching File, zero if unknown
	LastUpdated time.Time
}

// MissingPageError reports a sidebar path without a page in the content tree
type MissingPageError struct {
	Path       string
	Candidates []string
}

func (e *MissingPageError) Error() string {
	return fmt.Sprintf("sidebar path %s has no page, looked for %s", e.Path, strings.Join(e.Candidates, ", "))
}

// Resolver maps sidebar entries to the pages of a content tree
type Resolver struct {
	Reader Reader
}

// NewResolver creates Resolver reading the content tree under root
func NewResolver(root string) *Resolver {
	return &Resolver{Reader: &DirReader{Root: root}}
}

// Resolve resolves every sidebar entry of cfg in order. Entries that
// cannot be resolved are reported in the returned multierror and left
// out of the result.
func (r *Resolver) Resolve(cfg *site.SiteConfig) ([]*Page, error) {
	var (
		pages []*Page
		errs  *multierror.Error
	)
	for _, entry := range cfg.Theme.Sidebar {
		page, err := r.resolve(entry)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		klog.V(4).Infof("%s -> %s (%s: %s)", page.Path, page.File, page.TitleSource, page.Title)
		pages = append(pages, page)
	}
	return pages, errs.ErrorOrNil()
}

func (r *Resolver) resolve(entry site.SidebarEntry) (*Page, error) {
	file, err := r.locate(entry.Path())
	if err != nil {
		return nil, err
	}
	page := &Page{Path: entry.Path(), File: file}
	if entry.HasTitle() {
		page.Title, page.TitleSource = entry.Title(), SidebarTitle
		return page, nil
	}
	source, err := r.Reader.Read(file)
	if err != nil {
		return nil, fmt.Errorf("reading %s failed: %w", file, err)
	}
	if page.Title, page.TitleSource, err = pageTitle(source); err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	if len(page.Title) == 0 {
		page.Title, page.TitleSource = pathTitle(entry.Path()), PathTitle
	}
	return page, nil
}

func (r *Resolver) locate(p string) (string, error) {
	candidates := Candidates(p)
	for _, c := range candidates {
		ok, err := r.Reader.Exists(c)
		if err != nil {
			return "", err
		}
		if ok {
			return c, nil
		}
	}
	return "", &MissingPageError{Path: p, Candidates: candidates}
}

// Candidates lists the files a sidebar path may be served from, in
// lookup order. Directory paths map to their README.md, other paths
// to a markdown file of the same name.
func Candidates(p string) []string {
	p = strings.TrimPrefix(p, "/")
	switch {
	case len(p) == 0 || strings.HasSuffix(p, "/"):
		return []string{p + "README.md", p + "readme.md", p + "index.md"}
	case strings.HasSuffix(p, ".md"):
		return []string{p}
	case strings.HasSuffix(p, ".html"):
		return []string{strings.TrimSuffix(p, ".html") + ".md"}
	}
	return []string{p + ".md", p + "/README.md"}
}
