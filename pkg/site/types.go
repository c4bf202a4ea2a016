// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package site

// SiteConfig describes a documentation site: its identity and the
// navigation structure rendered by the site engine
type SiteConfig struct {
	// Title is the display name of the site
	Title string `yaml:"title" json:"title"`
	// Description is the meta-description text
	Description string `yaml:"description" json:"description"`
	// Theme holds the theme specific settings
	Theme ThemeConfig `yaml:"themeConfig" json:"themeConfig"`
}

// ThemeConfig is the theme section of a SiteConfig
type ThemeConfig struct {
	// LastUpdated is the label shown next to page modification timestamps
	LastUpdated string `yaml:"lastUpdated,omitempty" json:"lastUpdated,omitempty"`
	// Repo identifies the source repository, either `owner/name` on
	// github.com or a full repository URL
	Repo string `yaml:"repo,omitempty" json:"repo,omitempty"`
	// Nav is the top navigation bar, rendered left to right
	Nav []NavEntry `yaml:"nav,omitempty" json:"nav,omitempty"`
	// Sidebar is the side panel, rendered top to bottom
	Sidebar []SidebarEntry `yaml:"sidebar,omitempty" json:"sidebar,omitempty"`
}

// NavEntry is a top level menu item
type NavEntry struct {
	Text string `yaml:"text" json:"text"`
	Link string `yaml:"link" json:"link"`
}

// SidebarKind tells the two forms of a SidebarEntry apart
type SidebarKind int

const (
	// PathOnlyKind entries get their title from the target page
	PathOnlyKind SidebarKind = iota
	// PathWithTitleKind entries carry an explicit title
	PathWithTitleKind
)

func (k SidebarKind) String() string {
	switch k {
	case PathOnlyKind:
		return "PathOnly"
	case PathWithTitleKind:
		return "PathWithTitle"
	}
	return "Unknown"
}

// SidebarEntry is a side panel item. On the wire it is either a bare
// path string or a two element [path, title] array.
type SidebarEntry struct {
	kind  SidebarKind
	path  string
	title string
}

// PathOnly creates a sidebar entry whose title is derived from the
// target page
func PathOnly(path string) SidebarEntry {
	return SidebarEntry{kind: PathOnlyKind, path: path}
}

// PathWithTitle creates a sidebar entry with an explicit title
func PathWithTitle(path, title string) SidebarEntry {
	return SidebarEntry{kind: PathWithTitleKind, path: path, title: title}
}

// Kind returns the entry variant
func (e SidebarEntry) Kind() SidebarKind {
	return e.kind
}

// Path returns the content path the entry links to
func (e SidebarEntry) Path() string {
	return e.path
}

// Title returns the explicit title or empty string for PathOnly entries
func (e SidebarEntry) Title() string {
	return e.title
}

// HasTitle reports whether the entry carries an explicit title
func (e SidebarEntry) HasTitle() bool {
	return e.kind == PathWithTitleKind
}

func (e SidebarEntry) String() string {
	if e.HasTitle() {
		return "[" + e.path + ", " + e.title + "]"
	}
	return e.path
}
