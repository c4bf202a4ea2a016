// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package site

// Load returns the configuration of the learning process site. Every
// call builds a new value, so callers never share state.
func Load() (*SiteConfig, error) {
	cfg := &SiteConfig{
		Title:       "Test Driven Development Learning Process",
		Description: "For school I had to learn a new technology. We have to document it and keep a logbook. I chose Unit Testing and document my whole process on this site.",
		Theme: ThemeConfig{
			LastUpdated: "Last Updated",
			Repo:        "perjor/learn_testing",
			Nav: []NavEntry{
				{Text: "Home", Link: "/"},
				{Text: "My Website", Link: "https://jordypereira.be/"},
			},
			Sidebar: []SidebarEntry{
				PathOnly("/"),
				PathOnly("/TDD-Tutorial/"),
				PathWithTitle("/Edd-Yerburgh/", "Edd Yerburgh Talk"),
				PathWithTitle("/demos/", "Demo"),
				PathOnly("/resources/"),
			},
		},
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
