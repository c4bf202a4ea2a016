// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package site_test

import (
	"github.com/perjor/sitecfg/pkg/site"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Load", func() {
	var (
		cfg *site.SiteConfig
		err error
	)
	JustBeforeEach(func() {
		cfg, err = site.Load()
	})
	It("returns a valid configuration", func() {
		Expect(err).NotTo(HaveOccurred())
		Expect(site.Validate(cfg)).To(Succeed())
		Expect(cfg.Title).To(Equal("Test Driven Development Learning Process"))
		Expect(cfg.Description).NotTo(BeEmpty())
		Expect(cfg.Theme.LastUpdated).To(Equal("Last Updated"))
		Expect(cfg.Theme.Repo).To(Equal("perjor/learn_testing"))
	})
	It("is deterministic", func() {
		other, otherErr := site.Load()
		Expect(otherErr).NotTo(HaveOccurred())
		Expect(other).To(Equal(cfg))
		Expect(other).NotTo(BeIdenticalTo(cfg))
	})
	It("does not share state between calls", func() {
		cfg.Theme.Nav[0].Text = "changed"
		cfg.Theme.Sidebar = cfg.Theme.Sidebar[:1]
		other, _ := site.Load()
		Expect(other.Theme.Nav[0].Text).To(Equal("Home"))
		Expect(other.Theme.Sidebar).To(HaveLen(5))
	})
	It("preserves navigation order", func() {
		Expect(cfg.Theme.Nav).To(Equal([]site.NavEntry{
			{Text: "Home", Link: "/"},
			{Text: "My Website", Link: "https://jordypereira.be/"},
		}))
	})
	It("preserves sidebar order and variants", func() {
		Expect(cfg.Theme.Sidebar).To(Equal([]site.SidebarEntry{
			site.PathOnly("/"),
			site.PathOnly("/TDD-Tutorial/"),
			site.PathWithTitle("/Edd-Yerburgh/", "Edd Yerburgh Talk"),
			site.PathWithTitle("/demos/", "Demo"),
			site.PathOnly("/resources/"),
		}))
		kinds := []site.SidebarKind{}
		for _, e := range cfg.Theme.Sidebar {
			kinds = append(kinds, e.Kind())
		}
		Expect(kinds).To(Equal([]site.SidebarKind{
			site.PathOnlyKind, site.PathOnlyKind, site.PathWithTitleKind, site.PathWithTitleKind, site.PathOnlyKind,
		}))
	})
})

var _ = Describe("Parse", func() {
	var (
		manifest []byte
		cfg      *site.SiteConfig
		err      error
	)
	JustBeforeEach(func() {
		cfg, err = site.Parse(manifest)
	})
	When("sidebar mixes paths and pairs", func() {
		BeforeEach(func() {
			manifest = []byte(`title: Test Driven Development Learning Process
description: logbook
themeConfig:
  lastUpdated: Last Updated
  repo: perjor/learn_testing
  nav:
    - text: Home
      link: /
    - text: My Website
      link: https://jordypereira.be/
  sidebar:
    - /
    - /TDD-Tutorial/
    - ['/Edd-Yerburgh/', 'Edd Yerburgh Talk']
    - ['/demos/', 'Demo']
    - /resources/
`)
		})
		It("produces tagged entries in order", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Theme.Sidebar).To(Equal([]site.SidebarEntry{
				site.PathOnly("/"),
				site.PathOnly("/TDD-Tutorial/"),
				site.PathWithTitle("/Edd-Yerburgh/", "Edd Yerburgh Talk"),
				site.PathWithTitle("/demos/", "Demo"),
				site.PathOnly("/resources/"),
			}))
		})
	})
	When("a sidebar pair has three elements", func() {
		BeforeEach(func() {
			manifest = []byte("title: t\ndescription: d\nthemeConfig:\n  sidebar:\n    - [/a/, A, B]\n")
		})
		It("errors", func() {
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("[path, title] pair"))
		})
	})
	When("a sidebar entry is a number", func() {
		BeforeEach(func() {
			manifest = []byte("title: t\ndescription: d\nthemeConfig:\n  sidebar:\n    - 42\n")
		})
		It("errors", func() {
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("must be a string path"))
		})
	})
	When("a sidebar entry is a mapping", func() {
		BeforeEach(func() {
			manifest = []byte("title: t\ndescription: d\nthemeConfig:\n  sidebar:\n    - path: /a/\n")
		})
		It("errors", func() {
			Expect(err).To(HaveOccurred())
		})
	})
	When("the document has unknown fields", func() {
		BeforeEach(func() {
			manifest = []byte("title: t\ndescription: d\nbase: /docs/\n")
		})
		It("errors", func() {
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("base"))
		})
	})
	When("the input holds a second document", func() {
		BeforeEach(func() {
			manifest = []byte("title: a\ndescription: d\n---\ntitle: b\n")
		})
		It("errors", func() {
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("single YAML document"))
			Expect(cfg).To(BeNil())
		})
	})
	When("lists are empty", func() {
		BeforeEach(func() {
			manifest = []byte("title: t\ndescription: d\nthemeConfig:\n  nav: []\n  sidebar: []\n")
		})
		It("reads them as absent", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Theme.Nav).To(BeNil())
			Expect(cfg.Theme.Sidebar).To(BeNil())
		})
	})
	When("the document is empty", func() {
		BeforeEach(func() {
			manifest = []byte{}
		})
		It("errors", func() {
			Expect(err).To(MatchError("site configuration is empty"))
			Expect(cfg).To(BeNil())
		})
	})
})

var _ = Describe("Round trip", func() {
	var cfg *site.SiteConfig
	BeforeEach(func() {
		var err error
		cfg, err = site.Load()
		Expect(err).NotTo(HaveOccurred())
	})
	It("reloads an equal value from YAML", func() {
		b, err := site.Serialize(cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(b)).To(ContainSubstring("- [/demos/, Demo]"))
		got, err := site.Parse(b)
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(Equal(cfg))
	})
	It("reloads an equal value from JSON", func() {
		b, err := site.SerializeJSON(cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(b)).To(ContainSubstring(`"/Edd-Yerburgh/",`))
		got, err := site.ParseJSON(b)
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(Equal(cfg))
	})
	It("reads empty lists back as absent ones", func() {
		cfg.Theme.Nav = []site.NavEntry{}
		cfg.Theme.Sidebar = []site.SidebarEntry{}
		want := *cfg
		want.Theme.Nav, want.Theme.Sidebar = nil, nil
		b, err := site.Serialize(cfg)
		Expect(err).NotTo(HaveOccurred())
		got, err := site.Parse(b)
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(Equal(&want))
		b, err = site.SerializeJSON(cfg)
		Expect(err).NotTo(HaveOccurred())
		got, err = site.ParseJSON(b)
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(Equal(&want))
	})
	It("keeps numeric looking titles as strings", func() {
		cfg.Theme.Sidebar = []site.SidebarEntry{site.PathWithTitle("/2020/", "2020")}
		b, err := site.Serialize(cfg)
		Expect(err).NotTo(HaveOccurred())
		got, err := site.Parse(b)
		Expect(err).NotTo(HaveOccurred())
		Expect(got.Theme.Sidebar).To(Equal(cfg.Theme.Sidebar))
	})
})

var _ = Describe("ParseJSON", func() {
	It("rejects a second value after the configuration", func() {
		cfg, err := site.ParseJSON([]byte(`{"title":"a","description":"d"} {"title":"b"}`))
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("unexpected data after the site configuration"))
		Expect(cfg).To(BeNil())
	})
	It("accepts trailing whitespace", func() {
		cfg, err := site.ParseJSON([]byte("{\"title\":\"a\",\"description\":\"d\"}\n\n"))
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Title).To(Equal("a"))
	})
})

var _ = Describe("LoadFile", func() {
	It("loads YAML files", func() {
		cfg, err := site.LoadFile("testdata/site.yaml")
		Expect(err).NotTo(HaveOccurred())
		want, _ := site.Load()
		Expect(cfg).To(Equal(want))
	})
	It("loads JSON files", func() {
		cfg, err := site.LoadFile("testdata/site.json")
		Expect(err).NotTo(HaveOccurred())
		want, _ := site.Load()
		Expect(cfg).To(Equal(want))
	})
	It("rejects invalid files", func() {
		_, err := site.LoadFile("testdata/invalid.yaml")
		Expect(err).To(HaveOccurred())
		Expect(site.IsValidationError(err)).To(BeTrue())
	})
	It("rejects directories", func() {
		_, err := site.LoadFile("testdata")
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("directory"))
	})
	It("rejects missing files", func() {
		_, err := site.LoadFile("testdata/missing.yaml")
		Expect(err).To(HaveOccurred())
	})
})
