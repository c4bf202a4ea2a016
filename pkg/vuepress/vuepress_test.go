// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package vuepress_test

import (
	"os"

	"github.com/perjor/sitecfg/pkg/site"
	"github.com/perjor/sitecfg/pkg/vuepress"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Vuepress", func() {
	var cfg *site.SiteConfig
	BeforeEach(func() {
		var err error
		cfg, err = site.Load()
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("Render", func() {
		It("writes a CommonJS module in wire key order", func() {
			b, err := vuepress.Render(cfg)
			Expect(err).NotTo(HaveOccurred())
			out := string(b)
			Expect(out).To(HavePrefix("module.exports = {\n  \"title\": \"Test Driven Development Learning Process\",\n  \"description\""))
			Expect(out).To(ContainSubstring("\"themeConfig\": {\n    \"lastUpdated\": \"Last Updated\",\n    \"repo\": \"perjor/learn_testing\",\n    \"nav\": ["))
			Expect(out).To(ContainSubstring("\"sidebar\": [\n      \"/\",\n      \"/TDD-Tutorial/\",\n      [\n        \"/Edd-Yerburgh/\",\n        \"Edd Yerburgh Talk\"\n      ],"))
		})
		It("fails for nil configurations", func() {
			_, err := vuepress.Render(nil)
			Expect(err).To(HaveOccurred())
		})
		It("round trips through ParseModule", func() {
			b, err := vuepress.Render(cfg)
			Expect(err).NotTo(HaveOccurred())
			got, err := vuepress.ParseModule(b)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(cfg))
		})
	})

	Describe("ParseModule", func() {
		It("reads a hand written configuration module", func() {
			b, err := os.ReadFile("testdata/config.js")
			Expect(err).NotTo(HaveOccurred())
			got, err := vuepress.ParseModule(b)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(cfg))
		})
		It("accepts comments and export default", func() {
			got, err := vuepress.ParseModule([]byte(`// site
export default {
  /* identity */
  title: "A \"quoted\" title",
  description: 'it\'s here',
  themeConfig: { sidebar: ['/', ['/a/', 'A'],], },
};
`))
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Title).To(Equal(`A "quoted" title`))
			Expect(got.Description).To(Equal("it's here"))
			Expect(got.Theme.Sidebar).To(Equal([]site.SidebarEntry{site.PathOnly("/"), site.PathWithTitle("/a/", "A")}))
		})
		It("rejects expressions", func() {
			_, err := vuepress.ParseModule([]byte("module.exports = { title: process.env.TITLE }"))
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("only literal values are allowed"))
		})
		It("rejects unknown keys", func() {
			_, err := vuepress.ParseModule([]byte("module.exports = { title: 't', base: '/docs/' }"))
			Expect(err).To(HaveOccurred())
		})
		It("rejects files without export", func() {
			_, err := vuepress.ParseModule([]byte("const config = {}"))
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("module.exports"))
		})
		It("rejects a second object after the configuration", func() {
			_, err := vuepress.ParseModule([]byte("module.exports = { title: 'a', description: 'd' } { title: 'b' }"))
			Expect(err).To(HaveOccurred())
		})
		It("rejects content after the closing semicolon", func() {
			_, err := vuepress.ParseModule([]byte("module.exports = { title: 'a', description: 'd' }; { title: 'b' }"))
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("unexpected content after ;"))
		})
		It("accepts comments after the closing semicolon", func() {
			got, err := vuepress.ParseModule([]byte("module.exports = { title: 'a', description: 'd' }; // end\n/* eof */\n"))
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Title).To(Equal("a"))
		})
		It("combines escaped surrogate pairs", func() {
			got, err := vuepress.ParseModule([]byte(`module.exports = { title: '\ud83d\ude00 Tests', description: 'caf\u00e9' }`))
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Title).To(Equal("\U0001F600 Tests"))
			Expect(got.Description).To(Equal("caf\u00e9"))
		})
		It("replaces unpaired surrogates", func() {
			got, err := vuepress.ParseModule([]byte(`module.exports = { title: '\ud83d Tests', description: 'd' }`))
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Title).To(Equal("\uFFFD Tests"))
		})
		It("rejects unterminated strings", func() {
			_, err := vuepress.ParseModule([]byte("module.exports = { title: 'abc }"))
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("unterminated string"))
		})
	})
})
