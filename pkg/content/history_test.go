// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package content_test

import (
	"context"
	"errors"
	"time"

	"github.com/perjor/sitecfg/pkg/content"
	"github.com/perjor/sitecfg/pkg/content/contentfakes"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Annotate", func() {
	var (
		ctx     context.Context
		pages   []*content.Page
		history *contentfakes.FakeHistory
		when    time.Time
		err     error
	)
	BeforeEach(func() {
		ctx = context.Background()
		when = time.Date(2019, time.November, 4, 10, 0, 0, 0, time.UTC)
		pages = []*content.Page{
			{Path: "/", File: "README.md"},
			{Path: "/demos/", File: "demos/README.md"},
		}
		history = &contentfakes.FakeHistory{}
	})
	JustBeforeEach(func() {
		err = content.Annotate(ctx, pages, history)
	})

	When("history knows every page", func() {
		BeforeEach(func() {
			history.LastModifiedReturns(when, nil)
		})
		It("sets last updated times", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(history.LastModifiedCallCount()).To(Equal(2))
			_, file := history.LastModifiedArgsForCall(1)
			Expect(file).To(Equal("demos/README.md"))
			Expect(pages[0].LastUpdated).To(Equal(when))
			Expect(pages[1].LastUpdated).To(Equal(when))
		})
	})

	When("history fails for a page", func() {
		BeforeEach(func() {
			history.LastModifiedReturnsOnCall(0, time.Time{}, errors.New("object not found"))
			history.LastModifiedReturnsOnCall(1, when, nil)
		})
		It("annotates the others and reports the failure", func() {
			Expect(err).To(MatchError(ContainSubstring("object not found")))
			Expect(pages[0].LastUpdated.IsZero()).To(BeTrue())
			Expect(pages[1].LastUpdated).To(Equal(when))
		})
	})

	When("the context is cancelled", func() {
		BeforeEach(func() {
			var cancel context.CancelFunc
			ctx, cancel = context.WithCancel(ctx)
			cancel()
		})
		It("stops", func() {
			Expect(err).To(MatchError(context.Canceled))
			Expect(history.LastModifiedCallCount()).To(Equal(0))
		})
	})
})
