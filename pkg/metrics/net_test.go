// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package metrics_test

import (
	"net/http"
	"net/http/httptest"

	"github.com/perjor/sitecfg/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("InstrumentTransport", func() {
	var (
		server   *httptest.Server
		registry *prometheus.Registry
		client   *http.Client
	)
	BeforeEach(func() {
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/missing" {
				w.WriteHeader(http.StatusNotFound)
			}
		}))
		registry = prometheus.NewRegistry()
		metrics.RegisterClientMetrics(registry)
		client = &http.Client{Transport: metrics.InstrumentTransport(nil)}
	})
	AfterEach(func() {
		server.Close()
	})

	It("counts every request regardless of status", func() {
		for _, p := range []string{"/", "/missing"} {
			resp, err := client.Get(server.URL + p)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.Body.Close()).To(Succeed())
		}
		count, err := metrics.ClientRequests(registry)
		Expect(err).NotTo(HaveOccurred())
		Expect(count).To(Equal(2.0))
	})
	It("starts from zero after registration", func() {
		count, err := metrics.ClientRequests(registry)
		Expect(err).NotTo(HaveOccurred())
		Expect(count).To(BeZero())
	})
})
