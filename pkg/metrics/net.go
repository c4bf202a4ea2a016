// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Namespace prefixes every sitecfg metric name
const Namespace = "sitecfg"

// ClientRequestsTotal is the name of the counter of requests sent by
// instrumented transports
const ClientRequestsTotal = Namespace + "_client_api_requests_total"

var (
	clientInFlightGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      "client_in_flight_requests",
		Help:      "A gauge of in-flight requests to the repository host.",
	})

	clientCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "client_api_requests_total",
		Help:      "A counter for requests sent to the repository host.",
	},
		[]string{"code", "method"},
	)

	clientTLSLatencyVec = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "tls_duration_seconds",
		Help:      "Trace tls latency histogram.",
		Buckets:   []float64{.05, .1, .25, .5},
	},
		[]string{"event"},
	)

	clientHistVec = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "request_duration_seconds",
		Help:      "A histogram of request latencies.",
		Buckets:   prometheus.DefBuckets,
	},
		[]string{},
	)
)

// RegisterClientMetrics resets the client metrics and registers them in
// registry, or in the default registry when registry is nil
func RegisterClientMetrics(registry prometheus.Registerer) {
	ResetClientMetrics()
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	registry.MustRegister(clientCounter, clientTLSLatencyVec, clientHistVec, clientInFlightGauge)
}

// ResetClientMetrics resets the HTTP client metrics
func ResetClientMetrics() {
	clientCounter.Reset()
	clientTLSLatencyVec.Reset()
	clientHistVec.Reset()
	clientInFlightGauge.Set(0.0)
}

// InstrumentTransport wraps next with middleware metering the requests
// that actually leave the process
func InstrumentTransport(next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	trace := &promhttp.InstrumentTrace{
		TLSHandshakeStart: func(t float64) {
			clientTLSLatencyVec.WithLabelValues("tls_handshake_start").Observe(t)
		},
		TLSHandshakeDone: func(t float64) {
			clientTLSLatencyVec.WithLabelValues("tls_handshake_done").Observe(t)
		},
	}
	return promhttp.InstrumentRoundTripperInFlight(clientInFlightGauge,
		promhttp.InstrumentRoundTripperCounter(clientCounter,
			promhttp.InstrumentRoundTripperTrace(trace,
				promhttp.InstrumentRoundTripperDuration(clientHistVec, next),
			),
		),
	)
}

// ClientRequests sums the request counter gathered from g
func ClientRequests(g prometheus.Gatherer) (float64, error) {
	families, err := g.Gather()
	if err != nil {
		return 0, err
	}
	var total float64
	for _, family := range families {
		if family.GetName() != ClientRequestsTotal {
			continue
		}
		for _, m := range family.GetMetric() {
			total += m.GetCounter().GetValue()
		}
	}
	return total, nil
}
