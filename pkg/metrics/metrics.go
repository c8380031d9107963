// Package metrics exposes Prometheus instrumentation for the gateway's
// inbound surface and its upstream calls.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "workload_analyzer_requests_total",
		Help: "Inbound HTTP requests handled by the gateway.",
	}, []string{"method", "path", "code"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "workload_analyzer_request_duration_seconds",
		Help:    "Inbound HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	upstreamRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "workload_analyzer_upstream_requests_total",
		Help: "Outbound calls to upstream services.",
	}, []string{"target", "code"})

	upstreamRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "workload_analyzer_upstream_request_duration_seconds",
		Help:    "Outbound call latency per upstream target.",
		Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
	}, []string{"target"})
)

// ObserveRequest records one handled inbound request.
func ObserveRequest(method, path string, statusCode int, duration time.Duration) {
	requestsTotal.WithLabelValues(method, path, strconv.Itoa(statusCode)).Inc()
	requestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveUpstreamRequest records one outbound call. A statusCode of zero
// means the call failed before a response was received.
func ObserveUpstreamRequest(target string, statusCode int, duration time.Duration) {
	upstreamRequestsTotal.WithLabelValues(target, strconv.Itoa(statusCode)).Inc()
	upstreamRequestDuration.WithLabelValues(target).Observe(duration.Seconds())
}

// Handler serves the metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
