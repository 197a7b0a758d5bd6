// Package metrics defines the Prometheus instrumentation for the service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "portfolio_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	upstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_upstream_requests_total",
			Help: "Total outbound requests to third-party APIs",
		},
		[]string{"service", "outcome"},
	)
)

// RecordHTTPRequest records one served HTTP request.
func RecordHTTPRequest(method, route, status string, duration time.Duration) {
	httpRequestDuration.WithLabelValues(method, route, status).Observe(duration.Seconds())
}

// RecordUpstreamRequest records one outbound API call and its outcome.
func RecordUpstreamRequest(service string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	upstreamRequests.WithLabelValues(service, outcome).Inc()
}
