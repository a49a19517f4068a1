// Package metrics provides Prometheus metrics for news-reader.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "newsreader"

var (
	// HTTPRequestsTotal counts handled requests.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration measures request latency.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// UpstreamRequestsTotal counts headline API calls by outcome.
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_requests_total",
			Help:      "Total number of NewsAPI requests",
		},
		[]string{"category", "outcome"},
	)

	// UpstreamDuration measures headline API latency.
	UpstreamDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_request_duration_seconds",
			Help:      "Duration of NewsAPI requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	// StoreOperationsTotal counts saved-article store operations.
	StoreOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_operations_total",
			Help:      "Total number of saved-article store operations",
		},
		[]string{"backend", "operation", "status"},
	)
)

// Upstream outcomes.
const (
	OutcomeOK          = "ok"
	OutcomeTransport   = "transport_error"
	OutcomeHTTPStatus  = "bad_status"
	OutcomeDecode      = "decode_error"
	OutcomeStatusNotOK = "status_not_ok"
)

// RecordHTTPRequest records a handled request.
func RecordHTTPRequest(method, route string, status int, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration)
}

// RecordUpstream records a NewsAPI call.
func RecordUpstream(category, outcome string, duration float64) {
	UpstreamRequestsTotal.WithLabelValues(category, outcome).Inc()
	UpstreamDuration.Observe(duration)
}

// RecordStoreOperation records a store call; err decides the status label.
func RecordStoreOperation(backend, operation string, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	StoreOperationsTotal.WithLabelValues(backend, operation, status).Inc()
}
