// Package observability defines the Prometheus metrics for the safari
// operations dashboard. Metrics are registered via promauto at init time
// and served from /metrics.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DatasetFetchFailures counts dashboard dataset fetches that settled
	// empty because the upstream call failed.
	DatasetFetchFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "safari_ops", Name: "dataset_fetch_failures_total", Help: "Dashboard dataset fetches that failed and settled empty"},
		[]string{"dataset"},
	)

	// TourCreateFailures counts best-effort tour creations that failed
	// during an assignment commit. These never abort the commit.
	TourCreateFailures = promauto.NewCounter(
		prometheus.CounterOpts{Namespace: "safari_ops", Name: "tour_create_failures_total", Help: "Best-effort tour record creations that failed"},
	)

	// AssignmentCommits counts assignment commit attempts by outcome
	// (committed, failed).
	AssignmentCommits = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "safari_ops", Name: "assignment_commits_total", Help: "Assignment commit attempts by outcome"},
		[]string{"outcome"},
	)

	// DashboardRefreshDuration observes how long a full fan-out refresh
	// takes to settle.
	DashboardRefreshDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{Namespace: "safari_ops", Name: "dashboard_refresh_duration_seconds", Help: "Full dashboard refresh latency", Buckets: prometheus.DefBuckets},
	)

	// HTTPRequestsTotal counts requests handled by this service.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "safari_ops", Name: "http_requests_total", Help: "Total HTTP requests handled"},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration observes per-request latency.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "safari_ops",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency distribution",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)
