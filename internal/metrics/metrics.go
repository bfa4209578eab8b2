// Package metrics defines Prometheus metrics for wikipath.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wikipath_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wikipath_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	ErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wikipath_errors_total",
			Help: "Total API errors by code",
		},
		[]string{"type"},
	)

	SourceCallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wikipath_source_calls_total",
			Help: "Link source calls by operation and outcome",
		},
		[]string{"op", "outcome"},
	)

	CacheLookupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wikipath_cache_lookups_total",
			Help: "Run-scoped cache lookups by cache and result",
		},
		[]string{"cache", "result"},
	)

	NodesExpanded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wikipath_nodes_expanded_total",
			Help: "Nodes expanded by traversal strategy",
		},
		[]string{"strategy"},
	)

	NeighborsSkipped = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wikipath_neighbors_skipped_total",
			Help: "Neighbors skipped during expansion by reason",
		},
		[]string{"reason"},
	)

	SearchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wikipath_search_duration_seconds",
			Help:    "Path search duration in seconds",
			Buckets: []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120, 300},
		},
		[]string{"strategy", "outcome"},
	)

	UpstreamRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wikipath_upstream_requests_total",
			Help: "MediaWiki API requests by operation and status",
		},
		[]string{"op", "status"},
	)

	UpstreamRetries = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "wikipath_upstream_retries_total",
			Help: "MediaWiki API request retries",
		},
	)
)

func init() {
	prometheus.MustRegister(
		RequestDuration, RequestsTotal, ErrorsTotal,
		SourceCallsTotal, CacheLookupsTotal,
		NodesExpanded, NeighborsSkipped, SearchDuration,
		UpstreamRequests, UpstreamRetries,
	)
}
