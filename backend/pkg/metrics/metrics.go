package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics are registered through promauto so there is no init ordering to
// worry about; the server just mounts promhttp.

var (
	// GraphBuildsTotal counts graph builds, labeled by outcome.
	GraphBuildsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "meshwork_graph_builds_total",
			Help: "Total number of relationship graph builds",
		},
		[]string{"outcome"}, // ok, error, cancelled
	)

	// GraphBuildDuration measures the full snapshot-fetch-plus-build time.
	GraphBuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "meshwork_graph_build_duration_seconds",
			Help:    "Duration of relationship graph builds in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)

	// RecordsDroppedTotal counts records dropped during a build, by reason.
	RecordsDroppedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "meshwork_records_dropped_total",
			Help: "Total number of records dropped during graph assembly",
		},
		[]string{"reason"}, // partial_fetch, unresolvable_record, ghost_connection
	)

	// HTTPRequestsTotal counts requests, labeled by method, path and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "meshwork_http_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"method", "path", "status"},
	)
)
