package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// QueryDuration tracks storage query latency by operation (list, count, points, clusters, analytics).
	QueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "stopsearch_query_duration_seconds",
			Help:    "Duration of stop_search queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	QueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stopsearch_query_errors_total",
			Help: "Total number of failed stop_search queries",
		},
		[]string{"operation"},
	)

	CountCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "stopsearch_count_cache_hits_total",
			Help: "Total number of count cache hits",
		},
	)

	CountCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "stopsearch_count_cache_misses_total",
			Help: "Total number of count cache misses (including expired entries)",
		},
	)

	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stopsearch_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "route", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "stopsearch_api_request_duration_seconds",
			Help:    "API request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

// ObserveQuery records the latency of a storage query and counts it as failed when err is non-nil.
func ObserveQuery(operation string, start time.Time, err error) {
	QueryDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	if err != nil {
		QueryErrors.WithLabelValues(operation).Inc()
	}
}

// RecordAPIRequest records one served request.
func RecordAPIRequest(method, route string, status int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	APIRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}
