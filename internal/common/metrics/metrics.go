// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Place lookup outcomes.
const (
	OutcomeSkipped       = "skipped"
	OutcomeFreshCache    = "fresh_cache"
	OutcomeFetched       = "fetched"
	OutcomeStaleFallback = "stale_fallback"
)

var (
	PlaceLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "place_lookups_total",
			Help: "Place data resolutions by outcome",
		},
		[]string{"outcome"},
	)

	PlaceLookupFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "place_lookup_failures_total",
			Help: "Failed upstream place lookups by error code",
		},
		[]string{"error_code"},
	)

	PlaceLookupDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "place_lookup_duration_seconds",
			Help:    "Duration of upstream place lookups in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)

	PlaceCacheWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "place_cache_writes_total",
			Help: "Place cache writes by backend and result",
		},
		[]string{"backend", "result"},
	)

	ContactSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contact_submissions_total",
			Help: "Contact form submissions by resolved status",
		},
		[]string{"status"},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests by route and status code",
		},
		[]string{"route", "code"},
	)
)
