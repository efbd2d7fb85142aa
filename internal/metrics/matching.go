package metrics

import "github.com/prometheus/client_golang/prometheus"

// Matching Prometheus metrics.
var (
	MatchRequestsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "panelmatch",
			Name:      "match_requests_total",
			Help:      "Total number of matching runs",
		},
	)

	MatchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "panelmatch",
			Name:      "match_duration_seconds",
			Help:      "Matching run duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
	)

	MatchCompaniesScoredTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "panelmatch",
			Name:      "match_companies_scored_total",
			Help:      "Total companies scored across all matching runs",
		},
	)

	MatchScoringFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "panelmatch",
			Name:      "match_scoring_failures_total",
			Help:      "Companies whose scoring failed and fell back to the default score",
		},
	)

	MatchResultsReturned = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "panelmatch",
			Name:      "match_results_returned",
			Help:      "Number of companies returned per matching run",
			Buckets:   []float64{0, 1, 2, 5, 10, 20, 50},
		},
	)
)

var matchMetricsRegistered bool

// RegisterMatchMetrics registers the matching metrics. Must be called once
// from main.
func RegisterMatchMetrics() {
	if matchMetricsRegistered {
		return
	}
	prometheus.MustRegister(MatchRequestsTotal)
	prometheus.MustRegister(MatchDuration)
	prometheus.MustRegister(MatchCompaniesScoredTotal)
	prometheus.MustRegister(MatchScoringFailuresTotal)
	prometheus.MustRegister(MatchResultsReturned)
	matchMetricsRegistered = true
}
