package metrics

import "github.com/prometheus/client_golang/prometheus"

// Criterion extraction Prometheus metrics.
var (
	ExtractionRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "panelmatch",
			Name:      "extraction_requests_total",
			Help:      "Total number of criterion extraction requests",
		},
		[]string{"model", "status"},
	)

	ExtractionRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "panelmatch",
			Name:      "extraction_request_duration_seconds",
			Help:      "Criterion extraction request duration in seconds",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"model"},
	)

	ExtractionFallbacksTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "panelmatch",
			Name:      "extraction_fallbacks_total",
			Help:      "Analyses answered by the deterministic fallback instead of the provider",
		},
	)
)

var extractionMetricsRegistered bool

// RegisterExtractionMetrics registers the extraction metrics. Must be
// called once from main.
func RegisterExtractionMetrics() {
	if extractionMetricsRegistered {
		return
	}
	prometheus.MustRegister(ExtractionRequestsTotal)
	prometheus.MustRegister(ExtractionRequestDuration)
	prometheus.MustRegister(ExtractionFallbacksTotal)
	extractionMetricsRegistered = true
}
