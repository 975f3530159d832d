package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "event_planner"

// Operation labels
const (
	OperationSuggestTasks   = "suggest_tasks"
	OperationResolveVendors = "resolve_vendors"
)

// Outcome labels
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

var (
	SuggestionRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "suggestion_requests_total",
			Help:      "Total suggestion operations by outcome",
		},
		[]string{"operation", "outcome"},
	)

	SuggestionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "suggestion_duration_seconds",
			Help:      "Duration of suggestion operations in seconds",
			Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 20, 40},
		},
		[]string{"operation"},
	)

	VendorResolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "vendor_resolutions_total",
			Help:      "Vendor resolutions by final category and provider source",
		},
		[]string{"category", "source"},
	)

	CategoryDowngrades = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "category_downgrades_total",
			Help:      "Booking categories downgraded to general after a place search failure",
		},
		[]string{"from"},
	)

	ClassificationFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "classification_fallbacks_total",
			Help:      "Classifications that failed and were treated as general",
		},
	)

	ExtractionFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "extraction_failures_total",
			Help:      "Structured output extraction failures by shape and stage",
		},
		[]string{"shape", "stage"},
	)
)

// ObserveSuggestion records the outcome and duration of one operation.
func ObserveSuggestion(operation string, start time.Time, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeFailure
	}
	SuggestionRequests.WithLabelValues(operation, outcome).Inc()
	SuggestionDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
