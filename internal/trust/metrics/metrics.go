package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the trust classification workflow.
type Metrics struct {
	// Classification outcomes by resulting level
	Outcomes *prometheus.CounterVec

	// Fallbacks to the default level by reason
	Fallbacks *prometheus.CounterVec

	// Latency of the outbound generate call
	GenerateLatency prometheus.Histogram
}

// New creates a Metrics instance with all classifier metrics registered.
func New() *Metrics {
	return &Metrics{
		Outcomes: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "foodbridge_trust_classifications_total",
			Help: "Total trust classifications by resulting level",
		}, []string{"level"}),

		Fallbacks: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "foodbridge_trust_fallbacks_total",
			Help: "Total classifications that fell back to the default level by reason",
		}, []string{"reason"}), // reason: "generation_error", "invalid_label"

		GenerateLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "foodbridge_trust_generate_duration_seconds",
			Help:    "Duration of generative model calls",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 15},
		}),
	}
}

// IncrementOutcome records a classification result.
func (m *Metrics) IncrementOutcome(level string) {
	if m != nil {
		m.Outcomes.WithLabelValues(level).Inc()
	}
}

// IncrementFallback records a fallback to the default level.
func (m *Metrics) IncrementFallback(reason string) {
	if m != nil {
		m.Fallbacks.WithLabelValues(reason).Inc()
	}
}

// ObserveGenerateLatency records the duration of one generate call.
func (m *Metrics) ObserveGenerateLatency(d time.Duration) {
	if m != nil {
		m.GenerateLatency.Observe(d.Seconds())
	}
}
