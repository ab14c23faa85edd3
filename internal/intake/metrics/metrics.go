package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for custom request intake.
type Metrics struct {
	// Intake submissions by outcome
	Submissions *prometheus.CounterVec
}

// New creates a Metrics instance with all intake metrics registered.
func New() *Metrics {
	return &Metrics{
		Submissions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "foodbridge_intake_submissions_total",
			Help: "Total custom request submissions by outcome",
		}, []string{"outcome"}), // outcome: "stored", "storage_error"
	}
}

// IncrementSubmission records one intake attempt.
func (m *Metrics) IncrementSubmission(outcome string) {
	if m != nil {
		m.Submissions.WithLabelValues(outcome).Inc()
	}
}
