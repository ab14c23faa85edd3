package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for account provisioning.
type Metrics struct {
	// Successful registrations by assigned trust level
	Registrations *prometheus.CounterVec

	// Provisioning failures by stage
	Failures *prometheus.CounterVec

	// Compensating identity deletes that themselves failed, leaving an
	// orphaned identity behind. Non-zero values need manual reconciliation.
	OrphanedIdentities prometheus.Counter

	// Overall registration latency including classification
	RegisterLatency prometheus.Histogram
}

// New creates a Metrics instance with all registration metrics registered.
func New() *Metrics {
	return &Metrics{
		Registrations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "foodbridge_registrations_total",
			Help: "Total successful registrations by trust level",
		}, []string{"trust_level"}),

		Failures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "foodbridge_registration_failures_total",
			Help: "Total registration failures by provisioning stage",
		}, []string{"stage"}), // stage: "identity", "profile"

		OrphanedIdentities: promauto.NewCounter(prometheus.CounterOpts{
			Name: "foodbridge_registration_orphaned_identities_total",
			Help: "Identities whose compensating delete failed after a profile insert failure",
		}),

		RegisterLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "foodbridge_registration_duration_seconds",
			Help:    "Duration of full registration including classification and provisioning",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
	}
}

// IncrementRegistered records a successful registration.
func (m *Metrics) IncrementRegistered(trustLevel string) {
	if m != nil {
		m.Registrations.WithLabelValues(trustLevel).Inc()
	}
}

// IncrementFailure records a provisioning failure at the given stage.
func (m *Metrics) IncrementFailure(stage string) {
	if m != nil {
		m.Failures.WithLabelValues(stage).Inc()
	}
}

// IncrementOrphanedIdentity records a failed compensating delete.
func (m *Metrics) IncrementOrphanedIdentity() {
	if m != nil {
		m.OrphanedIdentities.Inc()
	}
}

// ObserveRegisterLatency records the total registration duration.
func (m *Metrics) ObserveRegisterLatency(d time.Duration) {
	if m != nil {
		m.RegisterLatency.Observe(d.Seconds())
	}
}
