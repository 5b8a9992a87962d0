package metrics

import (
	apperrors "competition-registration-backend/internal/errors"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "competition_registration"

// RosterMetrics counts roster engine activity. A nil *RosterMetrics is a valid no-op.
type RosterMetrics struct {
	operations          *prometheus.CounterVec
	propagationFailures *prometheus.CounterVec
	repairQueueDepth    prometheus.Gauge
	repairRuns          *prometheus.CounterVec
}

// NewRosterMetrics creates the collectors and registers them with reg
func NewRosterMetrics(reg prometheus.Registerer) *RosterMetrics {
	m := &RosterMetrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "roster_operations_total",
			Help:      "Roster engine operations by name and outcome.",
		}, []string{"operation", "outcome"}),
		propagationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "roster_propagation_failures_total",
			Help:      "Sibling registration writes that failed during propagation.",
		}, []string{"operation"}),
		repairQueueDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "roster_repair_queue_depth",
			Help:      "Teams waiting for a repair sync.",
		}),
		repairRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "roster_repair_runs_total",
			Help:      "Repair syncs by outcome.",
		}, []string{"outcome"}),
	}
	reg.MustRegister(m.operations, m.propagationFailures, m.repairQueueDepth, m.repairRuns)
	return m
}

// ObserveOperation records one operation with an outcome derived from its error
func (m *RosterMetrics) ObserveOperation(operation string, err error) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(operation, Outcome(err)).Inc()
}

// AddPropagationFailures records failed sibling writes
func (m *RosterMetrics) AddPropagationFailures(operation string, count int) {
	if m == nil || count <= 0 {
		return
	}
	m.propagationFailures.WithLabelValues(operation).Add(float64(count))
}

// SetRepairQueueDepth publishes the current repair backlog
func (m *RosterMetrics) SetRepairQueueDepth(depth int) {
	if m == nil {
		return
	}
	m.repairQueueDepth.Set(float64(depth))
}

// ObserveRepair records one repair sync
func (m *RosterMetrics) ObserveRepair(err error) {
	if m == nil {
		return
	}
	m.repairRuns.WithLabelValues(Outcome(err)).Inc()
}

// Outcome buckets an error into a low-cardinality label
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case apperrors.IsValidation(err):
		return "invalid"
	case apperrors.IsAuthorization(err):
		return "forbidden"
	case apperrors.IsNotFound(err):
		return "not_found"
	case apperrors.IsConflict(err):
		return "conflict"
	case apperrors.IsCapacity(err):
		return "capacity"
	default:
		return "error"
	}
}
