// Package metrics provides Prometheus metrics for identity number operations.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Operation names used as the "operation" label.
const (
	OperationLookup   = "lookup"
	OperationCreate   = "create"
	OperationValidate = "validate"
)

// OutcomeOK labels successful operations; failures are labelled with their
// domain error code, and validate with "valid" or "invalid".
const OutcomeOK = "ok"

type Metrics struct {
	OperationsTotal          *prometheus.CounterVec   // by operation and outcome
	OperationDurationSeconds *prometheus.HistogramVec // by operation
	CoordinationNumbersTotal prometheus.Counter       // successful lookups/creates of coordination numbers
}

// New registers the metrics on reg. Tests pass a fresh prometheus.NewRegistry().
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		OperationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "pnr_operations_total",
			Help: "Identity number operations by operation and outcome",
		}, []string{"operation", "outcome"}),

		OperationDurationSeconds: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pnr_operation_duration_seconds",
			Help:    "Duration of identity number operations",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		}, []string{"operation"}),

		CoordinationNumbersTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "pnr_coordination_numbers_total",
			Help: "Successful operations whose number was a coordination number",
		}),
	}
}

func (m *Metrics) RecordOperation(operation, outcome string, durationSeconds float64) {
	m.OperationsTotal.WithLabelValues(operation, outcome).Inc()
	m.OperationDurationSeconds.WithLabelValues(operation).Observe(durationSeconds)
}

func (m *Metrics) RecordCoordinationNumber() {
	m.CoordinationNumbersTotal.Inc()
}
