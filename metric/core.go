package metric

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Resolution status label values
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Metrics contains all composition-core metrics
type Metrics struct {
	// RegistrationsTotal counts submodule registrations per parent module
	RegistrationsTotal *prometheus.CounterVec
	// ResolutionsTotal counts name resolutions by operation and status
	ResolutionsTotal *prometheus.CounterVec
	// DeprecatedLookupsTotal counts successful legacy underscore lookups
	DeprecatedLookupsTotal *prometheus.CounterVec
	// StructuralFailuresTotal counts structural validation failures at scope close
	StructuralFailuresTotal prometheus.Counter
}

// NewMetrics creates a new Metrics instance with all composition metrics
func NewMetrics() *Metrics {
	return &Metrics{
		RegistrationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "modkit",
				Subsystem: "composition",
				Name:      "registrations_total",
				Help:      "Total number of submodules registered, by parent module",
			},
			[]string{"module"},
		),

		ResolutionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "modkit",
				Subsystem: "resolution",
				Name:      "resolutions_total",
				Help:      "Total number of name resolutions, by operation and status",
			},
			[]string{"operation", "status"},
		),

		DeprecatedLookupsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "modkit",
				Subsystem: "resolution",
				Name:      "deprecated_lookups_total",
				Help:      "Total number of successful legacy underscore-notation lookups, by module",
			},
			[]string{"module"},
		),

		StructuralFailuresTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "modkit",
				Subsystem: "composition",
				Name:      "structural_failures_total",
				Help:      "Total number of structural validation failures at scope close",
			},
		),
	}
}

// Register registers all metrics with the given registerer
func (m *Metrics) Register(reg prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		m.RegistrationsTotal,
		m.ResolutionsTotal,
		m.DeprecatedLookupsTotal,
		m.StructuralFailuresTotal,
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// ObserveResolution records the outcome of one resolution call
func (m *Metrics) ObserveResolution(operation string, err error) {
	status := StatusOK
	if err != nil {
		status = StatusError
	}
	m.ResolutionsTotal.WithLabelValues(operation, status).Inc()
}
