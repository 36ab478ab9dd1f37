package metrics

import (
	"time"

	"crane_fmv/internal/usecase/interfaces"

	"github.com/prometheus/client_golang/prometheus"
)

type LifecycleMetrics struct {
	transitions       *prometheus.CounterVec
	valuationDuration *prometheus.HistogramVec
	valuedAssets      *prometheus.CounterVec
	refunds           *prometheus.CounterVec
}

var _ interfaces.ILifecycleMetrics = (*LifecycleMetrics)(nil)

// NewLifecycleMetrics registers the report lifecycle collectors on registerer
// (prometheus.DefaultRegisterer when nil).
func NewLifecycleMetrics(registerer prometheus.Registerer) *LifecycleMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	constLabels := prometheus.Labels{"service": "crane-fmv"}

	transitions := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:        "crane_fmv_report_transitions_total",
			Help:        "Report lifecycle operations by source status, resulting status and outcome.",
			ConstLabels: constLabels,
		},
		[]string{"operation", "from", "to", "outcome"},
	)

	valuationDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:        "crane_fmv_valuation_duration_seconds",
			Help:        "Time spent valuing every asset of a report.",
			Buckets:     []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 15},
			ConstLabels: constLabels,
		},
		[]string{"tier", "result"}, // ok | error
	)

	valuedAssets := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:        "crane_fmv_valued_assets_total",
			Help:        "Assets passed to the evaluator.",
			ConstLabels: constLabels,
		},
		[]string{"tier"},
	)

	refunds := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:        "crane_fmv_refund_requests_total",
			Help:        "Deleted reports whose approved payment must be refunded.",
			ConstLabels: constLabels,
		},
		[]string{"tier"},
	)

	registerer.MustRegister(transitions, valuationDuration, valuedAssets, refunds)

	return &LifecycleMetrics{
		transitions:       transitions,
		valuationDuration: valuationDuration,
		valuedAssets:      valuedAssets,
		refunds:           refunds,
	}
}

func (m *LifecycleMetrics) ObserveTransition(operation string, from, to string, outcome string) {
	if m == nil {
		return
	}
	if from == "" {
		from = "none"
	}
	m.transitions.WithLabelValues(operation, from, to, outcome).Inc()
}

func (m *LifecycleMetrics) ObserveValuation(tier string, assets int, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.valuationDuration.WithLabelValues(tier, result).Observe(elapsed.Seconds())
	m.valuedAssets.WithLabelValues(tier).Add(float64(assets))
}

func (m *LifecycleMetrics) RefundSignaled(tier string) {
	if m == nil {
		return
	}
	m.refunds.WithLabelValues(tier).Inc()
}
