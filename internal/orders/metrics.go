package orders

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics provides observability for order runs.
// Tracks built and rejected orders and finalization durations.
type Metrics struct {
	OrdersBuilt    prometheus.Counter
	OrdersRejected *prometheus.CounterVec
	BuildDuration  prometheus.Histogram
}

// NewMetrics creates a Metrics instance registered on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		OrdersBuilt: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "typestatex_orders_built_total",
			Help: "Total number of orders finalized into a product",
		}),
		OrdersRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "typestatex_orders_rejected_total",
			Help: "Total number of orders rejected, by reason",
		}, []string{"reason"}),
		BuildDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "typestatex_build_duration_seconds",
			Help:    "Duration of driving one order through the builder",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1},
		}),
	}
	reg.MustRegister(m.OrdersBuilt, m.OrdersRejected, m.BuildDuration)
	return m
}

// IncrementBuilt records a successful finalization.
func (m *Metrics) IncrementBuilt() {
	m.OrdersBuilt.Inc()
}

// IncrementRejected records a rejected order.
func (m *Metrics) IncrementRejected(reason string) {
	m.OrdersRejected.WithLabelValues(reason).Inc()
}

// ObserveBuild records the duration of one build.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveBuild(start time.Time) {
	m.BuildDuration.Observe(time.Since(start).Seconds())
}
