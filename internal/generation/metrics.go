package generation

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts pipeline outcomes and times model calls. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	outcomes     *prometheus.CounterVec
	modelSeconds *prometheus.HistogramVec
}

// NewMetrics creates the generation collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "generation_outcomes_total",
			Help: "Generation calls by mode and by the pipeline stage that produced the result.",
		}, []string{"kind", "outcome"}),
		modelSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "generation_model_seconds",
			Help:    "Latency of model service calls.",
			Buckets: []float64{1, 2.5, 5, 10, 20, 30, 45, 60, 90},
		}, []string{"kind"}),
	}
	reg.MustRegister(m.outcomes, m.modelSeconds)
	return m
}

// Outcomes exposes the outcome counter, mainly for tests.
func (m *Metrics) Outcomes() *prometheus.CounterVec {
	return m.outcomes
}

func (m *Metrics) recordOutcome(mode Mode, o Outcome) {
	if m == nil {
		return
	}
	m.outcomes.WithLabelValues(string(mode), string(o)).Inc()
}

func (m *Metrics) observeModel(mode Mode, d time.Duration) {
	if m == nil {
		return
	}
	m.modelSeconds.WithLabelValues(string(mode)).Observe(d.Seconds())
}
