package quick

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exports runner activity to Prometheus. A nil *Metrics records nothing.
type Metrics struct {
	trials         *prometheus.CounterVec
	runs           *prometheus.CounterVec
	shrinkSteps    *prometheus.CounterVec
	shrinkDuration *prometheus.HistogramVec
}

// NewMetrics registers the collectors with reg, or with the default
// registerer when reg is nil.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		trials: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "propkit_trials_total",
			Help: "Property trials partitioned by domain and outcome.",
		}, []string{"domain", "outcome"}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "propkit_runs_total",
			Help: "Property checks partitioned by outcome.",
		}, []string{"outcome"}),
		shrinkSteps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "propkit_shrink_steps_total",
			Help: "Accepted shrink steps partitioned by domain.",
		}, []string{"domain"}),
		shrinkDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "propkit_shrink_duration_seconds",
			Help:    "Wall time spent shrinking a counterexample.",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 15, 60},
		}, []string{"domain"}),
	}
	for _, collector := range []prometheus.Collector{m.trials, m.runs, m.shrinkSteps, m.shrinkDuration} {
		if err := reg.Register(collector); err != nil {
			return nil, fmt.Errorf("register quick collector: %w", err)
		}
	}
	return m, nil
}

func (m *Metrics) trial(domain, outcome string) {
	if m != nil {
		m.trials.WithLabelValues(domain, outcome).Inc()
	}
}

func (m *Metrics) run(outcome Outcome) {
	if m != nil {
		m.runs.WithLabelValues(string(outcome)).Inc()
	}
}

func (m *Metrics) shrinkStep(domain string) {
	if m != nil {
		m.shrinkSteps.WithLabelValues(domain).Inc()
	}
}

func (m *Metrics) shrunk(domain string, d time.Duration) {
	if m != nil {
		m.shrinkDuration.WithLabelValues(domain).Observe(d.Seconds())
	}
}
