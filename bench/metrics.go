package bench

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exposes benchmark timings as Prometheus collectors. A nil *Metrics
// is valid and discards every observation.
type Metrics struct {
	durations      *prometheus.HistogramVec
	speedup        *prometheus.GaugeVec
	parityFailures *prometheus.CounterVec
}

// NewMetrics creates the benchmark collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "utraverse",
			Name:      "run_duration_seconds",
			Help:      "Elapsed time of a single workload execution.",
			Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 12),
		}, []string{"workload", "mode"}),
		speedup: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "utraverse",
			Name:      "speedup_ratio",
			Help:      "Sequential over parallel mean elapsed time of the last measurement.",
		}, []string{"workload"}),
		parityFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "utraverse",
			Name:      "parity_failures_total",
			Help:      "Runs whose parallel result differed from the sequential one.",
		}, []string{"workload"}),
	}

	for _, c := range []prometheus.Collector{m.durations, m.speedup, m.parityFailures} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *Metrics) observe(workload Workload, mode string, d time.Duration) {
	if m == nil {
		return
	}

	m.durations.WithLabelValues(string(workload), mode).Observe(d.Seconds())
}

func (m *Metrics) setSpeedup(workload Workload, ratio float64) {
	if m == nil {
		return
	}

	m.speedup.WithLabelValues(string(workload)).Set(ratio)
}

func (m *Metrics) parityFailure(workload Workload) {
	if m == nil {
		return
	}

	m.parityFailures.WithLabelValues(string(workload)).Inc()
}
