// Package metrics records run statistics of the CLI in a private Prometheus
// registry. Nothing is served over HTTP; the registry can be dumped in the
// node-exporter textfile format.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "lvmarkov"

// Recorder owns the registry and the collectors of one process.
type Recorder struct {
	reg       *prometheus.Registry
	runs      *prometheus.CounterVec
	steps     prometheus.Counter
	states    prometheus.Gauge
	deviation prometheus.Gauge
	duration  prometheus.Histogram
}

// New registers all collectors on a fresh registry.
func New() *Recorder {
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Completed chain evaluations by numeric backend.",
		}, []string{"backend"}),
		steps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "steps_total",
			Help:      "State-vector updates applied step by step.",
		}),
		states: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "chain_states",
			Help:      "Number of states of the last evaluated chain.",
		}),
		deviation: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "verification_deviation",
			Help:      "Max absolute difference between the iterated and the exponentiated distribution.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall time of one evaluation including report output.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 10, 8),
		}),
	}
	r.reg.MustRegister(r.runs, r.steps, r.states, r.deviation, r.duration)

	return r
}

// ObserveRun records one finished evaluation.
func (r *Recorder) ObserveRun(backend string, states, steps int, deviation float64, elapsed time.Duration) {
	r.runs.WithLabelValues(backend).Inc()
	r.steps.Add(float64(steps))
	r.states.Set(float64(states))
	r.deviation.Set(deviation)
	r.duration.Observe(elapsed.Seconds())
}

// Gatherer exposes the registry for inspection.
func (r *Recorder) Gatherer() prometheus.Gatherer { return r.reg }

// WriteTextfile writes the registry to path in the text exposition format.
// The file is written to a temporary name and renamed into place.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.reg)
}
