package metrics

import (
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

const namespace = "daakit"

// Recorder collects run metrics for a single process.
type Recorder struct {
	registry *prometheus.Registry
	runs     *prometheus.CounterVec
	steps    *prometheus.CounterVec
	profit   *prometheus.GaugeVec
	duration *prometheus.HistogramVec
}

// NewRecorder creates a Recorder with all collectors registered.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Number of algorithm runs by problem and outcome.",
		}, []string{"problem", "outcome"}),
		steps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fibonacci_steps_total",
			Help:      "Recursive calls or loop additions performed by Fibonacci runs.",
		}, []string{"algorithm"}),
		profit: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "profit",
			Help:      "Total profit of the last successful run per problem.",
		}, []string{"problem"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall time of algorithm runs.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 10, 8),
		}, []string{"problem"}),
	}
	r.registry.MustRegister(r.runs, r.steps, r.profit, r.duration)
	return r
}

// ObserveRun records one run of problem that took d and ended with err.
func (r *Recorder) ObserveRun(problem string, d time.Duration, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	r.runs.WithLabelValues(problem, outcome).Inc()
	r.duration.WithLabelValues(problem).Observe(d.Seconds())
}

// AddSteps adds n work steps for the named Fibonacci algorithm.
func (r *Recorder) AddSteps(algorithm string, n uint64) {
	r.steps.WithLabelValues(algorithm).Add(float64(n))
}

// SetProfit stores the profit of the latest run of problem.
func (r *Recorder) SetProfit(problem string, p float64) {
	r.profit.WithLabelValues(problem).Set(p)
}

// WriteText writes every gathered metric family to w in text format.
func (r *Recorder) WriteText(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
