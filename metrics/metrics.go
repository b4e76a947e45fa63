// Package metrics records solver progress into a private Prometheus registry.
//
// A Recorder is fed by genetic.Options.OnGeneration and by the final
// genetic.Result; Snapshot flattens the registry for logging.
package metrics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/gatsp/genetic"
)

// DefaultNamespace prefixes every metric name.
const DefaultNamespace = "gatsp"

// Recorder holds the solver metrics. Safe for concurrent use.
type Recorder struct {
	registry *prometheus.Registry

	Generations  prometheus.Counter
	Improvements prometheus.Counter
	BestCost     prometheus.Gauge
	MeanCost     prometheus.Gauge
	Stagnation   prometheus.Gauge
	Solves       *prometheus.CounterVec
	SolveSeconds prometheus.Histogram
	SolveGens    prometheus.Histogram
}

// NewRecorder creates a Recorder with its own registry. An empty namespace
// selects DefaultNamespace.
func NewRecorder(namespace string) *Recorder {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		Generations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generations_total",
			Help:      "Generations built across all solves.",
		}),
		Improvements: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "improvements_total",
			Help:      "Generations whose best cost beat the previous best.",
		}),
		BestCost: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "best_cost",
			Help:      "Best tour cost of the latest generation.",
		}),
		MeanCost: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "mean_cost",
			Help:      "Mean tour cost of the latest generation.",
		}),
		Stagnation: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "stagnation",
			Help:      "Consecutive non-improving generations.",
		}),
		Solves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solves_total",
			Help:      "Finished solves by stop reason.",
		}, []string{"reason"}),
		SolveSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "solve_duration_seconds",
			Help:      "Wall time of one solve.",
			Buckets:   prometheus.DefBuckets,
		}),
		SolveGens: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "solve_generations",
			Help:      "Generations per solve.",
			Buckets:   prometheus.ExponentialBuckets(8, 2, 10),
		}),
	}
	r.registry.MustRegister(
		r.Generations,
		r.Improvements,
		r.BestCost,
		r.MeanCost,
		r.Stagnation,
		r.Solves,
		r.SolveSeconds,
		r.SolveGens,
	)

	return r
}

// Registry exposes the underlying registry, e.g. for promhttp.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// Observe records one generation. Its signature matches
// genetic.Options.OnGeneration.
func (r *Recorder) Observe(st genetic.GenerationStats) {
	r.Generations.Inc()
	if st.Improved {
		r.Improvements.Inc()
	}
	r.BestCost.Set(st.Best)
	r.MeanCost.Set(st.Mean)
	r.Stagnation.Set(float64(st.Stagnation))
}

// ObserveResult records a finished solve.
func (r *Recorder) ObserveResult(res genetic.Result) {
	r.Solves.WithLabelValues(res.Reason.String()).Inc()
	r.SolveSeconds.Observe(res.Elapsed.Seconds())
	r.SolveGens.Observe(float64(res.Generations))
}

// Hook chains Observe in front of next, which may be nil.
func (r *Recorder) Hook(next func(genetic.GenerationStats)) func(genetic.GenerationStats) {
	return func(st genetic.GenerationStats) {
		r.Observe(st)
		if next != nil {
			next(st)
		}
	}
}

// Snapshot gathers the registry into name → value. Labelled series are keyed
// as name{k="v"}; histograms contribute name_count and name_sum.
func (r *Recorder) Snapshot() (map[string]float64, error) {
	mfs, err := r.registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("metrics: gather: %w", err)
	}

	out := make(map[string]float64)
	for _, mf := range mfs {
		name := mf.GetName()
		for _, m := range mf.GetMetric() {
			key := name
			if lps := m.GetLabel(); len(lps) > 0 {
				parts := make([]string, 0, len(lps))
				for _, lp := range lps {
					parts = append(parts, fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue()))
				}
				sort.Strings(parts)
				key = name + "{" + strings.Join(parts, ",") + "}"
			}
			switch {
			case m.GetCounter() != nil:
				out[key] = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				out[key] = m.GetGauge().GetValue()
			case m.GetHistogram() != nil:
				out[key+"_count"] = float64(m.GetHistogram().GetSampleCount())
				out[key+"_sum"] = m.GetHistogram().GetSampleSum()
			}
		}
	}

	return out, nil
}
