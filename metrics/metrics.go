// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package metrics wires optional Prometheus instrumentation around engine
// stepping, grounded on the dependency pack's luxfi-consensus metrics
// package (itself a thin wrapper over prometheus.Registerer). A nil
// *Recorder is always safe to call methods on, so the engine core never
// forces a caller to bring Prometheus along.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/gazed/nbody/model"
)

// Recorder exposes the counters and histogram an operator would want when
// running the engine as a long-lived service: collision/merge counts and
// per-step wall time, mirroring the fields already present on
// model.StepSummary.
type Recorder struct {
	collisions prometheus.Counter
	merges     prometheus.Counter
	stepTime   prometheus.Histogram
	solverMode *prometheus.CounterVec
}

// NewRecorder registers the engine's collectors against reg and returns a
// Recorder bound to them. A nil Recorder is valid and every method on it
// is a no-op, so callers that don't want Prometheus can pass one through
// unconditionally.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		collisions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "nbody",
			Subsystem: "engine",
			Name:      "collisions_total",
			Help:      "Total number of body-pair overlaps detected across all steps.",
		}),
		merges: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "nbody",
			Subsystem: "engine",
			Name:      "merges_total",
			Help:      "Total number of inelastic merges across all steps.",
		}),
		stepTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "nbody",
			Subsystem: "engine",
			Name:      "step_duration_seconds",
			Help:      "Wall-clock time spent in a single Engine.Step call.",
			Buckets:   prometheus.DefBuckets,
		}),
		solverMode: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "nbody",
			Subsystem: "engine",
			Name:      "solver_mode_total",
			Help:      "Substeps evaluated per gravity solver mode (pairwise or barnes_hut).",
		}, []string{"mode"}),
	}

	for _, c := range []prometheus.Collector{r.collisions, r.merges, r.stepTime, r.solverMode} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// ObserveStep folds one StepSummary's counters into the recorder. Safe to
// call on a nil Recorder.
func (r *Recorder) ObserveStep(summary model.StepSummary, wallTime float64) {
	if r == nil {
		return
	}
	r.collisions.Add(float64(summary.CollisionEvents))
	r.merges.Add(float64(summary.MergedEvents))
	r.stepTime.Observe(wallTime)
	r.solverMode.WithLabelValues(model.SolverModePairwise).Add(float64(summary.PairwiseTicks))
	r.solverMode.WithLabelValues(model.SolverModeBarnesHut).Add(float64(summary.BarnesHutTicks))
}
