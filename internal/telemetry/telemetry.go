// Package telemetry gives the mining pipeline a structured logger and a
// Prometheus metrics registry, both optional: a nil *Telemetry is safe to
// call methods on and simply does nothing, so callers that don't care about
// observability never need to thread a non-nil value through.
package telemetry

import (
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// Telemetry bundles a zerolog logger with the Prometheus collectors the
// mining pipeline updates as it runs.
type Telemetry struct {
	Log zerolog.Logger

	levelDuration  *prometheus.HistogramVec
	levelCandidates *prometheus.GaugeVec
	levelSurvivors  *prometheus.GaugeVec
	ruleCount       prometheus.Gauge
	loopIterations  *prometheus.CounterVec
}

// New builds a Telemetry writing structured logs at the given level to
// stderr and registering its collectors with reg. Pass a fresh
// prometheus.NewRegistry() in tests to avoid collisions with the global
// default registry.
func New(level zerolog.Level, reg prometheus.Registerer) *Telemetry {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(level).
		With().Timestamp().Logger()

	t := &Telemetry{
		Log: logger,
		levelDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "apriori",
			Name:      "level_duration_seconds",
			Help:      "Wall-clock time spent scanning a single Apriori level.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"stage"}),
		levelCandidates: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "apriori",
			Name:      "level_candidates",
			Help:      "Candidate item sets generated at the most recent level.",
		}, []string{"stage"}),
		levelSurvivors: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "apriori",
			Name:      "level_survivors",
			Help:      "Candidate item sets that survived the support filter at the most recent level.",
		}, []string{"stage"}),
		ruleCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "apriori",
			Name:      "rules_generated",
			Help:      "Association rules generated by the most recent run.",
		}),
		loopIterations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "apriori",
			Name:      "loop_iterations_total",
			Help:      "Outer loop-controller iterations, by loop kind.",
		}, []string{"loop"}),
	}

	if reg != nil {
		reg.MustRegister(t.levelDuration, t.levelCandidates, t.levelSurvivors, t.ruleCount, t.loopIterations)
	}
	return t
}

// LevelComplete records that a mining level finished, logging a structured
// line and updating the level-scoped gauges/histogram.
func (t *Telemetry) LevelComplete(stage string, level, candidates, survivors int, elapsed time.Duration) {
	if t == nil {
		return
	}
	t.Log.Info().
		Str("stage", stage).
		Int("level", level).
		Int("candidates", candidates).
		Int("survivors", survivors).
		Dur("elapsed", elapsed).
		Msg("level complete")
	t.levelDuration.WithLabelValues(stage).Observe(elapsed.Seconds())
	t.levelCandidates.WithLabelValues(stage).Set(float64(candidates))
	t.levelSurvivors.WithLabelValues(stage).Set(float64(survivors))
}

// LoopIteration records one outer-loop-controller iteration (support or
// confidence relaxation).
func (t *Telemetry) LoopIteration(loop string, threshold float64, resultSize int) {
	if t == nil {
		return
	}
	t.Log.Debug().
		Str("loop", loop).
		Float64("threshold", threshold).
		Int("resultSize", resultSize).
		Msg("loop iteration")
	t.loopIterations.WithLabelValues(loop).Inc()
}

// RulesGenerated records the final rule count for a run.
func (t *Telemetry) RulesGenerated(n int) {
	if t == nil {
		return
	}
	t.ruleCount.Set(float64(n))
}
