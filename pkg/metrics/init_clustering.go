package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initClusteringMetrics() {
	r.PassesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "communities_passes_total",
			Help: "Total number of inner-loop passes executed",
		},
		[]string{"strategy"},
	)

	r.MovesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "communities_vertex_moves_total",
			Help: "Total number of committed vertex moves",
		},
		[]string{"strategy"},
	)

	r.PhasesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "communities_phases_total",
			Help: "Total number of coarsening phases executed",
		},
		[]string{"strategy"},
	)

	r.PassDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "communities_pass_duration_seconds",
			Help:    "Inner-loop pass duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
		},
		[]string{"strategy"},
	)

	r.PhaseDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "communities_phase_duration_seconds",
			Help:    "Phase duration (inner loop plus coarsening) in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1.0, 5.0, 30.0},
		},
		[]string{"strategy"},
	)

	r.RunDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "communities_run_duration_seconds",
			Help:    "End-to-end detection run duration in seconds",
			Buckets: []float64{0.01, 0.1, 1.0, 10.0, 60.0, 300.0},
		},
		[]string{"strategy"},
	)

	r.RunsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "communities_runs_total",
			Help: "Total number of detection runs",
		},
		[]string{"strategy", "status"},
	)

	r.AchievedModularity = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "communities_achieved_modularity",
			Help: "Modularity of the most recent run's final assignment",
		},
		[]string{"strategy"},
	)

	r.CommunitiesFound = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "communities_found",
			Help: "Number of communities in the most recent run's result",
		},
	)
}
