package metrics

import (
	"time"
)

// RecordPass records one inner-loop pass with its duration and move count
func (r *Registry) RecordPass(strategy string, moves int, duration time.Duration) {
	r.PassesTotal.WithLabelValues(strategy).Inc()
	r.MovesTotal.WithLabelValues(strategy).Add(float64(moves))
	r.PassDuration.WithLabelValues(strategy).Observe(duration.Seconds())
}

// RecordPhase records one coarsening phase
func (r *Registry) RecordPhase(strategy string, duration time.Duration) {
	r.PhasesTotal.WithLabelValues(strategy).Inc()
	r.PhaseDuration.WithLabelValues(strategy).Observe(duration.Seconds())
}

// RecordRun records a completed detection run
func (r *Registry) RecordRun(strategy, status string, modularity float64, communities int, duration time.Duration) {
	r.RunsTotal.WithLabelValues(strategy, status).Inc()
	r.RunDuration.WithLabelValues(strategy).Observe(duration.Seconds())
	r.AchievedModularity.WithLabelValues(strategy).Set(modularity)
	r.CommunitiesFound.Set(float64(communities))
}

// UpdateGraphMetrics updates the submitted-graph gauges
func (r *Registry) UpdateGraphMetrics(vertices, edges int, totalWeight float64) {
	r.GraphVertices.Set(float64(vertices))
	r.GraphEdges.Set(float64(edges))
	r.GraphTotalWeight.Set(totalWeight)
}

// SetColorClasses updates the color class gauge
func (r *Registry) SetColorClasses(n int) {
	r.ColorClasses.Set(float64(n))
}
