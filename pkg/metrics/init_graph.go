package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initGraphMetrics() {
	r.GraphVertices = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "communities_graph_vertices",
			Help: "Vertex count of the graph most recently submitted",
		},
	)

	r.GraphEdges = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "communities_graph_edges",
			Help: "Edge count of the graph most recently submitted",
		},
	)

	r.GraphTotalWeight = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "communities_graph_total_weight",
			Help: "Sum of weighted degrees of the graph most recently submitted",
		},
	)

	r.ColorClasses = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "communities_color_classes",
			Help: "Color class count of the first phase's partition",
		},
	)
}
