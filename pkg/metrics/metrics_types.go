package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the detection engine
type Registry struct {
	// Clustering Metrics
	PassesTotal        *prometheus.CounterVec
	MovesTotal         *prometheus.CounterVec
	PhasesTotal        *prometheus.CounterVec
	PassDuration       *prometheus.HistogramVec
	PhaseDuration      *prometheus.HistogramVec
	RunDuration        *prometheus.HistogramVec
	RunsTotal          *prometheus.CounterVec
	AchievedModularity *prometheus.GaugeVec
	CommunitiesFound   prometheus.Gauge

	// Graph Metrics
	GraphVertices    prometheus.Gauge
	GraphEdges       prometheus.Gauge
	GraphTotalWeight prometheus.Gauge
	ColorClasses     prometheus.Gauge

	registry *prometheus.Registry
	mu       sync.RWMutex
}

var (
	// Global registry instance
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
	}

	r.initClusteringMetrics()
	r.initGraphMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
