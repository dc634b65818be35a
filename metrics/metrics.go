// Package metrics defines Prometheus metrics for AVV runs.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder owns a registry of AVV collectors. It satisfies avv.Observer and
// is safe for concurrent use.
type Recorder struct {
	Registry *prometheus.Registry

	RunsTotal      prometheus.Counter
	SourcesScored  prometheus.Counter
	ReachedNodes   prometheus.Histogram
	TraversalDepth prometheus.Histogram
	RunDuration    prometheus.Histogram
	GraphNodes     prometheus.Gauge
	GraphEdges     prometheus.Gauge
}

// NewRecorder creates the collectors and registers them on a fresh registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		Registry: prometheus.NewRegistry(),
		RunsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "avv_runs_total",
			Help: "Total completed score computations",
		}),
		SourcesScored: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "avv_sources_scored_total",
			Help: "Total per-source traversals",
		}),
		ReachedNodes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "avv_reached_nodes",
			Help:    "Depth Map size per source",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		}),
		TraversalDepth: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "avv_traversal_depth",
			Help:    "Deepest layer reached per source",
			Buckets: prometheus.LinearBuckets(0, 2, 10),
		}),
		RunDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "avv_run_duration_seconds",
			Help:    "Score computation duration in seconds",
			Buckets: prometheus.DefBuckets,
		}),
		GraphNodes: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "avv_graph_nodes",
			Help: "Node count of the last scored graph",
		}),
		GraphEdges: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "avv_graph_edges",
			Help: "Edge count of the last scored graph",
		}),
	}
	r.Registry.MustRegister(
		r.RunsTotal,
		r.SourcesScored,
		r.ReachedNodes,
		r.TraversalDepth,
		r.RunDuration,
		r.GraphNodes,
		r.GraphEdges,
	)

	return r
}

// ObserveSource records one traversal.
func (r *Recorder) ObserveSource(reached, maxDepth int) {
	r.SourcesScored.Inc()
	r.ReachedNodes.Observe(float64(reached))
	r.TraversalDepth.Observe(float64(maxDepth))
}

// ObserveRun records one completed computation.
func (r *Recorder) ObserveRun(nodes, edges int, elapsed time.Duration) {
	r.RunsTotal.Inc()
	r.GraphNodes.Set(float64(nodes))
	r.GraphEdges.Set(float64(edges))
	r.RunDuration.Observe(elapsed.Seconds())
}

// WriteTextfile writes the registry in the text exposition format, suitable
// for the node_exporter textfile collector.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.Registry)
}
