// Package metrics exposes the service's Prometheus instrumentation on
// the default registry, served by the router at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "recovery_insights"

var (
	// DatasetLoads counts dataset swaps by source (file, upload,
	// synthetic).
	DatasetLoads = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "dataset_loads_total",
		Help:      "Dataset loads by source.",
	}, []string{"source"})

	// FormatErrors counts uploads and file loads rejected by the
	// normalizer before the synthetic fallback kicked in.
	FormatErrors = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "dataset_format_errors_total",
		Help:      "Ingestion attempts that failed schema detection.",
	})

	// AnalysisRequests counts core computations by kind (stats, weekly,
	// rolling, workload, assessment, readiness, squad).
	AnalysisRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "analysis_requests_total",
		Help:      "Analysis computations by kind.",
	}, []string{"kind"})

	// CacheHits and CacheMisses track the squad-selection result cache.
	CacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_hits_total",
		Help:      "Result cache hits.",
	})
	CacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_misses_total",
		Help:      "Result cache misses.",
	})

	// SelectionDuration observes squad selection latency, cache misses
	// only.
	SelectionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "squad_selection_duration_seconds",
		Help:      "Wall time of a full squad selection.",
		Buckets:   prometheus.DefBuckets,
	})
)
