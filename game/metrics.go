package game

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ticksTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "voxelworld",
		Subsystem: "world",
		Name:      "ticks_total",
		Help:      "The number of simulated ticks.",
	})

	tickDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "voxelworld",
		Subsystem: "world",
		Name:      "tick_duration_seconds",
		Help:      "The wall time spent in one tick.",
		Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 8),
	})

	entityCount = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "voxelworld",
		Subsystem: "world",
		Name:      "entities",
		Help:      "The number of entities after the last tick.",
	})

	deferredOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "voxelworld",
		Subsystem: "world",
		Name:      "deferred_operations_total",
		Help:      "The number of spawns and removals queued during a tick.",
	}, []string{"operation"})

	raycasts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "voxelworld",
		Subsystem: "world",
		Name:      "raycasts_total",
		Help:      "The number of raycasts against the grid, by result.",
	}, []string{"result"})
)
