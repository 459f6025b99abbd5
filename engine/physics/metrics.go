package physics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	gridContacts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "voxelworld",
		Subsystem: "physics",
		Name:      "grid_contacts_total",
		Help:      "The number of grid contacts resolved, by direction.",
	}, []string{"direction"})

	platformContacts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "voxelworld",
		Subsystem: "physics",
		Name:      "platform_contacts_total",
		Help:      "The number of platform contacts, by outcome.",
	}, []string{"contact"})

	substepsPerAdvance = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "voxelworld",
		Subsystem: "physics",
		Name:      "advance_substeps",
		Help:      "The number of substeps a single advance was split into.",
		Buckets:   []float64{1, 2, 4, 8, 16, 32, 64},
	})
)
