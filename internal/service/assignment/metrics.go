package assignment

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AssignmentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "load_assignments_total",
			Help: "Total number of load assignment attempts by outcome",
		},
		[]string{"outcome"},
	)

	SchedulingConflictsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "load_scheduling_conflicts_total",
			Help: "Total number of assignments rejected because of overlapping loads",
		},
	)

	DriversReleasedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "drivers_released_total",
			Help: "Total number of drivers flipped back to AVAILABLE",
		},
	)
)
