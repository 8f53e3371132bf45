package load

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	LoadStatusTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "load_status_transitions_total",
			Help: "Total number of applied load status transitions",
		},
		[]string{"from", "to"},
	)

	LoadsCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "loads_created_total",
			Help: "Total number of created loads by source",
		},
		[]string{"source"},
	)
)
