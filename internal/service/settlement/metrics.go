package settlement

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SettlementsGeneratedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "settlements_generated_total",
			Help: "Total number of settlement generation attempts by outcome",
		},
		[]string{"outcome"},
	)

	SettledLoadsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "settled_loads_total",
			Help: "Total number of loads rolled into driver settlements",
		},
	)
)
