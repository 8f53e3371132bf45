package invoice

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	InvoicesGeneratedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "invoices_generated_total",
			Help: "Total number of invoice generation attempts by outcome",
		},
		[]string{"outcome"},
	)

	InvoicesMarkedOverdueTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "invoices_marked_overdue_total",
			Help: "Total number of invoices moved from SENT to OVERDUE by the aging sweep",
		},
	)

	PaymentsAppliedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "invoice_payments_applied_total",
			Help: "Total number of payments applied to invoices",
		},
	)
)
