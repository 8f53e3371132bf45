package invoice_aging

import (
	"context"
	"time"

	"dispatch/pkg/logger"
)

// InvoiceAging moves SENT invoices past their due date to OVERDUE.
type InvoiceAging struct {
	log      logger.Logger
	service  Service
	interval time.Duration
	now      func() time.Time
}

func NewInvoiceAging(log logger.Logger, service Service, interval time.Duration) *InvoiceAging {
	return &InvoiceAging{
		log:      log,
		service:  service,
		interval: interval,
		now:      time.Now,
	}
}

// WithClock подменяет источник времени, используется в тестах.
func (a *InvoiceAging) WithClock(now func() time.Time) *InvoiceAging {
	a.now = now
	return a
}

func (a *InvoiceAging) TTL() time.Duration {
	return a.interval
}

func (a *InvoiceAging) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, a.interval)
	defer cancel()

	rowsAffected, err := a.service.MarkOverdue(ctxWithTimeout, a.now().UTC())

	if rowsAffected > 0 {
		a.log.With(
			logger.NewField("overdue_invoices", rowsAffected),
		).Info("invoice aging")
	}

	return err
}

func (a *InvoiceAging) Info() string {
	return "invoice aging"
}
