package invoice

import (
	"context"
	"fmt"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/service/rate"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const defaultBatchConcurrency = 4

type Config struct {
	BatchConcurrency int
}

type Service struct {
	repository Repository
	loads      LoadRepository
	customers  CustomerRepository
	loadStatus LoadStatusChanger
	dueDates   DueDateFactory
	numbers    NumberFactory
	txManager  TxManager
	config     Config
	now        func() time.Time
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func New(
	repository Repository,
	loads LoadRepository,
	customers CustomerRepository,
	loadStatus LoadStatusChanger,
	dueDates DueDateFactory,
	numbers NumberFactory,
	txManager TxManager,
	config Config,
	opts ...Option,
) *Service {
	if config.BatchConcurrency <= 0 {
		config.BatchConcurrency = defaultBatchConcurrency
	}
	s := &Service{
		repository: repository,
		loads:      loads,
		customers:  customers,
		loadStatus: loadStatus,
		dueDates:   dueDates,
		numbers:    numbers,
		txManager:  txManager,
		config:     config,
		now:        func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate bills the customer's COMPLETED loads that are not on an invoice yet.
// When loadIDs is not empty only those loads are billed and each must be eligible.
// It returns nil, nil when nothing is eligible.
func (s *Service) Generate(ctx context.Context, customerID int64, issueDate time.Time, loadIDs []int64) (*entities.Invoice, error) {
	if customerID <= 0 {
		return nil, ErrInvalidCustomerID
	}
	if issueDate.IsZero() {
		return nil, ErrInvalidIssueDate
	}
	requested := uniqueIDs(loadIDs)

	customer, err := s.customers.Get(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}

	var generated *entities.Invoice
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		generated = nil

		loads, err := s.loads.ListInvoiceableForUpdate(ctx, customer.ID, requested)
		if err != nil {
			return fmt.Errorf("lock invoiceable loads: %w", err)
		}
		if len(requested) > 0 && len(loads) != len(requested) {
			return ErrLoadNotInvoiceable
		}
		if len(loads) == 0 {
			return nil
		}

		draft := s.build(customer, truncateDay(issueDate), loads)

		created, err := s.repository.Create(ctx, draft)
		if err != nil {
			return fmt.Errorf("create invoice: %w", err)
		}

		ids := make([]int64, len(loads))
		for i := range loads {
			ids[i] = loads[i].ID
		}
		if err := s.loads.SetInvoice(ctx, created.ID, ids); err != nil {
			return fmt.Errorf("stamp invoiced loads: %w", err)
		}

		generated = created
		return nil
	})
	if err != nil {
		InvoicesGeneratedTotal.WithLabelValues("failed").Inc()
		return nil, err
	}
	if generated == nil {
		InvoicesGeneratedTotal.WithLabelValues("empty").Inc()
		return nil, nil
	}

	InvoicesGeneratedTotal.WithLabelValues("created").Inc()
	return generated, nil
}

// GenerateBatch invoices each customer in its own transaction and collects the outcomes.
func (s *Service) GenerateBatch(ctx context.Context, customerIDs []int64, issueDate time.Time) ([]entities.InvoiceOutcome, error) {
	if len(customerIDs) == 0 {
		return nil, ErrEmptyBatch
	}
	if issueDate.IsZero() {
		return nil, ErrInvalidIssueDate
	}

	outcomes := make([]entities.InvoiceOutcome, len(customerIDs))

	var g errgroup.Group
	g.SetLimit(s.config.BatchConcurrency)
	for i, customerID := range customerIDs {
		g.Go(func() error {
			invoice, err := s.Generate(ctx, customerID, issueDate, nil)
			outcomes[i] = entities.InvoiceOutcome{
				CustomerID: customerID,
				Invoice:    invoice,
				Err:        err,
			}
			return nil
		})
	}
	_ = g.Wait()

	return outcomes, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*entities.Invoice, error) {
	if id <= 0 {
		return nil, ErrInvalidInvoiceID
	}
	if _, err := s.MarkOverdue(ctx, s.now()); err != nil {
		return nil, err
	}

	invoice, err := s.repository.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return invoice, nil
}

func (s *Service) List(ctx context.Context, filter entities.InvoiceFilter) ([]entities.Invoice, error) {
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, ErrUnknownStatus
	}
	if _, err := s.MarkOverdue(ctx, s.now()); err != nil {
		return nil, err
	}

	invoices, err := s.repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	return invoices, nil
}

// MarkOverdue moves every SENT invoice whose due date is before today to OVERDUE.
func (s *Service) MarkOverdue(ctx context.Context, now time.Time) (int64, error) {
	marked, err := s.repository.MarkOverdue(ctx, truncateDay(now))
	if err != nil {
		return 0, fmt.Errorf("mark overdue invoices: %w", err)
	}
	if marked > 0 {
		InvoicesMarkedOverdueTotal.Add(float64(marked))
	}
	return marked, nil
}

func (s *Service) UpdateDraft(ctx context.Context, id int64, update entities.InvoiceDraftUpdate) (*entities.Invoice, error) {
	if id <= 0 {
		return nil, ErrInvalidInvoiceID
	}
	if update.DueDate == nil && update.Notes == nil {
		return nil, ErrEmptyUpdate
	}

	var updated *entities.Invoice
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("lock invoice: %w", err)
		}
		if current.Status != entities.InvoiceDraft {
			return fmt.Errorf("invoice %d is %s: %w", current.ID, current.Status, ErrInvoiceNotEditable)
		}

		modify := entities.InvoiceModify{ID: id, Notes: update.Notes}
		if update.DueDate != nil {
			due := truncateDay(*update.DueDate)
			if due.Before(truncateDay(current.IssueDate)) {
				return ErrInvalidDueDate
			}
			modify.DueDate = &due
		}

		updated, err = s.repository.Update(ctx, modify)
		if err != nil {
			return fmt.Errorf("update invoice: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes a DRAFT invoice after releasing its loads for billing again.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidInvoiceID
	}

	return s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("lock invoice: %w", err)
		}
		if current.Status != entities.InvoiceDraft {
			return fmt.Errorf("invoice %d is %s: %w", current.ID, current.Status, ErrInvoiceNotEditable)
		}

		if err := s.loads.ClearInvoice(ctx, id); err != nil {
			return fmt.Errorf("unlink loads: %w", err)
		}
		if err := s.repository.Delete(ctx, id); err != nil {
			return fmt.Errorf("delete invoice: %w", err)
		}
		return nil
	})
}

// ChangeStatus applies the invoice status table. Sending an invoice moves every
// linked COMPLETED load to INVOICED; voiding keeps the load links.
func (s *Service) ChangeStatus(ctx context.Context, id int64, to entities.InvoiceStatus) (*entities.Invoice, error) {
	if id <= 0 {
		return nil, ErrInvalidInvoiceID
	}
	if !to.IsValid() {
		return nil, ErrUnknownStatus
	}

	var changed *entities.Invoice
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("lock invoice: %w", err)
		}

		if current.Status == to {
			changed = current
			return nil
		}
		if !canTransition(current.Status, to) {
			return &entities.TransitionError{
				From:   string(current.Status),
				To:     string(to),
				Reason: "transition is not allowed",
				Kind:   entities.ErrInvalidTransition,
			}
		}

		now := s.now()
		modify := entities.InvoiceModify{ID: id, Status: &to}
		switch to {
		case entities.InvoiceSent:
			modify.SentAt = &now
			if err := s.markLoadsInvoiced(ctx, id); err != nil {
				return err
			}
		case entities.InvoicePaid:
			paid := current.Total
			zero := decimal.Zero
			modify.PaidAt = &now
			modify.AmountPaid = &paid
			modify.BalanceDue = &zero
		case entities.InvoiceVoid:
			modify.VoidedAt = &now
		}

		changed, err = s.repository.Update(ctx, modify)
		if err != nil {
			return fmt.Errorf("update invoice: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return changed, nil
}

// ApplyPayment records a partial or full payment. A zero balance pays the invoice.
func (s *Service) ApplyPayment(ctx context.Context, id int64, amount decimal.Decimal) (*entities.Invoice, error) {
	if id <= 0 {
		return nil, ErrInvalidInvoiceID
	}
	amount = rate.Round2(amount)
	if !amount.IsPositive() {
		return nil, ErrInvalidPaymentAmount
	}

	var paid *entities.Invoice
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("lock invoice: %w", err)
		}
		if !acceptsPayments(current.Status) {
			return fmt.Errorf("invoice %d is %s: %w", current.ID, current.Status, ErrPaymentNotAccepted)
		}
		if amount.GreaterThan(current.BalanceDue) {
			return fmt.Errorf("payment %s over balance %s: %w", amount, current.BalanceDue, ErrPaymentExceedsBalance)
		}

		amountPaid := rate.Round2(current.AmountPaid.Add(amount))
		balance := rate.Round2(current.Total.Sub(amountPaid))
		modify := entities.InvoiceModify{
			ID:         id,
			AmountPaid: &amountPaid,
			BalanceDue: &balance,
		}
		if balance.IsZero() {
			status := entities.InvoicePaid
			now := s.now()
			modify.Status = &status
			modify.PaidAt = &now
		}

		paid, err = s.repository.Update(ctx, modify)
		if err != nil {
			return fmt.Errorf("update invoice: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	PaymentsAppliedTotal.Inc()
	return paid, nil
}

func (s *Service) markLoadsInvoiced(ctx context.Context, invoiceID int64) error {
	loads, err := s.loads.ListByInvoice(ctx, invoiceID)
	if err != nil {
		return fmt.Errorf("list invoice loads: %w", err)
	}

	for i := range loads {
		if loads[i].Status != entities.LoadCompleted {
			continue
		}
		_, err := s.loadStatus.ChangeStatus(ctx, entities.StatusChangeRequest{
			LoadID: loads[i].ID,
			Status: entities.LoadInvoiced,
		})
		if err != nil {
			return fmt.Errorf("mark load %d invoiced: %w", loads[i].ID, err)
		}
	}
	return nil
}

func (s *Service) build(customer *entities.Customer, issueDate time.Time, loads []entities.Load) entities.Invoice {
	lines := make([]entities.InvoiceLineItem, 0, len(loads)*2)
	subtotal, fuel, accessorials := decimal.Zero, decimal.Zero, decimal.Zero

	add := func(loadID int64, lineType entities.InvoiceLineType, description string, amount decimal.Decimal) {
		lines = append(lines, entities.InvoiceLineItem{
			Sequence:    len(lines) + 1,
			LoadID:      loadID,
			Type:        lineType,
			Description: description,
			Amount:      amount,
		})
	}

	for i := range loads {
		load := &loads[i]
		label := loadLabel(load)

		add(load.ID, entities.InvoiceLineLoadCharge, label, load.RateAmount)
		subtotal = subtotal.Add(load.RateAmount)

		if load.FuelSurchargeAmount.IsPositive() {
			add(load.ID, entities.InvoiceLineFuelSurcharge, label+" fuel surcharge", load.FuelSurchargeAmount)
			fuel = fuel.Add(load.FuelSurchargeAmount)
		}

		for _, a := range load.Accessorials {
			description := a.Description
			if description == "" {
				description = a.Type
			}
			add(load.ID, entities.InvoiceLineAccessorial, label+" "+description, a.Total)
			accessorials = accessorials.Add(a.Total)
		}
	}

	total := rate.Round2(subtotal.Add(fuel).Add(accessorials))

	return entities.Invoice{
		Number:             s.numbers.InvoiceNumber(issueDate),
		CustomerID:         customer.ID,
		Status:             entities.InvoiceDraft,
		IssueDate:          issueDate,
		DueDate:            s.dueDates.CalculateDueDate(issueDate, customer.PaymentTermsDays),
		Subtotal:           rate.Round2(subtotal),
		FuelSurchargeTotal: rate.Round2(fuel),
		AccessorialTotal:   rate.Round2(accessorials),
		Total:              total,
		AmountPaid:         decimal.Zero,
		BalanceDue:         total,
		LineItems:          lines,
	}
}

func loadLabel(load *entities.Load) string {
	if load.Reference != "" {
		return "Load " + load.Reference
	}
	return fmt.Sprintf("Load #%d", load.ID)
}
