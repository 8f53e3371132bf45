package settlement

import (
	"context"
	"fmt"
	"strings"
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
	drivers    DriverRepository
	calculator PayCalculator
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
	drivers DriverRepository,
	calculator PayCalculator,
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
		drivers:    drivers,
		calculator: calculator,
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

// Generate rolls every eligible, unsettled load of the driver delivered within
// the period into a new DRAFT settlement. It returns nil, nil when nothing is eligible.
func (s *Service) Generate(
	ctx context.Context,
	driverID int64,
	period entities.SettlementPeriod,
	requestedBy string,
) (*entities.Settlement, error) {
	if err := validateRequest(driverID, period, requestedBy); err != nil {
		return nil, err
	}

	driver, err := s.drivers.Get(ctx, driverID)
	if err != nil {
		return nil, fmt.Errorf("get driver: %w", err)
	}

	var generated *entities.Settlement
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		generated = nil

		from, to := period.Bounds()
		loads, err := s.loads.ListSettleableForUpdate(ctx, driver.ID, from, to)
		if err != nil {
			return fmt.Errorf("lock settleable loads: %w", err)
		}
		if len(loads) == 0 {
			return nil
		}

		deductions, err := s.drivers.ListActiveDeductions(ctx, driver.ID)
		if err != nil {
			return fmt.Errorf("list deductions: %w", err)
		}

		draft := s.build(driver, period, requestedBy, loads, deductions)

		created, err := s.repository.Create(ctx, draft)
		if err != nil {
			return fmt.Errorf("create settlement: %w", err)
		}

		loadIDs := make([]int64, len(loads))
		for i := range loads {
			loadIDs[i] = loads[i].ID
		}
		if err := s.loads.SetSettlement(ctx, created.ID, loadIDs); err != nil {
			return fmt.Errorf("stamp settled loads: %w", err)
		}

		if consumed := oneOffDeductionIDs(deductions); len(consumed) > 0 {
			if err := s.drivers.DeactivateDeductions(ctx, consumed); err != nil {
				return fmt.Errorf("deactivate consumed deductions: %w", err)
			}
		}

		generated = created
		return nil
	})
	if err != nil {
		SettlementsGeneratedTotal.WithLabelValues("failed").Inc()
		return nil, err
	}

	if generated == nil {
		SettlementsGeneratedTotal.WithLabelValues("empty").Inc()
		return nil, nil
	}

	SettlementsGeneratedTotal.WithLabelValues("created").Inc()
	SettledLoadsTotal.Add(float64(generated.LoadCount))
	return generated, nil
}

// GenerateBatch settles each driver in its own transaction. A failing driver
// never rolls back the others; outcomes keep the order of driverIDs.
func (s *Service) GenerateBatch(
	ctx context.Context,
	driverIDs []int64,
	period entities.SettlementPeriod,
	requestedBy string,
) ([]entities.SettlementOutcome, error) {
	if len(driverIDs) == 0 {
		return nil, ErrEmptyBatch
	}
	if err := validateRequest(driverIDs[0], period, requestedBy); err != nil {
		return nil, err
	}

	outcomes := make([]entities.SettlementOutcome, len(driverIDs))

	var g errgroup.Group
	g.SetLimit(s.config.BatchConcurrency)
	for i, driverID := range driverIDs {
		g.Go(func() error {
			settlement, err := s.Generate(ctx, driverID, period, requestedBy)
			outcomes[i] = entities.SettlementOutcome{
				DriverID:   driverID,
				Settlement: settlement,
				Err:        err,
			}
			return nil
		})
	}
	_ = g.Wait()

	return outcomes, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*entities.Settlement, error) {
	if id <= 0 {
		return nil, ErrInvalidSettlementID
	}

	settlement, err := s.repository.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get settlement: %w", err)
	}
	return settlement, nil
}

// AdvanceStatus moves DRAFT to APPROVED and APPROVED to PAID. Requesting the
// current status is a no-op; any other move is rejected.
func (s *Service) AdvanceStatus(ctx context.Context, id int64, to entities.SettlementStatus) (*entities.Settlement, error) {
	if id <= 0 {
		return nil, ErrInvalidSettlementID
	}
	if !isKnownStatus(to) {
		return nil, ErrUnknownStatus
	}

	var advanced *entities.Settlement
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("lock settlement: %w", err)
		}

		if current.Status == to {
			advanced = current
			return nil
		}

		if next, ok := nextStatus[current.Status]; !ok || next != to {
			return &entities.TransitionError{
				From:   string(current.Status),
				To:     string(to),
				Reason: "settlements only move forward DRAFT -> APPROVED -> PAID",
				Kind:   entities.ErrInvalidTransition,
			}
		}

		now := s.now()
		modify := entities.SettlementModify{ID: id, Status: &to}
		switch to {
		case entities.SettlementApproved:
			modify.ApprovedAt = &now
		case entities.SettlementPaid:
			modify.PaidAt = &now
		}

		advanced, err = s.repository.Update(ctx, modify)
		if err != nil {
			return fmt.Errorf("update settlement: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return advanced, nil
}

var nextStatus = map[entities.SettlementStatus]entities.SettlementStatus{
	entities.SettlementDraft:    entities.SettlementApproved,
	entities.SettlementApproved: entities.SettlementPaid,
}

func (s *Service) build(
	driver *entities.Driver,
	period entities.SettlementPeriod,
	requestedBy string,
	loads []entities.Load,
	deductions []entities.Deduction,
) entities.Settlement {
	lines := make([]entities.SettlementLineItem, 0, len(loads)+len(deductions))

	gross := decimal.Zero
	var miles int64
	for i := range loads {
		load := &loads[i]
		pay := s.calculator.DriverPay(driver, load)
		gross = gross.Add(pay)
		miles += load.LoadedMiles

		loadID := load.ID
		lines = append(lines, entities.SettlementLineItem{
			Sequence:    len(lines) + 1,
			Type:        entities.SettlementLineLoadPay,
			LoadID:      &loadID,
			Description: loadDescription(load),
			Miles:       load.LoadedMiles,
			Amount:      pay,
		})
	}

	deducted := decimal.Zero
	for i := range deductions {
		d := &deductions[i]
		amount := rate.Round2(d.Amount.Abs())
		deducted = deducted.Add(amount)

		deductionID := d.ID
		lines = append(lines, entities.SettlementLineItem{
			Sequence:    len(lines) + 1,
			Type:        entities.SettlementLineDeduction,
			DeductionID: &deductionID,
			Description: d.Description,
			Amount:      amount.Neg(),
		})
	}

	start, endExclusive := period.Bounds()

	return entities.Settlement{
		Number:      s.numbers.SettlementNumber(s.now()),
		DriverID:    driver.ID,
		PeriodStart: start,
		PeriodEnd:   endExclusive.AddDate(0, 0, -1),
		GrossPay:    rate.Round2(gross),
		Deductions:  rate.Round2(deducted),
		NetPay:      rate.Round2(gross.Sub(deducted)),
		TotalMiles:  miles,
		LoadCount:   len(loads),
		Status:      entities.SettlementDraft,
		RequestedBy: requestedBy,
		LineItems:   lines,
	}
}

func loadDescription(load *entities.Load) string {
	if load.Reference != "" {
		return "Load " + load.Reference
	}
	return fmt.Sprintf("Load #%d", load.ID)
}

func oneOffDeductionIDs(deductions []entities.Deduction) []int64 {
	var ids []int64
	for _, d := range deductions {
		if !d.Recurring {
			ids = append(ids, d.ID)
		}
	}
	return ids
}

func validateRequest(driverID int64, period entities.SettlementPeriod, requestedBy string) error {
	if driverID <= 0 {
		return ErrInvalidDriverID
	}
	if period.Start.IsZero() || period.End.IsZero() {
		return ErrInvalidPeriod
	}
	start, end := period.Bounds()
	if !end.After(start) {
		return ErrInvalidPeriod
	}
	if strings.TrimSpace(requestedBy) == "" {
		return ErrMissingRequestedBy
	}
	return nil
}

func isKnownStatus(status entities.SettlementStatus) bool {
	switch status {
	case entities.SettlementDraft, entities.SettlementApproved, entities.SettlementPaid:
		return true
	default:
		return false
	}
}
