package load

import (
	"context"
	"fmt"
	"time"

	"dispatch/internal/entities"
	"github.com/shopspring/decimal"
)

type Config struct {
	DefaultFuelSurchargePercent decimal.Decimal
}

type Service struct {
	repository Repository
	carriers   CarrierRepository
	calculator RateCalculator
	states     StateMachine
	releaser   DriverReleaser
	txManager  TxManager
	config     Config
	effects    map[entities.LoadStatus][]effect
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
	carriers CarrierRepository,
	calculator RateCalculator,
	states StateMachine,
	releaser DriverReleaser,
	txManager TxManager,
	config Config,
	opts ...Option,
) *Service {
	s := &Service{
		repository: repository,
		carriers:   carriers,
		calculator: calculator,
		states:     states,
		releaser:   releaser,
		txManager:  txManager,
		config:     config,
		now:        func() time.Time { return time.Now().UTC() },
	}
	s.effects = s.sideEffects()
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Create(ctx context.Context, newLoad entities.NewLoad) (*entities.Load, error) {
	if err := validateNewLoad(newLoad); err != nil {
		return nil, err
	}

	load := s.buildLoad(newLoad)

	var created *entities.Load
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.repository.Create(ctx, load)
		if err != nil {
			return fmt.Errorf("create load: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	source := "api"
	if created.ImportConfidence != nil || created.SourceDocumentURL != nil {
		source = "import"
	}
	LoadsCreatedTotal.WithLabelValues(source).Inc()
	return created, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*entities.Load, error) {
	if id <= 0 {
		return nil, ErrInvalidLoadID
	}

	load, err := s.repository.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get load: %w", err)
	}
	return load, nil
}

// Update changes money and mileage fields and recomputes the total.
// Rate and fuel surcharge are frozen once the load is on an invoice.
func (s *Service) Update(ctx context.Context, id int64, update entities.LoadUpdate) (*entities.Load, error) {
	if id <= 0 {
		return nil, ErrInvalidLoadID
	}
	if err := validateUpdate(update); err != nil {
		return nil, err
	}

	var updated *entities.Load
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		load, err := s.repository.GetForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("lock load: %w", err)
		}

		if load.IsBilled() && (changes(load.RateAmount, update.RateAmount) ||
			changes(load.FuelSurchargePercent, update.FuelSurchargePercent) ||
			changes(load.FuelSurchargeAmount, update.FuelSurchargeAmount)) {
			return fmt.Errorf("load %d: %w", load.ID, ErrBilledLoadRateChange)
		}

		modify := s.updateModify(load, update)
		updated, err = s.repository.Update(ctx, modify)
		if err != nil {
			return fmt.Errorf("update load: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Service) AddAccessorial(ctx context.Context, loadID int64, accessorial entities.Accessorial) (*entities.Load, error) {
	if loadID <= 0 {
		return nil, ErrInvalidLoadID
	}
	if err := validateAccessorial(accessorial); err != nil {
		return nil, err
	}
	if accessorial.Quantity.IsZero() {
		accessorial.Quantity = decimal.NewFromInt(1)
	}

	var updated *entities.Load
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		load, err := s.repository.GetForUpdate(ctx, loadID)
		if err != nil {
			return fmt.Errorf("lock load: %w", err)
		}
		if load.IsBilled() {
			return fmt.Errorf("load %d: %w", load.ID, ErrAccessorialOnBilledLoad)
		}

		accessorial.LoadID = load.ID
		accessorial.Total = s.calculator.AccessorialTotal(accessorial.Quantity, accessorial.Rate)
		if _, err := s.repository.AddAccessorial(ctx, accessorial); err != nil {
			return fmt.Errorf("add accessorial: %w", err)
		}

		total := s.calculator.LoadTotal(
			load.RateAmount,
			load.FuelSurchargeAmount,
			load.AccessorialTotal().Add(accessorial.Total),
		)
		updated, err = s.repository.Update(ctx, entities.LoadModify{ID: load.ID, TotalAmount: &total})
		if err != nil {
			return fmt.Errorf("update load total: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// ChangeStatus moves a load along the status table and applies the side effects
// registered for the target status. Requesting the current status is a no-op.
func (s *Service) ChangeStatus(ctx context.Context, req entities.StatusChangeRequest) (*entities.Load, error) {
	if req.LoadID <= 0 {
		return nil, ErrInvalidLoadID
	}

	var result *entities.Load
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		load, err := s.repository.GetForUpdate(ctx, req.LoadID)
		if err != nil {
			return fmt.Errorf("lock load: %w", err)
		}

		if load.Status == req.Status {
			result = load
			return nil
		}

		if err := s.states.Validate(load, req.Status); err != nil {
			return err
		}

		change := &statusChange{
			load:    load,
			request: req,
			modify:  entities.LoadModify{ID: load.ID, Status: &req.Status},
			now:     s.now(),
		}
		for _, apply := range s.effects[req.Status] {
			if err := apply(ctx, change); err != nil {
				return err
			}
		}

		result, err = s.repository.Update(ctx, change.modify)
		if err != nil {
			return fmt.Errorf("update load: %w", err)
		}

		for _, driverID := range change.release {
			if err := s.releaser.ReleaseDriverIfIdle(ctx, driverID); err != nil {
				return fmt.Errorf("release driver %d: %w", driverID, err)
			}
		}

		LoadStatusTransitionsTotal.WithLabelValues(load.Status.String(), req.Status.String()).Inc()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidLoadID
	}

	return s.txManager.Do(ctx, func(ctx context.Context) error {
		load, err := s.repository.GetForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("lock load: %w", err)
		}

		if load.Status != entities.LoadOpen && load.Status != entities.LoadCancelled {
			return fmt.Errorf("load %d is %s: %w", load.ID, load.Status, ErrLoadNotDeletable)
		}

		if err := s.repository.Delete(ctx, id); err != nil {
			return fmt.Errorf("delete load: %w", err)
		}
		return nil
	})
}

func (s *Service) buildLoad(newLoad entities.NewLoad) entities.Load {
	rateType := newLoad.RateType
	if rateType == "" {
		rateType = entities.RateFlat
	}

	pct := s.config.DefaultFuelSurchargePercent
	if newLoad.FuelSurchargePercent != nil {
		pct = *newLoad.FuelSurchargePercent
	}

	var fuelSurcharge decimal.Decimal
	if newLoad.FuelSurchargeAmount != nil {
		fuelSurcharge = *newLoad.FuelSurchargeAmount
		if newLoad.FuelSurchargePercent == nil {
			pct = decimal.Zero
		}
	} else {
		fuelSurcharge = s.calculator.FuelSurcharge(newLoad.RateAmount, pct)
	}

	stops := make([]entities.Stop, len(newLoad.Stops))
	for i, stop := range newLoad.Stops {
		stop.Sequence = i + 1
		if stop.Type == "" {
			stop.Type = entities.StopDelivery
			if i == 0 {
				stop.Type = entities.StopPickup
			}
		}
		stops[i] = stop
	}

	accessorials := make([]entities.Accessorial, len(newLoad.Accessorials))
	accessorialTotal := decimal.Zero
	for i, a := range newLoad.Accessorials {
		if a.Quantity.IsZero() {
			a.Quantity = decimal.NewFromInt(1)
		}
		a.Total = s.calculator.AccessorialTotal(a.Quantity, a.Rate)
		accessorialTotal = accessorialTotal.Add(a.Total)
		accessorials[i] = a
	}

	return entities.Load{
		Reference:            newLoad.Reference,
		Status:               entities.LoadOpen,
		CustomerID:           newLoad.CustomerID,
		RateAmount:           newLoad.RateAmount,
		RateType:             rateType,
		FuelSurchargePercent: pct,
		FuelSurchargeAmount:  fuelSurcharge,
		TotalAmount:          s.calculator.LoadTotal(newLoad.RateAmount, fuelSurcharge, accessorialTotal),
		LoadedMiles:          newLoad.LoadedMiles,
		EmptyMiles:           newLoad.EmptyMiles,
		ImportConfidence:     newLoad.ImportConfidence,
		SourceDocumentURL:    newLoad.SourceDocumentURL,
		Stops:                stops,
		Accessorials:         accessorials,
	}
}

func (s *Service) updateModify(load *entities.Load, update entities.LoadUpdate) entities.LoadModify {
	rate := load.RateAmount
	if update.RateAmount != nil {
		rate = *update.RateAmount
	}

	pct := load.FuelSurchargePercent
	if update.FuelSurchargePercent != nil {
		pct = *update.FuelSurchargePercent
	}

	fuelSurcharge := load.FuelSurchargeAmount
	switch {
	case update.FuelSurchargeAmount != nil:
		fuelSurcharge = *update.FuelSurchargeAmount
	case update.FuelSurchargePercent != nil || (update.RateAmount != nil && pct.IsPositive()):
		fuelSurcharge = s.calculator.FuelSurcharge(rate, pct)
	}

	total := s.calculator.LoadTotal(rate, fuelSurcharge, load.AccessorialTotal())

	return entities.LoadModify{
		ID:                    load.ID,
		RateAmount:            &rate,
		FuelSurchargePercent:  &pct,
		FuelSurchargeAmount:   &fuelSurcharge,
		TotalAmount:           &total,
		LoadedMiles:           update.LoadedMiles,
		EmptyMiles:            update.EmptyMiles,
		ExcludeFromSettlement: update.ExcludeFromSettlement,
	}
}
