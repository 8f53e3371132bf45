package assignment

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"dispatch/internal/entities"
)

// Service assigns drivers and vehicles to loads and keeps driver availability in sync.
//
// Lock order is always the load row first, then driver rows by ascending id,
// then the truck row.
type Service struct {
	loads     LoadRepository
	drivers   DriverRepository
	states    StateMachine
	detector  ConflictDetector
	txManager TxManager
	now       func() time.Time
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func New(
	loads LoadRepository,
	drivers DriverRepository,
	states StateMachine,
	detector ConflictDetector,
	txManager TxManager,
	opts ...Option,
) *Service {
	s := &Service{
		loads:     loads,
		drivers:   drivers,
		states:    states,
		detector:  detector,
		txManager: txManager,
		now:       func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Assign(ctx context.Context, req entities.AssignmentRequest) (*entities.Load, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var assigned *entities.Load
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		load, err := s.loads.GetForUpdate(ctx, req.LoadID)
		if err != nil {
			return fmt.Errorf("lock load: %w", err)
		}

		if !isAssignable(load.Status) {
			return fmt.Errorf("load %d is %s: %w", load.ID, load.Status, ErrLoadNotAssignable)
		}

		start, end, ok := load.Window()
		if !ok {
			return fmt.Errorf("load %d: %w", load.ID, ErrLoadHasNoStops)
		}

		newDrivers := requestedDrivers(req)
		if err := s.lockDrivers(ctx, newDrivers); err != nil {
			return err
		}

		for _, driverID := range newDrivers {
			others, err := s.loads.ListActiveForDriver(ctx, driverID, load.ID)
			if err != nil {
				return fmt.Errorf("list active loads of driver %d: %w", driverID, err)
			}

			availability := s.detector.CheckAvailability(others, start, end)
			if !availability.Available {
				SchedulingConflictsTotal.Inc()
				return &entities.SchedulingConflictError{
					DriverID:  driverID,
					Conflicts: availability.Conflicts,
				}
			}
		}

		if req.TruckID != nil {
			if err := s.checkTruck(ctx, *req.TruckID, load.ID, start, end); err != nil {
				return err
			}
		}

		modify, err := s.assignmentModify(load, req)
		if err != nil {
			return err
		}

		previousDrivers := load.DriverIDs()

		assigned, err = s.loads.Update(ctx, modify)
		if err != nil {
			return fmt.Errorf("update load: %w", err)
		}

		enRoute := entities.DriverEnRoute
		for _, driverID := range newDrivers {
			_, err := s.drivers.Update(ctx, entities.DriverModify{
				ID:     driverID,
				Status: &enRoute,
			})
			if err != nil {
				return fmt.Errorf("mark driver %d en route: %w", driverID, err)
			}
		}

		for _, driverID := range previousDrivers {
			if slices.Contains(newDrivers, driverID) {
				continue
			}
			if err := s.ReleaseDriverIfIdle(ctx, driverID); err != nil {
				return fmt.Errorf("release replaced driver %d: %w", driverID, err)
			}
		}

		return nil
	})
	if err != nil {
		AssignmentsTotal.WithLabelValues(outcome(err)).Inc()
		return nil, err
	}

	AssignmentsTotal.WithLabelValues("assigned").Inc()
	return assigned, nil
}

// Unassign returns a scheduled or brokered load to OPEN and frees its drivers.
func (s *Service) Unassign(ctx context.Context, loadID int64) (*entities.Load, error) {
	if loadID <= 0 {
		return nil, ErrInvalidLoadID
	}

	var unassigned *entities.Load
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		load, err := s.loads.GetForUpdate(ctx, loadID)
		if err != nil {
			return fmt.Errorf("lock load: %w", err)
		}

		if load.Status != entities.LoadScheduled && load.Status != entities.LoadBrokered {
			return &entities.TransitionError{
				From:   load.Status.String(),
				To:     entities.LoadOpen.String(),
				Reason: "only scheduled or brokered loads can be unassigned",
				Kind:   entities.ErrInvalidTransition,
			}
		}

		previousDrivers := load.DriverIDs()
		open := entities.LoadOpen
		unassigned, err = s.loads.Update(ctx, entities.LoadModify{
			ID:              load.ID,
			Status:          &open,
			ClearAssignment: true,
		})
		if err != nil {
			return fmt.Errorf("update load: %w", err)
		}

		slices.Sort(previousDrivers)
		for _, driverID := range previousDrivers {
			if err := s.ReleaseDriverIfIdle(ctx, driverID); err != nil {
				return fmt.Errorf("release driver %d: %w", driverID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return unassigned, nil
}

// ReleaseDriverIfIdle flips an EN_ROUTE driver to AVAILABLE once no active load
// references them in either slot. Other statuses are left alone.
func (s *Service) ReleaseDriverIfIdle(ctx context.Context, driverID int64) error {
	return s.txManager.Do(ctx, func(ctx context.Context) error {
		driver, err := s.drivers.GetForUpdate(ctx, driverID)
		if err != nil {
			return fmt.Errorf("lock driver: %w", err)
		}

		if driver.Status != entities.DriverEnRoute {
			return nil
		}

		active, err := s.loads.ListActiveForDriver(ctx, driverID, 0)
		if err != nil {
			return fmt.Errorf("list active loads: %w", err)
		}
		if len(active) > 0 {
			return nil
		}

		available := entities.DriverAvailable
		if _, err := s.drivers.Update(ctx, entities.DriverModify{ID: driverID, Status: &available}); err != nil {
			return fmt.Errorf("mark driver available: %w", err)
		}

		DriversReleasedTotal.Inc()
		return nil
	})
}

func (s *Service) lockDrivers(ctx context.Context, driverIDs []int64) error {
	ordered := slices.Clone(driverIDs)
	slices.Sort(ordered)

	for _, driverID := range ordered {
		driver, err := s.drivers.GetForUpdate(ctx, driverID)
		if err != nil {
			return fmt.Errorf("lock driver %d: %w", driverID, err)
		}
		if driver.Status == entities.DriverOutOfService {
			return fmt.Errorf("driver %d: %w", driverID, ErrDriverOutOfService)
		}
	}
	return nil
}

func (s *Service) checkTruck(ctx context.Context, truckID, loadID int64, start, end time.Time) error {
	if err := s.loads.LockTruck(ctx, truckID); err != nil {
		return fmt.Errorf("lock truck %d: %w", truckID, err)
	}

	others, err := s.loads.ListActiveForTruck(ctx, truckID, loadID)
	if err != nil {
		return fmt.Errorf("list active loads of truck %d: %w", truckID, err)
	}

	availability := s.detector.CheckAvailability(others, start, end)
	if !availability.Available {
		SchedulingConflictsTotal.Inc()
		return &entities.SchedulingConflictError{
			TruckID:   &truckID,
			Conflicts: availability.Conflicts,
		}
	}
	return nil
}

func (s *Service) assignmentModify(load *entities.Load, req entities.AssignmentRequest) (entities.LoadModify, error) {
	assignedAt := s.now()
	modify := entities.LoadModify{
		ID:         load.ID,
		DriverID:   &req.DriverID,
		AssignedAt: &assignedAt,
		TruckID:    req.TruckID,
		TrailerID:  req.TrailerID,
	}
	if req.TeamDriverID != nil {
		modify.TeamDriverID = req.TeamDriverID
	} else {
		modify.ClearTeamDriver = true
	}

	if load.Status == entities.LoadScheduled {
		return modify, nil
	}

	candidate := *load
	candidate.DriverID = &req.DriverID
	if err := s.states.Validate(&candidate, entities.LoadScheduled); err != nil {
		return entities.LoadModify{}, err
	}

	scheduled := entities.LoadScheduled
	modify.Status = &scheduled
	modify.ClearCarrier = true
	return modify, nil
}

func validateRequest(req entities.AssignmentRequest) error {
	if req.LoadID <= 0 {
		return ErrInvalidLoadID
	}
	if req.DriverID <= 0 {
		return ErrInvalidDriverID
	}
	if req.TruckID != nil && *req.TruckID <= 0 {
		return ErrInvalidTruckID
	}
	if req.TeamDriverID != nil {
		if *req.TeamDriverID <= 0 {
			return ErrInvalidDriverID
		}
		if *req.TeamDriverID == req.DriverID {
			return ErrTeamDriverIsSelf
		}
	}
	return nil
}

func isAssignable(status entities.LoadStatus) bool {
	switch status {
	case entities.LoadOpen, entities.LoadScheduled, entities.LoadBrokered:
		return true
	default:
		return false
	}
}

func requestedDrivers(req entities.AssignmentRequest) []int64 {
	if req.TeamDriverID == nil {
		return []int64{req.DriverID}
	}
	return []int64{req.DriverID, *req.TeamDriverID}
}

func outcome(err error) string {
	switch {
	case errors.Is(err, entities.ErrSchedulingConflict):
		return "conflict"
	case errors.Is(err, entities.ErrNotFound):
		return "not_found"
	case errors.Is(err, entities.ErrConcurrencyContention):
		return "contention"
	default:
		return "rejected"
	}
}
