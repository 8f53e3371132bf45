package load

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"dispatch/internal/entities"
)

type statusChange struct {
	load    *entities.Load
	request entities.StatusChangeRequest
	modify  entities.LoadModify
	release []int64
	now     time.Time
}

type effect func(ctx context.Context, change *statusChange) error

// sideEffects is keyed by target status; effects run in order before the load is written.
func (s *Service) sideEffects() map[entities.LoadStatus][]effect {
	return map[entities.LoadStatus][]effect{
		entities.LoadBrokered:     {s.recordCarrier},
		entities.LoadInPickupYard: {stampPickup},
		entities.LoadInTransit:    {stampPickup},
		entities.LoadCompleted:    {stampDelivery, releaseDrivers},
		entities.LoadCancelled:    {releaseDrivers, recordReason},
		entities.LoadTONU:         {releaseDrivers, recordReason},
	}
}

func (s *Service) recordCarrier(ctx context.Context, change *statusChange) error {
	carrierID := change.request.CarrierID
	if carrierID == nil {
		carrierID = change.load.CarrierID
	}
	if carrierID == nil {
		return fmt.Errorf("load %d: %w", change.load.ID, ErrCarrierRequired)
	}

	carrier, err := s.carriers.Get(ctx, *carrierID)
	if err != nil {
		return fmt.Errorf("get carrier: %w", err)
	}
	if !carrier.CanBroker() {
		return fmt.Errorf("carrier %d is %s: %w", carrier.ID, carrier.Status, ErrCarrierNotEligible)
	}

	change.modify.CarrierID = &carrier.ID
	return nil
}

func stampPickup(_ context.Context, change *statusChange) error {
	if change.load.PickedUpAt == nil {
		change.modify.PickedUpAt = &change.now
	}
	return nil
}

func stampDelivery(_ context.Context, change *statusChange) error {
	if change.load.DeliveredAt == nil {
		change.modify.DeliveredAt = &change.now
	}
	return nil
}

func releaseDrivers(_ context.Context, change *statusChange) error {
	ids := change.load.DriverIDs()
	slices.Sort(ids)
	change.release = ids
	return nil
}

func recordReason(_ context.Context, change *statusChange) error {
	if change.request.Reason == nil {
		return nil
	}
	reason := strings.TrimSpace(*change.request.Reason)
	if reason != "" {
		change.modify.CancellationReason = &reason
	}
	return nil
}
