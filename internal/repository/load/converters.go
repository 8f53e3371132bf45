package load

import (
	"time"

	"dispatch/internal/entities"
)

func ToDomain(l *LoadDB, stops []StopDB, accessorials []AccessorialDB) *entities.Load {
	if l == nil {
		return nil
	}

	load := &entities.Load{
		ID:                    l.ID,
		Reference:             l.Reference,
		Status:                entities.LoadStatus(l.Status),
		CustomerID:            l.CustomerID,
		DriverID:              l.DriverID,
		TeamDriverID:          l.TeamDriverID,
		TruckID:               l.TruckID,
		TrailerID:             l.TrailerID,
		CarrierID:             l.CarrierID,
		RateAmount:            l.RateAmount,
		RateType:              entities.RateType(l.RateType),
		FuelSurchargePercent:  l.FuelSurchargePercent,
		FuelSurchargeAmount:   l.FuelSurchargeAmount,
		TotalAmount:           l.TotalAmount,
		LoadedMiles:           l.LoadedMiles,
		EmptyMiles:            l.EmptyMiles,
		SettlementID:          l.SettlementID,
		InvoiceID:             l.InvoiceID,
		ExcludeFromSettlement: l.ExcludeFromSettlement,
		ImportConfidence:      l.ImportConfidence,
		SourceDocumentURL:     l.SourceDocumentURL,
		AssignedAt:            utcPtr(l.AssignedAt),
		PickedUpAt:            utcPtr(l.PickedUpAt),
		DeliveredAt:           utcPtr(l.DeliveredAt),
		CancellationReason:    l.CancellationReason,
		CreatedAt:             l.CreatedAt.UTC(),
		UpdatedAt:             l.UpdatedAt.UTC(),
		Stops:                 make([]entities.Stop, 0, len(stops)),
		Accessorials:          make([]entities.Accessorial, 0, len(accessorials)),
	}

	for _, s := range stops {
		load.Stops = append(load.Stops, StopToDomain(&s))
	}
	for _, a := range accessorials {
		load.Accessorials = append(load.Accessorials, AccessorialToDomain(&a))
	}
	return load
}

func StopToDomain(s *StopDB) entities.Stop {
	return entities.Stop{
		ID:               s.ID,
		LoadID:           s.LoadID,
		Sequence:         s.Sequence,
		Type:             entities.StopType(s.Type),
		Facility:         s.Facility,
		Address:          s.Address,
		AppointmentStart: s.AppointmentStart.UTC(),
		AppointmentEnd:   s.AppointmentEnd.UTC(),
	}
}

func AccessorialToDomain(a *AccessorialDB) entities.Accessorial {
	return entities.Accessorial{
		ID:          a.ID,
		LoadID:      a.LoadID,
		Type:        a.Type,
		Description: a.Description,
		Quantity:    a.Quantity,
		Rate:        a.Rate,
		Total:       a.Total,
		CreatedAt:   a.CreatedAt.UTC(),
	}
}

// FromDomainModify flattens a LoadModify into column values. Clear flags win
// over the pointer fields, the same way LoadModify.Apply resolves them.
func FromDomainModify(m *entities.LoadModify) map[string]any {
	set := map[string]any{}

	if m.Status != nil {
		set["status"] = m.Status.String()
	}
	if m.DriverID != nil {
		set["driver_id"] = *m.DriverID
	}
	if m.TeamDriverID != nil {
		set["team_driver_id"] = *m.TeamDriverID
	}
	if m.TruckID != nil {
		set["truck_id"] = *m.TruckID
	}
	if m.TrailerID != nil {
		set["trailer_id"] = *m.TrailerID
	}
	if m.CarrierID != nil {
		set["carrier_id"] = *m.CarrierID
	}
	if m.RateAmount != nil {
		set["rate_amount"] = *m.RateAmount
	}
	if m.FuelSurchargePercent != nil {
		set["fuel_surcharge_percent"] = *m.FuelSurchargePercent
	}
	if m.FuelSurchargeAmount != nil {
		set["fuel_surcharge_amount"] = *m.FuelSurchargeAmount
	}
	if m.TotalAmount != nil {
		set["total_amount"] = *m.TotalAmount
	}
	if m.LoadedMiles != nil {
		set["loaded_miles"] = *m.LoadedMiles
	}
	if m.EmptyMiles != nil {
		set["empty_miles"] = *m.EmptyMiles
	}
	if m.ExcludeFromSettlement != nil {
		set["exclude_from_settlement"] = *m.ExcludeFromSettlement
	}
	if m.AssignedAt != nil {
		set["assigned_at"] = *m.AssignedAt
	}
	if m.PickedUpAt != nil {
		set["picked_up_at"] = *m.PickedUpAt
	}
	if m.DeliveredAt != nil {
		set["delivered_at"] = *m.DeliveredAt
	}
	if m.CancellationReason != nil {
		set["cancellation_reason"] = *m.CancellationReason
	}

	if m.ClearTeamDriver {
		set["team_driver_id"] = nil
	}
	if m.ClearTruck {
		set["truck_id"] = nil
	}
	if m.ClearTrailer {
		set["trailer_id"] = nil
	}
	if m.ClearCarrier {
		set["carrier_id"] = nil
	}
	if m.ClearAssignment {
		for _, column := range []string{"driver_id", "team_driver_id", "truck_id", "trailer_id", "carrier_id", "assigned_at"} {
			set[column] = nil
		}
	}
	return set
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
