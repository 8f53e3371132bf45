package load

import (
	"strings"

	"dispatch/internal/entities"
	"github.com/shopspring/decimal"
)

func validateNewLoad(l entities.NewLoad) error {
	if l.CustomerID <= 0 {
		return ErrInvalidCustomerID
	}
	if l.RateAmount.IsNegative() {
		return ErrInvalidRate
	}
	if l.RateType != "" && !l.RateType.IsValid() {
		return ErrInvalidRateType
	}
	if isNegative(l.FuelSurchargePercent) || isNegative(l.FuelSurchargeAmount) {
		return ErrInvalidFuelSurcharge
	}
	if l.LoadedMiles < 0 || l.EmptyMiles < 0 {
		return ErrInvalidMiles
	}
	if l.ImportConfidence != nil && (*l.ImportConfidence < 0 || *l.ImportConfidence > 1) {
		return ErrInvalidConfidence
	}
	if err := validateStops(l.Stops); err != nil {
		return err
	}
	for _, a := range l.Accessorials {
		if err := validateAccessorial(a); err != nil {
			return err
		}
	}
	return nil
}

func validateStops(stops []entities.Stop) error {
	if len(stops) == 0 {
		return ErrNoStops
	}
	for i, s := range stops {
		if s.AppointmentStart.IsZero() || s.AppointmentEnd.Before(s.AppointmentStart) {
			return ErrInvalidStopWindow
		}
		if i > 0 && s.AppointmentStart.Before(stops[i-1].AppointmentStart) {
			return ErrStopsOutOfOrder
		}
	}
	return nil
}

func validateAccessorial(a entities.Accessorial) error {
	if strings.TrimSpace(a.Type) == "" {
		return ErrInvalidAccessorial
	}
	if a.Quantity.IsNegative() {
		return ErrInvalidAccessorial
	}
	return nil
}

func validateUpdate(u entities.LoadUpdate) error {
	if u.IsEmpty() {
		return ErrEmptyUpdate
	}
	if isNegative(u.RateAmount) {
		return ErrInvalidRate
	}
	if isNegative(u.FuelSurchargePercent) || isNegative(u.FuelSurchargeAmount) {
		return ErrInvalidFuelSurcharge
	}
	if (u.LoadedMiles != nil && *u.LoadedMiles < 0) || (u.EmptyMiles != nil && *u.EmptyMiles < 0) {
		return ErrInvalidMiles
	}
	return nil
}

func isNegative(d *decimal.Decimal) bool {
	return d != nil && d.IsNegative()
}

func changes(current decimal.Decimal, requested *decimal.Decimal) bool {
	return requested != nil && !requested.Equal(current)
}
