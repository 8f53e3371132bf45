package load

import (
	"fmt"

	"dispatch/internal/entities"
)

var (
	ErrInvalidLoadID        = fmt.Errorf("invalid load id: %w", entities.ErrValidation)
	ErrInvalidCustomerID    = fmt.Errorf("invalid customer id: %w", entities.ErrValidation)
	ErrInvalidRate          = fmt.Errorf("rate amount must not be negative: %w", entities.ErrValidation)
	ErrInvalidRateType      = fmt.Errorf("unknown rate type: %w", entities.ErrValidation)
	ErrInvalidFuelSurcharge = fmt.Errorf("fuel surcharge must not be negative: %w", entities.ErrValidation)
	ErrInvalidMiles         = fmt.Errorf("miles must not be negative: %w", entities.ErrValidation)
	ErrInvalidConfidence    = fmt.Errorf("import confidence must be within [0, 1]: %w", entities.ErrValidation)
	ErrNoStops              = fmt.Errorf("at least one stop is required: %w", entities.ErrValidation)
	ErrInvalidStopWindow    = fmt.Errorf("stop appointment end is before its start: %w", entities.ErrValidation)
	ErrStopsOutOfOrder      = fmt.Errorf("stops are not in chronological order: %w", entities.ErrValidation)
	ErrInvalidAccessorial   = fmt.Errorf("invalid accessorial: %w", entities.ErrValidation)
	ErrEmptyUpdate          = fmt.Errorf("nothing to update: %w", entities.ErrValidation)
	ErrUnknownReference     = fmt.Errorf("referenced customer, driver or vehicle does not exist: %w", entities.ErrValidation)

	ErrLoadNotFound    = fmt.Errorf("load %w", entities.ErrNotFound)
	ErrCarrierNotFound = fmt.Errorf("carrier %w", entities.ErrNotFound)
	ErrTruckNotFound   = fmt.Errorf("truck %w", entities.ErrNotFound)

	ErrBilledLoadRateChange    = fmt.Errorf("rate of an invoiced load cannot change: %w", entities.ErrBusinessRuleViolation)
	ErrAccessorialOnBilledLoad = fmt.Errorf("accessorials cannot be added to an invoiced load: %w", entities.ErrBusinessRuleViolation)
	ErrLoadNotDeletable        = fmt.Errorf("only OPEN or CANCELLED loads can be deleted: %w", entities.ErrBusinessRuleViolation)
	ErrCarrierRequired         = fmt.Errorf("brokering a load requires a carrier: %w", entities.ErrBusinessRuleViolation)
	ErrCarrierNotEligible      = fmt.Errorf("carrier is inactive or suspended: %w", entities.ErrBusinessRuleViolation)
)
