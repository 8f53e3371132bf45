package settlement

import (
	"fmt"

	"dispatch/internal/entities"
)

var (
	ErrInvalidDriverID     = fmt.Errorf("invalid driver id: %w", entities.ErrValidation)
	ErrInvalidSettlementID = fmt.Errorf("invalid settlement id: %w", entities.ErrValidation)
	ErrInvalidPeriod       = fmt.Errorf("period end is before period start: %w", entities.ErrValidation)
	ErrMissingRequestedBy  = fmt.Errorf("requested by is required: %w", entities.ErrValidation)
	ErrUnknownStatus       = fmt.Errorf("unknown settlement status: %w", entities.ErrValidation)
	ErrEmptyBatch          = fmt.Errorf("no drivers requested: %w", entities.ErrValidation)

	ErrSettlementNotFound = fmt.Errorf("settlement %w", entities.ErrNotFound)

	ErrSettlementNumberTaken = fmt.Errorf("settlement number already exists: %w", entities.ErrBusinessRuleViolation)
	ErrLoadAlreadySettled    = fmt.Errorf("load already belongs to a settlement: %w", entities.ErrConcurrencyContention)
)
