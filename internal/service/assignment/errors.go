package assignment

import (
	"fmt"

	"dispatch/internal/entities"
)

var (
	ErrInvalidLoadID      = fmt.Errorf("invalid load id: %w", entities.ErrValidation)
	ErrInvalidDriverID    = fmt.Errorf("invalid driver id: %w", entities.ErrValidation)
	ErrInvalidTruckID     = fmt.Errorf("invalid truck id: %w", entities.ErrValidation)
	ErrTeamDriverIsSelf   = fmt.Errorf("team driver must differ from the primary driver: %w", entities.ErrValidation)
	ErrLoadNotAssignable  = fmt.Errorf("load status does not accept an assignment: %w", entities.ErrBusinessRuleViolation)
	ErrLoadHasNoStops     = fmt.Errorf("load has no stops: %w", entities.ErrBusinessRuleViolation)
	ErrDriverOutOfService = fmt.Errorf("driver is out of service: %w", entities.ErrBusinessRuleViolation)
)
