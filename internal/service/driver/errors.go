package driver

import (
	"fmt"

	"dispatch/internal/entities"
)

var (
	ErrInvalidDriverID = fmt.Errorf("invalid driver id: %w", entities.ErrValidation)
	ErrCannotPairSelf  = fmt.Errorf("driver cannot be paired with themselves: %w", entities.ErrValidation)

	ErrDriverNotFound = fmt.Errorf("driver %w", entities.ErrNotFound)
)
