package transition

import (
	"fmt"

	"dispatch/internal/entities"
)

var ErrUnknownStatus = fmt.Errorf("unknown load status: %w", entities.ErrValidation)
