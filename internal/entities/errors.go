package entities

import (
	"errors"
	"fmt"
	"time"
)

// Error kinds. Every failure returned by the services matches exactly one of them via errors.Is.
var (
	ErrNotFound              = errors.New("not found")
	ErrValidation            = errors.New("validation failed")
	ErrInvalidTransition     = errors.New("invalid transition")
	ErrBusinessRuleViolation = errors.New("business rule violation")
	ErrSchedulingConflict    = errors.New("scheduling conflict")
	ErrConcurrencyContention = errors.New("concurrency contention")
)

// TransitionError is returned when a status change is rejected.
// Kind is ErrInvalidTransition for edges missing from the table and
// ErrBusinessRuleViolation for guards that failed on a legal edge.
type TransitionError struct {
	From   string
	To     string
	Reason string
	Kind   error
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s -> %s: %s", e.From, e.To, e.Reason)
}

func (e *TransitionError) Is(target error) bool {
	return target == e.Kind
}

type LoadConflict struct {
	LoadID     int64
	Status     LoadStatus
	PickupAt   time.Time
	DeliveryAt time.Time
}

// SchedulingConflictError names the driver, or the truck when TruckID is set,
// whose active loads overlap the requested window.
type SchedulingConflictError struct {
	DriverID  int64
	TruckID   *int64
	Conflicts []LoadConflict
}

func (e *SchedulingConflictError) Error() string {
	if e.TruckID != nil {
		return fmt.Sprintf("truck %d has %d conflicting load(s)", *e.TruckID, len(e.Conflicts))
	}
	return fmt.Sprintf("driver %d has %d conflicting load(s)", e.DriverID, len(e.Conflicts))
}

func (e *SchedulingConflictError) Is(target error) bool {
	return target == ErrSchedulingConflict
}
