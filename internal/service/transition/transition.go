package transition

import (
	"slices"

	"dispatch/internal/entities"
)

var table = map[entities.LoadStatus][]entities.LoadStatus{
	entities.LoadOpen: {
		entities.LoadScheduled,
		entities.LoadBrokered,
		entities.LoadTONU,
		entities.LoadCancelled,
	},
	entities.LoadScheduled: {
		entities.LoadInPickupYard,
		entities.LoadTONU,
		entities.LoadCancelled,
	},
	entities.LoadInPickupYard: {
		entities.LoadInTransit,
		entities.LoadTONU,
		entities.LoadCancelled,
	},
	entities.LoadInTransit: {
		entities.LoadCompleted,
	},
	entities.LoadCompleted: {
		entities.LoadInvoiced,
	},
	entities.LoadBrokered: {
		entities.LoadScheduled,
		entities.LoadCancelled,
	},
}

// Validator decides whether a load may move to a requested status.
type Validator struct{}

func New() *Validator {
	return &Validator{}
}

// Allowed returns the statuses reachable from `from` in one step.
func Allowed(from entities.LoadStatus) []entities.LoadStatus {
	return slices.Clone(table[from])
}

func CanTransition(from, to entities.LoadStatus) bool {
	return slices.Contains(table[from], to)
}

// Validate returns nil when the edge exists and every guard on it holds,
// otherwise a *entities.TransitionError carrying the reason.
//
// The driver guard on SCHEDULED applies to OPEN only: a brokered load moves to
// SCHEDULED without a company driver.
func (v *Validator) Validate(load *entities.Load, to entities.LoadStatus) error {
	if !to.IsValid() {
		return ErrUnknownStatus
	}

	if !CanTransition(load.Status, to) {
		return &entities.TransitionError{
			From:   load.Status.String(),
			To:     to.String(),
			Reason: reasonNoEdge(load.Status),
			Kind:   entities.ErrInvalidTransition,
		}
	}

	switch {
	case to == entities.LoadScheduled && load.Status == entities.LoadOpen && load.DriverID == nil:
		return guardFailed(load, to, "a driver must be assigned first")
	case to == entities.LoadCompleted && load.LoadedMiles <= 0:
		return guardFailed(load, to, "loaded miles must be greater than zero")
	}

	return nil
}

func reasonNoEdge(from entities.LoadStatus) string {
	if from.IsTerminal() {
		return "status is terminal"
	}
	return "transition is not allowed"
}

func guardFailed(load *entities.Load, to entities.LoadStatus, reason string) error {
	return &entities.TransitionError{
		From:   load.Status.String(),
		To:     to.String(),
		Reason: reason,
		Kind:   entities.ErrBusinessRuleViolation,
	}
}
