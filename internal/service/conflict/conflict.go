package conflict

import (
	"time"

	"dispatch/internal/entities"
)

type Availability struct {
	Available bool
	Conflicts []entities.LoadConflict
}

// Detector answers double-booking questions. It never mutates its input.
type Detector struct{}

func New() *Detector {
	return &Detector{}
}

// CheckAvailability reports every active load whose window overlaps [start, end).
// Windows that only touch do not overlap. Loads without stops occupy nothing.
func (d *Detector) CheckAvailability(others []entities.Load, start, end time.Time) Availability {
	result := Availability{Available: true}

	for i := range others {
		other := &others[i]
		if !other.Status.IsActive() {
			continue
		}

		otherStart, otherEnd, ok := other.Window()
		if !ok {
			continue
		}

		if start.Before(otherEnd) && end.After(otherStart) {
			result.Conflicts = append(result.Conflicts, entities.LoadConflict{
				LoadID:     other.ID,
				Status:     other.Status,
				PickupAt:   otherStart,
				DeliveryAt: otherEnd,
			})
		}
	}

	result.Available = len(result.Conflicts) == 0
	return result
}
