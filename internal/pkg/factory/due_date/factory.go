package due_date

import (
	"time"
)

type DueDateFactory struct {
	defaultTermsDays int
}

func New(defaultTermsDays int) *DueDateFactory {
	return &DueDateFactory{
		defaultTermsDays: defaultTermsDays,
	}
}

// CalculateDueDate adds payment terms to the issue date.
// Customers without their own terms get the default ones.
func (f *DueDateFactory) CalculateDueDate(issueDate time.Time, termsDays int) time.Time {
	if termsDays <= 0 {
		termsDays = f.defaultTermsDays
	}
	y, m, d := issueDate.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, issueDate.Location()).AddDate(0, 0, termsDays)
}
