package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type DriverStatus string

const (
	DriverAvailable    DriverStatus = "AVAILABLE"
	DriverEnRoute      DriverStatus = "EN_ROUTE"
	DriverOutOfService DriverStatus = "OUT_OF_SERVICE"
	DriverInactive     DriverStatus = "INACTIVE"
)

func (s DriverStatus) String() string {
	return string(s)
}

type PayModel string

const (
	PayCPM        PayModel = "CPM"
	PayPercentage PayModel = "PERCENTAGE"
	PayFlat       PayModel = "FLAT"
)

type Driver struct {
	ID           int64
	FirstName    string
	LastName     string
	Phone        string
	Status       DriverStatus
	PayModel     PayModel
	PayRate      decimal.Decimal
	MinPerMile   *decimal.Decimal
	TeamDriverID *int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (d *Driver) FullName() string {
	if d.LastName == "" {
		return d.FirstName
	}
	return d.FirstName + " " + d.LastName
}

type DriverModify struct {
	ID              int64
	Status          *DriverStatus
	TeamDriverID    *int64
	ClearTeamDriver bool
}

// Deduction is a charge against a driver's pay.
// Recurring deductions stay active; one-off deductions are deactivated once settled.
type Deduction struct {
	ID          int64
	DriverID    int64
	Description string
	Amount      decimal.Decimal
	Recurring   bool
	Active      bool
	CreatedAt   time.Time
}
