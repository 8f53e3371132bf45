package driver

import (
	"time"

	"github.com/shopspring/decimal"
)

type DriverDB struct {
	ID           int64
	FirstName    string
	LastName     string
	Phone        string
	Status       string
	PayModel     string
	PayRate      decimal.Decimal
	MinPerMile   decimal.NullDecimal
	TeamDriverID *int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type DeductionDB struct {
	ID          int64
	DriverID    int64
	Description string
	Amount      decimal.Decimal
	Recurring   bool
	Active      bool
	CreatedAt   time.Time
}
