package settlement

import (
	"time"

	"github.com/shopspring/decimal"
)

type SettlementDB struct {
	ID          int64
	Number      string
	DriverID    int64
	PeriodStart time.Time
	PeriodEnd   time.Time
	GrossPay    decimal.Decimal
	Deductions  decimal.Decimal
	NetPay      decimal.Decimal
	TotalMiles  int64
	LoadCount   int
	Status      string
	RequestedBy string
	ApprovedAt  *time.Time
	PaidAt      *time.Time
	CreatedAt   time.Time
}

func (s *SettlementDB) targets() []any {
	return []any{
		&s.ID,
		&s.Number,
		&s.DriverID,
		&s.PeriodStart,
		&s.PeriodEnd,
		&s.GrossPay,
		&s.Deductions,
		&s.NetPay,
		&s.TotalMiles,
		&s.LoadCount,
		&s.Status,
		&s.RequestedBy,
		&s.ApprovedAt,
		&s.PaidAt,
		&s.CreatedAt,
	}
}

type LineItemDB struct {
	ID           int64
	SettlementID int64
	Sequence     int
	Type         string
	LoadID       *int64
	DeductionID  *int64
	Description  string
	Miles        int64
	Amount       decimal.Decimal
}
