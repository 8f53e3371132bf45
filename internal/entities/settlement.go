package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type SettlementStatus string

const (
	SettlementDraft    SettlementStatus = "DRAFT"
	SettlementApproved SettlementStatus = "APPROVED"
	SettlementPaid     SettlementStatus = "PAID"
)

type SettlementLineType string

const (
	SettlementLineLoadPay   SettlementLineType = "LOAD_PAY"
	SettlementLineDeduction SettlementLineType = "DEDUCTION"
)

type Settlement struct {
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
	Status      SettlementStatus
	RequestedBy string
	ApprovedAt  *time.Time
	PaidAt      *time.Time
	CreatedAt   time.Time

	LineItems []SettlementLineItem
}

type SettlementLineItem struct {
	ID           int64
	SettlementID int64
	Sequence     int
	Type         SettlementLineType
	LoadID       *int64
	DeductionID  *int64
	Description  string
	Miles        int64
	Amount       decimal.Decimal
}

type SettlementModify struct {
	ID         int64
	Status     *SettlementStatus
	ApprovedAt *time.Time
	PaidAt     *time.Time
}

// SettlementPeriod is inclusive by calendar day on both ends.
type SettlementPeriod struct {
	Start time.Time
	End   time.Time
}

// Bounds returns the half-open interval [start, end+1day) covering the period.
func (p SettlementPeriod) Bounds() (time.Time, time.Time) {
	start := truncateDay(p.Start)
	end := truncateDay(p.End).AddDate(0, 0, 1)
	return start, end
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SettlementOutcome is the result of one driver within a batch.
type SettlementOutcome struct {
	DriverID   int64
	Settlement *Settlement
	Err        error
}
