package load

import (
	"time"

	"github.com/shopspring/decimal"
)

type LoadDB struct {
	ID           int64
	Reference    string
	Status       string
	CustomerID   int64
	DriverID     *int64
	TeamDriverID *int64
	TruckID      *int64
	TrailerID    *int64
	CarrierID    *int64

	RateAmount           decimal.Decimal
	RateType             string
	FuelSurchargePercent decimal.Decimal
	FuelSurchargeAmount  decimal.Decimal
	TotalAmount          decimal.Decimal
	LoadedMiles          int64
	EmptyMiles           int64

	SettlementID          *int64
	InvoiceID             *int64
	ExcludeFromSettlement bool

	ImportConfidence  *float64
	SourceDocumentURL *string

	AssignedAt         *time.Time
	PickedUpAt         *time.Time
	DeliveredAt        *time.Time
	CancellationReason *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// targets returns scan destinations in loadColumns order.
func (l *LoadDB) targets() []any {
	return []any{
		&l.ID,
		&l.Reference,
		&l.Status,
		&l.CustomerID,
		&l.DriverID,
		&l.TeamDriverID,
		&l.TruckID,
		&l.TrailerID,
		&l.CarrierID,
		&l.RateAmount,
		&l.RateType,
		&l.FuelSurchargePercent,
		&l.FuelSurchargeAmount,
		&l.TotalAmount,
		&l.LoadedMiles,
		&l.EmptyMiles,
		&l.SettlementID,
		&l.InvoiceID,
		&l.ExcludeFromSettlement,
		&l.ImportConfidence,
		&l.SourceDocumentURL,
		&l.AssignedAt,
		&l.PickedUpAt,
		&l.DeliveredAt,
		&l.CancellationReason,
		&l.CreatedAt,
		&l.UpdatedAt,
	}
}

type StopDB struct {
	ID               int64
	LoadID           int64
	Sequence         int
	Type             string
	Facility         string
	Address          string
	AppointmentStart time.Time
	AppointmentEnd   time.Time
}

type AccessorialDB struct {
	ID          int64
	LoadID      int64
	Type        string
	Description string
	Quantity    decimal.Decimal
	Rate        decimal.Decimal
	Total       decimal.Decimal
	CreatedAt   time.Time
}
