package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type LoadStatus string

const (
	LoadOpen         LoadStatus = "OPEN"
	LoadScheduled    LoadStatus = "SCHEDULED"
	LoadInPickupYard LoadStatus = "IN_PICKUP_YARD"
	LoadInTransit    LoadStatus = "IN_TRANSIT"
	LoadCompleted    LoadStatus = "COMPLETED"
	LoadTONU         LoadStatus = "TONU"
	LoadCancelled    LoadStatus = "CANCELLED"
	LoadInvoiced     LoadStatus = "INVOICED"
	LoadBrokered     LoadStatus = "BROKERED"
)

func (s LoadStatus) String() string {
	return string(s)
}

// IsActive reports whether a load in this status occupies its driver's schedule.
func (s LoadStatus) IsActive() bool {
	switch s {
	case LoadScheduled, LoadInPickupYard, LoadInTransit:
		return true
	default:
		return false
	}
}

func (s LoadStatus) IsTerminal() bool {
	switch s {
	case LoadTONU, LoadCancelled, LoadInvoiced:
		return true
	default:
		return false
	}
}

func (s LoadStatus) IsValid() bool {
	switch s {
	case LoadOpen, LoadScheduled, LoadInPickupYard, LoadInTransit, LoadCompleted,
		LoadTONU, LoadCancelled, LoadInvoiced, LoadBrokered:
		return true
	default:
		return false
	}
}

// ActiveLoadStatuses are the statuses checked for double booking.
var ActiveLoadStatuses = []LoadStatus{LoadScheduled, LoadInPickupYard, LoadInTransit}

// SettleableLoadStatuses are the statuses a load may have when it is rolled into driver pay.
var SettleableLoadStatuses = []LoadStatus{LoadCompleted, LoadInvoiced}

type RateType string

const (
	RateFlat    RateType = "FLAT"
	RatePerMile RateType = "PER_MILE"
)

func (t RateType) IsValid() bool {
	return t == RateFlat || t == RatePerMile
}

type StopType string

const (
	StopPickup   StopType = "PICKUP"
	StopDelivery StopType = "DELIVERY"
)

type Stop struct {
	ID               int64
	LoadID           int64
	Sequence         int
	Type             StopType
	Facility         string
	Address          string
	AppointmentStart time.Time
	AppointmentEnd   time.Time
}

type Accessorial struct {
	ID          int64
	LoadID      int64
	Type        string
	Description string
	Quantity    decimal.Decimal
	Rate        decimal.Decimal
	Total       decimal.Decimal
	CreatedAt   time.Time
}

type Load struct {
	ID           int64
	Reference    string
	Status       LoadStatus
	CustomerID   int64
	DriverID     *int64
	TeamDriverID *int64
	TruckID      *int64
	TrailerID    *int64
	CarrierID    *int64

	RateAmount           decimal.Decimal
	RateType             RateType
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

	Stops        []Stop
	Accessorials []Accessorial
}

// Window returns the occupied interval: first stop start to last stop end.
func (l *Load) Window() (time.Time, time.Time, bool) {
	if len(l.Stops) == 0 {
		return time.Time{}, time.Time{}, false
	}
	return l.Stops[0].AppointmentStart, l.Stops[len(l.Stops)-1].AppointmentEnd, true
}

func (l *Load) AccessorialTotal() decimal.Decimal {
	total := decimal.Zero
	for _, a := range l.Accessorials {
		total = total.Add(a.Total)
	}
	return total
}

// DriverIDs returns the primary and team drivers, primary first.
func (l *Load) DriverIDs() []int64 {
	ids := make([]int64, 0, 2)
	if l.DriverID != nil {
		ids = append(ids, *l.DriverID)
	}
	if l.TeamDriverID != nil {
		ids = append(ids, *l.TeamDriverID)
	}
	return ids
}

func (l *Load) IsBilled() bool {
	return l.InvoiceID != nil
}

type NewLoad struct {
	Reference            string
	CustomerID           int64
	RateAmount           decimal.Decimal
	RateType             RateType
	FuelSurchargePercent *decimal.Decimal
	FuelSurchargeAmount  *decimal.Decimal
	LoadedMiles          int64
	EmptyMiles           int64
	Stops                []Stop
	Accessorials         []Accessorial

	ImportConfidence  *float64
	SourceDocumentURL *string
}

// LoadModify carries a partial update; nil fields are left unchanged.
// Clear* flags null the corresponding columns and win over the pointer fields.
type LoadModify struct {
	ID int64

	Status       *LoadStatus
	DriverID     *int64
	TeamDriverID *int64
	TruckID      *int64
	TrailerID    *int64
	CarrierID    *int64

	RateAmount            *decimal.Decimal
	FuelSurchargePercent  *decimal.Decimal
	FuelSurchargeAmount   *decimal.Decimal
	TotalAmount           *decimal.Decimal
	LoadedMiles           *int64
	EmptyMiles            *int64
	ExcludeFromSettlement *bool

	AssignedAt         *time.Time
	PickedUpAt         *time.Time
	DeliveredAt        *time.Time
	CancellationReason *string

	ClearAssignment bool // driver, team driver, truck, trailer, carrier, assigned_at
	ClearTeamDriver bool
	ClearTruck      bool
	ClearTrailer    bool
	ClearCarrier    bool
}

func (m LoadModify) IsEmpty() bool {
	return m == LoadModify{ID: m.ID}
}

// Apply writes the modification onto l in place.
func (m LoadModify) Apply(l *Load) {
	if m.Status != nil {
		l.Status = *m.Status
	}
	if m.DriverID != nil {
		l.DriverID = cloneInt64(m.DriverID)
	}
	if m.TeamDriverID != nil {
		l.TeamDriverID = cloneInt64(m.TeamDriverID)
	}
	if m.TruckID != nil {
		l.TruckID = cloneInt64(m.TruckID)
	}
	if m.TrailerID != nil {
		l.TrailerID = cloneInt64(m.TrailerID)
	}
	if m.CarrierID != nil {
		l.CarrierID = cloneInt64(m.CarrierID)
	}
	if m.RateAmount != nil {
		l.RateAmount = *m.RateAmount
	}
	if m.FuelSurchargePercent != nil {
		l.FuelSurchargePercent = *m.FuelSurchargePercent
	}
	if m.FuelSurchargeAmount != nil {
		l.FuelSurchargeAmount = *m.FuelSurchargeAmount
	}
	if m.TotalAmount != nil {
		l.TotalAmount = *m.TotalAmount
	}
	if m.LoadedMiles != nil {
		l.LoadedMiles = *m.LoadedMiles
	}
	if m.EmptyMiles != nil {
		l.EmptyMiles = *m.EmptyMiles
	}
	if m.ExcludeFromSettlement != nil {
		l.ExcludeFromSettlement = *m.ExcludeFromSettlement
	}
	if m.AssignedAt != nil {
		t := *m.AssignedAt
		l.AssignedAt = &t
	}
	if m.PickedUpAt != nil {
		t := *m.PickedUpAt
		l.PickedUpAt = &t
	}
	if m.DeliveredAt != nil {
		t := *m.DeliveredAt
		l.DeliveredAt = &t
	}
	if m.CancellationReason != nil {
		r := *m.CancellationReason
		l.CancellationReason = &r
	}

	if m.ClearTeamDriver {
		l.TeamDriverID = nil
	}
	if m.ClearTruck {
		l.TruckID = nil
	}
	if m.ClearTrailer {
		l.TrailerID = nil
	}
	if m.ClearCarrier {
		l.CarrierID = nil
	}
	if m.ClearAssignment {
		l.DriverID = nil
		l.TeamDriverID = nil
		l.TruckID = nil
		l.TrailerID = nil
		l.CarrierID = nil
		l.AssignedAt = nil
	}
}

func cloneInt64(v *int64) *int64 {
	c := *v
	return &c
}

// LoadUpdate holds the editable financial and mileage fields of a load.
type LoadUpdate struct {
	RateAmount            *decimal.Decimal
	FuelSurchargePercent  *decimal.Decimal
	FuelSurchargeAmount   *decimal.Decimal
	LoadedMiles           *int64
	EmptyMiles            *int64
	ExcludeFromSettlement *bool
}

func (u LoadUpdate) IsEmpty() bool {
	return u == LoadUpdate{}
}
