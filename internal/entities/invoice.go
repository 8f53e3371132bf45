package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type InvoiceStatus string

const (
	InvoiceDraft   InvoiceStatus = "DRAFT"
	InvoiceSent    InvoiceStatus = "SENT"
	InvoiceOverdue InvoiceStatus = "OVERDUE"
	InvoicePaid    InvoiceStatus = "PAID"
	InvoiceVoid    InvoiceStatus = "VOID"
)

func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceDraft, InvoiceSent, InvoiceOverdue, InvoicePaid, InvoiceVoid:
		return true
	default:
		return false
	}
}

type InvoiceLineType string

const (
	InvoiceLineLoadCharge    InvoiceLineType = "LOAD_CHARGE"
	InvoiceLineFuelSurcharge InvoiceLineType = "FUEL_SURCHARGE"
	InvoiceLineAccessorial   InvoiceLineType = "ACCESSORIAL"
)

type Invoice struct {
	ID                 int64
	Number             string
	CustomerID         int64
	Status             InvoiceStatus
	IssueDate          time.Time
	DueDate            time.Time
	Subtotal           decimal.Decimal
	FuelSurchargeTotal decimal.Decimal
	AccessorialTotal   decimal.Decimal
	Total              decimal.Decimal
	AmountPaid         decimal.Decimal
	BalanceDue         decimal.Decimal
	Notes              *string
	SentAt             *time.Time
	PaidAt             *time.Time
	VoidedAt           *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time

	LineItems []InvoiceLineItem
}

type InvoiceLineItem struct {
	ID          int64
	InvoiceID   int64
	Sequence    int
	LoadID      int64
	Type        InvoiceLineType
	Description string
	Amount      decimal.Decimal
}

type InvoiceModify struct {
	ID         int64
	Status     *InvoiceStatus
	DueDate    *time.Time
	Notes      *string
	AmountPaid *decimal.Decimal
	BalanceDue *decimal.Decimal
	SentAt     *time.Time
	PaidAt     *time.Time
	VoidedAt   *time.Time
}

type InvoiceFilter struct {
	CustomerID *int64
	Status     *InvoiceStatus
	Limit      uint64
	Offset     uint64
}

// InvoiceOutcome is the result of one customer within a batch.
type InvoiceOutcome struct {
	CustomerID int64
	Invoice    *Invoice
	Err        error
}

type InvoiceDraftUpdate struct {
	DueDate *time.Time
	Notes   *string
}
