package invoice

import (
	"time"

	"github.com/shopspring/decimal"
)

type InvoiceDB struct {
	ID                 int64
	Number             string
	CustomerID         int64
	Status             string
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
}

func (i *InvoiceDB) targets() []any {
	return []any{
		&i.ID,
		&i.Number,
		&i.CustomerID,
		&i.Status,
		&i.IssueDate,
		&i.DueDate,
		&i.Subtotal,
		&i.FuelSurchargeTotal,
		&i.AccessorialTotal,
		&i.Total,
		&i.AmountPaid,
		&i.BalanceDue,
		&i.Notes,
		&i.SentAt,
		&i.PaidAt,
		&i.VoidedAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	}
}

type LineItemDB struct {
	ID          int64
	InvoiceID   int64
	Sequence    int
	LoadID      int64
	Type        string
	Description string
	Amount      decimal.Decimal
}
