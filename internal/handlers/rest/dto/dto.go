package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type PingResponse struct {
	Message *string `json:"message,omitempty"`
	Service string  `json:"service"`
	Time    string  `json:"time"`
}

type Error struct {
	Error     string         `json:"error"`
	Kind      string         `json:"kind"`
	Reason    *string        `json:"reason,omitempty"`
	DriverID  *int64         `json:"driver_id,omitempty"`
	TruckID   *int64         `json:"truck_id,omitempty"`
	Conflicts []LoadConflict `json:"conflicts,omitempty"`
}

type LoadConflict struct {
	LoadID     int64     `json:"load_id"`
	Status     string    `json:"status"`
	PickupAt   time.Time `json:"pickup_at"`
	DeliveryAt time.Time `json:"delivery_at"`
}

type Stop struct {
	ID               int64     `json:"id,omitempty"`
	Sequence         int       `json:"sequence"`
	Type             string    `json:"type"`
	Facility         string    `json:"facility"`
	Address          string    `json:"address"`
	AppointmentStart time.Time `json:"appointment_start"`
	AppointmentEnd   time.Time `json:"appointment_end"`
}

type Accessorial struct {
	ID          int64           `json:"id"`
	Type        string          `json:"type"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	Total       decimal.Decimal `json:"total"`
	CreatedAt   time.Time       `json:"created_at"`
}

type AccessorialCreate struct {
	Type        string          `json:"type"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
}

type Load struct {
	ID                    int64           `json:"id"`
	Reference             string          `json:"reference"`
	Status                string          `json:"status"`
	CustomerID            int64           `json:"customer_id"`
	DriverID              *int64          `json:"driver_id"`
	TeamDriverID          *int64          `json:"team_driver_id"`
	TruckID               *int64          `json:"truck_id"`
	TrailerID             *int64          `json:"trailer_id"`
	CarrierID             *int64          `json:"carrier_id"`
	RateAmount            decimal.Decimal `json:"rate_amount"`
	RateType              string          `json:"rate_type"`
	FuelSurchargePercent  decimal.Decimal `json:"fuel_surcharge_percent"`
	FuelSurchargeAmount   decimal.Decimal `json:"fuel_surcharge_amount"`
	TotalAmount           decimal.Decimal `json:"total_amount"`
	LoadedMiles           int64           `json:"loaded_miles"`
	EmptyMiles            int64           `json:"empty_miles"`
	SettlementID          *int64          `json:"settlement_id"`
	InvoiceID             *int64          `json:"invoice_id"`
	ExcludeFromSettlement bool            `json:"exclude_from_settlement"`
	ImportConfidence      *float64        `json:"import_confidence,omitempty"`
	SourceDocumentURL     *string         `json:"source_document_url,omitempty"`
	AssignedAt            *time.Time      `json:"assigned_at"`
	PickedUpAt            *time.Time      `json:"picked_up_at"`
	DeliveredAt           *time.Time      `json:"delivered_at"`
	CancellationReason    *string         `json:"cancellation_reason,omitempty"`
	CreatedAt             time.Time       `json:"created_at"`
	UpdatedAt             time.Time       `json:"updated_at"`
	Stops                 []Stop          `json:"stops"`
	Accessorials          []Accessorial   `json:"accessorials"`
}

type LoadCreate struct {
	Reference            string              `json:"reference"`
	CustomerID           int64               `json:"customer_id"`
	RateAmount           decimal.Decimal     `json:"rate_amount"`
	RateType             string              `json:"rate_type"`
	FuelSurchargePercent *decimal.Decimal    `json:"fuel_surcharge_percent"`
	FuelSurchargeAmount  *decimal.Decimal    `json:"fuel_surcharge_amount"`
	LoadedMiles          int64               `json:"loaded_miles"`
	EmptyMiles           int64               `json:"empty_miles"`
	Stops                []Stop              `json:"stops"`
	Accessorials         []AccessorialCreate `json:"accessorials"`
}

type LoadUpdate struct {
	RateAmount            *decimal.Decimal `json:"rate_amount"`
	FuelSurchargePercent  *decimal.Decimal `json:"fuel_surcharge_percent"`
	FuelSurchargeAmount   *decimal.Decimal `json:"fuel_surcharge_amount"`
	LoadedMiles           *int64           `json:"loaded_miles"`
	EmptyMiles            *int64           `json:"empty_miles"`
	ExcludeFromSettlement *bool            `json:"exclude_from_settlement"`
}

type LoadStatusChange struct {
	Status    string  `json:"status"`
	CarrierID *int64  `json:"carrier_id"`
	Reason    *string `json:"reason"`
}

type Assignment struct {
	DriverID     int64  `json:"driver_id"`
	TeamDriverID *int64 `json:"team_driver_id"`
	TruckID      *int64 `json:"truck_id"`
	TrailerID    *int64 `json:"trailer_id"`
}

type Driver struct {
	ID           int64            `json:"id"`
	FirstName    string           `json:"first_name"`
	LastName     string           `json:"last_name"`
	Phone        string           `json:"phone"`
	Status       string           `json:"status"`
	PayModel     string           `json:"pay_model"`
	PayRate      decimal.Decimal  `json:"pay_rate"`
	MinPerMile   *decimal.Decimal `json:"min_per_mile,omitempty"`
	TeamDriverID *int64           `json:"team_driver_id"`
}

type TeamPair struct {
	PartnerID int64 `json:"partner_id"`
}

type SettlementLineItem struct {
	Sequence    int             `json:"sequence"`
	Type        string          `json:"type"`
	LoadID      *int64          `json:"load_id,omitempty"`
	DeductionID *int64          `json:"deduction_id,omitempty"`
	Description string          `json:"description"`
	Miles       int64           `json:"miles"`
	Amount      decimal.Decimal `json:"amount"`
}

type Settlement struct {
	ID          int64                `json:"id"`
	Number      string               `json:"number"`
	DriverID    int64                `json:"driver_id"`
	PeriodStart string               `json:"period_start"`
	PeriodEnd   string               `json:"period_end"`
	GrossPay    decimal.Decimal      `json:"gross_pay"`
	Deductions  decimal.Decimal      `json:"deductions"`
	NetPay      decimal.Decimal      `json:"net_pay"`
	TotalMiles  int64                `json:"total_miles"`
	LoadCount   int                  `json:"load_count"`
	Status      string               `json:"status"`
	RequestedBy string               `json:"requested_by"`
	ApprovedAt  *time.Time           `json:"approved_at"`
	PaidAt      *time.Time           `json:"paid_at"`
	CreatedAt   time.Time            `json:"created_at"`
	LineItems   []SettlementLineItem `json:"line_items"`
}

type SettlementCreate struct {
	DriverID    int64  `json:"driver_id"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
	RequestedBy string `json:"requested_by"`
}

type SettlementBatchCreate struct {
	DriverIDs   []int64 `json:"driver_ids"`
	PeriodStart string  `json:"period_start"`
	PeriodEnd   string  `json:"period_end"`
	RequestedBy string  `json:"requested_by"`
}

type SettlementOutcome struct {
	DriverID   int64       `json:"driver_id"`
	Settlement *Settlement `json:"settlement,omitempty"`
	Error      *Error      `json:"error,omitempty"`
}

type StatusChange struct {
	Status string `json:"status"`
}

type InvoiceLineItem struct {
	Sequence    int             `json:"sequence"`
	LoadID      int64           `json:"load_id"`
	Type        string          `json:"type"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

type Invoice struct {
	ID                 int64             `json:"id"`
	Number             string            `json:"number"`
	CustomerID         int64             `json:"customer_id"`
	Status             string            `json:"status"`
	IssueDate          string            `json:"issue_date"`
	DueDate            string            `json:"due_date"`
	Subtotal           decimal.Decimal   `json:"subtotal"`
	FuelSurchargeTotal decimal.Decimal   `json:"fuel_surcharge_total"`
	AccessorialTotal   decimal.Decimal   `json:"accessorial_total"`
	Total              decimal.Decimal   `json:"total"`
	AmountPaid         decimal.Decimal   `json:"amount_paid"`
	BalanceDue         decimal.Decimal   `json:"balance_due"`
	Notes              *string           `json:"notes,omitempty"`
	SentAt             *time.Time        `json:"sent_at"`
	PaidAt             *time.Time        `json:"paid_at"`
	VoidedAt           *time.Time        `json:"voided_at"`
	CreatedAt          time.Time         `json:"created_at"`
	LineItems          []InvoiceLineItem `json:"line_items,omitempty"`
}

type InvoiceCreate struct {
	CustomerID int64   `json:"customer_id"`
	IssueDate  string  `json:"issue_date"`
	LoadIDs    []int64 `json:"load_ids"`
}

type InvoiceDraftUpdate struct {
	DueDate *string `json:"due_date"`
	Notes   *string `json:"notes"`
}

type Payment struct {
	Amount decimal.Decimal `json:"amount"`
}

type InvoiceBatchCreate struct {
	CustomerIDs []int64 `json:"customer_ids"`
	IssueDate   string  `json:"issue_date"`
}

type InvoiceOutcome struct {
	CustomerID int64    `json:"customer_id"`
	Invoice    *Invoice `json:"invoice,omitempty"`
	Error      *Error   `json:"error,omitempty"`
}
