//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=invoice_test
package invoice

import (
	"context"
	"time"

	"dispatch/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, invoice entities.Invoice) (*entities.Invoice, error)
	Get(ctx context.Context, id int64) (*entities.Invoice, error)
	GetForUpdate(ctx context.Context, id int64) (*entities.Invoice, error)
	List(ctx context.Context, filter entities.InvoiceFilter) ([]entities.Invoice, error)
	Update(ctx context.Context, invoiceModify entities.InvoiceModify) (*entities.Invoice, error)
	Delete(ctx context.Context, id int64) error
	MarkOverdue(ctx context.Context, now time.Time) (int64, error)
}

type LoadRepository interface {
	ListInvoiceableForUpdate(ctx context.Context, customerID int64, loadIDs []int64) ([]entities.Load, error)
	SetInvoice(ctx context.Context, invoiceID int64, loadIDs []int64) error
	ClearInvoice(ctx context.Context, invoiceID int64) error
	ListByInvoice(ctx context.Context, invoiceID int64) ([]entities.Load, error)
}

type CustomerRepository interface {
	Get(ctx context.Context, id int64) (*entities.Customer, error)
}

type LoadStatusChanger interface {
	ChangeStatus(ctx context.Context, req entities.StatusChangeRequest) (*entities.Load, error)
}

type DueDateFactory interface {
	CalculateDueDate(issueDate time.Time, termsDays int) time.Time
}

type NumberFactory interface {
	InvoiceNumber(at time.Time) string
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
