//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=invoice_put_test
package invoice_put

import (
	"context"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	UpdateDraft(ctx context.Context, id int64, update entities.InvoiceDraftUpdate) (*entities.Invoice, error)
}
