//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=invoice_status_post_test
package invoice_status_post

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
	ChangeStatus(ctx context.Context, id int64, to entities.InvoiceStatus) (*entities.Invoice, error)
}
