//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=invoice_payment_post_test
package invoice_payment_post

import (
	"context"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
	"github.com/shopspring/decimal"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ApplyPayment(ctx context.Context, id int64, amount decimal.Decimal) (*entities.Invoice, error)
}
