//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=invoice_post_test
package invoice_post

import (
	"context"
	"time"

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
	Generate(ctx context.Context, customerID int64, issueDate time.Time, loadIDs []int64) (*entities.Invoice, error)
}
