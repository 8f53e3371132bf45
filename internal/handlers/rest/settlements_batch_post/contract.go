//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=settlements_batch_post_test
package settlements_batch_post

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
	GenerateBatch(ctx context.Context, driverIDs []int64, period entities.SettlementPeriod, requestedBy string) ([]entities.SettlementOutcome, error)
}
