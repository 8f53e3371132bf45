//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=settlement_post_test
package settlement_post

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
	Generate(ctx context.Context, driverID int64, period entities.SettlementPeriod, requestedBy string) (*entities.Settlement, error)
}
