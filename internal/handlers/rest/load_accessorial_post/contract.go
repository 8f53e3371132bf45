//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=load_accessorial_post_test
package load_accessorial_post

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
	AddAccessorial(ctx context.Context, loadID int64, accessorial entities.Accessorial) (*entities.Load, error)
}
