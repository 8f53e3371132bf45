//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=load_test
package load

import (
	"context"

	"dispatch/internal/entities"
	"github.com/shopspring/decimal"
)

type Repository interface {
	Create(ctx context.Context, load entities.Load) (*entities.Load, error)
	Get(ctx context.Context, id int64) (*entities.Load, error)
	GetForUpdate(ctx context.Context, id int64) (*entities.Load, error)
	Update(ctx context.Context, loadModify entities.LoadModify) (*entities.Load, error)
	Delete(ctx context.Context, id int64) error
	AddAccessorial(ctx context.Context, accessorial entities.Accessorial) (*entities.Accessorial, error)
}

type CarrierRepository interface {
	Get(ctx context.Context, id int64) (*entities.Carrier, error)
}

type RateCalculator interface {
	FuelSurcharge(rate, pct decimal.Decimal) decimal.Decimal
	LoadTotal(rate, fuelSurcharge, accessorials decimal.Decimal) decimal.Decimal
	AccessorialTotal(quantity, unitRate decimal.Decimal) decimal.Decimal
}

type StateMachine interface {
	Validate(load *entities.Load, to entities.LoadStatus) error
}

type DriverReleaser interface {
	ReleaseDriverIfIdle(ctx context.Context, driverID int64) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
