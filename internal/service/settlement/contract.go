//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=settlement_test
package settlement

import (
	"context"
	"time"

	"dispatch/internal/entities"
	"github.com/shopspring/decimal"
)

type Repository interface {
	Create(ctx context.Context, settlement entities.Settlement) (*entities.Settlement, error)
	Get(ctx context.Context, id int64) (*entities.Settlement, error)
	GetForUpdate(ctx context.Context, id int64) (*entities.Settlement, error)
	Update(ctx context.Context, settlementModify entities.SettlementModify) (*entities.Settlement, error)
}

type LoadRepository interface {
	ListSettleableForUpdate(ctx context.Context, driverID int64, from, to time.Time) ([]entities.Load, error)
	SetSettlement(ctx context.Context, settlementID int64, loadIDs []int64) error
}

type DriverRepository interface {
	Get(ctx context.Context, id int64) (*entities.Driver, error)
	ListActiveDeductions(ctx context.Context, driverID int64) ([]entities.Deduction, error)
	DeactivateDeductions(ctx context.Context, ids []int64) error
}

type PayCalculator interface {
	DriverPay(driver *entities.Driver, load *entities.Load) decimal.Decimal
}

type NumberFactory interface {
	SettlementNumber(at time.Time) string
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
