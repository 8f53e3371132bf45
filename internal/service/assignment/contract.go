//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=assignment_test
package assignment

import (
	"context"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/service/conflict"
)

type LoadRepository interface {
	GetForUpdate(ctx context.Context, id int64) (*entities.Load, error)
	Update(ctx context.Context, loadModify entities.LoadModify) (*entities.Load, error)
	ListActiveForDriver(ctx context.Context, driverID, excludeLoadID int64) ([]entities.Load, error)
	LockTruck(ctx context.Context, truckID int64) error
	ListActiveForTruck(ctx context.Context, truckID, excludeLoadID int64) ([]entities.Load, error)
}

type DriverRepository interface {
	GetForUpdate(ctx context.Context, id int64) (*entities.Driver, error)
	Update(ctx context.Context, driverModify entities.DriverModify) (*entities.Driver, error)
}

type StateMachine interface {
	Validate(load *entities.Load, to entities.LoadStatus) error
}

type ConflictDetector interface {
	CheckAvailability(others []entities.Load, start, end time.Time) conflict.Availability
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
