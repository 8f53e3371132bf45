package carrier

import (
	"context"
	"errors"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/load"
	"github.com/jackc/pgx/v5"
)

type CarrierDB struct {
	ID       int64
	Name     string
	MCNumber string
	Status   string
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Get(ctx context.Context, id int64) (*entities.Carrier, error) {
	query := `SELECT id, name, mc_number, status FROM carriers WHERE id = $1`

	var carrierDB CarrierDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&carrierDB.ID,
		&carrierDB.Name,
		&carrierDB.MCNumber,
		&carrierDB.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, load.ErrCarrierNotFound
		}
		return nil, repository.Unexpected("unexpected carrier repository get error", err)
	}

	return &entities.Carrier{
		ID:       carrierDB.ID,
		Name:     carrierDB.Name,
		MCNumber: carrierDB.MCNumber,
		Status:   entities.CarrierStatus(carrierDB.Status),
	}, nil
}
