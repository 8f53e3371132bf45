package customer

import (
	"context"
	"errors"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/invoice"
	"github.com/jackc/pgx/v5"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Get(ctx context.Context, id int64) (*entities.Customer, error) {
	query := `SELECT id, name, billing_email, payment_terms_days FROM customers WHERE id = $1`

	var c entities.Customer
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&c.ID,
		&c.Name,
		&c.BillingEmail,
		&c.PaymentTermsDays,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, invoice.ErrCustomerNotFound
		}
		return nil, repository.Unexpected("unexpected customer repository get error", err)
	}

	return &c, nil
}
