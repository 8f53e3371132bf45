package driver

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/driver"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const driverColumns = "id, first_name, last_name, phone, status, pay_model, pay_rate, min_per_mile, team_driver_id, created_at, updated_at"

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Get(ctx context.Context, id int64) (*entities.Driver, error) {
	return r.getOne(ctx, id, "")
}

func (r *Repository) GetForUpdate(ctx context.Context, id int64) (*entities.Driver, error) {
	return r.getOne(ctx, id, "FOR UPDATE")
}

func (r *Repository) getOne(ctx context.Context, id int64, lock string) (*entities.Driver, error) {
	query := `SELECT ` + driverColumns + `
		FROM drivers
		WHERE id = $1 ` + lock

	driverDB, err := scanDriver(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, driver.ErrDriverNotFound
		}
		return nil, repository.Unexpected("unexpected driver repository get error", err)
	}

	return ToDomain(driverDB), nil
}

func (r *Repository) Update(ctx context.Context, driverModify entities.DriverModify) (*entities.Driver, error) {
	query, args, err := qb.
		Update("drivers").
		SetMap(FromDomainModify(&driverModify)).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": driverModify.ID}).
		Suffix("RETURNING " + driverColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository update error: %w", err)
	}

	driverDB, err := scanDriver(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, driver.ErrDriverNotFound
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, driver.ErrDriverNotFound
		}
		return nil, repository.Unexpected("unexpected driver repository update error", err)
	}

	return ToDomain(driverDB), nil
}

// ListActiveDeductions locks the driver's active deductions so two settlements
// cannot consume the same one-off charge.
func (r *Repository) ListActiveDeductions(ctx context.Context, driverID int64) ([]entities.Deduction, error) {
	query := `
		SELECT id, driver_id, description, amount, recurring, active, created_at
		FROM driver_deductions
		WHERE driver_id = $1 AND active
		ORDER BY id
		FOR UPDATE`

	rows, err := r.querier.Query(ctx, query, driverID)
	if err != nil {
		return nil, repository.Unexpected("unexpected driver repository list deductions error", err)
	}
	defer rows.Close()

	deductions := make([]entities.Deduction, 0, 4)
	for rows.Next() {
		var d DeductionDB
		err := rows.Scan(
			&d.ID,
			&d.DriverID,
			&d.Description,
			&d.Amount,
			&d.Recurring,
			&d.Active,
			&d.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected driver repository list deductions error: %w", err)
		}
		deductions = append(deductions, DeductionToDomain(&d))
	}
	if err := rows.Err(); err != nil {
		return nil, repository.Unexpected("unexpected driver repository list deductions error", err)
	}

	return deductions, nil
}

func (r *Repository) DeactivateDeductions(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	_, err := r.querier.Exec(ctx, `UPDATE driver_deductions SET active = FALSE WHERE id = ANY($1)`, ids)
	if err != nil {
		return repository.Unexpected("unexpected driver repository deactivate deductions error", err)
	}
	return nil
}

func scanDriver(row pgx.Row) (*DriverDB, error) {
	var d DriverDB
	err := row.Scan(
		&d.ID,
		&d.FirstName,
		&d.LastName,
		&d.Phone,
		&d.Status,
		&d.PayModel,
		&d.PayRate,
		&d.MinPerMile,
		&d.TeamDriverID,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
