package settlement

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/settlement"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	settlementColumns = `id, number, driver_id, period_start, period_end, gross_pay, deductions, net_pay,
	total_miles, load_count, status, requested_by, approved_at, paid_at, created_at`
	lineItemColumns = "id, settlement_id, sequence, type, load_id, deduction_id, description, miles, amount"

	numberConstraint = "settlements_number_key"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, s entities.Settlement) (*entities.Settlement, error) {
	query := `
		INSERT INTO settlements (number, driver_id, period_start, period_end, gross_pay, deductions, net_pay,
			total_miles, load_count, status, requested_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + settlementColumns

	var settlementDB SettlementDB
	err := r.querier.QueryRow(
		ctx,
		query,
		s.Number,
		s.DriverID,
		s.PeriodStart,
		s.PeriodEnd,
		s.GrossPay,
		s.Deductions,
		s.NetPay,
		s.TotalMiles,
		s.LoadCount,
		string(s.Status),
		s.RequestedBy,
	).Scan(settlementDB.targets()...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) &&
			repository.ConstraintName(err) == numberConstraint {
			return nil, settlement.ErrSettlementNumberTaken
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, fmt.Errorf("driver %d: %w", s.DriverID, entities.ErrNotFound)
		}
		return nil, repository.Unexpected("unexpected settlement repository create error", err)
	}

	items, err := r.insertLineItems(ctx, settlementDB.ID, s.LineItems)
	if err != nil {
		return nil, err
	}

	return ToDomain(&settlementDB, items), nil
}

func (r *Repository) insertLineItems(ctx context.Context, settlementID int64, items []entities.SettlementLineItem) ([]LineItemDB, error) {
	if len(items) == 0 {
		return []LineItemDB{}, nil
	}

	builder := qb.
		Insert("settlement_line_items").
		Columns("settlement_id", "sequence", "type", "load_id", "deduction_id", "description", "miles", "amount")
	for _, item := range items {
		builder = builder.Values(settlementID, item.Sequence, string(item.Type), item.LoadID, item.DeductionID,
			item.Description, item.Miles, item.Amount)
	}

	query, args, err := builder.Suffix("RETURNING " + lineItemColumns).ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected settlement repository insert line items error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, repository.Unexpected("unexpected settlement repository insert line items error", err)
	}
	created, err := collectLineItems(rows)
	if err != nil {
		return nil, repository.Unexpected("unexpected settlement repository insert line items error", err)
	}
	return created, nil
}

func (r *Repository) Get(ctx context.Context, id int64) (*entities.Settlement, error) {
	return r.getOne(ctx, id, "")
}

func (r *Repository) GetForUpdate(ctx context.Context, id int64) (*entities.Settlement, error) {
	return r.getOne(ctx, id, "FOR UPDATE")
}

func (r *Repository) getOne(ctx context.Context, id int64, lock string) (*entities.Settlement, error) {
	query := `SELECT ` + settlementColumns + `
		FROM settlements
		WHERE id = $1 ` + lock

	var settlementDB SettlementDB
	err := r.querier.QueryRow(ctx, query, id).Scan(settlementDB.targets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, settlement.ErrSettlementNotFound
		}
		return nil, repository.Unexpected("unexpected settlement repository get error", err)
	}

	items, err := r.listLineItems(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToDomain(&settlementDB, items), nil
}

func (r *Repository) Update(ctx context.Context, settlementModify entities.SettlementModify) (*entities.Settlement, error) {
	query, args, err := qb.
		Update("settlements").
		SetMap(FromDomainModify(&settlementModify)).
		Where(sq.Eq{"id": settlementModify.ID}).
		Suffix("RETURNING " + settlementColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected settlement repository update error: %w", err)
	}

	var settlementDB SettlementDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(settlementDB.targets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, settlement.ErrSettlementNotFound
		}
		return nil, repository.Unexpected("unexpected settlement repository update error", err)
	}

	items, err := r.listLineItems(ctx, settlementDB.ID)
	if err != nil {
		return nil, err
	}
	return ToDomain(&settlementDB, items), nil
}

func (r *Repository) listLineItems(ctx context.Context, settlementID int64) ([]LineItemDB, error) {
	rows, err := r.querier.Query(ctx,
		`SELECT `+lineItemColumns+` FROM settlement_line_items WHERE settlement_id = $1 ORDER BY sequence`, settlementID)
	if err != nil {
		return nil, repository.Unexpected("unexpected settlement repository list line items error", err)
	}
	items, err := collectLineItems(rows)
	if err != nil {
		return nil, repository.Unexpected("unexpected settlement repository list line items error", err)
	}
	return items, nil
}

func collectLineItems(rows pgx.Rows) ([]LineItemDB, error) {
	defer rows.Close()

	items := make([]LineItemDB, 0, 8)
	for rows.Next() {
		var item LineItemDB
		err := rows.Scan(
			&item.ID,
			&item.SettlementID,
			&item.Sequence,
			&item.Type,
			&item.LoadID,
			&item.DeductionID,
			&item.Description,
			&item.Miles,
			&item.Amount,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
