package invoice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/invoice"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	invoiceColumns = `id, number, customer_id, status, issue_date, due_date, subtotal, fuel_surcharge_total,
	accessorial_total, total, amount_paid, balance_due, notes, sent_at, paid_at, voided_at, created_at, updated_at`
	lineItemColumns = "id, invoice_id, sequence, load_id, type, description, amount"

	numberConstraint = "invoices_number_key"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, i entities.Invoice) (*entities.Invoice, error) {
	query := `
		INSERT INTO invoices (number, customer_id, status, issue_date, due_date, subtotal, fuel_surcharge_total,
			accessorial_total, total, amount_paid, balance_due, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + invoiceColumns

	var invoiceDB InvoiceDB
	err := r.querier.QueryRow(
		ctx,
		query,
		i.Number,
		i.CustomerID,
		string(i.Status),
		i.IssueDate,
		i.DueDate,
		i.Subtotal,
		i.FuelSurchargeTotal,
		i.AccessorialTotal,
		i.Total,
		i.AmountPaid,
		i.BalanceDue,
		i.Notes,
	).Scan(invoiceDB.targets()...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) &&
			repository.ConstraintName(err) == numberConstraint {
			return nil, invoice.ErrInvoiceNumberTaken
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, invoice.ErrCustomerNotFound
		}
		return nil, repository.Unexpected("unexpected invoice repository create error", err)
	}

	items, err := r.insertLineItems(ctx, invoiceDB.ID, i.LineItems)
	if err != nil {
		return nil, err
	}

	return ToDomain(&invoiceDB, items), nil
}

func (r *Repository) insertLineItems(ctx context.Context, invoiceID int64, items []entities.InvoiceLineItem) ([]LineItemDB, error) {
	if len(items) == 0 {
		return []LineItemDB{}, nil
	}

	builder := qb.
		Insert("invoice_line_items").
		Columns("invoice_id", "sequence", "load_id", "type", "description", "amount")
	for _, item := range items {
		builder = builder.Values(invoiceID, item.Sequence, item.LoadID, string(item.Type), item.Description, item.Amount)
	}

	query, args, err := builder.Suffix("RETURNING " + lineItemColumns).ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected invoice repository insert line items error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, repository.Unexpected("unexpected invoice repository insert line items error", err)
	}
	created, err := collectLineItems(rows)
	if err != nil {
		return nil, repository.Unexpected("unexpected invoice repository insert line items error", err)
	}
	return created, nil
}

func (r *Repository) Get(ctx context.Context, id int64) (*entities.Invoice, error) {
	return r.getOne(ctx, id, "")
}

func (r *Repository) GetForUpdate(ctx context.Context, id int64) (*entities.Invoice, error) {
	return r.getOne(ctx, id, "FOR UPDATE")
}

func (r *Repository) getOne(ctx context.Context, id int64, lock string) (*entities.Invoice, error) {
	query := `SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE id = $1 ` + lock

	var invoiceDB InvoiceDB
	err := r.querier.QueryRow(ctx, query, id).Scan(invoiceDB.targets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, invoice.ErrInvoiceNotFound
		}
		return nil, repository.Unexpected("unexpected invoice repository get error", err)
	}

	items, err := r.listLineItems(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToDomain(&invoiceDB, items), nil
}

// List returns invoice headers without line items, oldest first.
func (r *Repository) List(ctx context.Context, filter entities.InvoiceFilter) ([]entities.Invoice, error) {
	builder := qb.
		Select(invoiceColumns).
		From("invoices").
		OrderBy("id")

	if filter.CustomerID != nil {
		builder = builder.Where(sq.Eq{"customer_id": *filter.CustomerID})
	}
	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": string(*filter.Status)})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		builder = builder.Offset(filter.Offset)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected invoice repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, repository.Unexpected("unexpected invoice repository list error", err)
	}
	defer rows.Close()

	invoices := make([]entities.Invoice, 0, 16)
	for rows.Next() {
		var invoiceDB InvoiceDB
		if err := rows.Scan(invoiceDB.targets()...); err != nil {
			return nil, fmt.Errorf("unexpected invoice repository list error: %w", err)
		}
		invoices = append(invoices, *ToDomain(&invoiceDB, nil))
	}
	if err := rows.Err(); err != nil {
		return nil, repository.Unexpected("unexpected invoice repository list error", err)
	}

	return invoices, nil
}

func (r *Repository) Update(ctx context.Context, invoiceModify entities.InvoiceModify) (*entities.Invoice, error) {
	query, args, err := qb.
		Update("invoices").
		SetMap(FromDomainModify(&invoiceModify)).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": invoiceModify.ID}).
		Suffix("RETURNING " + invoiceColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected invoice repository update error: %w", err)
	}

	var invoiceDB InvoiceDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(invoiceDB.targets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, invoice.ErrInvoiceNotFound
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrCheckViolation) {
			return nil, fmt.Errorf("%w: %w", invoice.ErrInvalidDueDate, err)
		}
		return nil, repository.Unexpected("unexpected invoice repository update error", err)
	}

	items, err := r.listLineItems(ctx, invoiceDB.ID)
	if err != nil {
		return nil, err
	}
	return ToDomain(&invoiceDB, items), nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	result, err := r.querier.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return repository.Unexpected("unexpected invoice repository delete error", err)
	}

	if result.RowsAffected() == 0 {
		return invoice.ErrInvoiceNotFound
	}
	return nil
}

// MarkOverdue flips SENT invoices due before cutoff to OVERDUE and returns how many changed.
func (r *Repository) MarkOverdue(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `
		UPDATE invoices
		SET status = 'OVERDUE', updated_at = NOW()
		WHERE status = 'SENT' AND due_date < $1`

	result, err := r.querier.Exec(ctx, query, cutoff)
	if err != nil {
		return 0, repository.Unexpected("unexpected invoice repository mark overdue error", err)
	}
	return result.RowsAffected(), nil
}

func (r *Repository) listLineItems(ctx context.Context, invoiceID int64) ([]LineItemDB, error) {
	rows, err := r.querier.Query(ctx,
		`SELECT `+lineItemColumns+` FROM invoice_line_items WHERE invoice_id = $1 ORDER BY sequence`, invoiceID)
	if err != nil {
		return nil, repository.Unexpected("unexpected invoice repository list line items error", err)
	}
	items, err := collectLineItems(rows)
	if err != nil {
		return nil, repository.Unexpected("unexpected invoice repository list line items error", err)
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
			&item.InvoiceID,
			&item.Sequence,
			&item.LoadID,
			&item.Type,
			&item.Description,
			&item.Amount,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
