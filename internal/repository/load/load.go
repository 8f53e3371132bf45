package load

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/invoice"
	"dispatch/internal/service/load"
	"dispatch/internal/service/settlement"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const loadColumns = `id, reference, status, customer_id, driver_id, team_driver_id, truck_id, trailer_id,
	carrier_id, rate_amount, rate_type, fuel_surcharge_percent, fuel_surcharge_amount, total_amount,
	loaded_miles, empty_miles, settlement_id, invoice_id, exclude_from_settlement, import_confidence,
	source_document_url, assigned_at, picked_up_at, delivered_at, cancellation_reason, created_at, updated_at`

const (
	stopColumns        = "id, load_id, sequence, type, facility, address, appointment_start, appointment_end"
	accessorialColumns = "id, load_id, type, description, quantity, rate, total, created_at"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Create inserts the load with its stops and accessorials. Run it inside a
// transaction so a failing child insert leaves no partial load behind.
func (r *Repository) Create(ctx context.Context, l entities.Load) (*entities.Load, error) {
	query := `
		INSERT INTO loads (reference, status, customer_id, rate_amount, rate_type, fuel_surcharge_percent,
			fuel_surcharge_amount, total_amount, loaded_miles, empty_miles, import_confidence, source_document_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + loadColumns

	var loadDB LoadDB
	err := r.querier.QueryRow(
		ctx,
		query,
		l.Reference,
		l.Status.String(),
		l.CustomerID,
		l.RateAmount,
		string(l.RateType),
		l.FuelSurchargePercent,
		l.FuelSurchargeAmount,
		l.TotalAmount,
		l.LoadedMiles,
		l.EmptyMiles,
		l.ImportConfidence,
		l.SourceDocumentURL,
	).Scan(loadDB.targets()...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, load.ErrUnknownReference
		}
		return nil, repository.Unexpected("unexpected load repository create error", err)
	}

	stops, err := r.insertStops(ctx, loadDB.ID, l.Stops)
	if err != nil {
		return nil, err
	}

	accessorials := make([]AccessorialDB, 0, len(l.Accessorials))
	for _, a := range l.Accessorials {
		a.LoadID = loadDB.ID
		created, err := r.insertAccessorial(ctx, a)
		if err != nil {
			return nil, err
		}
		accessorials = append(accessorials, *created)
	}

	return ToDomain(&loadDB, stops, accessorials), nil
}

func (r *Repository) insertStops(ctx context.Context, loadID int64, stops []entities.Stop) ([]StopDB, error) {
	if len(stops) == 0 {
		return []StopDB{}, nil
	}

	builder := qb.
		Insert("load_stops").
		Columns("load_id", "sequence", "type", "facility", "address", "appointment_start", "appointment_end")
	for _, s := range stops {
		builder = builder.Values(loadID, s.Sequence, string(s.Type), s.Facility, s.Address, s.AppointmentStart, s.AppointmentEnd)
	}
	builder = builder.Suffix("RETURNING " + stopColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected load repository insert stops error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, repository.Unexpected("unexpected load repository insert stops error", err)
	}
	created, err := collectStops(rows)
	if err != nil {
		return nil, repository.Unexpected("unexpected load repository insert stops error", err)
	}
	return created, nil
}

func (r *Repository) Get(ctx context.Context, id int64) (*entities.Load, error) {
	return r.getOne(ctx, id, "")
}

// GetForUpdate locks the load row until the surrounding transaction ends.
func (r *Repository) GetForUpdate(ctx context.Context, id int64) (*entities.Load, error) {
	return r.getOne(ctx, id, "FOR UPDATE")
}

func (r *Repository) getOne(ctx context.Context, id int64, lock string) (*entities.Load, error) {
	query := `SELECT ` + loadColumns + `
		FROM loads
		WHERE id = $1 ` + lock

	var loadDB LoadDB
	err := r.querier.QueryRow(ctx, query, id).Scan(loadDB.targets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, load.ErrLoadNotFound
		}
		return nil, repository.Unexpected("unexpected load repository get error", err)
	}

	loads, err := r.withChildren(ctx, []LoadDB{loadDB})
	if err != nil {
		return nil, err
	}
	return &loads[0], nil
}

func (r *Repository) Update(ctx context.Context, loadModify entities.LoadModify) (*entities.Load, error) {
	builder := qb.
		Update("loads").
		SetMap(FromDomainModify(&loadModify)).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": loadModify.ID}).
		Suffix("RETURNING " + loadColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected load repository update error: %w", err)
	}

	var loadDB LoadDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(loadDB.targets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, load.ErrLoadNotFound
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, load.ErrUnknownReference
		}
		return nil, repository.Unexpected("unexpected load repository update error", err)
	}

	loads, err := r.withChildren(ctx, []LoadDB{loadDB})
	if err != nil {
		return nil, err
	}
	return &loads[0], nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	result, err := r.querier.Exec(ctx, `DELETE FROM loads WHERE id = $1`, id)
	if err != nil {
		return repository.Unexpected("unexpected load repository delete error", err)
	}

	if result.RowsAffected() == 0 {
		return load.ErrLoadNotFound
	}
	return nil
}

func (r *Repository) AddAccessorial(ctx context.Context, accessorial entities.Accessorial) (*entities.Accessorial, error) {
	created, err := r.insertAccessorial(ctx, accessorial)
	if err != nil {
		return nil, err
	}

	result := AccessorialToDomain(created)
	return &result, nil
}

func (r *Repository) insertAccessorial(ctx context.Context, a entities.Accessorial) (*AccessorialDB, error) {
	query := `
		INSERT INTO load_accessorials (load_id, type, description, quantity, rate, total)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + accessorialColumns

	var accessorialDB AccessorialDB
	err := r.querier.QueryRow(ctx, query, a.LoadID, a.Type, a.Description, a.Quantity, a.Rate, a.Total).
		Scan(
			&accessorialDB.ID,
			&accessorialDB.LoadID,
			&accessorialDB.Type,
			&accessorialDB.Description,
			&accessorialDB.Quantity,
			&accessorialDB.Rate,
			&accessorialDB.Total,
			&accessorialDB.CreatedAt,
		)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, load.ErrLoadNotFound
		}
		return nil, repository.Unexpected("unexpected load repository add accessorial error", err)
	}
	return &accessorialDB, nil
}

// ListActiveForDriver returns the SCHEDULED, IN_PICKUP_YARD and IN_TRANSIT loads
// where the driver is primary or team partner, without the excluded load.
func (r *Repository) ListActiveForDriver(ctx context.Context, driverID, excludeLoadID int64) ([]entities.Load, error) {
	builder := qb.
		Select(loadColumns).
		From("loads").
		Where(sq.Or{sq.Eq{"driver_id": driverID}, sq.Eq{"team_driver_id": driverID}}).
		Where(sq.Eq{"status": statusStrings(entities.ActiveLoadStatuses)}).
		Where(sq.NotEq{"id": excludeLoadID}).
		OrderBy("id")

	return r.list(ctx, builder, "list active for driver")
}

// ListActiveForTruck returns the SCHEDULED, IN_PICKUP_YARD and IN_TRANSIT loads
// hauled by the truck, without the excluded load.
func (r *Repository) ListActiveForTruck(ctx context.Context, truckID, excludeLoadID int64) ([]entities.Load, error) {
	builder := qb.
		Select(loadColumns).
		From("loads").
		Where(sq.Eq{"truck_id": truckID}).
		Where(sq.Eq{"status": statusStrings(entities.ActiveLoadStatuses)}).
		Where(sq.NotEq{"id": excludeLoadID}).
		OrderBy("id")

	return r.list(ctx, builder, "list active for truck")
}

// LockTruck takes the row lock of the truck so assignments of the same truck
// run one after another.
func (r *Repository) LockTruck(ctx context.Context, truckID int64) error {
	query := `SELECT id FROM trucks WHERE id = $1 FOR UPDATE`

	var id int64
	if err := r.querier.QueryRow(ctx, query, truckID).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return load.ErrTruckNotFound
		}
		return repository.Unexpected("unexpected load repository lock truck error", err)
	}
	return nil
}

// ListSettleableForUpdate locks the driver's unsettled COMPLETED and INVOICED
// loads delivered in [from, to).
func (r *Repository) ListSettleableForUpdate(ctx context.Context, driverID int64, from, to time.Time) ([]entities.Load, error) {
	builder := qb.
		Select(loadColumns).
		From("loads").
		Where(sq.Eq{"driver_id": driverID}).
		Where(sq.Eq{"status": statusStrings(entities.SettleableLoadStatuses)}).
		Where(sq.Eq{"settlement_id": nil}).
		Where(sq.Eq{"exclude_from_settlement": false}).
		Where(sq.GtOrEq{"delivered_at": from}).
		Where(sq.Lt{"delivered_at": to}).
		OrderBy("id").
		Suffix("FOR UPDATE")

	return r.list(ctx, builder, "list settleable")
}

// SetSettlement stamps loads that are still unsettled. Fewer stamped rows than
// requested means a concurrent generator got there first.
func (r *Repository) SetSettlement(ctx context.Context, settlementID int64, loadIDs []int64) error {
	query := `
		UPDATE loads
		SET settlement_id = $1, updated_at = NOW()
		WHERE id = ANY($2) AND settlement_id IS NULL`

	result, err := r.querier.Exec(ctx, query, settlementID, loadIDs)
	if err != nil {
		return repository.Unexpected("unexpected load repository set settlement error", err)
	}
	if result.RowsAffected() != int64(len(loadIDs)) {
		return settlement.ErrLoadAlreadySettled
	}
	return nil
}

// ListInvoiceableForUpdate locks the customer's uninvoiced COMPLETED loads,
// limited to loadIDs when it is not empty.
func (r *Repository) ListInvoiceableForUpdate(ctx context.Context, customerID int64, loadIDs []int64) ([]entities.Load, error) {
	builder := qb.
		Select(loadColumns).
		From("loads").
		Where(sq.Eq{"customer_id": customerID}).
		Where(sq.Eq{"status": entities.LoadCompleted.String()}).
		Where(sq.Eq{"invoice_id": nil})
	if len(loadIDs) > 0 {
		builder = builder.Where(sq.Eq{"id": loadIDs})
	}
	builder = builder.
		OrderBy("id").
		Suffix("FOR UPDATE")

	return r.list(ctx, builder, "list invoiceable")
}

func (r *Repository) SetInvoice(ctx context.Context, invoiceID int64, loadIDs []int64) error {
	query := `
		UPDATE loads
		SET invoice_id = $1, updated_at = NOW()
		WHERE id = ANY($2) AND invoice_id IS NULL`

	result, err := r.querier.Exec(ctx, query, invoiceID, loadIDs)
	if err != nil {
		return repository.Unexpected("unexpected load repository set invoice error", err)
	}
	if result.RowsAffected() != int64(len(loadIDs)) {
		return invoice.ErrLoadAlreadyInvoiced
	}
	return nil
}

func (r *Repository) ClearInvoice(ctx context.Context, invoiceID int64) error {
	query := `
		UPDATE loads
		SET invoice_id = NULL, updated_at = NOW()
		WHERE invoice_id = $1`

	if _, err := r.querier.Exec(ctx, query, invoiceID); err != nil {
		return repository.Unexpected("unexpected load repository clear invoice error", err)
	}
	return nil
}

func (r *Repository) ListByInvoice(ctx context.Context, invoiceID int64) ([]entities.Load, error) {
	builder := qb.
		Select(loadColumns).
		From("loads").
		Where(sq.Eq{"invoice_id": invoiceID}).
		OrderBy("id")

	return r.list(ctx, builder, "list by invoice")
}

func (r *Repository) list(ctx context.Context, builder sq.SelectBuilder, op string) ([]entities.Load, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected load repository %s error: %w", op, err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, repository.Unexpected("unexpected load repository "+op+" error", err)
	}
	defer rows.Close()

	loadModels := make([]LoadDB, 0, 8)
	for rows.Next() {
		var loadDB LoadDB
		if err := rows.Scan(loadDB.targets()...); err != nil {
			return nil, fmt.Errorf("unexpected load repository %s error: %w", op, err)
		}
		loadModels = append(loadModels, loadDB)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.Unexpected("unexpected load repository "+op+" error", err)
	}
	rows.Close()

	return r.withChildren(ctx, loadModels)
}

// withChildren loads stops and accessorials of every load with one query each.
func (r *Repository) withChildren(ctx context.Context, loadModels []LoadDB) ([]entities.Load, error) {
	if len(loadModels) == 0 {
		return []entities.Load{}, nil
	}

	ids := make([]int64, len(loadModels))
	for i := range loadModels {
		ids[i] = loadModels[i].ID
	}

	stopRows, err := r.querier.Query(ctx,
		`SELECT `+stopColumns+` FROM load_stops WHERE load_id = ANY($1) ORDER BY load_id, sequence`, ids)
	if err != nil {
		return nil, repository.Unexpected("unexpected load repository list stops error", err)
	}
	stops, err := collectStops(stopRows)
	if err != nil {
		return nil, repository.Unexpected("unexpected load repository list stops error", err)
	}

	accessorialRows, err := r.querier.Query(ctx,
		`SELECT `+accessorialColumns+` FROM load_accessorials WHERE load_id = ANY($1) ORDER BY load_id, id`, ids)
	if err != nil {
		return nil, repository.Unexpected("unexpected load repository list accessorials error", err)
	}
	accessorials, err := collectAccessorials(accessorialRows)
	if err != nil {
		return nil, repository.Unexpected("unexpected load repository list accessorials error", err)
	}

	stopsByLoad := make(map[int64][]StopDB, len(loadModels))
	for _, s := range stops {
		stopsByLoad[s.LoadID] = append(stopsByLoad[s.LoadID], s)
	}
	accessorialsByLoad := make(map[int64][]AccessorialDB, len(loadModels))
	for _, a := range accessorials {
		accessorialsByLoad[a.LoadID] = append(accessorialsByLoad[a.LoadID], a)
	}

	result := make([]entities.Load, len(loadModels))
	for i := range loadModels {
		id := loadModels[i].ID
		result[i] = *ToDomain(&loadModels[i], stopsByLoad[id], accessorialsByLoad[id])
	}
	return result, nil
}

func collectStops(rows pgx.Rows) ([]StopDB, error) {
	defer rows.Close()

	stops := make([]StopDB, 0, 4)
	for rows.Next() {
		var s StopDB
		err := rows.Scan(
			&s.ID,
			&s.LoadID,
			&s.Sequence,
			&s.Type,
			&s.Facility,
			&s.Address,
			&s.AppointmentStart,
			&s.AppointmentEnd,
		)
		if err != nil {
			return nil, err
		}
		stops = append(stops, s)
	}
	return stops, rows.Err()
}

func collectAccessorials(rows pgx.Rows) ([]AccessorialDB, error) {
	defer rows.Close()

	accessorials := make([]AccessorialDB, 0, 4)
	for rows.Next() {
		var a AccessorialDB
		err := rows.Scan(
			&a.ID,
			&a.LoadID,
			&a.Type,
			&a.Description,
			&a.Quantity,
			&a.Rate,
			&a.Total,
			&a.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		accessorials = append(accessorials, a)
	}
	return accessorials, rows.Err()
}

func statusStrings(statuses []entities.LoadStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = s.String()
	}
	return out
}
