package integration_test

import (
	"context"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"dispatch/internal/pkg/config"
	"dispatch/internal/pkg/postgres"
	"dispatch/pkg/logger/zap_adapter"
	"dispatch/pkg/querier"
	"dispatch/pkg/tx"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

var (
	querierInstance *querier.Querier
	poolInstance    *pgxpool.Pool
	querierOnce     sync.Once
)

func GetQuerier() *querier.Querier {
	querierOnce.Do(func() {
		// godotenv.Load(.env.test) не вызываем так как Makefile подгружает их
		cfg := &config.Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		zapLogger, err := zap_adapter.NewZapAdapter()
		if err != nil {
			log.Fatalf("failed to initialize logger: %v", err)
		}
		defer func() {
			if err := zapLogger.Sync(); err != nil {
				log.Printf("failed to sync logger: %v", err)
			}
		}()

		if err := postgres.Migrate(ctx, zapLogger, cfg, postgres.MigrateUp); err != nil {
			panic(err)
		}

		connPool, err := postgres.NewConnPool(ctx, zapLogger, cfg)
		if err != nil {
			panic(err)
		}

		poolInstance = connPool
		querierInstance = querier.New(connPool, pgxv5.DefaultCtxGetter)
	})

	return querierInstance
}

// GetTxManager returns a transaction manager bound to the same pool as GetQuerier.
func GetTxManager() *tx.Manager {
	GetQuerier()
	return tx.New(poolInstance)
}

func SetupDB(t *testing.T, setupSql string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if setupSql == "" {
		GetQuerier()
		return
	}

	_, err := GetQuerier().Exec(ctx, setupSql)

	require.NoError(t, err)
}

func TeardownDB(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, `
		TRUNCATE TABLE load_accessorials, load_stops, loads,
			invoice_line_items, invoices, settlement_line_items, settlements,
			driver_deductions, drivers, trucks, trailers, carriers, customers
		RESTART IDENTITY CASCADE;
	`)
	require.NoError(t, err)
}

// ReferenceData seeds two customers, three drivers, one truck, one trailer and two carriers.
const ReferenceData = `
	INSERT INTO customers (id, name, billing_email, payment_terms_days) VALUES
		(1, 'Acme Foods', 'ap@acme.test', 30),
		(2, 'Blue Ridge Paper', 'billing@blueridge.test', 15);
	INSERT INTO drivers (id, first_name, last_name, status, pay_model, pay_rate, min_per_mile) VALUES
		(1, 'Ivan', 'Petrov', 'AVAILABLE', 'CPM', 0.6000, NULL),
		(2, 'Maria', 'Lopez', 'AVAILABLE', 'PERCENTAGE', 0.2500, 0.5000),
		(3, 'Sam', 'Otieno', 'OUT_OF_SERVICE', 'FLAT', 400.0000, NULL);
	INSERT INTO trucks (id, unit_number) VALUES (1, 'T-100');
	INSERT INTO trailers (id, unit_number) VALUES (1, 'R-200');
	INSERT INTO carriers (id, name, mc_number, status) VALUES
		(1, 'Partner Haul', 'MC-1001', 'ACTIVE'),
		(2, 'Shady Freight', 'MC-1002', 'SUSPENDED');
	SELECT setval('customers_id_seq', 10), setval('drivers_id_seq', 10), setval('carriers_id_seq', 10);
`
