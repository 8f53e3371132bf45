//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	driver_get "dispatch/internal/handlers/rest/driver_get"
	driver_team_delete "dispatch/internal/handlers/rest/driver_team_delete"
	driver_team_post "dispatch/internal/handlers/rest/driver_team_post"
	invoice_delete "dispatch/internal/handlers/rest/invoice_delete"
	invoice_get "dispatch/internal/handlers/rest/invoice_get"
	invoice_payment_post "dispatch/internal/handlers/rest/invoice_payment_post"
	invoice_post "dispatch/internal/handlers/rest/invoice_post"
	invoice_put "dispatch/internal/handlers/rest/invoice_put"
	invoice_status_post "dispatch/internal/handlers/rest/invoice_status_post"
	invoices_batch_post "dispatch/internal/handlers/rest/invoices_batch_post"
	invoices_get "dispatch/internal/handlers/rest/invoices_get"
	load_accessorial_post "dispatch/internal/handlers/rest/load_accessorial_post"
	load_assign_post "dispatch/internal/handlers/rest/load_assign_post"
	load_delete "dispatch/internal/handlers/rest/load_delete"
	load_get "dispatch/internal/handlers/rest/load_get"
	load_post "dispatch/internal/handlers/rest/load_post"
	load_put "dispatch/internal/handlers/rest/load_put"
	load_status_post "dispatch/internal/handlers/rest/load_status_post"
	load_unassign_post "dispatch/internal/handlers/rest/load_unassign_post"
	settlement_get "dispatch/internal/handlers/rest/settlement_get"
	settlement_post "dispatch/internal/handlers/rest/settlement_post"
	settlement_status_post "dispatch/internal/handlers/rest/settlement_status_post"
	settlements_batch_post "dispatch/internal/handlers/rest/settlements_batch_post"
	"dispatch/internal/handlers/tasks/invoice_aging"
	"dispatch/internal/pkg/config"
	"dispatch/internal/pkg/factory/document_number"
	"dispatch/internal/pkg/factory/due_date"

	carrierRepo "dispatch/internal/repository/carrier"
	customerRepo "dispatch/internal/repository/customer"
	driverRepo "dispatch/internal/repository/driver"
	invoiceRepo "dispatch/internal/repository/invoice"
	loadRepo "dispatch/internal/repository/load"
	settlementRepo "dispatch/internal/repository/settlement"
	assignmentService "dispatch/internal/service/assignment"
	"dispatch/internal/service/conflict"
	driverService "dispatch/internal/service/driver"
	invoiceService "dispatch/internal/service/invoice"
	loadService "dispatch/internal/service/load"
	"dispatch/internal/service/rate"
	settlementService "dispatch/internal/service/settlement"
	"dispatch/internal/service/transition"

	"dispatch/pkg/background"
	"dispatch/pkg/logger"
	"dispatch/pkg/querier"
	"dispatch/pkg/retrier"
	"dispatch/pkg/retrier/backoff_adapter"
	"dispatch/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	InvoiceAgingInterval time.Duration
)

type Application struct {
	ServiceLoad       ServiceLoad
	ServiceAssignment ServiceAssignment
	ServiceDriver     ServiceDriver
	ServiceSettlement ServiceSettlement
	ServiceInvoice    ServiceInvoice
	BackgroundWorkers *background.Worker
}

type ServiceLoad interface {
	load_post.Service
	load_get.Service
	load_put.Service
	load_delete.Service
	load_accessorial_post.Service
	load_status_post.Service
}

type ServiceAssignment interface {
	load_assign_post.Service
	load_unassign_post.Service
}

type ServiceDriver interface {
	driver_get.Service
	driver_team_post.Service
	driver_team_delete.Service
}

type ServiceSettlement interface {
	settlement_post.Service
	settlements_batch_post.Service
	settlement_get.Service
	settlement_status_post.Service
}

type ServiceInvoice interface {
	invoice_post.Service
	invoices_batch_post.Service
	invoices_get.Service
	invoice_get.Service
	invoice_put.Service
	invoice_delete.Service
	invoice_status_post.Service
	invoice_payment_post.Service
}

var repositorySet = wire.NewSet(
	provideQuerier,
	provideLoadRepository,
	provideDriverRepository,
	provideCarrierRepository,
	provideCustomerRepository,
	provideSettlementRepository,
	provideInvoiceRepository,
)

var loadSet = wire.NewSet(
	rate.New,
	transition.New,
	conflict.New,
	provideLoadConfig,
	provideServiceAssignment,
	provideServiceLoad,

	wire.Bind(new(loadService.Repository), new(*loadRepo.Repository)),
	wire.Bind(new(loadService.CarrierRepository), new(*carrierRepo.Repository)),
	wire.Bind(new(loadService.RateCalculator), new(*rate.Calculator)),
	wire.Bind(new(loadService.StateMachine), new(*transition.Validator)),
	wire.Bind(new(loadService.DriverReleaser), new(*assignmentService.Service)),
	wire.Bind(new(loadService.TxManager), new(*tx.Manager)),

	wire.Bind(new(assignmentService.LoadRepository), new(*loadRepo.Repository)),
	wire.Bind(new(assignmentService.DriverRepository), new(*driverRepo.Repository)),
	wire.Bind(new(assignmentService.StateMachine), new(*transition.Validator)),
	wire.Bind(new(assignmentService.ConflictDetector), new(*conflict.Detector)),
	wire.Bind(new(assignmentService.TxManager), new(*tx.Manager)),
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		repositorySet,
		loadSet,

		provideDocumentNumberFactory,
		provideDueDateFactory,
		provideSettlementConfig,
		provideInvoiceConfig,
		provideServiceDriver,
		provideServiceSettlement,
		provideServiceInvoice,

		provideInvoiceAgingInterval,
		provideInvoiceAgingTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceLoad), new(*loadService.Service)),
		wire.Bind(new(ServiceAssignment), new(*assignmentService.Service)),
		wire.Bind(new(ServiceDriver), new(*driverService.Service)),
		wire.Bind(new(ServiceSettlement), new(*settlementService.Service)),
		wire.Bind(new(ServiceInvoice), new(*invoiceService.Service)),

		wire.Bind(new(driverService.Repository), new(*driverRepo.Repository)),
		wire.Bind(new(driverService.TxManager), new(*tx.Manager)),

		wire.Bind(new(settlementService.Repository), new(*settlementRepo.Repository)),
		wire.Bind(new(settlementService.LoadRepository), new(*loadRepo.Repository)),
		wire.Bind(new(settlementService.DriverRepository), new(*driverRepo.Repository)),
		wire.Bind(new(settlementService.PayCalculator), new(*rate.Calculator)),
		wire.Bind(new(settlementService.NumberFactory), new(*document_number.DocumentNumberFactory)),
		wire.Bind(new(settlementService.TxManager), new(*tx.Manager)),

		wire.Bind(new(invoiceService.Repository), new(*invoiceRepo.Repository)),
		wire.Bind(new(invoiceService.LoadRepository), new(*loadRepo.Repository)),
		wire.Bind(new(invoiceService.CustomerRepository), new(*customerRepo.Repository)),
		wire.Bind(new(invoiceService.LoadStatusChanger), new(*loadService.Service)),
		wire.Bind(new(invoiceService.DueDateFactory), new(*due_date.DueDateFactory)),
		wire.Bind(new(invoiceService.NumberFactory), new(*document_number.DocumentNumberFactory)),
		wire.Bind(new(invoiceService.TxManager), new(*tx.Manager)),

		wire.Bind(new(invoice_aging.Service), new(*invoiceService.Service)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	LoadService *loadService.Service
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-load-imported)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		repositorySet,
		loadSet,

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

// provideTxManager повторяет транзакцию целиком при конфликте блокировок.
func provideTxManager(pool *pgxpool.Pool, cfg *config.Config) *tx.Manager {
	contentionRetrier := backoff_adapter.New(retrier.Config{
		InitialInterval: cfg.Tx.RetryInitialInterval,
		MaxInterval:     cfg.Tx.RetryMaxInterval,
		MaxElapsedTime:  cfg.Tx.RetryMaxElapsed,
		Randomization:   0.5,
		Multiplier:      2,
		MaxRetries:      cfg.Tx.RetryMaxAttempts,
		ShouldRetry:     tx.IsContention,
	})
	return tx.New(pool, tx.WithRetrier(contentionRetrier))
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideLoadRepository(querier *querier.Querier) *loadRepo.Repository {
	return loadRepo.New(querier)
}

func provideDriverRepository(querier *querier.Querier) *driverRepo.Repository {
	return driverRepo.New(querier)
}

func provideCarrierRepository(querier *querier.Querier) *carrierRepo.Repository {
	return carrierRepo.New(querier)
}

func provideCustomerRepository(querier *querier.Querier) *customerRepo.Repository {
	return customerRepo.New(querier)
}

func provideSettlementRepository(querier *querier.Querier) *settlementRepo.Repository {
	return settlementRepo.New(querier)
}

func provideInvoiceRepository(querier *querier.Querier) *invoiceRepo.Repository {
	return invoiceRepo.New(querier)
}

func provideLoadConfig(cfg *config.Config) loadService.Config {
	return loadService.Config{
		DefaultFuelSurchargePercent: cfg.Billing.DefaultFuelSurchargePercent,
	}
}

func provideSettlementConfig(cfg *config.Config) settlementService.Config {
	return settlementService.Config{
		BatchConcurrency: cfg.Billing.SettlementBatchConcurrency,
	}
}

func provideInvoiceConfig(cfg *config.Config) invoiceService.Config {
	return invoiceService.Config{
		BatchConcurrency: cfg.Billing.InvoiceBatchConcurrency,
	}
}

func provideDocumentNumberFactory(cfg *config.Config) *document_number.DocumentNumberFactory {
	return document_number.New(cfg.Billing.SettlementNumberPrefix, cfg.Billing.InvoiceNumberPrefix)
}

func provideDueDateFactory(cfg *config.Config) *due_date.DueDateFactory {
	return due_date.New(cfg.Billing.DefaultPaymentTermsDays)
}

func provideServiceAssignment(
	loads assignmentService.LoadRepository,
	drivers assignmentService.DriverRepository,
	states assignmentService.StateMachine,
	detector assignmentService.ConflictDetector,
	txManager assignmentService.TxManager,
) *assignmentService.Service {
	return assignmentService.New(loads, drivers, states, detector, txManager)
}

func provideServiceLoad(
	repository loadService.Repository,
	carriers loadService.CarrierRepository,
	calculator loadService.RateCalculator,
	states loadService.StateMachine,
	releaser loadService.DriverReleaser,
	txManager loadService.TxManager,
	config loadService.Config,
) *loadService.Service {
	return loadService.New(repository, carriers, calculator, states, releaser, txManager, config)
}

func provideServiceDriver(
	repository driverService.Repository,
	txManager driverService.TxManager,
) *driverService.Service {
	return driverService.New(repository, txManager)
}

func provideServiceSettlement(
	repository settlementService.Repository,
	loads settlementService.LoadRepository,
	drivers settlementService.DriverRepository,
	calculator settlementService.PayCalculator,
	numbers settlementService.NumberFactory,
	txManager settlementService.TxManager,
	config settlementService.Config,
) *settlementService.Service {
	return settlementService.New(repository, loads, drivers, calculator, numbers, txManager, config)
}

func provideServiceInvoice(
	repository invoiceService.Repository,
	loads invoiceService.LoadRepository,
	customers invoiceService.CustomerRepository,
	loadStatus invoiceService.LoadStatusChanger,
	dueDates invoiceService.DueDateFactory,
	numbers invoiceService.NumberFactory,
	txManager invoiceService.TxManager,
	config invoiceService.Config,
) *invoiceService.Service {
	return invoiceService.New(repository, loads, customers, loadStatus, dueDates, numbers, txManager, config)
}

func provideInvoiceAgingInterval(cfg *config.Config) InvoiceAgingInterval {
	return InvoiceAgingInterval(cfg.Tasks.InvoiceAgingInterval)
}

func provideInvoiceAgingTask(
	log logger.Logger,
	invoiceService invoice_aging.Service,
	interval InvoiceAgingInterval,
) *invoice_aging.InvoiceAging {
	return invoice_aging.NewInvoiceAging(log, invoiceService, time.Duration(interval))
}

func provideTaskList(
	invoiceAgingTask *invoice_aging.InvoiceAging,
) []background.Task {
	return []background.Task{
		invoiceAgingTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
