package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

type (
	Tasks struct {
		InvoiceAgingInterval time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware  rate limiter capacity
		RateLimiterBurst int           // middlewarerate limiter burst/refill
		PprofEnabled     bool
		PprofPort        string
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
	}

	Kafka struct {
		PortHealthcheck string
		Brokers         string
		Topic           string
		ConsumerGroup   string
		Sarama          Sarama
		Handlers        KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		LoadImported LoadImported
	}

	LoadImported struct {
		ProcessTimeout time.Duration
	}

	Billing struct {
		SettlementNumberPrefix      string
		InvoiceNumberPrefix         string
		DefaultPaymentTermsDays     int
		DefaultFuelSurchargePercent decimal.Decimal
		SettlementBatchConcurrency  int
		InvoiceBatchConcurrency     int
	}

	// Tx задаёт ретраи транзакций, упавших на блокировках.
	Tx struct {
		RetryInitialInterval time.Duration
		RetryMaxInterval     time.Duration
		RetryMaxElapsed      time.Duration
		RetryMaxAttempts     uint64
	}

	Config struct {
		Tasks    Tasks
		Server   HTTPServer
		Database Database
		Kafka    Kafka
		Billing  Billing
		Tx       Tx
	}
)

const (
	defaultSettlementPrefix   = "STL"
	defaultInvoicePrefix      = "INV"
	defaultPaymentTermsDays   = 30
	defaultBatchConcurrency   = 4
	defaultRetryInitial       = 50 * time.Millisecond
	defaultRetryMaxInterval   = time.Second
	defaultRetryMaxElapsed    = 5 * time.Second
	defaultRetryMaxAttempts   = 5
	defaultInvoiceAgingPeriod = time.Hour
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

// LoadDatabase reads only the Database section, for tools that need nothing else.
func LoadDatabase() (*Database, error) {
	db := loadDatabase()
	if err := validateDatabase(&db); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return &db, nil
}

func loadFromEnv() (*Config, error) {
	invoiceAgingInterval, err := osGetEnvDuration("BACKGROUND_INVOICE_AGING_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	loadImportedTimeout, err := osGetEnvDuration("KAFKA_HANDLER_LOAD_IMPORTED_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	billing, err := loadBilling()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	tx, err := loadTx()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if invoiceAgingInterval == time.Duration(0) {
		invoiceAgingInterval = defaultInvoiceAgingPeriod
	}

	return &Config{
		Tasks: Tasks{
			InvoiceAgingInterval: invoiceAgingInterval,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Database: loadDatabase(),
		Kafka: Kafka{
			Brokers:         os.Getenv("KAFKA_BROKERS"),
			Topic:           os.Getenv("KAFKA_TOPIC"),
			ConsumerGroup:   os.Getenv("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck: os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				LoadImported: LoadImported{
					ProcessTimeout: loadImportedTimeout,
				},
			},
		},
		Billing: billing,
		Tx:      tx,
	}, nil
}

func loadDatabase() Database {
	return Database{
		Host:     os.Getenv("POSTGRES_HOST"),
		Port:     os.Getenv("POSTGRES_PORT"),
		User:     os.Getenv("POSTGRES_USER"),
		Password: os.Getenv("POSTGRES_PASSWORD"),
		DBName:   os.Getenv("POSTGRES_DB"),
		SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
	}
}

func loadBilling() (Billing, error) {
	termsDays, err := osGetInt("BILLING_DEFAULT_PAYMENT_TERMS_DAYS")
	if err != nil {
		return Billing{}, err
	}
	fuelPercent, err := osGetDecimal("BILLING_DEFAULT_FUEL_SURCHARGE_PERCENT")
	if err != nil {
		return Billing{}, err
	}
	settlementConcurrency, err := osGetInt("BILLING_SETTLEMENT_BATCH_CONCURRENCY")
	if err != nil {
		return Billing{}, err
	}
	invoiceConcurrency, err := osGetInt("BILLING_INVOICE_BATCH_CONCURRENCY")
	if err != nil {
		return Billing{}, err
	}

	billing := Billing{
		SettlementNumberPrefix:      os.Getenv("BILLING_SETTLEMENT_NUMBER_PREFIX"),
		InvoiceNumberPrefix:         os.Getenv("BILLING_INVOICE_NUMBER_PREFIX"),
		DefaultPaymentTermsDays:     termsDays,
		DefaultFuelSurchargePercent: fuelPercent,
		SettlementBatchConcurrency:  settlementConcurrency,
		InvoiceBatchConcurrency:     invoiceConcurrency,
	}

	// значения по умолчанию
	if billing.SettlementNumberPrefix == "" {
		billing.SettlementNumberPrefix = defaultSettlementPrefix
	}
	if billing.InvoiceNumberPrefix == "" {
		billing.InvoiceNumberPrefix = defaultInvoicePrefix
	}
	if billing.DefaultPaymentTermsDays == 0 {
		billing.DefaultPaymentTermsDays = defaultPaymentTermsDays
	}
	if billing.SettlementBatchConcurrency == 0 {
		billing.SettlementBatchConcurrency = defaultBatchConcurrency
	}
	if billing.InvoiceBatchConcurrency == 0 {
		billing.InvoiceBatchConcurrency = defaultBatchConcurrency
	}
	return billing, nil
}

func loadTx() (Tx, error) {
	initial, err := osGetEnvDuration("TX_RETRY_INITIAL_INTERVAL")
	if err != nil {
		return Tx{}, err
	}
	maxInterval, err := osGetEnvDuration("TX_RETRY_MAX_INTERVAL")
	if err != nil {
		return Tx{}, err
	}
	maxElapsed, err := osGetEnvDuration("TX_RETRY_MAX_ELAPSED")
	if err != nil {
		return Tx{}, err
	}
	maxAttempts, err := osGetInt("TX_RETRY_MAX_ATTEMPTS")
	if err != nil {
		return Tx{}, err
	}

	tx := Tx{
		RetryInitialInterval: initial,
		RetryMaxInterval:     maxInterval,
		RetryMaxElapsed:      maxElapsed,
		RetryMaxAttempts:     uint64(max(maxAttempts, 0)),
	}
	if tx.RetryInitialInterval == 0 {
		tx.RetryInitialInterval = defaultRetryInitial
	}
	if tx.RetryMaxInterval == 0 {
		tx.RetryMaxInterval = defaultRetryMaxInterval
	}
	if tx.RetryMaxElapsed == 0 {
		tx.RetryMaxElapsed = defaultRetryMaxElapsed
	}
	if tx.RetryMaxAttempts == 0 {
		tx.RetryMaxAttempts = defaultRetryMaxAttempts
	}
	return tx, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if err := validateDatabase(&cfg.Database); err != nil {
		return err
	}

	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}

	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}

	if cfg.Kafka.Handlers.LoadImported.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_LOAD_IMPORTED_PROCESS_TIMEOUT is required")
	}

	if cfg.Billing.DefaultPaymentTermsDays < 0 {
		return errors.New("BILLING_DEFAULT_PAYMENT_TERMS_DAYS must not be negative")
	}
	if cfg.Billing.DefaultFuelSurchargePercent.IsNegative() {
		return errors.New("BILLING_DEFAULT_FUEL_SURCHARGE_PERCENT must not be negative")
	}
	if cfg.Billing.SettlementBatchConcurrency < 0 || cfg.Billing.InvoiceBatchConcurrency < 0 {
		return errors.New("BILLING_*_BATCH_CONCURRENCY must be positive")
	}

	if cfg.Tx.RetryMaxInterval < cfg.Tx.RetryInitialInterval {
		return errors.New("TX_RETRY_MAX_INTERVAL must not be less than TX_RETRY_INITIAL_INTERVAL")
	}

	return nil
}

func validateDatabase(db *Database) error {
	if db.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if db.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if db.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if db.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if db.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if db.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}
	return nil
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetDecimal(s string) (decimal.Decimal, error) {
	val := os.Getenv(s)
	if val == "" {
		return decimal.Zero, nil
	}

	res, err := decimal.NewFromString(val)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid decimal format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
