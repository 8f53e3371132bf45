package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	application "dispatch/internal/app"
	"dispatch/internal/handlers/rest/driver_get"
	"dispatch/internal/handlers/rest/driver_team_delete"
	"dispatch/internal/handlers/rest/driver_team_post"
	"dispatch/internal/handlers/rest/healthcheck_head"
	"dispatch/internal/handlers/rest/invoice_delete"
	"dispatch/internal/handlers/rest/invoice_get"
	"dispatch/internal/handlers/rest/invoice_payment_post"
	"dispatch/internal/handlers/rest/invoice_post"
	"dispatch/internal/handlers/rest/invoice_put"
	"dispatch/internal/handlers/rest/invoice_status_post"
	"dispatch/internal/handlers/rest/invoices_batch_post"
	"dispatch/internal/handlers/rest/invoices_get"
	"dispatch/internal/handlers/rest/load_accessorial_post"
	"dispatch/internal/handlers/rest/load_assign_post"
	"dispatch/internal/handlers/rest/load_delete"
	"dispatch/internal/handlers/rest/load_get"
	"dispatch/internal/handlers/rest/load_post"
	"dispatch/internal/handlers/rest/load_put"
	"dispatch/internal/handlers/rest/load_status_post"
	"dispatch/internal/handlers/rest/load_unassign_post"
	"dispatch/internal/handlers/rest/ping_get"
	"dispatch/internal/handlers/rest/settlement_get"
	"dispatch/internal/handlers/rest/settlement_post"
	"dispatch/internal/handlers/rest/settlement_status_post"
	"dispatch/internal/handlers/rest/settlements_batch_post"
	"dispatch/internal/pkg/config"
	"dispatch/internal/pkg/dotenv"
	metrics_system "dispatch/internal/pkg/metrics"
	"dispatch/internal/pkg/middlewares/graceful_shutdown"
	"dispatch/internal/pkg/middlewares/metrics"
	"dispatch/internal/pkg/middlewares/rate_limiter"
	"dispatch/internal/pkg/middlewares/timeout"
	"dispatch/internal/pkg/postgres"
	"dispatch/pkg/logger"
	"dispatch/pkg/logger/zap_adapter"
	"dispatch/pkg/token_bucket"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	serviceName           = "dispatch"
	systemMetricsInterval = 5 * time.Second
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter(
		zap_adapter.WithLevel(os.Getenv("LOG_LEVEL")),
		zap_adapter.WithService(serviceName),
	)
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting dispatch application")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	if err := dotenv.OverridePort(os.Args[1:]); err != nil {
		mainLog.Error("parse flags", logger.NewField("error", err))
		return
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // Получаю предупреждения от линтера в местах де наследуюсь от context.Background(), хотя это часть gracefull shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	// фоновые задачи живут до сигнала остановки, как и сбор системных метрик
	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector(ctx, systemMetricsInterval)

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, pool, businessApp, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()
	// основной http сервер

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown, pool),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http сервер

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // if !cfg.Server.PprofEnabled будет nil по умолчанию, и данный кейс будет проигнорирован
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)

	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	businessApp.BackgroundWorkers.Wait()
	runLog.Info("background tasks stopped")

	runLog.Info("Server stopped")
	return nil
}

func initRouter(
	ongoingCtx context.Context,
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	db healthcheck_head.Pinger,
	app *application.Application,
	cfg config.HTTPServer,
) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.RateLimiterQPS, float64(cfg.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, db)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log, serviceName)).Methods("GET")

	router.Handle("/loads", load_post.New(log, app.ServiceLoad)).Methods("POST")
	router.Handle("/loads/{id:[0-9]+}", load_get.New(log, app.ServiceLoad)).Methods("GET")
	router.Handle("/loads/{id:[0-9]+}", load_put.New(log, app.ServiceLoad)).Methods("PUT")
	router.Handle("/loads/{id:[0-9]+}", load_delete.New(log, app.ServiceLoad)).Methods("DELETE")
	router.Handle("/loads/{id:[0-9]+}/accessorials", load_accessorial_post.New(log, app.ServiceLoad)).Methods("POST")
	router.Handle("/loads/{id:[0-9]+}/status", load_status_post.New(log, app.ServiceLoad)).Methods("POST")
	router.Handle("/loads/{id:[0-9]+}/assign", load_assign_post.New(log, app.ServiceAssignment)).Methods("POST")
	router.Handle("/loads/{id:[0-9]+}/unassign", load_unassign_post.New(log, app.ServiceAssignment)).Methods("POST")

	router.Handle("/drivers/{id:[0-9]+}", driver_get.New(log, app.ServiceDriver)).Methods("GET")
	router.Handle("/drivers/{id:[0-9]+}/team", driver_team_post.New(log, app.ServiceDriver)).Methods("POST")
	router.Handle("/drivers/{id:[0-9]+}/team", driver_team_delete.New(log, app.ServiceDriver)).Methods("DELETE")

	router.Handle("/settlements/batch", settlements_batch_post.New(log, app.ServiceSettlement)).Methods("POST")
	router.Handle("/settlements", settlement_post.New(log, app.ServiceSettlement)).Methods("POST")
	router.Handle("/settlements/{id:[0-9]+}", settlement_get.New(log, app.ServiceSettlement)).Methods("GET")
	router.Handle("/settlements/{id:[0-9]+}/status", settlement_status_post.New(log, app.ServiceSettlement)).Methods("POST")

	router.Handle("/invoices/batch", invoices_batch_post.New(log, app.ServiceInvoice)).Methods("POST")
	router.Handle("/invoices", invoice_post.New(log, app.ServiceInvoice)).Methods("POST")
	router.Handle("/invoices", invoices_get.New(log, app.ServiceInvoice)).Methods("GET")
	router.Handle("/invoices/{id:[0-9]+}", invoice_get.New(log, app.ServiceInvoice)).Methods("GET")
	router.Handle("/invoices/{id:[0-9]+}", invoice_put.New(log, app.ServiceInvoice)).Methods("PUT")
	router.Handle("/invoices/{id:[0-9]+}", invoice_delete.New(log, app.ServiceInvoice)).Methods("DELETE")
	router.Handle("/invoices/{id:[0-9]+}/status", invoice_status_post.New(log, app.ServiceInvoice)).Methods("POST")
	router.Handle("/invoices/{id:[0-9]+}/payments", invoice_payment_post.New(log, app.ServiceInvoice)).Methods("POST")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool, db healthcheck_head.Pinger) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, db)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
