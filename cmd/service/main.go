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

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "locker-service/internal/app"
	"locker-service/internal/cache/rediscache"
	mqttController "locker-service/internal/gateway/mqtt/controller"
	"locker-service/internal/handlers/rest/controller_command_get"
	"locker-service/internal/handlers/rest/controller_deposit_post"
	"locker-service/internal/handlers/rest/controller_heartbeat_post"
	"locker-service/internal/handlers/rest/controller_logs_post"
	"locker-service/internal/handlers/rest/controller_token_get"
	"locker-service/internal/handlers/rest/courier_get"
	"locker-service/internal/handlers/rest/courier_post"
	"locker-service/internal/handlers/rest/courier_state_put"
	"locker-service/internal/handlers/rest/customer_shipment_get"
	"locker-service/internal/handlers/rest/customer_shipment_open_post"
	"locker-service/internal/handlers/rest/healthcheck_head"
	"locker-service/internal/handlers/rest/locker_active_put"
	"locker-service/internal/handlers/rest/locker_get"
	"locker-service/internal/handlers/rest/locker_history_get"
	"locker-service/internal/handlers/rest/ping_get"
	"locker-service/internal/handlers/rest/shipment_assign_post"
	"locker-service/internal/pkg/config"
	"locker-service/internal/pkg/dotenv"
	metrics_system "locker-service/internal/pkg/metrics"
	"locker-service/internal/pkg/middlewares/graceful_shutdown"
	"locker-service/internal/pkg/middlewares/metrics"
	"locker-service/internal/pkg/middlewares/rate_limiter"
	"locker-service/internal/pkg/middlewares/timeout"
	"locker-service/internal/pkg/migrations"
	"locker-service/internal/pkg/postgres"
	"locker-service/pkg/logger"
	"locker-service/pkg/logger/zap_adapter"
	"locker-service/pkg/token_bucket"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
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

	mainLog.Info("starting locker-service application")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	if err := dotenv.ApplyFlags(os.Args[0], os.Args[1:]); err != nil {
		mainLog.Error("parse flags", logger.NewField("error", err))
		return
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	leveled, err := zap_adapter.NewZapAdapter(zap_adapter.WithLevel(cfg.Log.Level))
	if err != nil {
		mainLog.Error("init leveled logger", logger.NewField("error", err))
		return
	}
	defer func() {
		_ = leveled.Sync()
	}()
	appLogger = leveled

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

	if cfg.Database.Migrate {
		if err := migrations.Up(ctx, log, pool); err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
	}

	notifier, closeNotifier, err := initNotifier(log, cfg.MQTT)
	if err != nil {
		return fmt.Errorf("mqtt: %w", err)
	}
	defer closeNotifier()

	attempts, err := initAttemptLimiter(ctx, log, cfg.Redis)
	if err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	if attempts != nil {
		defer func() {
			if err := attempts.Close(); err != nil {
				runLog.Error("failed to close redis client", logger.NewField("error", err))
			}
		}()
	}

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, notifier, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector(ctx, 0)

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, pool, attempts, cfg),
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
		pprofMux := http.NewServeMux()
		pprofMux.Handle("/debug/pprof/", http.DefaultServeMux)

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
	businessApp.BackgroundWorkers.Wait()

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

	runLog.Info("Server stopped")
	return nil
}

func initNotifier(log logger.Logger, cfg config.MQTT) (application.CommandNotifier, func(), error) {
	if cfg.Broker == "" {
		log.Warn("MQTT_BROKER is empty, controller nudges are disabled")
		return mqttController.Nop{}, func() {}, nil
	}

	notifier, err := mqttController.Connect(mqttController.Options{
		Broker:      cfg.Broker,
		ClientID:    cfg.ClientID,
		Username:    cfg.Username,
		Password:    cfg.Password,
		TopicPrefix: cfg.TopicPrefix,
		QoS:         cfg.QoS,
	})
	if err != nil {
		return nil, nil, err
	}

	log.Info("mqtt notifier connected", logger.NewField("broker", cfg.Broker))
	return notifier, notifier.Close, nil
}

func initAttemptLimiter(ctx context.Context, log logger.Logger, cfg config.Redis) (*rediscache.AttemptLimiter, error) {
	if cfg.Addr == "" {
		log.Warn("REDIS_ADDR is empty, per-locker attempt limit is disabled")
		return nil, nil
	}

	limiter := rediscache.NewAttemptLimiter(rediscache.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}, cfg.AttemptLimit, cfg.AttemptWindow)

	if err := limiter.Ping(ctx); err != nil {
		_ = limiter.Close()
		return nil, err
	}

	return limiter, nil
}

func initRouter(
	ongoingCtx context.Context,
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	app *application.Application,
	db healthcheck_head.Pinger,
	attempts *rediscache.AttemptLimiter,
	cfg *config.Config,
) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.Server.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.Server.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.Server.RateLimiterQPS, float64(cfg.Server.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, db)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log, "locker-service")).Methods("GET")

	controller := router.PathPrefix("/controller/lockers/{lockerId}").Subrouter()
	if attempts != nil {
		controller.Use(rate_limiter.LockerMiddleware(log, cfg.Redis.AttemptLimit, attempts))
	}
	controller.Handle("/token", controller_token_get.New(log, app.ServiceLocker)).Methods("GET")
	controller.Handle("/heartbeat", controller_heartbeat_post.New(log, app.ServiceLocker)).Methods("POST")
	controller.Handle("/command", controller_command_get.New(log, app.ServiceLocker)).Methods("GET")
	controller.Handle("/deposit", controller_deposit_post.New(log, app.ServiceDeposit)).Methods("POST")
	controller.Handle("/logs", controller_logs_post.New(log, app.ServiceShipment)).Methods("POST")

	router.Handle("/customer/shipments/{resi}", customer_shipment_get.New(log, app.ServiceShipment)).Methods("GET")
	router.Handle("/customer/shipments/{resi}/open", customer_shipment_open_post.New(log, app.ServiceShipment)).Methods("POST")

	router.Handle("/shipments/assign", shipment_assign_post.New(log, app.ServiceShipment)).Methods("POST")

	router.Handle("/couriers", courier_post.New(log, app.ServiceCourier)).Methods("POST")
	router.Handle("/couriers/{id}", courier_get.New(log, app.ServiceCourier)).Methods("GET")
	router.Handle("/couriers/{id}/state", courier_state_put.New(log, app.ServiceCourier)).Methods("PUT")

	router.Handle("/lockers/{lockerId}", locker_get.New(log, app.ServiceLocker)).Methods("GET")
	router.Handle("/lockers/{lockerId}/active", locker_active_put.New(log, app.ServiceLocker)).Methods("PUT")
	router.Handle("/lockers/{lockerId}/history", locker_history_get.New(log, app.ServiceLocker)).Methods("GET")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool, db healthcheck_head.Pinger) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, db)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
