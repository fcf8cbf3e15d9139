package main

import (
	"context"
	"errors"
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

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "walt/internal/app"
	"walt/internal/handlers/rest/cities_get"
	"walt/internal/handlers/rest/city_post"
	"walt/internal/handlers/rest/delivery_post"
	"walt/internal/handlers/rest/driver_get"
	"walt/internal/handlers/rest/drivers_rank_get"
	"walt/internal/handlers/rest/healthcheck_head"
	"walt/internal/handlers/rest/ping_get"
	"walt/internal/handlers/rest/registration_post"
	"walt/internal/pkg/config"
	"walt/internal/pkg/dotenv"
	"walt/internal/pkg/middlewares/graceful_shutdown"
	"walt/internal/pkg/middlewares/metrics"
	"walt/internal/pkg/middlewares/rate_limiter"
	"walt/internal/pkg/middlewares/request_id"
	"walt/internal/pkg/middlewares/timeout"
	"walt/pkg/logger"
	"walt/pkg/logger/zap_adapter"
	"walt/pkg/token_bucket"
)

func main() {
	var envErr error
	if _, err := os.Stat(".env"); err == nil {
		envErr = dotenv.Load()
	} else {
		envErr = dotenv.ApplyFlags()
	}
	if envErr != nil {
		stdlog.Fatalf("failed to load environment: %v", envErr)
	}

	cfg, cfgErr := config.Load()

	level := os.Getenv("LOG_LEVEL")
	if cfg != nil {
		level = cfg.LogLevel
	}
	zapLogger, err := zap_adapter.NewZapAdapter("service", level)
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

	mainLog.Info("starting walt application")

	if cfgErr != nil {
		mainLog.Error("load config", logger.NewField("error", cfgErr))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // ongoingCtx и shutdownCtx намеренно наследуются от context.Background()
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

	runLog := log.With(logger.NewField("storage", cfg.Storage.Driver))

	businessApp, cleanup, err := application.InitializeApplication(ctx, log, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}
	defer cleanup()

	if businessApp.ReportExportJob != nil {
		if err := businessApp.ReportExportJob.Start(); err != nil {
			return fmt.Errorf("report export job: %w", err)
		}
		defer businessApp.ReportExportJob.Stop()
	}

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	server := newServer(ongoingCtx, cfg.Server.Port, initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg.Server), 15*time.Second)
	serverErr := serve(server, runLog.With(logger.NewField("server", "api")))

	// pprof без отдельного флага не поднимается, nil канал в select никогда не сработает
	var pprofServer *http.Server
	var pprofServerErr <-chan error
	if cfg.Server.PprofEnabled {
		pprofServer = newServer(ongoingCtx, cfg.Server.PprofPort, initPprofRouter(&isShuttingDown, businessApp.Storage), 60*time.Second)
		pprofServerErr = serve(pprofServer, runLog.With(logger.NewField("server", "pprof")))
	}

	select {
	case <-ctx.Done():
		runLog.Info("shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr:
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	// healthcheck уже отдает 503, балансировщик успевает снять инстанс
	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	shutdownErr := server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		if err := pprofServer.Shutdown(shutdownCtx); err != nil {
			runLog.Error("pprof server shutdown", logger.NewField("error", err))
			shutdownErr = errors.Join(shutdownErr, err)
		}
	}

	stopOngoingGracefully()
	if shutdownErr != nil {
		runLog.Warn("graceful shutdown timeout, forcing close", logger.NewField("error", shutdownErr))
		time.Sleep(shutdownHardPeriod)
	}

	businessApp.BackgroundWorkers.Wait()

	runLog.Info("server stopped")
	return nil
}

func newServer(ongoingCtx context.Context, port string, handler http.Handler, rwTimeout time.Duration) *http.Server {
	return &http.Server{
		Addr:    fmt.Sprintf(":%s", port),
		Handler: handler,
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       rwTimeout,
		WriteTimeout:      rwTimeout,
		IdleTimeout:       60 * time.Second,
	}
}

func serve(server *http.Server, log logger.Logger) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		log.Info("server starting", logger.NewField("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	return errCh
}

func initRouter(
	ongoingCtx context.Context,
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	app *application.Application,
	cfg config.HTTPServer,
) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(request_id.Middleware())
	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	limiter := token_bucket.New(float64(cfg.RateLimiterQPS), cfg.RateLimiterBurst)
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, limiter))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, app.Storage)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	router.Handle("/delivery", delivery_post.New(log, app.ServiceOrder)).Methods("POST")

	rank := drivers_rank_get.New(log, app.ServiceReport)
	router.Handle("/drivers/rank", rank).Methods("GET")
	router.Handle("/drivers/rank/{city}", rank).Methods("GET")

	router.Handle("/driver/{name}", driver_get.New(log, app.ServiceCatalog)).Methods("GET")
	router.Handle("/driver", registration_post.NewDriver(log, app.ServiceCatalog)).Methods("POST")
	router.Handle("/customer", registration_post.NewCustomer(log, app.ServiceCatalog)).Methods("POST")
	router.Handle("/restaurant", registration_post.NewRestaurant(log, app.ServiceCatalog)).Methods("POST")

	router.Handle("/city", city_post.New(log, app.ServiceCatalog)).Methods("POST")
	router.Handle("/cities", cities_get.New(log, app.ServiceCatalog)).Methods("GET")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool, storage healthcheck_head.Storage) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, storage)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
