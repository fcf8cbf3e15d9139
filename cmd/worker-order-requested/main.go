package main

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/IBM/sarama"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"walt/internal/app"
	"walt/internal/handlers/kafka-consumer/order_requested"
	"walt/internal/handlers/rest/healthcheck_head"
	"walt/internal/pkg/config"
	"walt/internal/pkg/dotenv"
	"walt/internal/pkg/kafka"
	"walt/pkg/logger"
	"walt/pkg/logger/zap_adapter"
)

const serviceName = "worker-order-requested"

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
	if cfgErr == nil {
		cfgErr = cfg.ValidateConsumer()
	}

	level := os.Getenv("LOG_LEVEL")
	if cfg != nil {
		level = cfg.LogLevel
	}
	zapLogger, err := zap_adapter.NewZapAdapter(serviceName, level)
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	appLogger.Info("starting order.requested worker")

	if cfgErr != nil {
		appLogger.Error("load config", logger.NewField("error", cfgErr))
		return
	}

	if err := run(context.Background(), cfg, appLogger); err != nil {
		appLogger.Error("worker failed", logger.NewField("error", err))
	}
}

//nolint:contextcheck // ongoingCtx и shutdownCtx намеренно наследуются от context.Background()
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	brokers := kafka.ParseBrokers(cfg.Kafka.Brokers)
	runLog := log.With(
		logger.NewField("topic", cfg.Kafka.Topic),
		logger.NewField("group", cfg.Kafka.ConsumerGroup),
		logger.NewField("storage", cfg.Storage.Driver),
	)

	workerApp, cleanup, err := app.InitializeKafkaWorkerApp(ctx, log, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}
	defer cleanup()

	// ongoingCtx не отменяется по SIGTERM: консьюмер дочитывает начатые сообщения.
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	opsServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Kafka.PortHealthcheck),
		Handler: initOpsRouter(&isShuttingDown, workerApp.Storage),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	opsServerErr := serve(opsServer, runLog)

	consumer, err := kafka.NewConsumer(
		ctx,
		log,
		&cfg.Kafka,
		brokers,
		cfg.Kafka.ConsumerGroup,
		[]string{cfg.Kafka.Topic},
		order_requested.New(log, workerApp.OrderService, cfg.Kafka.Handlers.OrderRequested.ProcessTimeout),
	)
	if err != nil {
		return fmt.Errorf("kafka consumer: %w", err)
	}
	consumerErr := consume(ongoingCtx, consumer, runLog)

	select {
	case <-ctx.Done():
		runLog.Info("shutdown signal received")
	case err := <-consumerErr:
		if err != nil {
			return fmt.Errorf("consumer: %w", err)
		}
		runLog.Warn("kafka consumer exited before shutdown")
	case err := <-opsServerErr:
		return fmt.Errorf("ops server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)

	// остановка группы отдает партиции, in-flight сообщение дорабатывает с ongoingCtx
	runLog.Info("closing kafka consumer")
	if err := consumer.Close(); err != nil {
		runLog.Error("failed to close kafka consumer", logger.NewField("error", err))
	}
	stopOngoingGracefully()

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	if err := opsServer.Shutdown(shutdownCtx); err != nil {
		runLog.Error("ops server shutdown", logger.NewField("error", err))
	}

	runLog.Info("worker stopped")
	return nil
}

func serve(server *http.Server, log logger.Logger) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		log.Info("ops server starting", logger.NewField("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	return errCh
}

func consume(ctx context.Context, consumer *kafka.Consumer, log logger.Logger) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		err := consumer.Start(ctx)
		switch {
		case err == nil, errors.Is(err, context.Canceled), errors.Is(err, sarama.ErrClosedConsumerGroup):
			log.Info("kafka consumer stopped")
		default:
			errCh <- err
		}
	}()
	return errCh
}

// initOpsRouter: healthcheck для оркестратора и /metrics, счетчики заказов воркера живут в его процессе.
func initOpsRouter(isShuttingDown *atomic.Bool, storage healthcheck_head.Storage) http.Handler {
	router := mux.NewRouter()
	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, storage)).Methods(http.MethodHead)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	return router
}
