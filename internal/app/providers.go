package app

import (
	"context"
	"fmt"
	"time"

	"walt/internal/gateway/kafka/delivery_events"
	"walt/internal/gateway/s3/rank_report"
	"walt/internal/handlers/jobs/rank_report_export"
	"walt/internal/handlers/tasks/driver_distance_metrics"
	"walt/internal/pkg/config"
	"walt/internal/pkg/factory/distance"
	"walt/internal/pkg/kafka"
	"walt/internal/pkg/metrics"
	catalogService "walt/internal/service/catalog"
	orderService "walt/internal/service/order"
	reportService "walt/internal/service/report"
	"walt/pkg/background"
	"walt/pkg/logger"
)

type (
	DriverDistanceMetricsInterval time.Duration
)

const systemMetricsInterval = 15 * time.Second

func provideDistanceCalculator(cfg *config.Config) (distance.Calculator, error) {
	return distance.New(
		distance.Mode(cfg.Distance.Mode),
		cfg.Distance.MaxDistance,
		cfg.Distance.FixedValue,
	)
}

// providePublisher без KAFKA_PRODUCER_TOPIC возвращает заглушку, заказы оформляются без событий.
func providePublisher(ctx context.Context, log logger.Logger, cfg *config.Config) (orderService.EventPublisher, func(), error) {
	if cfg.Kafka.Producer.Topic == "" {
		return delivery_events.Disabled{}, func() {}, nil
	}

	producer, err := kafka.NewSyncProducer(ctx, log, cfg.Kafka.Sarama.Version, kafka.ParseBrokers(cfg.Kafka.Brokers))
	if err != nil {
		return nil, nil, fmt.Errorf("kafka producer: %w", err)
	}

	cleanup := func() {
		if err := producer.Close(); err != nil {
			log.Error("failed to close kafka producer", logger.NewField("error", err))
		}
	}
	return delivery_events.New(producer, cfg.Kafka.Producer.Topic), cleanup, nil
}

func provideOrderService(
	log logger.Logger,
	storage *Storage,
	calculator distance.Calculator,
	publisher orderService.EventPublisher,
) *orderService.Service {
	return orderService.New(
		log,
		storage.Customers,
		storage.Restaurants,
		storage.Drivers,
		storage.Deliveries,
		calculator,
		publisher,
		storage.TxManager,
	)
}

func provideCatalogService(storage *Storage) *catalogService.Catalog {
	return catalogService.New(
		storage.Cities,
		storage.Drivers,
		storage.Customers,
		storage.Restaurants,
		storage.Deliveries,
		storage.TxManager,
	)
}

func provideReportService(storage *Storage) *reportService.Report {
	return reportService.New(storage.Drivers, storage.Cities, storage.TxManager)
}

func provideDriverDistanceMetricsInterval(cfg *config.Config) DriverDistanceMetricsInterval {
	return DriverDistanceMetricsInterval(cfg.Tasks.DriverDistanceMetricsInterval)
}

func provideDriverDistanceMetricsTask(
	log logger.Logger,
	reports driver_distance_metrics.Service,
	interval DriverDistanceMetricsInterval,
) *driver_distance_metrics.DriverDistanceMetrics {
	return driver_distance_metrics.NewDriverDistanceMetrics(log, reports, time.Duration(interval))
}

func provideSystemMetricsTask() *metrics.SystemCollector {
	return metrics.NewSystemCollector(systemMetricsInterval)
}

func provideTaskList(
	driverDistanceMetricsTask *driver_distance_metrics.DriverDistanceMetrics,
	systemMetricsTask *metrics.SystemCollector,
) []background.Task {
	return []background.Task{
		driverDistanceMetricsTask,
		systemMetricsTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}

// provideReportExportJob возвращает nil, если выгрузка отчета выключена.
func provideReportExportJob(
	ctx context.Context,
	log logger.Logger,
	reports rank_report_export.ReportService,
	cfg *config.Config,
) (*rank_report_export.Job, error) {
	exportCfg := cfg.ReportExport
	if !exportCfg.Enabled {
		return nil, nil
	}

	client, err := rank_report.NewClient(ctx, &exportCfg)
	if err != nil {
		return nil, fmt.Errorf("s3 client: %w", err)
	}

	exporter := rank_report.New(client, exportCfg.Bucket, exportCfg.Prefix)
	return rank_report_export.New(log, reports, exporter, exportCfg.Schedule, exportCfg.Timeout), nil
}
