//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"walt/internal/handlers/jobs/rank_report_export"
	"walt/internal/handlers/rest/cities_get"
	"walt/internal/handlers/rest/city_post"
	"walt/internal/handlers/rest/delivery_post"
	"walt/internal/handlers/rest/driver_get"
	"walt/internal/handlers/rest/drivers_rank_get"
	"walt/internal/handlers/rest/registration_post"
	"walt/internal/handlers/tasks/driver_distance_metrics"
	"walt/internal/pkg/config"
	"walt/internal/pkg/fixtures"
	catalogService "walt/internal/service/catalog"
	orderService "walt/internal/service/order"
	reportService "walt/internal/service/report"
	"walt/pkg/background"
	"walt/pkg/logger"

	"github.com/google/wire"
)

type Application struct {
	Storage           *Storage
	ServiceOrder      ServiceOrder
	ServiceCatalog    ServiceCatalog
	ServiceReport     ServiceReport
	BackgroundWorkers *background.Worker
	ReportExportJob   *rank_report_export.Job
}

type ServiceOrder interface {
	delivery_post.Service
}

type ServiceCatalog interface {
	registration_post.Service
	driver_get.Service
	city_post.Service
	cities_get.Service
	fixtures.Registrar
}

type ServiceReport interface {
	drivers_rank_get.Service
}

var serviceSet = wire.NewSet(
	NewStorage,
	provideDistanceCalculator,
	providePublisher,
	provideOrderService,
	provideCatalogService,
	provideReportService,
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	cfg *config.Config,
) (*Application, func(), error) {
	wire.Build(
		serviceSet,

		provideDriverDistanceMetricsInterval,
		provideDriverDistanceMetricsTask,
		provideSystemMetricsTask,
		provideTaskList,
		provideBackgroundWorkers,
		provideReportExportJob,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Service)),
		wire.Bind(new(ServiceCatalog), new(*catalogService.Catalog)),
		wire.Bind(new(ServiceReport), new(*reportService.Report)),

		wire.Bind(new(driver_distance_metrics.Service), new(*reportService.Report)),
		wire.Bind(new(rank_report_export.ReportService), new(*reportService.Report)),
	)
	return nil, nil, nil
}

type KafkaWorkerApp struct {
	Storage      *Storage
	OrderService *orderService.Service
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-order-requested)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	cfg *config.Config,
) (*KafkaWorkerApp, func(), error) {
	wire.Build(
		serviceSet,

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil, nil
}

type SeedApp struct {
	Storage        *Storage
	ServiceCatalog ServiceCatalog
	ServiceOrder   ServiceOrder
	ServiceReport  ServiceReport
}

// InitializeSeedApp для наполнения хранилища (cmd/seed)
func InitializeSeedApp(
	ctx context.Context,
	log logger.Logger,
	cfg *config.Config,
) (*SeedApp, func(), error) {
	wire.Build(
		serviceSet,

		wire.Struct(new(SeedApp), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Service)),
		wire.Bind(new(ServiceCatalog), new(*catalogService.Catalog)),
		wire.Bind(new(ServiceReport), new(*reportService.Report)),
	)
	return nil, nil, nil
}
