//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rank_report_export_test
package rank_report_export

import (
	"context"

	"walt/internal/entities"
	"walt/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type ReportService interface {
	GetDriverRankReport(ctx context.Context) ([]entities.DriverDistance, error)
}

type Exporter interface {
	Export(ctx context.Context, ranked []entities.DriverDistance) (string, error)
}
