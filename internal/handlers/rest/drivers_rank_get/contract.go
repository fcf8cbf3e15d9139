//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=drivers_rank_get_test
package drivers_rank_get

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

type Service interface {
	GetDriverRankReport(ctx context.Context) ([]entities.DriverDistance, error)
	GetDriverRankReportByCity(ctx context.Context, cityName string) ([]entities.DriverDistance, error)
}
