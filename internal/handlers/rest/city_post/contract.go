//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=city_post_test
package city_post

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
	CreateCity(ctx context.Context, cityModify entities.CityModify) (*entities.City, error)
}
